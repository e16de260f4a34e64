package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/client/repositories/applications"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
)

// ApplicationService manages tracked job applications. Reads prefer the
// server and fall back to the local cache when it is unreachable; writes
// always go to the server.
type ApplicationService interface {
	List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error)
	Get(ctx context.Context, id int64) (*models.Application, error)
	Create(ctx context.Context, form models.ApplicationForm) (*models.Application, error)
	Update(ctx context.Context, id int64, form models.ApplicationForm) (*models.Application, error)
	Delete(ctx context.Context, id int64) error
}

type applicationService struct {
	client api.Client
	cache  applications.Repository
}

// NewApplicationService constructs an ApplicationService bound to the given
// API client and local cache.
func NewApplicationService(client api.Client, cache applications.Repository) ApplicationService {
	return &applicationService{client: client, cache: cache}
}

// List returns applications, optionally filtered by status (empty status
// means all). A successful server listing replaces the local cache; when the
// server is unreachable the cached listing is served instead.
func (s *applicationService) List(ctx context.Context, status models.ApplicationStatus) ([]models.Application, error) {
	apps, err := s.client.ListApplications(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			cached, cacheErr := s.cache.List(ctx)
			if cacheErr != nil {
				return nil, err
			}
			return filterByStatus(cached, status), nil
		}
		return nil, err
	}

	// Refresh the offline cache with the unfiltered listing. Best effort.
	_ = s.cache.ReplaceAll(ctx, apps)

	return filterByStatus(apps, status), nil
}

func filterByStatus(apps []models.Application, status models.ApplicationStatus) []models.Application {
	if status == "" {
		return apps
	}
	result := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if app.Status == status {
			result = append(result, app)
		}
	}
	return result
}

// Get returns one application, falling back to the cache when the server is
// unreachable.
func (s *applicationService) Get(ctx context.Context, id int64) (*models.Application, error) {
	app, err := s.client.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			if cached, cacheErr := s.cache.GetByID(ctx, id); cacheErr == nil {
				return cached, nil
			}
		}
		return nil, err
	}
	return app, nil
}

// Create validates and normalizes the form, then creates the application on
// the server.
func (s *applicationService) Create(ctx context.Context, form models.ApplicationForm) (*models.Application, error) {
	prepared, err := prepareForm(form)
	if err != nil {
		return nil, err
	}
	return s.client.CreateApplication(ctx, prepared)
}

// Update validates and normalizes the form, then updates the application on
// the server.
func (s *applicationService) Update(ctx context.Context, id int64, form models.ApplicationForm) (*models.Application, error) {
	prepared, err := prepareForm(form)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateApplication(ctx, id, prepared)
}

// Delete removes the application on the server and drops it from the cache.
func (s *applicationService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteApplication(ctx, id); err != nil {
		return err
	}
	return s.cache.DeleteByID(ctx, id)
}

// prepareForm validates required fields, normalizes every date to
// YYYY-MM-DD, and stamps today's date on the milestone matching the chosen
// status when the user left it blank.
func prepareForm(form models.ApplicationForm) (models.ApplicationForm, error) {
	if form.CompanyName == "" {
		return form, fmt.Errorf("%w: company name is required", common.ErrValidation)
	}
	if form.Position == "" {
		return form, fmt.Errorf("%w: position is required", common.ErrValidation)
	}
	if !form.Status.Valid() {
		return form, fmt.Errorf("%w: unknown status %q", common.ErrValidation, form.Status)
	}

	dates := []**string{
		&form.DateSaved, &form.DateApplied, &form.DateInterview, &form.DateOffer, &form.DateRejected,
	}
	for _, d := range dates {
		normalized, err := normalizeDate(*d)
		if err != nil {
			return form, err
		}
		*d = normalized
	}

	statusDate := map[models.ApplicationStatus]**string{
		models.StatusSaved:     &form.DateSaved,
		models.StatusApplied:   &form.DateApplied,
		models.StatusInterview: &form.DateInterview,
		models.StatusOffer:     &form.DateOffer,
		models.StatusRejected:  &form.DateRejected,
	}
	if slot, ok := statusDate[form.Status]; ok && *slot == nil {
		today := time.Now().Format(common.DateLayout)
		*slot = &today
	}

	return form, nil
}

// normalizeDate reduces a date value to YYYY-MM-DD. It accepts either that
// layout or a full RFC 3339 timestamp; nil and empty pass through as nil.
func normalizeDate(d *string) (*string, error) {
	if d == nil || *d == "" {
		return nil, nil
	}
	if t, err := time.Parse(common.DateLayout, *d); err == nil {
		v := t.Format(common.DateLayout)
		return &v, nil
	}
	if t, err := time.Parse(time.RFC3339, *d); err == nil {
		v := t.Format(common.DateLayout)
		return &v, nil
	}
	return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", common.ErrValidation, *d)
}
