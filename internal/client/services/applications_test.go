package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/client/repositories/applications"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
)

func setupCache(t *testing.T) applications.Repository {
	t.Helper()
	return applications.NewSQLiteRepository(setupDB(t))
}

func strptr(s string) *string { return &s }

func sampleApps() []models.Application {
	return []models.Application{
		{ID: 2, CompanyName: "Acme", Position: "Engineer", Status: models.StatusApplied},
		{ID: 1, CompanyName: "Globex", Position: "Analyst", Status: models.StatusSaved},
	}
}

func TestList_RefreshesCacheOnSuccess(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	fc := &fakeClient{
		ListApplicationsFn: func(ctx context.Context) ([]models.Application, error) {
			return sampleApps(), nil
		},
	}
	svc := NewApplicationService(fc, cache)

	apps, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, apps, 2)

	cached, err := cache.List(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 2)
}

func TestList_StatusFilterIsAppliedClientSide(t *testing.T) {
	cache := setupCache(t)

	fc := &fakeClient{
		ListApplicationsFn: func(ctx context.Context) ([]models.Application, error) {
			return sampleApps(), nil
		},
	}
	svc := NewApplicationService(fc, cache)

	apps, err := svc.List(context.Background(), models.StatusApplied)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.Equal(t, "Acme", apps[0].CompanyName)
}

func TestList_ServerUnreachable_ServesCache(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()
	require.NoError(t, cache.ReplaceAll(ctx, sampleApps()))

	fc := &fakeClient{
		ListApplicationsFn: func(ctx context.Context) ([]models.Application, error) {
			return nil, fmt.Errorf("%w: connection refused", common.ErrUnavailable)
		},
	}
	svc := NewApplicationService(fc, cache)

	apps, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, apps, 2)

	// The cached fallback honors the status filter too.
	saved, err := svc.List(ctx, models.StatusSaved)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	require.Equal(t, "Globex", saved[0].CompanyName)
}

func TestList_OtherServerError_IsReturned(t *testing.T) {
	cache := setupCache(t)

	wantErr := errors.New("internal server error")
	fc := &fakeClient{
		ListApplicationsFn: func(ctx context.Context) ([]models.Application, error) {
			return nil, wantErr
		},
	}
	svc := NewApplicationService(fc, cache)

	_, err := svc.List(context.Background(), "")
	require.ErrorIs(t, err, wantErr)
}

func TestGet_FallsBackToCacheWhenUnreachable(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()
	require.NoError(t, cache.ReplaceAll(ctx, sampleApps()))

	fc := &fakeClient{
		GetApplicationFn: func(ctx context.Context, id int64) (*models.Application, error) {
			return nil, fmt.Errorf("%w: connection refused", common.ErrUnavailable)
		},
	}
	svc := NewApplicationService(fc, cache)

	app, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Acme", app.CompanyName)

	// Not cached either: the transport error surfaces.
	_, err = svc.Get(ctx, 99)
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestCreate_StampsStatusDateWhenBlank(t *testing.T) {
	cache := setupCache(t)

	var sent models.ApplicationForm
	fc := &fakeClient{
		CreateApplicationFn: func(ctx context.Context, form models.ApplicationForm) (*models.Application, error) {
			sent = form
			return &models.Application{ID: 1}, nil
		},
	}
	svc := NewApplicationService(fc, cache)

	_, err := svc.Create(context.Background(), models.ApplicationForm{
		CompanyName: "Acme", Position: "Engineer", Status: models.StatusApplied,
	})
	require.NoError(t, err)

	require.NotNil(t, sent.DateApplied)
	require.Equal(t, time.Now().Format(common.DateLayout), *sent.DateApplied)
	require.Nil(t, sent.DateSaved)
	require.Nil(t, sent.DateInterview)
}

func TestCreate_KeepsExplicitStatusDate(t *testing.T) {
	cache := setupCache(t)

	var sent models.ApplicationForm
	fc := &fakeClient{
		CreateApplicationFn: func(ctx context.Context, form models.ApplicationForm) (*models.Application, error) {
			sent = form
			return &models.Application{ID: 1}, nil
		},
	}
	svc := NewApplicationService(fc, cache)

	_, err := svc.Create(context.Background(), models.ApplicationForm{
		CompanyName: "Acme", Position: "Engineer", Status: models.StatusOffer,
		DateOffer: strptr("2026-08-01"),
	})
	require.NoError(t, err)
	require.Equal(t, "2026-08-01", *sent.DateOffer)
}

func TestCreate_NormalizesTimestampDates(t *testing.T) {
	cache := setupCache(t)

	var sent models.ApplicationForm
	fc := &fakeClient{
		CreateApplicationFn: func(ctx context.Context, form models.ApplicationForm) (*models.Application, error) {
			sent = form
			return &models.Application{ID: 1}, nil
		},
	}
	svc := NewApplicationService(fc, cache)

	_, err := svc.Create(context.Background(), models.ApplicationForm{
		CompanyName: "Acme", Position: "Engineer", Status: models.StatusSaved,
		DateSaved: strptr("2026-08-15T10:30:00Z"),
	})
	require.NoError(t, err)
	require.Equal(t, "2026-08-15", *sent.DateSaved)
}

func TestCreate_ValidationFailures(t *testing.T) {
	cache := setupCache(t)
	svc := NewApplicationService(&fakeClient{}, cache)
	ctx := context.Background()

	tests := []struct {
		name string
		form models.ApplicationForm
	}{
		{"missing company", models.ApplicationForm{Position: "Engineer", Status: models.StatusSaved}},
		{"missing position", models.ApplicationForm{CompanyName: "Acme", Status: models.StatusSaved}},
		{"bad status", models.ApplicationForm{CompanyName: "Acme", Position: "Engineer", Status: "archived"}},
		{"bad date", models.ApplicationForm{
			CompanyName: "Acme", Position: "Engineer", Status: models.StatusSaved,
			DateSaved: strptr("15.08.2026"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.form)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestUpdate_StampsDateForNewStatus(t *testing.T) {
	cache := setupCache(t)

	var sent models.ApplicationForm
	fc := &fakeClient{
		UpdateApplicationFn: func(ctx context.Context, id int64, form models.ApplicationForm) (*models.Application, error) {
			require.EqualValues(t, 7, id)
			sent = form
			return &models.Application{ID: 7}, nil
		},
	}
	svc := NewApplicationService(fc, cache)

	_, err := svc.Update(context.Background(), 7, models.ApplicationForm{
		CompanyName: "Acme", Position: "Engineer", Status: models.StatusInterview,
		DateSaved:   strptr("2026-08-01"),
		DateApplied: strptr("2026-08-05"),
	})
	require.NoError(t, err)

	require.NotNil(t, sent.DateInterview)
	require.Equal(t, time.Now().Format(common.DateLayout), *sent.DateInterview)
	// Earlier milestones pass through untouched.
	require.Equal(t, "2026-08-01", *sent.DateSaved)
	require.Equal(t, "2026-08-05", *sent.DateApplied)
}

func TestDelete_RemovesFromServerAndCache(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()
	require.NoError(t, cache.ReplaceAll(ctx, sampleApps()))

	fc := &fakeClient{}
	svc := NewApplicationService(fc, cache)

	require.NoError(t, svc.Delete(ctx, 2))

	_, err := cache.GetByID(ctx, 2)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_ServerError_KeepsCache(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()
	require.NoError(t, cache.ReplaceAll(ctx, sampleApps()))

	fc := &fakeClient{
		DeleteApplicationFn: func(ctx context.Context, id int64) error {
			return errors.New("forbidden")
		},
	}
	svc := NewApplicationService(fc, cache)

	require.Error(t, svc.Delete(ctx, 2))

	app, err := cache.GetByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Acme", app.CompanyName)
}
