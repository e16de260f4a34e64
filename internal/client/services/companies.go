package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
)

// CompanyService manages the user's saved company notes.
type CompanyService interface {
	List(ctx context.Context) ([]models.Company, error)
	Get(ctx context.Context, id int64) (*models.Company, error)
	Create(ctx context.Context, form models.CompanyForm) (*models.Company, error)
	Update(ctx context.Context, id int64, form models.CompanyForm) (*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

type companyService struct {
	client api.Client
}

func NewCompanyService(client api.Client) CompanyService {
	return &companyService{client: client}
}

func (s *companyService) List(ctx context.Context) ([]models.Company, error) {
	return s.client.ListCompanies(ctx)
}

func (s *companyService) Get(ctx context.Context, id int64) (*models.Company, error) {
	return s.client.GetCompany(ctx, id)
}

func (s *companyService) Create(ctx context.Context, form models.CompanyForm) (*models.Company, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("%w: company name is required", common.ErrValidation)
	}
	return s.client.CreateCompany(ctx, form)
}

func (s *companyService) Update(ctx context.Context, id int64, form models.CompanyForm) (*models.Company, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("%w: company name is required", common.ErrValidation)
	}
	return s.client.UpdateCompany(ctx, id, form)
}

func (s *companyService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteCompany(ctx, id)
}
