package services

import (
	"context"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// fakeClient implements api.Client for the service unit tests. Behavior is
// injected per-method through function fields; unset methods return zero
// values.
type fakeClient struct {
	CloseErr error

	LoginFn          func(ctx context.Context, username, password string) (*models.AuthResponse, error)
	RegisterFn       func(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
	GetProfileFn     func(ctx context.Context) (*models.UserProfile, error)
	UpdateProfileFn  func(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
	ChangePasswordFn func(ctx context.Context, oldPassword, newPassword string) error

	ListApplicationsFn  func(ctx context.Context) ([]models.Application, error)
	GetApplicationFn    func(ctx context.Context, id int64) (*models.Application, error)
	CreateApplicationFn func(ctx context.Context, form models.ApplicationForm) (*models.Application, error)
	UpdateApplicationFn func(ctx context.Context, id int64, form models.ApplicationForm) (*models.Application, error)
	DeleteApplicationFn func(ctx context.Context, id int64) error

	AnalyticsOverviewFn func(ctx context.Context) (*models.AnalyticsOverview, error)
	AnalyticsChartsFn   func(ctx context.Context) (*models.ChartsData, error)

	GenerateFn         func(ctx context.Context, tool models.GenerationType, filePath, jobDescription string, sink func(string)) (string, error)
	ScrapeJobFn        func(ctx context.Context, jobURL string) (*models.ScrapedJob, error)
	ListGenerationsFn  func(ctx context.Context, filter models.GenerationFilter) ([]models.AIGeneration, error)
	GetGenerationFn    func(ctx context.Context, id int64) (*models.AIGeneration, error)
	DeleteGenerationFn func(ctx context.Context, id int64) error

	ListDocumentsFn  func(ctx context.Context) ([]models.Document, error)
	UploadDocumentFn func(ctx context.Context, filePath string, docType models.DocumentType, isMaster bool, applicationID int64) (*models.Document, error)
	DeleteDocumentFn func(ctx context.Context, id int64) error

	ListCompaniesFn func(ctx context.Context) ([]models.Company, error)
	GetCompanyFn    func(ctx context.Context, id int64) (*models.Company, error)
	CreateCompanyFn func(ctx context.Context, form models.CompanyForm) (*models.Company, error)
	UpdateCompanyFn func(ctx context.Context, id int64, form models.CompanyForm) (*models.Company, error)
	DeleteCompanyFn func(ctx context.Context, id int64) error
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	if f.LoginFn != nil {
		return f.LoginFn(ctx, username, password)
	}
	return nil, nil
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, username, email, password)
	}
	return nil, nil
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	if f.GetProfileFn != nil {
		return f.GetProfileFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	if f.UpdateProfileFn != nil {
		return f.UpdateProfileFn(ctx, req)
	}
	return nil, nil
}

func (f *fakeClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if f.ChangePasswordFn != nil {
		return f.ChangePasswordFn(ctx, oldPassword, newPassword)
	}
	return nil
}

func (f *fakeClient) ListApplications(ctx context.Context) ([]models.Application, error) {
	if f.ListApplicationsFn != nil {
		return f.ListApplicationsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	if f.GetApplicationFn != nil {
		return f.GetApplicationFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeClient) CreateApplication(ctx context.Context, form models.ApplicationForm) (*models.Application, error) {
	if f.CreateApplicationFn != nil {
		return f.CreateApplicationFn(ctx, form)
	}
	return nil, nil
}

func (f *fakeClient) UpdateApplication(ctx context.Context, id int64, form models.ApplicationForm) (*models.Application, error) {
	if f.UpdateApplicationFn != nil {
		return f.UpdateApplicationFn(ctx, id, form)
	}
	return nil, nil
}

func (f *fakeClient) DeleteApplication(ctx context.Context, id int64) error {
	if f.DeleteApplicationFn != nil {
		return f.DeleteApplicationFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) AnalyticsOverview(ctx context.Context) (*models.AnalyticsOverview, error) {
	if f.AnalyticsOverviewFn != nil {
		return f.AnalyticsOverviewFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) AnalyticsCharts(ctx context.Context) (*models.ChartsData, error) {
	if f.AnalyticsChartsFn != nil {
		return f.AnalyticsChartsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) Generate(ctx context.Context, tool models.GenerationType, filePath, jobDescription string, sink func(string)) (string, error) {
	if f.GenerateFn != nil {
		return f.GenerateFn(ctx, tool, filePath, jobDescription, sink)
	}
	return "", nil
}

func (f *fakeClient) ScrapeJob(ctx context.Context, jobURL string) (*models.ScrapedJob, error) {
	if f.ScrapeJobFn != nil {
		return f.ScrapeJobFn(ctx, jobURL)
	}
	return nil, nil
}

func (f *fakeClient) ListGenerations(ctx context.Context, filter models.GenerationFilter) ([]models.AIGeneration, error) {
	if f.ListGenerationsFn != nil {
		return f.ListGenerationsFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeClient) GetGeneration(ctx context.Context, id int64) (*models.AIGeneration, error) {
	if f.GetGenerationFn != nil {
		return f.GetGenerationFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeClient) DeleteGeneration(ctx context.Context, id int64) error {
	if f.DeleteGenerationFn != nil {
		return f.DeleteGenerationFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	if f.ListDocumentsFn != nil {
		return f.ListDocumentsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) UploadDocument(ctx context.Context, filePath string, docType models.DocumentType, isMaster bool, applicationID int64) (*models.Document, error) {
	if f.UploadDocumentFn != nil {
		return f.UploadDocumentFn(ctx, filePath, docType, isMaster, applicationID)
	}
	return nil, nil
}

func (f *fakeClient) DeleteDocument(ctx context.Context, id int64) error {
	if f.DeleteDocumentFn != nil {
		return f.DeleteDocumentFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) ListCompanies(ctx context.Context) ([]models.Company, error) {
	if f.ListCompaniesFn != nil {
		return f.ListCompaniesFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	if f.GetCompanyFn != nil {
		return f.GetCompanyFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeClient) CreateCompany(ctx context.Context, form models.CompanyForm) (*models.Company, error) {
	if f.CreateCompanyFn != nil {
		return f.CreateCompanyFn(ctx, form)
	}
	return nil, nil
}

func (f *fakeClient) UpdateCompany(ctx context.Context, id int64, form models.CompanyForm) (*models.Company, error) {
	if f.UpdateCompanyFn != nil {
		return f.UpdateCompanyFn(ctx, id, form)
	}
	return nil, nil
}

func (f *fakeClient) DeleteCompany(ctx context.Context, id int64) error {
	if f.DeleteCompanyFn != nil {
		return f.DeleteCompanyFn(ctx, id)
	}
	return nil
}
