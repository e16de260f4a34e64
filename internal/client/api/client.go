package api

import (
	"context"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// Client is the outbound surface of the job tracker REST API.
//
// All methods honor context cancellation. Implementations attach the bearer
// credential (when one is available) and report any 401 response through the
// unauthorized callback registered at construction time before returning the
// error to the caller.
type Client interface {
	Close() error

	// Auth.
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// Applications.
	ListApplications(ctx context.Context) ([]models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	CreateApplication(ctx context.Context, form models.ApplicationForm) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int64, form models.ApplicationForm) (*models.Application, error)
	DeleteApplication(ctx context.Context, id int64) error

	// Analytics.
	AnalyticsOverview(ctx context.Context) (*models.AnalyticsOverview, error)
	AnalyticsCharts(ctx context.Context) (*models.ChartsData, error)

	// AI tools. Generate streams the response body: every received chunk is
	// passed to sink (when non-nil) in arrival order, and the full text is
	// returned once the stream ends.
	Generate(ctx context.Context, tool models.GenerationType, filePath, jobDescription string, sink func(chunk string)) (string, error)
	ScrapeJob(ctx context.Context, jobURL string) (*models.ScrapedJob, error)
	ListGenerations(ctx context.Context, filter models.GenerationFilter) ([]models.AIGeneration, error)
	GetGeneration(ctx context.Context, id int64) (*models.AIGeneration, error)
	DeleteGeneration(ctx context.Context, id int64) error

	// Documents.
	ListDocuments(ctx context.Context) ([]models.Document, error)
	UploadDocument(ctx context.Context, filePath string, docType models.DocumentType, isMaster bool, applicationID int64) (*models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error

	// Companies.
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id int64) (*models.Company, error)
	CreateCompany(ctx context.Context, form models.CompanyForm) (*models.Company, error)
	UpdateCompany(ctx context.Context, id int64, form models.CompanyForm) (*models.Company, error)
	DeleteCompany(ctx context.Context, id int64) error
}
