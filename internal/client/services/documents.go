package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
	"github.com/dmitrijs2005/jobtrackr/internal/filex"
)

// DocumentService manages uploaded resumes and cover letters.
type DocumentService interface {
	List(ctx context.Context) ([]models.Document, error)
	Upload(ctx context.Context, filePath string, docType models.DocumentType, isMaster bool, applicationID int64) (*models.Document, error)
	Delete(ctx context.Context, id int64) error
}

type documentService struct {
	client api.Client
}

func NewDocumentService(client api.Client) DocumentService {
	return &documentService{client: client}
}

func (s *documentService) List(ctx context.Context) ([]models.Document, error) {
	return s.client.ListDocuments(ctx)
}

// Upload validates the file locally before sending it. applicationID of 0
// uploads an unattached document.
func (s *documentService) Upload(ctx context.Context, filePath string, docType models.DocumentType, isMaster bool, applicationID int64) (*models.Document, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: unknown document type %q", common.ErrValidation, docType)
	}
	cleaned, err := filex.ValidateUploadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return s.client.UploadDocument(ctx, cleaned, docType, isMaster, applicationID)
}

func (s *documentService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteDocument(ctx, id)
}
