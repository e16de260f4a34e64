package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/jobtrackr/internal/client/api"
	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
	"github.com/dmitrijs2005/jobtrackr/internal/filex"
)

// outputDirName is where generated AI output is written, under the current
// working directory.
const outputDirName = "generated"

// AIToolsService runs the AI-assisted generation tools and manages their
// history. Generate streams tool output to sink as it arrives and, once the
// stream ends, writes the full text to a file under the output directory.
type AIToolsService interface {
	Generate(ctx context.Context, tool models.GenerationType, resumePath, jobDescription string, sink func(chunk string)) (outPath string, err error)
	ScrapeJob(ctx context.Context, jobURL string) (*models.ScrapedJob, error)
	ListGenerations(ctx context.Context, filter models.GenerationFilter) ([]models.AIGeneration, error)
	GetGeneration(ctx context.Context, id int64) (*models.AIGeneration, error)
	DeleteGeneration(ctx context.Context, id int64) error
}

type aiToolsService struct {
	client api.Client
}

func NewAIToolsService(client api.Client) AIToolsService {
	return &aiToolsService{client: client}
}

// Generate validates the inputs locally, streams the tool run, and saves the
// result. The resume file is required for every tool except match scoring,
// which works from the job description alone when no file is given.
func (s *aiToolsService) Generate(ctx context.Context, tool models.GenerationType, resumePath, jobDescription string, sink func(chunk string)) (string, error) {
	if !tool.Valid() {
		return "", fmt.Errorf("%w: unknown tool %q", common.ErrValidation, tool)
	}
	if jobDescription == "" {
		return "", fmt.Errorf("%w: job description is required", common.ErrValidation)
	}

	if resumePath != "" {
		cleaned, err := filex.ValidateUploadFile(resumePath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", common.ErrValidation, err)
		}
		resumePath = cleaned
	} else if tool != models.GenerationMatchScore {
		return "", fmt.Errorf("%w: a resume file is required for %s", common.ErrValidation, tool.DisplayName())
	}

	text, err := s.client.Generate(ctx, tool, resumePath, jobDescription, sink)
	if err != nil {
		return "", err
	}

	return saveOutput(tool, text)
}

// saveOutput writes the generated text to a timestamped file under the
// output directory and returns its path.
func saveOutput(tool models.GenerationType, text string) (string, error) {
	dir, err := filex.EnsureSubDir(outputDirName)
	if err != nil {
		return "", fmt.Errorf("preparing output dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.md", tool, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(text), 0o660); err != nil {
		return "", fmt.Errorf("saving output: %w", err)
	}
	return path, nil
}

// ScrapeJob extracts a posting's title, company, and description from its URL.
func (s *aiToolsService) ScrapeJob(ctx context.Context, jobURL string) (*models.ScrapedJob, error) {
	if jobURL == "" {
		return nil, fmt.Errorf("%w: job URL is required", common.ErrValidation)
	}
	return s.client.ScrapeJob(ctx, jobURL)
}

func (s *aiToolsService) ListGenerations(ctx context.Context, filter models.GenerationFilter) ([]models.AIGeneration, error) {
	return s.client.ListGenerations(ctx, filter)
}

func (s *aiToolsService) GetGeneration(ctx context.Context, id int64) (*models.AIGeneration, error) {
	return s.client.GetGeneration(ctx, id)
}

func (s *aiToolsService) DeleteGeneration(ctx context.Context, id int64) error {
	return s.client.DeleteGeneration(ctx, id)
}
