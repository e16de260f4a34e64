package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
)

// streamChunkSize is the read granularity for streamed AI responses.
const streamChunkSize = 4096

// toolPaths maps a generation type onto its streaming endpoint.
var toolPaths = map[models.GenerationType]string{
	models.GenerationTailoredResume: "/ai/tailor-resume/",
	models.GenerationCoverLetter:    "/ai/generate-cover-letter/",
	models.GenerationInterviewPrep:  "/ai/generate-interview-prep/",
	models.GenerationMatchScore:     "/ai/match-score/",
}

// multipartBody assembles a multipart form with an optional file part plus
// the given text fields and returns the encoded body and its content type.
// An empty filePath produces a form with only the text fields.
func multipartBody(filePath string, fields map[string]string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", filePath, err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("file", filepath.Base(filePath))
		if err != nil {
			return nil, "", fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("read %s: %w", filePath, err)
		}
	}

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// Generate uploads the resume file and job description to the selected AI
// tool and streams the response. Chunks are handed to sink in the order they
// arrive; the returned string is the exact concatenation of those chunks.
func (c *HTTPClient) Generate(ctx context.Context, tool models.GenerationType, filePath, jobDescription string, sink func(chunk string)) (string, error) {
	path, ok := toolPaths[tool]
	if !ok {
		return "", fmt.Errorf("%w: unknown tool %q", common.ErrValidation, tool)
	}

	body, contentType, err := multipartBody(filePath, map[string]string{
		"job_description": jobDescription,
	})
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return "", err
	}
	req.Header.Set(headerContentType, contentType)

	if c.log != nil {
		c.log.Debug(ctx, "streaming request", "tool", string(tool), "path", path)
	}

	resp, err := c.streamClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
	}
	if resp.StatusCode >= 400 {
		errBody, _ := io.ReadAll(resp.Body)
		return "", parseAPIError(resp.StatusCode, errBody)
	}

	var full strings.Builder
	buf := make([]byte, streamChunkSize)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			full.WriteString(chunk)
			if sink != nil {
				sink(chunk)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return full.String(), fmt.Errorf("stream interrupted: %w", err)
		}
	}
	return full.String(), nil
}

// UploadDocument sends a resume/cover-letter file as a multipart POST to the
// documents endpoint. applicationID of 0 means the document is unattached.
func (c *HTTPClient) UploadDocument(ctx context.Context, filePath string, docType models.DocumentType, isMaster bool, applicationID int64) (*models.Document, error) {
	fields := map[string]string{"document_type": string(docType)}
	if isMaster {
		fields["is_master"] = "true"
	}
	if applicationID != 0 {
		fields["application"] = strconv.FormatInt(applicationID, 10)
	}

	body, contentType, err := multipartBody(filePath, fields)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/documents/", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(headerContentType, contentType)

	resp, err := c.streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
	}
	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, respBody)
	}

	var doc models.Document
	if err := json.Unmarshal(respBody, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &doc, nil
}
