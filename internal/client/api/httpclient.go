package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
	"github.com/dmitrijs2005/jobtrackr/internal/common"
	"github.com/dmitrijs2005/jobtrackr/internal/logging"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"
	bearerPrefix        = "Bearer "

	defaultTimeout = 30 * time.Second
)

// TokenSource yields the current bearer credential, or "" when logged out.
// It is consulted on every outbound request so the freshest token is used.
type TokenSource func() string

// HTTPClient implements Client over the REST/JSON API.
//
// Two underlying clients are used: httpClient carries the configured overall
// timeout for ordinary JSON exchanges, while streamClient has no overall
// deadline so AI generations and document uploads can run as long as the
// server keeps producing the body.
type HTTPClient struct {
	baseURL        string
	httpClient     *http.Client
	streamClient   *http.Client
	tokenSource    TokenSource
	onUnauthorized func()
	log            logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTokenSource registers the credential source consulted per request.
func WithTokenSource(src TokenSource) Option {
	return func(c *HTTPClient) { c.tokenSource = src }
}

// WithOnUnauthorized registers the single cross-cutting callback fired on any
// 401 response, before the error is returned to the caller.
func WithOnUnauthorized(fn func()) Option {
	return func(c *HTTPClient) { c.onUnauthorized = fn }
}

// WithTimeout overrides the transport-level request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// WithHTTPClient substitutes the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = h
		c.streamClient = h
	}
}

// WithLogger attaches a structured logger for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient returns a Client bound to baseURL, e.g.
// "http://localhost:8000/api".
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.streamClient == nil {
		c.streamClient = newStreamClient(c.httpClient.Timeout)
	}
	return c
}

// newStreamClient builds the client for streaming and upload exchanges.
// http.Client.Timeout bounds the whole exchange including the body read,
// which would sever a long generation mid-stream, so only the wait for
// response headers is bounded here.
func newStreamClient(headerTimeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{ResponseHeaderTimeout: headerTimeout},
	}
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	c.streamClient.CloseIdleConnections()
	return nil
}

// newRequest builds a request with the shared headers: bearer credential when
// the token source yields one, plus a request id for server-side correlation.
func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set(headerAuthorization, bearerPrefix+token)
		}
	}
	req.Header.Set(headerRequestID, uuid.NewString())
	return req, nil
}

// handleUnauthorized fires the composition-time teardown callback.
func (c *HTTPClient) handleUnauthorized(ctx context.Context) {
	if c.log != nil {
		c.log.Warn(ctx, "unauthorized response, tearing down session")
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// doRequest performs a JSON request/response exchange and handles the common
// error cases, including the universal 401 interceptor.
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := c.newRequest(ctx, method, path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	if c.log != nil {
		c.log.Debug(ctx, "api request", "method", method, "path", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
	}
	if resp.StatusCode >= 400 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, result any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, result)
}

func (c *HTTPClient) post(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, result)
}

func (c *HTTPClient) put(ctx context.Context, path string, body, result any) error {
	return c.doRequest(ctx, http.MethodPut, path, body, result)
}

func (c *HTTPClient) delete(ctx context.Context, path string) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, nil)
}

// ---- auth ----

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	body := map[string]string{"username": username, "password": password}
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/register/", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := c.get(ctx, "/auth/profile/", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := c.put(ctx, "/auth/profile/", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.post(ctx, "/auth/change-password/", body, nil)
}

// ---- applications ----

func (c *HTTPClient) ListApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := c.get(ctx, "/applications/", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *HTTPClient) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	if err := c.get(ctx, fmt.Sprintf("/applications/%d/", id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *HTTPClient) CreateApplication(ctx context.Context, form models.ApplicationForm) (*models.Application, error) {
	var app models.Application
	if err := c.post(ctx, "/applications/", form, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *HTTPClient) UpdateApplication(ctx context.Context, id int64, form models.ApplicationForm) (*models.Application, error) {
	var app models.Application
	if err := c.put(ctx, fmt.Sprintf("/applications/%d/", id), form, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *HTTPClient) DeleteApplication(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/applications/%d/", id))
}

// ---- analytics ----

func (c *HTTPClient) AnalyticsOverview(ctx context.Context) (*models.AnalyticsOverview, error) {
	var o models.AnalyticsOverview
	if err := c.get(ctx, "/analytics/overview/", &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) AnalyticsCharts(ctx context.Context) (*models.ChartsData, error) {
	var d models.ChartsData
	if err := c.get(ctx, "/analytics/charts/", &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ---- ai tools ----

func (c *HTTPClient) ScrapeJob(ctx context.Context, jobURL string) (*models.ScrapedJob, error) {
	body := map[string]string{"job_url": jobURL}
	var job models.ScrapedJob
	if err := c.post(ctx, "/ai/scrape-job/", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *HTTPClient) ListGenerations(ctx context.Context, filter models.GenerationFilter) ([]models.AIGeneration, error) {
	path := "/ai/generations/"
	params := url.Values{}
	if filter.Type != "" {
		params.Set("type", string(filter.Type))
	}
	if filter.ApplicationID != 0 {
		params.Set("application_id", strconv.FormatInt(filter.ApplicationID, 10))
	}
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var gens []models.AIGeneration
	if err := c.get(ctx, path, &gens); err != nil {
		return nil, err
	}
	return gens, nil
}

func (c *HTTPClient) GetGeneration(ctx context.Context, id int64) (*models.AIGeneration, error) {
	var g models.AIGeneration
	if err := c.get(ctx, fmt.Sprintf("/ai/generations/%d/", id), &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *HTTPClient) DeleteGeneration(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/ai/generations/%d/", id))
}

// ---- documents ----

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := c.get(ctx, "/documents/", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/documents/%d/", id))
}

// ---- companies ----

func (c *HTTPClient) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := c.get(ctx, "/companies/", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *HTTPClient) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	var company models.Company
	if err := c.get(ctx, fmt.Sprintf("/companies/%d/", id), &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *HTTPClient) CreateCompany(ctx context.Context, form models.CompanyForm) (*models.Company, error) {
	var company models.Company
	if err := c.post(ctx, "/companies/", form, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *HTTPClient) UpdateCompany(ctx context.Context, id int64, form models.CompanyForm) (*models.Company, error) {
	var company models.Company
	if err := c.put(ctx, fmt.Sprintf("/companies/%d/", id), form, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (c *HTTPClient) DeleteCompany(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/companies/%d/", id))
}
