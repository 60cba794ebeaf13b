package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	types "github.com/acearchive/files/types"
	zap "go.uber.org/zap"
)

// FilesClient defines the interface for a client of the files server
type FilesClient interface {
	// Health
	GetHealth(ctx context.Context) (*HealthResponse, error)

	// File delivery
	GetFile(ctx context.Context, req FileRequest) (*FileResponse, error)
	HeadFile(ctx context.Context, req FileRequest) (*FileResponse, error)
	ResolveFile(ctx context.Context, family types.EndpointFamily, locator types.ArtifactFileLocator) (string, error)

	// Configuration
	SetTimeout(timeout time.Duration)
	SetHTTPClient(client *http.Client)
	GetBaseURL() string

	// Logger configuration
	SetLogger(logger *zap.Logger)
	GetLogger() *zap.Logger
}

var _ FilesClient = (*Client)(nil)

// HealthResponse represents the response from the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// FileRequest describes one file request. Empty fields are not sent.
type FileRequest struct {
	Family          types.EndpointFamily
	Locator         types.ArtifactFileLocator
	Range           string
	IfNoneMatch     string
	IfMatch         string
	IfModifiedSince time.Time
	Accept          string
}

// FileResponse is a delivered file. Body is nil for HEAD requests and for
// responses without a body, otherwise the caller must close it.
type FileResponse struct {
	StatusCode    int
	Header        http.Header
	ContentLength int64
	Body          io.ReadCloser
}

// ETag returns the entity tag of the delivered file
func (r *FileResponse) ETag() string {
	return r.Header.Get("ETag")
}

// ContentType returns the media type of the delivered file
func (r *FileResponse) ContentType() string {
	return r.Header.Get("Content-Type")
}

// ContentRange returns the Content-Range of a partial response
func (r *FileResponse) ContentRange() string {
	return r.Header.Get("Content-Range")
}

// NotModified reports whether the server answered a conditional request with 304
func (r *FileResponse) NotModified() bool {
	return r.StatusCode == http.StatusNotModified
}

// Close closes the body if there is one
func (r *FileResponse) Close() error {
	if r.Body == nil {
		return nil
	}
	return r.Body.Close()
}

// ResponseError is returned for 4xx and 5xx responses
type ResponseError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ResponseError) Error() string {
	return fmt.Sprintf("files server returned %d: %s", e.StatusCode, e.Message)
}

// Config holds configuration options for the files client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	UserAgent  string
	Headers    map[string]string
	MaxRetries int
	RetryDelay time.Duration
	Logger     *zap.Logger
}

// DefaultConfig returns a default configuration
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		Timeout:    30 * time.Second,
		UserAgent:  "acearchive-files-client/1.0",
		Headers:    make(map[string]string),
		MaxRetries: 3,
		RetryDelay: 1 * time.Second,
		Logger:     zap.NewNop(),
	}
}

// Client represents a files server client
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new files client with default configuration
func NewClient(baseURL string) FilesClient {
	config := DefaultConfig(baseURL)
	return NewClientWithConfig(config)
}

// NewClientWithLogger creates a new files client with a custom logger
func NewClientWithLogger(baseURL string, logger *zap.Logger) FilesClient {
	config := DefaultConfig(baseURL)
	config.Logger = logger
	return NewClientWithConfig(config)
}

// NewClientWithConfig creates a new files client with custom configuration
func NewClientWithConfig(config *Config) FilesClient {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

// fileURL joins the base URL with the escaped request path of the locator
func (c *Client) fileURL(family types.EndpointFamily, locator types.ArtifactFileLocator) string {
	u := url.URL{Path: types.LocatorPath(family, locator)}
	return strings.TrimSuffix(c.config.BaseURL, "/") + u.EscapedPath()
}

// GetFile downloads a file, following canonical redirects
func (c *Client) GetFile(ctx context.Context, req FileRequest) (*FileResponse, error) {
	return c.fetchFile(ctx, http.MethodGet, req)
}

// HeadFile retrieves the headers of a file, following canonical redirects
func (c *Client) HeadFile(ctx context.Context, req FileRequest) (*FileResponse, error) {
	return c.fetchFile(ctx, http.MethodHead, req)
}

func (c *Client) fetchFile(ctx context.Context, method string, req FileRequest) (*FileResponse, error) {
	target := c.fileURL(req.Family, req.Locator)
	c.logger.Debug("requesting file",
		zap.String("method", method),
		zap.String("url", target),
		zap.String("range", req.Range))

	httpResp, err := c.doWithRetry(ctx, c.httpClient, func() (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, method, target, nil)
		if err != nil {
			return nil, err
		}
		c.setFileHeaders(httpReq, req)
		return httpReq, nil
	})
	if err != nil {
		return nil, err
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		defer c.closeBody(httpResp)
		return nil, c.responseError(httpResp)
	}

	resp := &FileResponse{
		StatusCode:    httpResp.StatusCode,
		Header:        httpResp.Header,
		ContentLength: httpResp.ContentLength,
	}
	if method == http.MethodHead || httpResp.StatusCode == http.StatusNotModified {
		c.closeBody(httpResp)
	} else {
		resp.Body = httpResp.Body
	}

	c.logger.Debug("file response received",
		zap.String("url", target),
		zap.Int("status_code", resp.StatusCode),
		zap.Int64("content_length", resp.ContentLength))
	return resp, nil
}

// ResolveFile returns the URL the locator is served from: its own URL when
// it is already canonical, otherwise the Location of the redirect the server
// answers with
func (c *Client) ResolveFile(ctx context.Context, family types.EndpointFamily, locator types.ArtifactFileLocator) (string, error) {
	target := c.fileURL(family, locator)

	noRedirect := *c.httpClient
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	httpResp, err := c.doWithRetry(ctx, &noRedirect, func() (*http.Request, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(httpReq)
		return httpReq, nil
	})
	if err != nil {
		return "", err
	}
	defer c.closeBody(httpResp)

	switch {
	case httpResp.StatusCode == http.StatusMovedPermanently:
		location, err := httpResp.Location()
		if err != nil {
			return "", fmt.Errorf("redirect without a valid location: %w", err)
		}
		c.logger.Debug("file resolved through redirect",
			zap.String("url", target),
			zap.String("location", location.String()))
		return location.String(), nil
	case httpResp.StatusCode >= http.StatusBadRequest:
		return "", c.responseError(httpResp)
	default:
		return target, nil
	}
}

// GetHealth retrieves the health status of the server via HTTP GET to /health
func (c *Client) GetHealth(ctx context.Context) (*HealthResponse, error) {
	c.logger.Debug("retrieving server health", zap.String("endpoint", "/health"))

	healthURL := strings.TrimSuffix(c.config.BaseURL, "/") + "/health"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL, nil)
	if err != nil {
		c.logger.Error("failed to create health request", zap.Error(err))
		return nil, fmt.Errorf("failed to create health request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	c.setHeaders(httpReq)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("health request failed", zap.Error(err))
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	defer c.closeBody(httpResp)

	if httpResp.StatusCode != http.StatusOK {
		return nil, c.responseError(httpResp)
	}

	var healthResp HealthResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&healthResp); err != nil {
		c.logger.Error("failed to decode health response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	if healthResp.Status == "" {
		return nil, fmt.Errorf("health response missing status field")
	}

	switch healthResp.Status {
	case types.HealthStatusHealthy, types.HealthStatusDegraded, types.HealthStatusUnhealthy:
	default:
		c.logger.Warn("health response contains unknown status", zap.String("status", healthResp.Status))
	}

	c.logger.Debug("health check completed successfully", zap.String("status", healthResp.Status))
	return &healthResp, nil
}

// doWithRetry sends the request built by newRequest, retrying transport
// failures with a linear backoff. HTTP error statuses are not retried.
func (c *Client) doWithRetry(ctx context.Context, httpClient *http.Client, newRequest func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying request",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", c.config.MaxRetries+1))
		}

		httpReq, err := newRequest()
		if err != nil {
			c.logger.Error("failed to create request", zap.Error(err))
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		httpResp, err := httpClient.Do(httpReq)
		if err == nil {
			return httpResp, nil
		}
		lastErr = err
		c.logger.Warn("request failed",
			zap.String("url", httpReq.URL.String()),
			zap.Int("attempt", attempt+1),
			zap.Error(err))

		if attempt < c.config.MaxRetries {
			delay := c.config.RetryDelay * time.Duration(attempt+1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	c.logger.Error("all retry attempts exhausted",
		zap.Int("attempts", c.config.MaxRetries+1),
		zap.Error(lastErr))
	return nil, fmt.Errorf("failed to send request after %d attempts: %w", c.config.MaxRetries+1, lastErr)
}

// responseError decodes the JSON error body the server sends with error statuses
func (c *Client) responseError(httpResp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	message := http.StatusText(httpResp.StatusCode)
	if err := json.NewDecoder(httpResp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	c.logger.Debug("files server returned an error",
		zap.Int("status_code", httpResp.StatusCode),
		zap.String("message", message))
	return &ResponseError{StatusCode: httpResp.StatusCode, Message: message}
}

func (c *Client) closeBody(httpResp *http.Response) {
	if closeErr := httpResp.Body.Close(); closeErr != nil {
		c.logger.Warn("failed to close response body", zap.Error(closeErr))
	}
}

// setHeaders sets the common headers for HTTP requests
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.config.UserAgent)

	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}
}

func (c *Client) setFileHeaders(httpReq *http.Request, req FileRequest) {
	c.setHeaders(httpReq)

	if req.Range != "" {
		httpReq.Header.Set("Range", req.Range)
	}
	if req.IfNoneMatch != "" {
		httpReq.Header.Set("If-None-Match", req.IfNoneMatch)
	}
	if req.IfMatch != "" {
		httpReq.Header.Set("If-Match", req.IfMatch)
	}
	if !req.IfModifiedSince.IsZero() {
		httpReq.Header.Set("If-Modified-Since", req.IfModifiedSince.UTC().Format(http.TimeFormat))
	}
	if req.Accept != "" {
		httpReq.Header.Set("Accept", req.Accept)
	}
}

// SetHTTPClient allows customizing the HTTP client
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
	c.config.HTTPClient = client
}

// SetTimeout sets the timeout for HTTP requests
func (c *Client) SetTimeout(timeout time.Duration) {
	c.config.Timeout = timeout
	if c.httpClient != nil {
		c.httpClient.Timeout = timeout
	}
}

// GetBaseURL returns the base URL of the client
func (c *Client) GetBaseURL() string {
	return c.config.BaseURL
}

// SetHeader sets a custom header for all requests
func (c *Client) SetHeader(key, value string) {
	if c.config.Headers == nil {
		c.config.Headers = make(map[string]string)
	}
	c.config.Headers[key] = value
}

// SetMaxRetries sets the maximum number of retry attempts
func (c *Client) SetMaxRetries(maxRetries int) {
	c.config.MaxRetries = maxRetries
}

// SetLogger sets the logger for the client
func (c *Client) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	c.config.Logger = logger
}

// GetLogger returns the current logger
func (c *Client) GetLogger() *zap.Logger {
	return c.logger
}
