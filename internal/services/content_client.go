package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"termfolio/internal/logger"
	"termfolio/internal/version"
	"termfolio/pkg/termtypes"
)

// DefaultTimeout bounds every content API request unless configured otherwise.
const DefaultTimeout = 10 * time.Second

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Request failed with status code %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// ContentClient implements termtypes.ContentAPI over the backend HTTP/JSON API.
type ContentClient struct {
	initialized bool
	baseURL     string
	timeout     time.Duration
	client      *http.Client
}

var _ termtypes.ContentAPI = (*ContentClient)(nil)

// NewContentClient creates a client for the API served at baseURL.
func NewContentClient(baseURL string, timeout time.Duration) *ContentClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ContentClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

// Name returns the service name "content_client" for registration.
func (c *ContentClient) Name() string {
	return "content_client"
}

// Initialize validates the base URL and creates the HTTP client.
func (c *ContentClient) Initialize() error {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", c.baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid API URL %q: scheme must be http or https", c.baseURL)
	}
	c.client = &http.Client{Timeout: c.timeout}
	c.initialized = true
	logger.Debug("ContentClient initialized", "url", c.baseURL, "timeout", c.timeout.String())
	return nil
}

// BaseURL returns the API root.
func (c *ContentClient) BaseURL() string {
	return c.baseURL
}

func (c *ContentClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if !c.initialized {
		return ErrNotInitialized
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("Starting API request", "method", method, "url", target)
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	logger.Debug("API request completed", "method", method, "url", target, "status", resp.StatusCode, "body_length", len(data))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &payload)
		return &StatusError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *ContentClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// ClientInfo implements termtypes.ContentAPI.
func (c *ContentClient) ClientInfo(ctx context.Context) (*termtypes.ClientInfo, error) {
	var info termtypes.ClientInfo
	if err := c.get(ctx, "/api/client/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ServerInfo implements termtypes.ContentAPI.
func (c *ContentClient) ServerInfo(ctx context.Context) (*termtypes.ServerInfo, error) {
	var info termtypes.ServerInfo
	if err := c.get(ctx, "/api/server/info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// BootInfo implements termtypes.ContentAPI.
func (c *ContentClient) BootInfo(ctx context.Context) (*termtypes.BootInfo, error) {
	var info termtypes.BootInfo
	if err := c.get(ctx, "/api/server/boot-info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// DirectoryContents implements termtypes.ContentAPI.
func (c *ContentClient) DirectoryContents(ctx context.Context, name string) ([]string, error) {
	var listing termtypes.DirectoryListing
	if err := c.get(ctx, "/api/content/directory/"+url.PathEscape(name), nil, &listing); err != nil {
		return nil, err
	}
	if listing.Error != "" {
		return nil, fmt.Errorf("directory %s: %s", name, listing.Error)
	}
	return listing.Contents, nil
}

// FileContent implements termtypes.ContentAPI.
func (c *ContentClient) FileContent(ctx context.Context, path string) (string, error) {
	var file termtypes.FileContent
	if err := c.get(ctx, "/api/content/file", url.Values{"path": {path}}, &file); err != nil {
		return "", err
	}
	if file.Error != "" {
		return "", fmt.Errorf("%s", file.Error)
	}
	return file.Content, nil
}

// BlogList implements termtypes.ContentAPI.
func (c *ContentClient) BlogList(ctx context.Context) ([]termtypes.BlogMetadata, error) {
	var posts []termtypes.BlogMetadata
	if err := c.get(ctx, "/api/content/blog/list", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// BlogSearch implements termtypes.ContentAPI.
func (c *ContentClient) BlogSearch(ctx context.Context, term string) ([]termtypes.BlogMetadata, error) {
	var posts []termtypes.BlogMetadata
	if err := c.get(ctx, "/api/content/blog/search", url.Values{"term": {term}}, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PortfolioList implements termtypes.ContentAPI.
func (c *ContentClient) PortfolioList(ctx context.Context) ([]termtypes.PortfolioMetadata, error) {
	var projects []termtypes.PortfolioMetadata
	if err := c.get(ctx, "/api/content/portfolio/list", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// PortfolioFilter implements termtypes.ContentAPI.
func (c *ContentClient) PortfolioFilter(ctx context.Context, tech string) ([]termtypes.PortfolioMetadata, error) {
	var projects []termtypes.PortfolioMetadata
	if err := c.get(ctx, "/api/content/portfolio/filter", url.Values{"tech": {tech}}, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Resume implements termtypes.ContentAPI. A relative download URL is
// resolved against the API root.
func (c *ContentClient) Resume(ctx context.Context) (*termtypes.Resume, error) {
	var resume termtypes.Resume
	if err := c.get(ctx, "/api/content/resume", nil, &resume); err != nil {
		return nil, err
	}
	if strings.HasPrefix(resume.DownloadURL, "/") {
		resume.DownloadURL = c.baseURL + resume.DownloadURL
	}
	return &resume, nil
}

// SubmitContact implements termtypes.ContentAPI.
func (c *ContentClient) SubmitContact(ctx context.Context, req termtypes.ContactRequest) (*termtypes.ContactResponse, error) {
	var resp termtypes.ContactResponse
	if err := c.do(ctx, http.MethodPost, "/api/contact", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
