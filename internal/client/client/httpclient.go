package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	healthPath   = "/"
	registerPath = "/api/v1/register"
	loginPath    = "/api/v1/login"
	blogsPath    = "/api/v1/blogs"

	msgUserExists    = "User already exist!!!"
	msgMissingFields = "Title, Content, and Author are required!"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
}

// NewHTTPClient returns a client for the API at baseURL. Each call is bounded
// by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type messageResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message"`
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	req := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, registerPath, req, nil)
}

// Login authenticates and keeps the returned token for later calls.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	req := map[string]string{"email": email, "password": password}

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := c.do(ctx, http.MethodPost, loginPath, req, &resp); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.mu.Unlock()

	return resp.AccessToken, nil
}

// Logout forgets the stored token. The server keeps no session state.
func (c *HTTPClient) Logout() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

func (c *HTTPClient) CreateBlog(ctx context.Context, blog NewBlog) (*Blog, error) {
	var resp struct {
		Blog *Blog `json:"blog"`
	}
	if err := c.do(ctx, http.MethodPost, blogsPath, blog, &resp); err != nil {
		return nil, err
	}
	return resp.Blog, nil
}

func (c *HTTPClient) ListBlogs(ctx context.Context) ([]Blog, error) {
	blogs := make([]Blog, 0)
	if err := c.do(ctx, http.MethodGet, blogsPath, nil, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, healthPath, nil, nil)
}

func (c *HTTPClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// do sends one JSON request and decodes a 2xx response into out when out is
// not nil. Other responses become *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageResponse
		_ = json.Unmarshal(data, &m)
		if m.Message == "" {
			m.Message = http.StatusText(resp.StatusCode)
		}
		return newAPIError(path, resp.StatusCode, m.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
