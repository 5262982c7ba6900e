// Package connection implements the core transport client: default-header
// and bearer injection, the five JSON verbs, the raw presigned-URL file
// upload, and classification of every failure into the pkg/apierror
// taxonomy.
package connection

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvidshub/submit.go/pkg/apierror"
	"github.com/dvidshub/submit.go/pkg/constants"
)

// HTTPClient is the pluggable transport seam. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config collects everything a client needs at construction time. The
// Timeout and InsecureSkipVerify knobs only shape the default http.Client;
// they are ignored when a custom HTTPClient is supplied.
type Config struct {
	BaseURL            string
	Token              string
	Headers            http.Header
	Timeout            time.Duration
	InsecureSkipVerify bool
	HTTPClient         HTTPClient
	Logger             *zerolog.Logger
}

// Client is the immutable transport client. Concurrent callers may share one
// instance freely; the With* helpers return new, independently configured
// instances and never mutate the receiver.
type Client struct {
	baseURL    string
	token      string
	headers    http.Header
	httpClient HTTPClient
	logger     zerolog.Logger
}

// New builds a client from cfg, filling in a default http.Client when none
// is supplied.
func New(cfg *Config) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		headers:    cloneHeader(cfg.Headers),
		httpClient: cfg.HTTPClient,
		logger:     zerolog.Nop(),
	}
	if cfg.Logger != nil {
		c.logger = *cfg.Logger
	}
	if c.httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = constants.DefaultHTTPTimeout
		}
		hc := &http.Client{Timeout: timeout}
		if cfg.InsecureSkipVerify {
			hc.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			}
		}
		c.httpClient = hc
	}
	return c
}

func cloneHeader(h http.Header) http.Header {
	out := http.Header{}
	for key, values := range h {
		out[key] = append([]string{}, values...)
	}
	return out
}

func (c *Client) clone() *Client {
	cp := *c
	cp.headers = cloneHeader(c.headers)
	return &cp
}

// WithToken returns a client using token as its bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := c.clone()
	cp.token = token
	return cp
}

// WithBaseURL returns a client addressing a different base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	cp := c.clone()
	cp.baseURL = strings.TrimRight(baseURL, "/")
	return cp
}

// WithHeaders returns a client with headers as its extra default headers,
// replacing any previous set.
func (c *Client) WithHeaders(headers http.Header) *Client {
	cp := c.clone()
	cp.headers = cloneHeader(headers)
	return cp
}

// WithHTTPClient returns a client dispatching through httpClient.
func (c *Client) WithHTTPClient(httpClient HTTPClient) *Client {
	cp := c.clone()
	cp.httpClient = httpClient
	return cp
}

// WithLogger returns a client that debug-logs each request to logger.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	cp := c.clone()
	cp.logger = logger
	return cp
}

// Get issues a GET to endpoint with the optional query merged into the URL.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, query)
}

// Post issues a POST to endpoint with body serialized as the request body.
func (c *Client) Post(ctx context.Context, endpoint string, body any, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, endpoint, body, query)
}

// Put issues a PUT to endpoint with body serialized as the request body.
func (c *Client) Put(ctx context.Context, endpoint string, body any, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, endpoint, body, query)
}

// Patch issues a PATCH to endpoint with body serialized as the request body.
func (c *Client) Patch(ctx context.Context, endpoint string, body any, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, endpoint, body, query)
}

// Delete issues a DELETE to endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, query)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, query url.Values) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, constants.ErrNoBaseURL
	}
	u := c.baseURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", constants.ContentTypeJSONAPI)
	req.Header.Set("Accept", constants.ContentTypeJSONAPI)
	req.Header.Set("User-Agent", constants.UserAgent())
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.makeRequest(req)
}

// UploadFile streams the file at filePath to uploadURL with a PUT. The
// upload URL is a capability URL, so the Authorization header is actively
// stripped even when the caller passes one via extraHeaders. The file handle
// is closed on every exit path.
func (c *Client) UploadFile(ctx context.Context, uploadURL, filePath, contentType string, extraHeaders http.Header) (json.RawMessage, error) {
	if uploadURL == "" {
		return nil, constants.ErrNoUploadURL
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat upload file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, f)
	if err != nil {
		return nil, err
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", constants.UserAgent())
	for key, values := range extraHeaders {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	req.Header.Del("Authorization")

	return c.makeRequest(req)
}

// makeRequest is the single dispatch-and-classify funnel: transport failures
// and non-2xx responses both flow through pkg/apierror here, so the two
// failure paths cannot drift apart.
func (c *Client) makeRequest(req *http.Request) (json.RawMessage, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Err(err).
			Msg("request failed")
		return nil, apierror.FromTransport(err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.FromTransport(err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request")

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, apierror.FromResponse(resp.StatusCode, respBytes)
	}
	if len(bytes.TrimSpace(respBytes)) == 0 {
		return json.RawMessage(`{}`), nil
	}
	return respBytes, nil
}
