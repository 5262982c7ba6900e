// Package mock provides a scripted HTTP client for tests: it replays a fixed
// sequence of canned responses and records every dispatched request so tests
// can assert call order.
package mock

import (
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Call records one dispatched request.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is one canned response in the script.
type Response struct {
	Status int
	Body   string
}

// Client replays its script in order. Requests past the end of the script
// get an empty 200. When a transport error is configured, every call fails
// with it and no response is produced.
type Client struct {
	script []Response
	calls  []Call
	err    error
}

// NewClient builds a scripted client.
func NewClient(script ...Response) *Client {
	return &Client{script: script}
}

// NewFailing builds a client whose every call fails at the transport level.
func NewFailing(err error) *Client {
	return &Client{err: err}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	c.calls = append(c.calls, Call{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.Query(),
		Header: req.Header.Clone(),
		Body:   body,
	})

	if c.err != nil {
		return nil, c.err
	}

	resp := Response{Status: http.StatusOK, Body: ""}
	if n := len(c.calls) - 1; n < len(c.script) {
		resp = c.script[n]
	}
	return &http.Response{
		StatusCode: resp.Status,
		Header:     http.Header{"Content-Type": []string{"application/vnd.api+json"}},
		Body:       io.NopCloser(strings.NewReader(resp.Body)),
		Request:    req,
	}, nil
}

// Calls returns every recorded request in dispatch order.
func (c *Client) Calls() []Call {
	return c.calls
}
