package submit

import (
	"encoding/json"

	"github.com/caarlos0/env/v11"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/constants"
)

// Client aggregates the resource clients behind one configuration. Clients
// are immutable; share one instance freely across goroutines.
type Client struct {
	cfg  Config
	conn *connection.Client
}

// New creates a Client from cfg. A nil cfg uses the defaults, which is
// enough for the OAuth2 flow but will fail API calls until WithToken.
func New(cfg *Config) *Client {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c = c.withDefaults()
	return &Client{
		cfg: c,
		conn: connection.New(&connection.Config{
			BaseURL:            c.BaseURL,
			Token:              c.Token,
			Headers:            c.Headers,
			Timeout:            c.Timeout,
			InsecureSkipVerify: c.InsecureSkipVerify,
			HTTPClient:         c.HTTPClient,
			Logger:             c.Logger,
		}),
	}
}

// NewFromEnv creates a Client configured from SUBMIT_* environment
// variables.
func NewFromEnv() (*Client, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return New(&cfg), nil
}

// WithToken returns a Client authenticating with token. The receiver is
// unchanged.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.cfg.Token = token
	cp.conn = c.conn.WithToken(token)
	return &cp
}

// Config returns a copy of the client's effective configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Connection exposes the underlying transport client.
func (c *Client) Connection() *connection.Client {
	return c.conn
}

// Batches returns the batch resource client.
func (c *Client) Batches() *BatchesClient {
	return &BatchesClient{conn: c.conn}
}

// Photos returns the photo resource client.
func (c *Client) Photos() *PhotosClient {
	return &PhotosClient{conn: c.conn}
}

// Graphics returns the graphic resource client.
func (c *Client) Graphics() *GraphicsClient {
	return &GraphicsClient{conn: c.conn}
}

// Publications returns the publication resource client.
func (c *Client) Publications() *PublicationsClient {
	return &PublicationsClient{conn: c.conn}
}

// ServiceUnits returns the service-unit resource client.
func (c *Client) ServiceUnits() *ServiceUnitsClient {
	return &ServiceUnitsClient{conn: c.conn}
}

// Authors returns the author resource client.
func (c *Client) Authors() *AuthorsClient {
	return &AuthorsClient{conn: c.conn}
}

// decodeDocument unwraps a single-resource document, guarding against a 2xx
// response with an unexpected shape.
func decodeDocument(raw json.RawMessage) (*jsonapi.Resource, error) {
	var doc jsonapi.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Data == nil {
		return nil, constants.ErrInvalidResponseFormat
	}
	return doc.Data, nil
}

// decodeCollection unwraps a resource-collection document. An empty array is
// valid; a missing data key is not.
func decodeCollection(raw json.RawMessage) ([]jsonapi.Resource, error) {
	var doc struct {
		Data *[]jsonapi.Resource `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Data == nil {
		return nil, constants.ErrInvalidResponseFormat
	}
	return *doc.Data, nil
}
