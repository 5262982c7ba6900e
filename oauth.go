package submit

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

func (c *Client) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		RedirectURL:  c.cfg.RedirectURI,
		Scopes:       c.cfg.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.cfg.AuthBaseURL + "/auth/authorize",
			TokenURL:  c.cfg.AuthBaseURL + "/auth/access_token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizationURL builds the URL a user visits to grant access. state is
// optional; NewState generates a suitable value.
func (c *Client) AuthorizationURL(state string) string {
	return c.oauthConfig().AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for a token via the form-encoded
// token endpoint. Pass the token to WithToken to authenticate API calls.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.oauthConfig().Exchange(ctx, code)
}

// NewState returns a random value for the OAuth2 state parameter.
func NewState() string {
	return uuid.NewString()
}
