package submit

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/constants"
)

// Config is the single configuration object for a Client. The zero value is
// usable: base URLs default to the production hosts and the transport gets a
// default timeout.
type Config struct {
	// BaseURL is the submit API host.
	BaseURL string `env:"SUBMIT_BASE_URL"`
	// AuthBaseURL is the separate OAuth2 host.
	AuthBaseURL string `env:"SUBMIT_AUTH_BASE_URL"`
	// Token is the OAuth2 bearer token sent on every API call.
	Token string `env:"SUBMIT_TOKEN"`

	ClientID     string   `env:"SUBMIT_CLIENT_ID"`
	ClientSecret string   `env:"SUBMIT_CLIENT_SECRET"`
	RedirectURI  string   `env:"SUBMIT_REDIRECT_URI"`
	Scopes       []string `env:"SUBMIT_SCOPES" envSeparator:","`

	Timeout            time.Duration `env:"SUBMIT_TIMEOUT"`
	InsecureSkipVerify bool          `env:"SUBMIT_INSECURE_SKIP_VERIFY"`

	// Headers are extra default headers applied to every API call.
	Headers http.Header `env:"-"`
	// HTTPClient replaces the default transport when set.
	HTTPClient connection.HTTPClient `env:"-"`
	// Logger enables debug request logging when set.
	Logger *zerolog.Logger `env:"-"`
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = constants.DefaultBaseURL
	}
	if c.AuthBaseURL == "" {
		c.AuthBaseURL = constants.DefaultAuthBaseURL
	}
	return c
}
