package constants

import "time"

const (
	// SDKName and Version form the User-Agent sent on every API call.
	SDKName = "dvids-submit-go"
	Version = "0.2.0"

	// ContentTypeJSONAPI is the content negotiation type for all API calls.
	// Raw file uploads use the caller-supplied content type instead.
	ContentTypeJSONAPI = "application/vnd.api+json"

	DefaultBaseURL     = "https://submitapi.dvidshub.net"
	DefaultAuthBaseURL = "https://api.dvidshub.net"

	DefaultHTTPTimeout = 30 * time.Second
)

// UserAgent returns the User-Agent header value identifying the SDK.
func UserAgent() string {
	return SDKName + "/" + Version
}
