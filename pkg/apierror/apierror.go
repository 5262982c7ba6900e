// Package apierror defines the typed failure taxonomy for submit API calls
// and the single classification path that maps HTTP and transport failures
// into it.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind discriminates the closed set of failure classes.
type Kind int

const (
	// KindAPI covers any status without a dedicated kind, and transport
	// failures that produced no response at all (StatusCode 0).
	KindAPI Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "api_error"
}

// ErrorObject is one element of a JSON:API errors array.
type ErrorObject struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// Error is a classified API failure. Errors carries the structured error
// payload when the response body held a usable errors array, nil otherwise.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Errors     []ErrorObject
}

func (e *Error) Error() string {
	return e.Message
}

var statusKinds = map[int]Kind{
	400: KindBadRequest,
	401: KindUnauthorized,
	403: KindForbidden,
	404: KindNotFound,
	409: KindConflict,
}

// FromResponse classifies a non-2xx HTTP response. An unparseable body is
// tolerated: the payload stays nil and the message falls back to a generic
// "HTTP <status> error".
func FromResponse(status int, body []byte) *Error {
	e := &Error{
		Kind:       KindAPI,
		StatusCode: status,
		Message:    fmt.Sprintf("HTTP %d error", status),
	}
	if kind, ok := statusKinds[status]; ok {
		e.Kind = kind
	}

	var payload struct {
		Errors []ErrorObject `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Errors) == 0 {
		return e
	}
	e.Errors = payload.Errors

	parts := make([]string, 0, len(payload.Errors))
	for _, obj := range payload.Errors {
		if obj.Title == "" {
			continue
		}
		if obj.Detail != "" {
			parts = append(parts, obj.Title+": "+obj.Detail)
		} else {
			parts = append(parts, obj.Title)
		}
	}
	if len(parts) > 0 {
		e.Message = strings.Join(parts, "; ")
	}
	return e
}

// FromTransport classifies a transport-level failure that produced no HTTP
// response, such as a refused connection or a timeout before any bytes
// arrived. These are never retried.
func FromTransport(err error) *Error {
	return &Error{
		Kind:       KindAPI,
		StatusCode: 0,
		Message:    "HTTP request failed: " + err.Error(),
	}
}

func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return KindAPI, false
}

// IsBadRequest reports whether err is a classified 400.
func IsBadRequest(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindBadRequest
}

// IsUnauthorized reports whether err is a classified 401.
func IsUnauthorized(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindUnauthorized
}

// IsForbidden reports whether err is a classified 403.
func IsForbidden(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindForbidden
}

// IsNotFound reports whether err is a classified 404.
func IsNotFound(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindNotFound
}

// IsConflict reports whether err is a classified 409.
func IsConflict(err error) bool {
	k, ok := kindOf(err)
	return ok && k == KindConflict
}
