package constants

import "errors"

// Errors
var (
	ErrNoBaseURL             = errors.New("base url not set")
	ErrNoUploadURL           = errors.New("upload url not set")
	ErrInvalidResponseFormat = errors.New("response document is missing the data key")
	ErrMultipartUnsupported  = errors.New("multipart form uploads are not supported")
)
