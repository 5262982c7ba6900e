// Package models holds the typed, immutable records for every submit API
// resource kind, each with a bidirectional mapping to the JSON:API resource
// object shape. Decoding tolerates absent non-critical attributes via
// documented defaults; enum-valued attributes are matched exactly and fail on
// unrecognized values.
package models

import "fmt"

// Resource kind tags, used as the wire `type` field and inside relationship
// references.
const (
	KindBatch            = "batch"
	KindBatchUpload      = "batch_upload"
	KindMultipartUpload  = "multipart_upload"
	KindPhoto            = "photo"
	KindGraphic          = "graphic"
	KindPublication      = "publication"
	KindPublicationIssue = "publication_issue"
	KindAuthor           = "author"
	KindServiceUnit      = "service_unit"
	KindTheme            = "theme"
	KindVIRIN            = "virin"
)

// InvalidEnumValueError reports a wire value outside a closed enum's variant
// set. Unrecognized enum values are a decode failure, never coerced.
type InvalidEnumValueError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}

// MissingAttributeError reports an attribute that must be set before an
// entity can be submitted, even though decoding defaults it.
type MissingAttributeError struct {
	Kind      string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s %s is required", e.Kind, e.Attribute)
}
