package models

import "github.com/dvidshub/submit.go/internal/jsonapi"

// BatchUpload is a presigned-URL handle authorizing one file transfer into a
// batch. UploadURL is a capability URL: possessing it authorizes the
// transfer, so the API bearer token must never be forwarded to it.
//
// Exactly one of two upload strategies applies: HTTPMethod "PUT" streams the
// file directly to UploadURL, while "POST" with MultipartParams set denotes a
// multipart form upload, which the SDK deliberately does not support.
type BatchUpload struct {
	ID              string
	UploadURL       string
	HTTPMethod      string
	UseCDN          bool
	MultipartParams map[string]string
	BatchID         string
}

// Encode maps the upload onto a JSON:API resource object.
func (u BatchUpload) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(u.ID, KindBatchUpload)
	r.SetOptionalString("upload_url", u.UploadURL)
	r.SetOptionalString("http_method", u.HTTPMethod)
	r.Set("use_cdn", u.UseCDN)
	if len(u.MultipartParams) > 0 {
		r.Set("multipart_params", u.MultipartParams)
	}
	r.RelateOne("batch", u.BatchID, KindBatch)
	return r
}

// DecodeBatchUpload reconstructs an upload handle from a resource object.
func DecodeBatchUpload(r *jsonapi.Resource) (BatchUpload, error) {
	return BatchUpload{
		ID:              r.ID,
		UploadURL:       r.Attributes.String("upload_url"),
		HTTPMethod:      r.Attributes.String("http_method"),
		UseCDN:          r.Attributes.Bool("use_cdn", false),
		MultipartParams: r.Attributes.StringMap("multipart_params"),
		BatchID:         r.Relationships["batch"].First(),
	}, nil
}

// MultipartUpload is the handle for the large-file S3-style upload path. The
// SDK shapes the requests for this path but does not chunk or stream parts.
type MultipartUpload struct {
	ID        string
	PartSize  int64
	PartCount int
	BatchID   string
}

// Encode maps the multipart upload onto a JSON:API resource object.
func (m MultipartUpload) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(m.ID, KindMultipartUpload)
	if m.PartSize > 0 {
		r.Set("part_size", m.PartSize)
	}
	if m.PartCount > 0 {
		r.Set("part_count", m.PartCount)
	}
	r.RelateOne("batch", m.BatchID, KindBatch)
	return r
}

// DecodeMultipartUpload reconstructs a multipart upload handle.
func DecodeMultipartUpload(r *jsonapi.Resource) (MultipartUpload, error) {
	return MultipartUpload{
		ID:        r.ID,
		PartSize:  r.Attributes.Int("part_size"),
		PartCount: int(r.Attributes.Int("part_count")),
		BatchID:   r.Relationships["batch"].First(),
	}, nil
}
