package submit

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/constants"
	"github.com/dvidshub/submit.go/pkg/models"
)

// BatchesClient manages batches and their upload handles.
type BatchesClient struct {
	conn *connection.Client
}

// Create opens a new batch.
func (c *BatchesClient) Create(ctx context.Context, batch models.Batch) (*models.Batch, error) {
	raw, err := c.conn.Post(ctx, "/batch", jsonapi.Document{Data: batch.Encode()}, nil)
	if err != nil {
		return nil, err
	}
	return decodeBatch(raw)
}

// Get fetches a batch by id.
func (c *BatchesClient) Get(ctx context.Context, id string) (*models.Batch, error) {
	raw, err := c.conn.Get(ctx, "/batch/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeBatch(raw)
}

// Close marks the batch terminal. No further content can be attached once
// the remote system accepts the close.
func (c *BatchesClient) Close(ctx context.Context, id string) (*models.Batch, error) {
	res := jsonapi.NewResource(id, models.KindBatch)
	res.Set("closed", true)
	raw, err := c.conn.Patch(ctx, "/batch/"+id, jsonapi.Document{Data: res}, nil)
	if err != nil {
		return nil, err
	}
	return decodeBatch(raw)
}

// CreateUpload requests a presigned upload handle scoped to the batch.
func (c *BatchesClient) CreateUpload(ctx context.Context, batchID string) (*models.BatchUpload, error) {
	raw, err := c.conn.Post(ctx, fmt.Sprintf("/batch/%s/upload", batchID), nil, nil)
	if err != nil {
		return nil, err
	}
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	upload, err := models.DecodeBatchUpload(res)
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// Upload transfers the file at filePath through the handle's strategy.
// "PUT" streams the file to the presigned URL; "POST" with multipart params
// is the multipart form path, which is deliberately unsupported and fails
// with constants.ErrMultipartUnsupported rather than attempting a PUT.
func (c *BatchesClient) Upload(ctx context.Context, upload *models.BatchUpload, filePath, contentType string) error {
	if upload == nil || upload.UploadURL == "" {
		return constants.ErrNoUploadURL
	}
	switch {
	case strings.EqualFold(upload.HTTPMethod, http.MethodPut):
		_, err := c.conn.UploadFile(ctx, upload.UploadURL, filePath, contentType, nil)
		return err
	case strings.EqualFold(upload.HTTPMethod, http.MethodPost) && len(upload.MultipartParams) > 0:
		return constants.ErrMultipartUnsupported
	default:
		return fmt.Errorf("unsupported upload method %q", upload.HTTPMethod)
	}
}

// CreateMultipartUpload opens a large-file multipart upload for the batch.
// The SDK shapes these requests but does not chunk files itself.
func (c *BatchesClient) CreateMultipartUpload(ctx context.Context, batchID string, partSize int64) (*models.MultipartUpload, error) {
	res := jsonapi.NewResource("", models.KindMultipartUpload)
	if partSize > 0 {
		res.Set("part_size", partSize)
	}
	raw, err := c.conn.Post(ctx, fmt.Sprintf("/batch/%s/multipart-upload", batchID), jsonapi.Document{Data: res}, nil)
	if err != nil {
		return nil, err
	}
	return decodeMultipartUpload(raw)
}

// CreatePart requests a presigned handle for one part of a multipart
// upload.
func (c *BatchesClient) CreatePart(ctx context.Context, batchID, uploadID string, partNumber int) (*models.BatchUpload, error) {
	res := jsonapi.NewResource("", models.KindBatchUpload)
	res.Set("part_number", partNumber)
	raw, err := c.conn.Post(ctx, fmt.Sprintf("/batch/%s/multipart-upload/%s/part", batchID, uploadID), jsonapi.Document{Data: res}, nil)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	upload, err := models.DecodeBatchUpload(doc)
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

// CompleteMultipartUpload finalizes a multipart upload after its parts have
// been transferred.
func (c *BatchesClient) CompleteMultipartUpload(ctx context.Context, batchID, uploadID string) (*models.MultipartUpload, error) {
	res := jsonapi.NewResource(uploadID, models.KindMultipartUpload)
	res.Set("completed", true)
	raw, err := c.conn.Patch(ctx, fmt.Sprintf("/batch/%s/multipart-upload/%s", batchID, uploadID), jsonapi.Document{Data: res}, nil)
	if err != nil {
		return nil, err
	}
	return decodeMultipartUpload(raw)
}

func decodeBatch(raw []byte) (*models.Batch, error) {
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	batch, err := models.DecodeBatch(res)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func decodeMultipartUpload(raw []byte) (*models.MultipartUpload, error) {
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	upload, err := models.DecodeMultipartUpload(res)
	if err != nil {
		return nil, err
	}
	return &upload, nil
}
