package submit

import (
	"context"
	"fmt"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/models"
)

// PhotosClient manages photo records inside a batch.
type PhotosClient struct {
	conn *connection.Client
}

// Create submits a new photo record into the batch. The photo must carry a
// title, VIRIN and country code.
func (c *PhotosClient) Create(ctx context.Context, batchID string, photo models.Photo) (*models.Photo, error) {
	if err := photo.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.conn.Post(ctx, fmt.Sprintf("/batch/%s/photo", batchID), jsonapi.Document{Data: photo.Encode()}, nil)
	if err != nil {
		return nil, err
	}
	return decodePhoto(raw)
}

// Get fetches one photo in the batch.
func (c *PhotosClient) Get(ctx context.Context, batchID, photoID string) (*models.Photo, error) {
	raw, err := c.conn.Get(ctx, fmt.Sprintf("/batch/%s/photo/%s", batchID, photoID), nil)
	if err != nil {
		return nil, err
	}
	return decodePhoto(raw)
}

// List fetches every photo in the batch.
func (c *PhotosClient) List(ctx context.Context, batchID string) ([]models.Photo, error) {
	raw, err := c.conn.Get(ctx, fmt.Sprintf("/batch/%s/photo", batchID), nil)
	if err != nil {
		return nil, err
	}
	resources, err := decodeCollection(raw)
	if err != nil {
		return nil, err
	}
	photos := make([]models.Photo, 0, len(resources))
	for i := range resources {
		photo, err := models.DecodePhoto(&resources[i])
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, nil
}

// Update replaces the photo record. The returned entity is the server's
// view; the input is never mutated.
func (c *PhotosClient) Update(ctx context.Context, batchID string, photo models.Photo) (*models.Photo, error) {
	if err := photo.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.conn.Put(ctx, fmt.Sprintf("/batch/%s/photo/%s", batchID, photo.ID), jsonapi.Document{Data: photo.Encode()}, nil)
	if err != nil {
		return nil, err
	}
	return decodePhoto(raw)
}

// Delete removes the photo from the batch.
func (c *PhotosClient) Delete(ctx context.Context, batchID, photoID string) error {
	_, err := c.conn.Delete(ctx, fmt.Sprintf("/batch/%s/photo/%s", batchID, photoID), nil)
	return err
}

func decodePhoto(raw []byte) (*models.Photo, error) {
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	photo, err := models.DecodePhoto(res)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}
