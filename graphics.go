package submit

import (
	"context"
	"fmt"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/models"
)

// GraphicsClient manages graphic records inside a batch.
type GraphicsClient struct {
	conn *connection.Client
}

// Create submits a new graphic record into the batch. The graphic must
// carry a title, VIRIN and country code.
func (c *GraphicsClient) Create(ctx context.Context, batchID string, graphic models.Graphic) (*models.Graphic, error) {
	if err := graphic.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.conn.Post(ctx, fmt.Sprintf("/batch/%s/graphic", batchID), jsonapi.Document{Data: graphic.Encode()}, nil)
	if err != nil {
		return nil, err
	}
	return decodeGraphic(raw)
}

// Get fetches one graphic in the batch.
func (c *GraphicsClient) Get(ctx context.Context, batchID, graphicID string) (*models.Graphic, error) {
	raw, err := c.conn.Get(ctx, fmt.Sprintf("/batch/%s/graphic/%s", batchID, graphicID), nil)
	if err != nil {
		return nil, err
	}
	return decodeGraphic(raw)
}

// List fetches every graphic in the batch.
func (c *GraphicsClient) List(ctx context.Context, batchID string) ([]models.Graphic, error) {
	raw, err := c.conn.Get(ctx, fmt.Sprintf("/batch/%s/graphic", batchID), nil)
	if err != nil {
		return nil, err
	}
	resources, err := decodeCollection(raw)
	if err != nil {
		return nil, err
	}
	graphics := make([]models.Graphic, 0, len(resources))
	for i := range resources {
		graphic, err := models.DecodeGraphic(&resources[i])
		if err != nil {
			return nil, err
		}
		graphics = append(graphics, graphic)
	}
	return graphics, nil
}

// Update replaces the graphic record.
func (c *GraphicsClient) Update(ctx context.Context, batchID string, graphic models.Graphic) (*models.Graphic, error) {
	if err := graphic.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.conn.Put(ctx, fmt.Sprintf("/batch/%s/graphic/%s", batchID, graphic.ID), jsonapi.Document{Data: graphic.Encode()}, nil)
	if err != nil {
		return nil, err
	}
	return decodeGraphic(raw)
}

// Delete removes the graphic from the batch.
func (c *GraphicsClient) Delete(ctx context.Context, batchID, graphicID string) error {
	_, err := c.conn.Delete(ctx, fmt.Sprintf("/batch/%s/graphic/%s", batchID, graphicID), nil)
	return err
}

func decodeGraphic(raw []byte) (*models.Graphic, error) {
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	graphic, err := models.DecodeGraphic(res)
	if err != nil {
		return nil, err
	}
	return &graphic, nil
}
