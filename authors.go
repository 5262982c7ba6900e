package submit

import (
	"context"
	"fmt"
	"time"

	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/models"
)

// AuthorsClient reads authors and generates individual-scoped VIRINs.
type AuthorsClient struct {
	conn *connection.Client
}

// List fetches every author visible to the caller.
func (c *AuthorsClient) List(ctx context.Context) ([]models.Author, error) {
	raw, err := c.conn.Get(ctx, "/author", nil)
	if err != nil {
		return nil, err
	}
	resources, err := decodeCollection(raw)
	if err != nil {
		return nil, err
	}
	authors := make([]models.Author, 0, len(resources))
	for i := range resources {
		author, err := models.DecodeAuthor(&resources[i])
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, nil
}

// Get fetches an author by id.
func (c *AuthorsClient) Get(ctx context.Context, id string) (*models.Author, error) {
	raw, err := c.conn.Get(ctx, "/author/"+id, nil)
	if err != nil {
		return nil, err
	}
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	author, err := models.DecodeAuthor(res)
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GenerateVIRIN asks the remote system for a VIRIN scoped to the individual
// author for the given target date.
func (c *AuthorsClient) GenerateVIRIN(ctx context.Context, authorID string, date time.Time) (string, error) {
	return generateVIRIN(ctx, c.conn, fmt.Sprintf("/author/%s/virin", authorID), date)
}
