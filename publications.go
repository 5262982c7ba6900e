package submit

import (
	"context"
	"fmt"

	"github.com/dvidshub/submit.go/internal/jsonapi"
	"github.com/dvidshub/submit.go/pkg/connection"
	"github.com/dvidshub/submit.go/pkg/models"
)

// PublicationsClient lists publications and manages their issues. Issues
// are submitted through a batch like any other media record.
type PublicationsClient struct {
	conn *connection.Client
}

// List fetches every publication visible to the caller.
func (c *PublicationsClient) List(ctx context.Context) ([]models.Publication, error) {
	raw, err := c.conn.Get(ctx, "/publication", nil)
	if err != nil {
		return nil, err
	}
	resources, err := decodeCollection(raw)
	if err != nil {
		return nil, err
	}
	publications := make([]models.Publication, 0, len(resources))
	for i := range resources {
		publication, err := models.DecodePublication(&resources[i])
		if err != nil {
			return nil, err
		}
		publications = append(publications, publication)
	}
	return publications, nil
}

// CreateIssue submits a new publication issue into the batch. The issue
// must reference a publication and a batch upload.
func (c *PublicationsClient) CreateIssue(ctx context.Context, batchID string, issue models.PublicationIssue) (*models.PublicationIssue, error) {
	if err := issue.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.conn.Post(ctx, fmt.Sprintf("/batch/%s/publication-issue", batchID), jsonapi.Document{Data: issue.Encode()}, nil)
	if err != nil {
		return nil, err
	}
	return decodePublicationIssue(raw)
}

// GetIssue fetches one issue in the batch.
func (c *PublicationsClient) GetIssue(ctx context.Context, batchID, issueID string) (*models.PublicationIssue, error) {
	raw, err := c.conn.Get(ctx, fmt.Sprintf("/batch/%s/publication-issue/%s", batchID, issueID), nil)
	if err != nil {
		return nil, err
	}
	return decodePublicationIssue(raw)
}

// ListIssues fetches every issue in the batch.
func (c *PublicationsClient) ListIssues(ctx context.Context, batchID string) ([]models.PublicationIssue, error) {
	raw, err := c.conn.Get(ctx, fmt.Sprintf("/batch/%s/publication-issue", batchID), nil)
	if err != nil {
		return nil, err
	}
	resources, err := decodeCollection(raw)
	if err != nil {
		return nil, err
	}
	issues := make([]models.PublicationIssue, 0, len(resources))
	for i := range resources {
		issue, err := models.DecodePublicationIssue(&resources[i])
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// UpdateIssue replaces the issue record.
func (c *PublicationsClient) UpdateIssue(ctx context.Context, batchID string, issue models.PublicationIssue) (*models.PublicationIssue, error) {
	if err := issue.Validate(); err != nil {
		return nil, err
	}
	raw, err := c.conn.Put(ctx, fmt.Sprintf("/batch/%s/publication-issue/%s", batchID, issue.ID), jsonapi.Document{Data: issue.Encode()}, nil)
	if err != nil {
		return nil, err
	}
	return decodePublicationIssue(raw)
}

// DeleteIssue removes the issue from the batch.
func (c *PublicationsClient) DeleteIssue(ctx context.Context, batchID, issueID string) error {
	_, err := c.conn.Delete(ctx, fmt.Sprintf("/batch/%s/publication-issue/%s", batchID, issueID), nil)
	return err
}

func decodePublicationIssue(raw []byte) (*models.PublicationIssue, error) {
	res, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	issue, err := models.DecodePublicationIssue(res)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}
