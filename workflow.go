package submit

import (
	"context"
	"time"

	"github.com/dvidshub/submit.go/pkg/models"
)

// PhotoSubmission bundles everything the end-to-end photo workflow needs.
// When AuthorID is set the VIRIN is generated through that author and the
// author is credited on the photo; otherwise ServiceUnitID is the VIRIN
// source.
type PhotoSubmission struct {
	// BatchID reuses an existing open batch; a new batch is created when
	// empty.
	BatchID     string
	FilePath    string
	ContentType string

	ServiceUnitID string
	AuthorID      string
	// Date is the VIRIN target date.
	Date time.Time

	Photo models.Photo

	// CloseBatch closes the batch after the photo is created, making it
	// terminal.
	CloseBatch bool
}

// PhotoSubmissionResult reports every remote resource the workflow touched.
// On failure the remote side effects of completed steps remain in place.
type PhotoSubmissionResult struct {
	Batch  *models.Batch
	Upload *models.BatchUpload
	Photo  *models.Photo
}

// Submit runs the complete photo workflow: create batch (if not supplied),
// create a presigned upload, stream the file, generate a VIRIN, create the
// photo, and optionally close the batch. Each step feeds the next; the
// first failing step's error propagates verbatim and already-created remote
// resources are not rolled back.
func (c *PhotosClient) Submit(ctx context.Context, sub PhotoSubmission) (*PhotoSubmissionResult, error) {
	batches := &BatchesClient{conn: c.conn}
	result := &PhotoSubmissionResult{}

	batchID := sub.BatchID
	if batchID == "" {
		batch, err := batches.Create(ctx, models.Batch{SendConfirmationEmail: true})
		if err != nil {
			return nil, err
		}
		result.Batch = batch
		batchID = batch.ID
	}

	upload, err := batches.CreateUpload(ctx, batchID)
	if err != nil {
		return nil, err
	}
	result.Upload = upload

	if err := batches.Upload(ctx, upload, sub.FilePath, sub.ContentType); err != nil {
		return nil, err
	}

	photo := sub.Photo
	virin, err := c.generateWorkflowVIRIN(ctx, sub.ServiceUnitID, sub.AuthorID, sub.Date)
	if err != nil {
		return nil, err
	}
	photo.VIRIN = virin
	if sub.AuthorID != "" {
		photo.AuthorIDs = creditAuthor(sub.AuthorID, photo.AuthorIDs)
	}
	photo.BatchUploadID = upload.ID
	if photo.ServiceUnitID == "" {
		photo.ServiceUnitID = sub.ServiceUnitID
	}

	created, err := c.Create(ctx, batchID, photo)
	if err != nil {
		return nil, err
	}
	result.Photo = created

	if sub.CloseBatch {
		closed, err := batches.Close(ctx, batchID)
		if err != nil {
			return nil, err
		}
		result.Batch = closed
	}
	return result, nil
}

func (c *PhotosClient) generateWorkflowVIRIN(ctx context.Context, serviceUnitID, authorID string, date time.Time) (string, error) {
	if authorID != "" {
		return (&AuthorsClient{conn: c.conn}).GenerateVIRIN(ctx, authorID, date)
	}
	return (&ServiceUnitsClient{conn: c.conn}).GenerateVIRIN(ctx, serviceUnitID, date)
}

// creditAuthor puts the generating author first and deduplicates the whole
// credited list, preserving first occurrence order.
func creditAuthor(generating string, authorIDs []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(authorIDs)+1)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	add(generating)
	for _, id := range authorIDs {
		add(id)
	}
	return out
}

// GraphicSubmission bundles everything the end-to-end graphic workflow
// needs, mirroring PhotoSubmission.
type GraphicSubmission struct {
	BatchID     string
	FilePath    string
	ContentType string

	ServiceUnitID string
	AuthorID      string
	Date          time.Time

	Graphic models.Graphic

	CloseBatch bool
}

// GraphicSubmissionResult reports every remote resource the workflow
// touched.
type GraphicSubmissionResult struct {
	Batch   *models.Batch
	Upload  *models.BatchUpload
	Graphic *models.Graphic
}

// Submit runs the complete graphic workflow with the same step order and
// failure semantics as the photo workflow.
func (c *GraphicsClient) Submit(ctx context.Context, sub GraphicSubmission) (*GraphicSubmissionResult, error) {
	batches := &BatchesClient{conn: c.conn}
	result := &GraphicSubmissionResult{}

	batchID := sub.BatchID
	if batchID == "" {
		batch, err := batches.Create(ctx, models.Batch{SendConfirmationEmail: true})
		if err != nil {
			return nil, err
		}
		result.Batch = batch
		batchID = batch.ID
	}

	upload, err := batches.CreateUpload(ctx, batchID)
	if err != nil {
		return nil, err
	}
	result.Upload = upload

	if err := batches.Upload(ctx, upload, sub.FilePath, sub.ContentType); err != nil {
		return nil, err
	}

	graphic := sub.Graphic
	virin, err := (&PhotosClient{conn: c.conn}).generateWorkflowVIRIN(ctx, sub.ServiceUnitID, sub.AuthorID, sub.Date)
	if err != nil {
		return nil, err
	}
	graphic.VIRIN = virin
	if sub.AuthorID != "" {
		graphic.AuthorIDs = creditAuthor(sub.AuthorID, graphic.AuthorIDs)
	}
	graphic.BatchUploadID = upload.ID
	if graphic.ServiceUnitID == "" {
		graphic.ServiceUnitID = sub.ServiceUnitID
	}

	created, err := c.Create(ctx, batchID, graphic)
	if err != nil {
		return nil, err
	}
	result.Graphic = created

	if sub.CloseBatch {
		closed, err := batches.Close(ctx, batchID)
		if err != nil {
			return nil, err
		}
		result.Batch = closed
	}
	return result, nil
}
