package models

import (
	"time"

	"github.com/dvidshub/submit.go/internal/jsonapi"
)

// Batch is a submission container grouping uploaded files and metadata
// records for joint review. Once Closed is true the batch is terminal; the
// remote system rejects further content.
type Batch struct {
	ID                    string
	CreatedAt             *time.Time
	ClosedAt              *time.Time
	Closed                bool
	SendConfirmationEmail bool
}

// Encode maps the batch onto a JSON:API resource object.
func (b Batch) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(b.ID, KindBatch)
	r.Set("closed", b.Closed)
	r.Set("send_confirmation_email", b.SendConfirmationEmail)
	r.SetTime("created_at", b.CreatedAt)
	r.SetTime("closed_at", b.ClosedAt)
	return r
}

// DecodeBatch reconstructs a batch from a resource object. An absent closed
// attribute defaults to false, an absent send_confirmation_email to true.
func DecodeBatch(r *jsonapi.Resource) (Batch, error) {
	return Batch{
		ID:                    r.ID,
		CreatedAt:             r.Attributes.Time("created_at"),
		ClosedAt:              r.Attributes.Time("closed_at"),
		Closed:                r.Attributes.Bool("closed", false),
		SendConfirmationEmail: r.Attributes.Bool("send_confirmation_email", true),
	}, nil
}
