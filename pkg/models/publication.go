package models

import (
	"time"

	"github.com/dvidshub/submit.go/internal/jsonapi"
)

// Publication is a stable descriptive container that issues are filed under.
type Publication struct {
	ID          string
	Name        string
	Description string
}

// Encode maps the publication onto a JSON:API resource object.
func (p Publication) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(p.ID, KindPublication)
	r.Set("name", p.Name)
	r.SetOptionalString("description", p.Description)
	return r
}

// DecodePublication reconstructs a publication from a resource object.
func DecodePublication(r *jsonapi.Resource) (Publication, error) {
	return Publication{
		ID:          r.ID,
		Name:        r.Attributes.String("name"),
		Description: r.Attributes.String("description"),
	}, nil
}

// PublicationIssue is one issue of a publication: exactly one publication
// reference and exactly one batch-upload reference for the issue's file.
type PublicationIssue struct {
	ID        string
	Title     string
	IssueDate *time.Time
	Status    PublicationIssueStatus

	PublicationID string
	BatchUploadID string
}

// Validate reports the first reference still missing for a create or update
// request.
func (i PublicationIssue) Validate() error {
	switch {
	case i.PublicationID == "":
		return &MissingAttributeError{Kind: KindPublicationIssue, Attribute: "publication"}
	case i.BatchUploadID == "":
		return &MissingAttributeError{Kind: KindPublicationIssue, Attribute: "batch_upload"}
	}
	return nil
}

// Encode maps the issue onto a JSON:API resource object.
func (i PublicationIssue) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(i.ID, KindPublicationIssue)
	r.SetOptionalString("title", i.Title)
	r.SetTime("issue_date", i.IssueDate)
	r.SetOptionalString("status", string(i.Status))
	r.RelateOne("publication", i.PublicationID, KindPublication)
	r.RelateOne("batch_upload", i.BatchUploadID, KindBatchUpload)
	return r
}

// DecodePublicationIssue reconstructs an issue from a resource object. An
// unrecognized status value is a decode failure.
func DecodePublicationIssue(r *jsonapi.Resource) (PublicationIssue, error) {
	issue := PublicationIssue{
		ID:            r.ID,
		Title:         r.Attributes.String("title"),
		IssueDate:     r.Attributes.Time("issue_date"),
		PublicationID: r.Relationships["publication"].First(),
		BatchUploadID: r.Relationships["batch_upload"].First(),
	}
	if s := r.Attributes.String("status"); s != "" {
		status, err := ParsePublicationIssueStatus(s)
		if err != nil {
			return PublicationIssue{}, err
		}
		issue.Status = status
	}
	return issue, nil
}
