package models

import (
	"time"

	"github.com/dvidshub/submit.go/internal/jsonapi"
)

// Photo is a submitted photo record. Title, VIRIN and CountryCode are
// required before submission; decoding still tolerates their absence with
// empty-string fallbacks so partial server payloads stay readable.
//
// ThumbnailURLTemplate is server-computed and decode-only; it is never
// encoded back out.
type Photo struct {
	ID           string
	Title        string
	Description  string
	Instructions string
	DateTaken    *time.Time
	VIRIN        string
	CountryCode  string
	Subdivision  string
	City         string
	Status       PhotoStatus
	Tags         []string

	AuthorIDs     []string
	BatchUploadID string
	ServiceUnitID string
	ThemeIDs      []string

	ThumbnailURLTemplate string
}

// Validate reports the first attribute still missing for a create or update
// request.
func (p Photo) Validate() error {
	switch {
	case p.Title == "":
		return &MissingAttributeError{Kind: KindPhoto, Attribute: "title"}
	case p.VIRIN == "":
		return &MissingAttributeError{Kind: KindPhoto, Attribute: "virin"}
	case p.CountryCode == "":
		return &MissingAttributeError{Kind: KindPhoto, Attribute: "country_code"}
	}
	return nil
}

// Encode maps the photo onto a JSON:API resource object.
func (p Photo) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(p.ID, KindPhoto)
	r.Set("title", p.Title)
	r.Set("description", p.Description)
	r.Set("instructions", p.Instructions)
	r.SetTime("date_taken", p.DateTaken)
	r.Set("virin", p.VIRIN)
	r.Set("country_code", p.CountryCode)
	r.SetOptionalString("subdivision", p.Subdivision)
	r.SetOptionalString("city", p.City)
	r.SetOptionalString("status", string(p.Status))
	if len(p.Tags) > 0 {
		r.Set("tags", p.Tags)
	}
	r.RelateMany("authors", KindAuthor, p.AuthorIDs)
	r.RelateOne("batch_upload", p.BatchUploadID, KindBatchUpload)
	r.RelateOne("service_unit", p.ServiceUnitID, KindServiceUnit)
	r.RelateMany("themes", KindTheme, p.ThemeIDs)
	return r
}

// DecodePhoto reconstructs a photo from a resource object. An unrecognized
// status value is a decode failure.
func DecodePhoto(r *jsonapi.Resource) (Photo, error) {
	p := Photo{
		ID:                   r.ID,
		Title:                r.Attributes.String("title"),
		Description:          r.Attributes.String("description"),
		Instructions:         r.Attributes.String("instructions"),
		DateTaken:            r.Attributes.Time("date_taken"),
		VIRIN:                r.Attributes.String("virin"),
		CountryCode:          r.Attributes.String("country_code"),
		Subdivision:          r.Attributes.String("subdivision"),
		City:                 r.Attributes.String("city"),
		Tags:                 r.Attributes.StringSlice("tags"),
		AuthorIDs:            r.Relationships["authors"].IDs(),
		BatchUploadID:        r.Relationships["batch_upload"].First(),
		ServiceUnitID:        r.Relationships["service_unit"].First(),
		ThemeIDs:             r.Relationships["themes"].IDs(),
		ThumbnailURLTemplate: r.Attributes.String("thumbnail_url_template"),
	}
	if s := r.Attributes.String("status"); s != "" {
		status, err := ParsePhotoStatus(s)
		if err != nil {
			return Photo{}, err
		}
		p.Status = status
	}
	return p, nil
}
