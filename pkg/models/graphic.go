package models

import (
	"time"

	"github.com/dvidshub/submit.go/internal/jsonapi"
)

// Graphic is a submitted graphic record, structurally the same as Photo
// minus the server-computed thumbnail template.
type Graphic struct {
	ID           string
	Title        string
	Description  string
	Instructions string
	DateTaken    *time.Time
	VIRIN        string
	CountryCode  string
	Subdivision  string
	City         string
	Status       GraphicStatus
	Tags         []string

	AuthorIDs     []string
	BatchUploadID string
	ServiceUnitID string
	ThemeIDs      []string
}

// Validate reports the first attribute still missing for a create or update
// request.
func (g Graphic) Validate() error {
	switch {
	case g.Title == "":
		return &MissingAttributeError{Kind: KindGraphic, Attribute: "title"}
	case g.VIRIN == "":
		return &MissingAttributeError{Kind: KindGraphic, Attribute: "virin"}
	case g.CountryCode == "":
		return &MissingAttributeError{Kind: KindGraphic, Attribute: "country_code"}
	}
	return nil
}

// Encode maps the graphic onto a JSON:API resource object.
func (g Graphic) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(g.ID, KindGraphic)
	r.Set("title", g.Title)
	r.Set("description", g.Description)
	r.Set("instructions", g.Instructions)
	r.SetTime("date_taken", g.DateTaken)
	r.Set("virin", g.VIRIN)
	r.Set("country_code", g.CountryCode)
	r.SetOptionalString("subdivision", g.Subdivision)
	r.SetOptionalString("city", g.City)
	r.SetOptionalString("status", string(g.Status))
	if len(g.Tags) > 0 {
		r.Set("tags", g.Tags)
	}
	r.RelateMany("authors", KindAuthor, g.AuthorIDs)
	r.RelateOne("batch_upload", g.BatchUploadID, KindBatchUpload)
	r.RelateOne("service_unit", g.ServiceUnitID, KindServiceUnit)
	r.RelateMany("themes", KindTheme, g.ThemeIDs)
	return r
}

// DecodeGraphic reconstructs a graphic from a resource object. An
// unrecognized status value is a decode failure.
func DecodeGraphic(r *jsonapi.Resource) (Graphic, error) {
	g := Graphic{
		ID:            r.ID,
		Title:         r.Attributes.String("title"),
		Description:   r.Attributes.String("description"),
		Instructions:  r.Attributes.String("instructions"),
		DateTaken:     r.Attributes.Time("date_taken"),
		VIRIN:         r.Attributes.String("virin"),
		CountryCode:   r.Attributes.String("country_code"),
		Subdivision:   r.Attributes.String("subdivision"),
		City:          r.Attributes.String("city"),
		Tags:          r.Attributes.StringSlice("tags"),
		AuthorIDs:     r.Relationships["authors"].IDs(),
		BatchUploadID: r.Relationships["batch_upload"].First(),
		ServiceUnitID: r.Relationships["service_unit"].First(),
		ThemeIDs:      r.Relationships["themes"].IDs(),
	}
	if s := r.Attributes.String("status"); s != "" {
		status, err := ParseGraphicStatus(s)
		if err != nil {
			return Graphic{}, err
		}
		g.Status = status
	}
	return g, nil
}
