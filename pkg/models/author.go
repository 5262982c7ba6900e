package models

import "github.com/dvidshub/submit.go/internal/jsonapi"

// JobGrade is a value object describing rank metadata attached to an author.
// It has no identifier of its own; on the wire it is a nested attribute
// object on the author.
type JobGrade struct {
	Name         string
	Abbreviation string
	Branch       Branch
}

// Author is a credited individual. VisionID is an optional external
// identifier.
type Author struct {
	ID             string
	Name           string
	VisionID       string
	JobGrade       *JobGrade
	ServiceUnitIDs []string
}

// Encode maps the author onto a JSON:API resource object.
func (a Author) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(a.ID, KindAuthor)
	r.Set("name", a.Name)
	r.SetOptionalString("vision_id", a.VisionID)
	if a.JobGrade != nil {
		grade := map[string]any{
			"name":         a.JobGrade.Name,
			"abbreviation": a.JobGrade.Abbreviation,
		}
		if a.JobGrade.Branch != "" {
			grade["branch"] = string(a.JobGrade.Branch)
		}
		r.Set("job_grade", grade)
	}
	r.RelateMany("service_units", KindServiceUnit, a.ServiceUnitIDs)
	return r
}

// DecodeAuthor reconstructs an author from a resource object. A job grade
// with an unrecognized branch is a decode failure.
func DecodeAuthor(r *jsonapi.Resource) (Author, error) {
	a := Author{
		ID:             r.ID,
		Name:           r.Attributes.String("name"),
		VisionID:       r.Attributes.String("vision_id"),
		ServiceUnitIDs: r.Relationships["service_units"].IDs(),
	}
	if obj := r.Attributes.Object("job_grade"); obj != nil {
		grade := JobGrade{
			Name:         obj.String("name"),
			Abbreviation: obj.String("abbreviation"),
		}
		if s := obj.String("branch"); s != "" {
			branch, err := ParseBranch(s)
			if err != nil {
				return Author{}, err
			}
			grade.Branch = branch
		}
		a.JobGrade = &grade
	}
	return a, nil
}
