package models

import "github.com/dvidshub/submit.go/internal/jsonapi"

// ServiceUnit is an organizational unit that media is submitted on behalf
// of. Branch is required: a unit belongs to exactly one branch.
type ServiceUnit struct {
	ID               string
	Name             string
	Abbreviation     string
	Branch           Branch
	ExternalID       string
	RequiresApproval bool
}

// Encode maps the service unit onto a JSON:API resource object.
func (u ServiceUnit) Encode() *jsonapi.Resource {
	r := jsonapi.NewResource(u.ID, KindServiceUnit)
	r.Set("name", u.Name)
	r.Set("abbreviation", u.Abbreviation)
	r.Set("branch", string(u.Branch))
	r.SetOptionalString("external_id", u.ExternalID)
	r.Set("requires_approval", u.RequiresApproval)
	return r
}

// DecodeServiceUnit reconstructs a service unit from a resource object. A
// missing or unrecognized branch is a decode failure, not a default.
func DecodeServiceUnit(r *jsonapi.Resource) (ServiceUnit, error) {
	branch, err := ParseBranch(r.Attributes.String("branch"))
	if err != nil {
		return ServiceUnit{}, err
	}
	return ServiceUnit{
		ID:               r.ID,
		Name:             r.Attributes.String("name"),
		Abbreviation:     r.Attributes.String("abbreviation"),
		Branch:           branch,
		ExternalID:       r.Attributes.String("external_id"),
		RequiresApproval: r.Attributes.Bool("requires_approval", false),
	}, nil
}
