// Package jsonapi implements the {id, type, attributes, relationships}
// resource-object envelope used by the submit API. It is the only place the
// SDK deals with loosely typed JSON; everything above it works with the typed
// records in pkg/models.
package jsonapi

import (
	"encoding/json"
	"time"
)

// Identifier is the {id, type} pair a relationship uses to reference another
// resource. References are referential, never embedded copies.
type Identifier struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Relationship holds relationship data, which the wire encodes either as a
// single identifier object or as an array of them.
type Relationship struct {
	One  *Identifier
	Many []Identifier

	many bool
}

// ToOne builds a singular relationship.
func ToOne(id, typ string) Relationship {
	return Relationship{One: &Identifier{ID: id, Type: typ}}
}

// ToMany builds a plural relationship referencing each id in order.
func ToMany(typ string, ids []string) Relationship {
	refs := make([]Identifier, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, Identifier{ID: id, Type: typ})
	}
	return Relationship{Many: refs, many: true}
}

// First returns the id of the first reference, or "" when the relationship is
// empty.
func (r Relationship) First() string {
	if r.One != nil {
		return r.One.ID
	}
	if len(r.Many) > 0 {
		return r.Many[0].ID
	}
	return ""
}

// IDs returns every referenced id in wire order.
func (r Relationship) IDs() []string {
	if r.One != nil {
		return []string{r.One.ID}
	}
	ids := make([]string, 0, len(r.Many))
	for _, ref := range r.Many {
		ids = append(ids, ref.ID)
	}
	return ids
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	if r.many || r.One == nil {
		refs := r.Many
		if refs == nil {
			refs = []Identifier{}
		}
		return json.Marshal(map[string]any{"data": refs})
	}
	return json.Marshal(map[string]any{"data": r.One})
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	trimmed := string(envelope.Data)
	if trimmed == "" || trimmed == "null" {
		*r = Relationship{}
		return nil
	}
	if trimmed[0] == '[' {
		var refs []Identifier
		if err := json.Unmarshal(envelope.Data, &refs); err != nil {
			return err
		}
		*r = Relationship{Many: refs, many: true}
		return nil
	}
	var ref Identifier
	if err := json.Unmarshal(envelope.Data, &ref); err != nil {
		return err
	}
	*r = Relationship{One: &ref}
	return nil
}

// Attributes is the scalar attribute bag of a resource object. The accessors
// apply the documented fallback when a key is absent or has an unexpected
// shape, so partial server payloads stay readable.
type Attributes map[string]any

// Has reports whether the key is present at all, distinguishing "absent" from
// "set to a zero value".
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the attribute as a string, falling back to "".
func (a Attributes) String(key string) string {
	if s, ok := a[key].(string); ok {
		return s
	}
	return ""
}

// Bool returns the attribute as a bool, falling back to def when absent.
func (a Attributes) Bool(key string, def bool) bool {
	if b, ok := a[key].(bool); ok {
		return b
	}
	return def
}

// Int returns the attribute as an int64. JSON numbers arrive as float64.
func (a Attributes) Int(key string) int64 {
	switch v := a[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

// StringSlice returns the attribute as a string slice, falling back to an
// empty slice. Non-string elements are skipped.
func (a Attributes) StringSlice(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

// StringMap returns the attribute as a string map, or nil when absent.
func (a Attributes) StringMap(key string) map[string]string {
	switch v := a[key].(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, e := range v {
			out[k] = e
		}
		return out
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, e := range v {
			if s, ok := e.(string); ok {
				out[k] = s
			}
		}
		return out
	}
	return nil
}

// Object returns a nested attribute object, or nil when absent.
func (a Attributes) Object(key string) Attributes {
	switch v := a[key].(type) {
	case map[string]any:
		return Attributes(v)
	case Attributes:
		return v
	}
	return nil
}

// Time parses the attribute as a timestamp, accepting RFC 3339 and bare
// dates. Absent or unparseable values yield nil.
func (a Attributes) Time(key string) *time.Time {
	s := a.String(key)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Relationships maps relationship names to their references. Looking up an
// absent name yields the empty Relationship.
type Relationships map[string]Relationship

// Resource is one JSON:API resource object.
type Resource struct {
	ID            string        `json:"id,omitempty"`
	Type          string        `json:"type"`
	Attributes    Attributes    `json:"attributes,omitempty"`
	Relationships Relationships `json:"relationships,omitempty"`
}

// NewResource starts a resource object for encoding. The id is omitted from
// the wire when empty, which is the not-yet-persisted case.
func NewResource(id, typ string) *Resource {
	return &Resource{ID: id, Type: typ, Attributes: Attributes{}}
}

// Set stores an attribute unconditionally.
func (r *Resource) Set(key string, v any) {
	r.Attributes[key] = v
}

// SetOptionalString stores an attribute only when non-empty. Absent optional
// attributes are left off the wire entirely, never emitted as null.
func (r *Resource) SetOptionalString(key, v string) {
	if v != "" {
		r.Attributes[key] = v
	}
}

// SetTime stores a timestamp attribute in RFC 3339, skipping zero times.
func (r *Resource) SetTime(key string, t *time.Time) {
	if t != nil && !t.IsZero() {
		r.Attributes[key] = t.UTC().Format(time.RFC3339)
	}
}

// Relate attaches a relationship, allocating the relationships map lazily so
// the whole key stays off the wire when nothing is related.
func (r *Resource) Relate(name string, rel Relationship) {
	if r.Relationships == nil {
		r.Relationships = Relationships{}
	}
	r.Relationships[name] = rel
}

// RelateOne attaches a singular relationship when the id is set.
func (r *Resource) RelateOne(name, id, typ string) {
	if id != "" {
		r.Relate(name, ToOne(id, typ))
	}
}

// RelateMany attaches a plural relationship when at least one id is given.
func (r *Resource) RelateMany(name, typ string, ids []string) {
	if len(ids) > 0 {
		r.Relate(name, ToMany(typ, ids))
	}
}

// Document is a single-resource JSON:API document.
type Document struct {
	Data *Resource `json:"data,omitempty"`
}

// CollectionDocument is a resource-collection JSON:API document.
type CollectionDocument struct {
	Data []Resource `json:"data"`
}
