package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Collection is a user-defined record schema. Name is the system
// identifier, unique per (UserID, Stage); Label is the display name.
// Fields is the live schema: records are mapped against it at creation
// time and are not revalidated when it changes later.
type Collection struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Label     string            `json:"label"`
	Type      string            `json:"type"`
	Fields    []CollectionField `json:"fields"`
	UserID    uuid.UUID         `json:"userId"`
	Stage     string            `json:"stage"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// CollectionField is one typed field of a collection schema. Order defines
// both display and record-mapping sequence.
type CollectionField struct {
	Name          string              `json:"name"`
	Type          string              `json:"type"`
	Label         string              `json:"label"`
	Order         int                 `json:"order"`
	Configuration *FieldConfiguration `json:"configuration,omitempty"`
}

// FieldConfiguration holds optional per-field settings.
type FieldConfiguration struct {
	MinLength         *string        `json:"minLength,omitempty"`
	MaxLength         *string        `json:"maxLength,omitempty"`
	ValidationPattern *string        `json:"validationPattern,omitempty"`
	Nonempty          bool           `json:"nonempty"`
	Hidden            bool           `json:"hidden"`
	Options           []SelectOption `json:"options,omitempty"`
}

// SelectOption is one choice of a select field.
type SelectOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UserFields returns the collection's non-system fields sorted by Order.
// The returned slice is a copy; mutating it does not touch the schema.
func (c *Collection) UserFields() []CollectionField {
	fields := make([]CollectionField, 0, len(c.Fields))
	for _, f := range c.Fields {
		if IsSystemField(f) {
			continue
		}
		fields = append(fields, f)
	}
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })
	return fields
}

// FieldNames returns the set of field names declared on the collection.
func (c *Collection) FieldNames() map[string]struct{} {
	names := make(map[string]struct{}, len(c.Fields))
	for _, f := range c.Fields {
		names[f.Name] = struct{}{}
	}
	return names
}
