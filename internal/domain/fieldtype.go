package domain

import (
	"time"

	"github.com/google/uuid"
)

// FieldType is a catalog entry describing a field-type choice offered when
// building a collection. It is UI metadata, independent of any particular
// collection; the mapping semantics of a type live in FieldKind.
type FieldType struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Label       string    `json:"label"`
	Icon        string    `json:"icon"`
	DisplayIcon *string   `json:"displayIcon,omitempty"`
	Description *string   `json:"description,omitempty"`
	Order       int       `json:"order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
