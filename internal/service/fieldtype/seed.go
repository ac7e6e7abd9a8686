package fieldtype

import (
	"context"
	"fmt"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// Seed populates the catalog with the default field types.
// A catalog with any rows makes this a no-op.
func (s *Service) Seed(ctx context.Context) error {
	if err := s.types.Seed(ctx, DefaultFieldTypes()); err != nil {
		return fmt.Errorf("fieldtype.Seed: %w", err)
	}

	s.log.InfoContext(ctx, "field type catalog seeded")
	return nil
}

// DefaultFieldTypes returns the built-in field-type catalog offered by
// the collection builder.
func DefaultFieldTypes() []domain.FieldType {
	str := func(s string) *string { return &s }
	return []domain.FieldType{
		{Type: "plain-text", Label: "Plain text", Icon: "fas fa-font", DisplayIcon: str("T"), Order: 1, Active: true},
		{Type: "rich-editor", Label: "Rich editor", Icon: "fas fa-pen", Order: 2, Active: true},
		{Type: "number", Label: "Number", Icon: "fas fa-hashtag", DisplayIcon: str("#"), Order: 3, Active: true},
		{Type: "bool", Label: "Bool", Icon: "fas fa-eye", Order: 4, Active: true},
		{Type: "email", Label: "Email", Icon: "fas fa-envelope", Order: 5, Active: true},
		{Type: "url", Label: "URL", Icon: "fas fa-link", Order: 6, Active: true},
		{Type: "datetime", Label: "Datetime", Icon: "fas fa-calendar", Order: 7, Active: true},
		{Type: "autodate", Label: "Autodate", Icon: "fas fa-calendar-check", Order: 8, Active: true},
		{Type: "select", Label: "Select", Icon: "fas fa-list", Order: 9, Active: true},
		{Type: "file", Label: "File", Icon: "fas fa-image", Order: 10, Active: true},
		{Type: "relation", Label: "Relation", Icon: "fas fa-project-diagram", Order: 11, Active: true},
		{Type: "json", Label: "JSON", Icon: "fas fa-code", DisplayIcon: str("{}"), Order: 12, Active: true},
		{Type: "geo-point", Label: "Geo Point", Icon: "fas fa-map-marker-alt", Order: 13, Active: true},
	}
}
