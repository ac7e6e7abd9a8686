package fieldtype

import "github.com/genialcrm/genial-backend/internal/domain"

// UpsertInput holds parameters for creating or updating a catalog entry.
type UpsertInput struct {
	Type        string
	Label       string
	Icon        string
	DisplayIcon *string
	Description *string
	Order       int
	Active      bool
}

// Validate validates the catalog entry input.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	} else if len(i.Type) > 64 {
		errs = append(errs, domain.FieldError{Field: "type", Message: "too long"})
	}

	if i.Label == "" {
		errs = append(errs, domain.FieldError{Field: "label", Message: "required"})
	} else if len(i.Label) > 128 {
		errs = append(errs, domain.FieldError{Field: "label", Message: "too long"})
	}

	if len(i.Icon) > 128 {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "too long"})
	}

	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
