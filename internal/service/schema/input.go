package schema

import (
	"regexp"
	"strings"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// Collection names become part of dynamic storage identifiers, so their
// shape is restricted to letters, digits, underscore and hyphen, starting
// with a letter.
var collectionNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

const (
	maxCollectionNameLen = 63
	maxFieldsPerSchema   = 100
)

// UpsertInput holds parameters for creating or updating a collection.
type UpsertInput struct {
	Name   string
	Label  string
	Type   string
	Fields []domain.CollectionField
}

// Validate checks the collection name shape and the field list. Duplicate
// field names are rejected: records are keyed by field name, a duplicate
// would silently drop data.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxCollectionNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	case !collectionNameRe.MatchString(name):
		errs = append(errs, domain.FieldError{Field: "name", Message: "must start with a letter and contain only letters, digits, _ or -"})
	}

	if len(i.Label) > 255 {
		errs = append(errs, domain.FieldError{Field: "label", Message: "too long"})
	}

	if len(i.Fields) > maxFieldsPerSchema {
		errs = append(errs, domain.FieldError{Field: "fields", Message: "too many fields"})
	}

	seen := make(map[string]struct{}, len(i.Fields))
	for _, f := range i.Fields {
		if f.Name == "" {
			errs = append(errs, domain.FieldError{Field: "fields", Message: "field name required"})
			continue
		}
		if _, dup := seen[f.Name]; dup {
			errs = append(errs, domain.FieldError{Field: "fields", Message: "duplicate field name: " + f.Name})
			continue
		}
		seen[f.Name] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalized returns the input with name/label trimmed and defaults applied.
func (i UpsertInput) normalized() UpsertInput {
	i.Name = strings.TrimSpace(i.Name)
	i.Label = strings.TrimSpace(i.Label)
	if i.Label == "" {
		i.Label = i.Name
	}
	if i.Type == "" {
		i.Type = DefaultCollectionType
	}
	if i.Fields == nil {
		i.Fields = []domain.CollectionField{}
	}
	return i
}
