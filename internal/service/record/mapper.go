package record

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// Form keys that are transport plumbing, never record data.
const (
	formKeyCollectionID = "collectionId"
	formKeyAntiForgery  = "__RequestVerificationToken"
)

// MapForm builds a document from a form-encoded payload against the
// collection's declared field list. Fields are processed in declaration
// order, not payload order:
//
//   - bool fields: key present (any value) → true, absent → false;
//   - other declared fields: absent or empty string → null; number fields
//     parse int, then float, then fall back to the raw text; everything
//     else is stored as text;
//   - payload keys the schema does not declare are appended after the
//     declared fields as text-or-null.
//
// System fields are skipped here and stamped by the caller after mapping.
func MapForm(fields []domain.CollectionField, form url.Values) *domain.Document {
	doc := domain.NewDocument()

	for _, f := range fields {
		if domain.IsSystemField(f) {
			continue
		}

		if domain.ParseFieldKind(f.Type) == domain.KindBool {
			_, present := form[f.Name]
			doc.Set(f.Name, domain.BoolValue(present))
			continue
		}

		vals, present := form[f.Name]
		if !present {
			doc.Set(f.Name, domain.Null())
			continue
		}

		value := strings.Join(vals, ",")
		if value == "" {
			doc.Set(f.Name, domain.Null())
			continue
		}

		if domain.ParseFieldKind(f.Type) == domain.KindNumber {
			doc.Set(f.Name, numberValue(value))
			continue
		}

		doc.Set(f.Name, domain.TextValue(value))
	}

	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f.Name] = struct{}{}
	}

	// Undeclared payload keys ride along as text-or-null. Sorted so the
	// resulting document is deterministic; form key order is not.
	extras := make([]string, 0, len(form))
	for key := range form {
		if key == formKeyCollectionID || key == formKeyAntiForgery {
			continue
		}
		if _, ok := declared[key]; ok {
			continue
		}
		extras = append(extras, key)
	}
	sort.Strings(extras)

	for _, key := range extras {
		value := strings.Join(form[key], ",")
		if value == "" {
			doc.Set(key, domain.Null())
		} else {
			doc.Set(key, domain.TextValue(value))
		}
	}

	return doc
}

// numberValue parses a number field's raw form value: int first, float
// second, raw text as the last resort.
func numberValue(value string) domain.Value {
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return domain.IntValue(i)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return domain.FloatValue(f)
	}
	return domain.TextValue(value)
}

// stampSystemFields assigns the server-managed record fields. Done after
// mapping so payload-supplied values for these names are overwritten,
// whichever path produced the document.
func stampSystemFields(doc *domain.Document, id uuid.UUID, now time.Time) {
	doc.Set("_id", domain.IDValue(id))
	doc.Set("created", domain.TimeValue(now))
	doc.Set("updated", domain.TimeValue(now))
}
