package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// MapJSON builds a document from a JSON object payload. Unlike the form
// path, values pass through natively in payload order: the declared field
// list is not consulted, absent fields are not nulled, and empty strings
// stay empty strings. The two paths diverging is intentional.
func MapJSON(payload []byte) (*domain.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, domain.NewValidationError("data", "invalid JSON")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, domain.NewValidationError("data", "must be a JSON object")
	}

	doc := domain.NewDocument()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, domain.NewValidationError("data", "invalid JSON")
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, domain.NewValidationError("data", "invalid JSON")
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, domain.NewValidationError("data", fmt.Sprintf("invalid value for %q", key))
		}

		doc.Set(key, jsonValue(v))
	}

	return doc, nil
}

// jsonValue converts a decoded JSON value to a tagged document value.
// Numbers become ints when integral, floats otherwise. Arrays and nested
// objects are re-marshaled and stored as text.
func jsonValue(v any) domain.Value {
	switch t := v.(type) {
	case nil:
		return domain.Null()
	case bool:
		return domain.BoolValue(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return domain.IntValue(i)
		}
		if f, err := t.Float64(); err == nil {
			return domain.FloatValue(f)
		}
		return domain.TextValue(t.String())
	case string:
		return domain.TextValue(t)
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return domain.Null()
		}
		return domain.TextValue(string(raw))
	}
}
