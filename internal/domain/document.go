package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValueKind tags a document value.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueInt
	ValueFloat
	ValueText
	ValueTime
	ValueID
)

// Value is one tagged record value. Exactly the field matching Kind is
// meaningful; the rest are zero.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Text  string
	Time  time.Time
	ID    uuid.UUID
}

// Constructors for each kind.
func Null() Value                { return Value{Kind: ValueNull} }
func BoolValue(b bool) Value     { return Value{Kind: ValueBool, Bool: b} }
func IntValue(i int64) Value     { return Value{Kind: ValueInt, Int: i} }
func FloatValue(f float64) Value { return Value{Kind: ValueFloat, Float: f} }
func TextValue(s string) Value   { return Value{Kind: ValueText, Text: s} }
func TimeValue(t time.Time) Value {
	return Value{Kind: ValueTime, Time: t}
}
func IDValue(id uuid.UUID) Value { return Value{Kind: ValueID, ID: id} }

// Native returns the value as the plain Go type it serializes to.
func (v Value) Native() any {
	switch v.Kind {
	case ValueBool:
		return v.Bool
	case ValueInt:
		return v.Int
	case ValueFloat:
		return v.Float
	case ValueText:
		return v.Text
	case ValueTime:
		return v.Time
	case ValueID:
		return v.ID.String()
	default:
		return nil
	}
}

// MarshalJSON serializes the tagged value to its native JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

// Document is an ordered mapping from field name to tagged value, the
// typed record a mapper produces. Field order is the collection's declared
// order, not payload insertion order, and is preserved through
// serialization.
type Document struct {
	names  []string
	values map[string]Value
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]Value)}
}

// Set stores a value under name. A new name is appended; setting an
// existing name overwrites in place without changing its position.
func (d *Document) Set(name string, v Value) {
	if _, ok := d.values[name]; !ok {
		d.names = append(d.names, name)
	}
	d.values[name] = v
}

// Get returns the value for name.
func (d *Document) Get(name string) (Value, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Has reports whether the document contains name.
func (d *Document) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Names returns the field names in document order.
func (d *Document) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of fields.
func (d *Document) Len() int { return len(d.names) }

// MarshalJSON serializes the document as a JSON object with fields in
// document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("marshal field name %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(d.values[name])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
