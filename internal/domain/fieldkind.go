package domain

import "strings"

// FieldKind is the closed set of data types a collection field may declare.
type FieldKind int

const (
	KindPlainText FieldKind = iota
	KindRichEditor
	KindNumber
	KindBool
	KindEmail
	KindURL
	KindDateTime
	KindAutodate
	KindJSON
	KindSelect
	KindFile
	KindRelation
	KindGeoPoint
	KindSystem
)

// String returns the wire value of the kind ("plain-text", "number", ...).
func (k FieldKind) String() string {
	switch k {
	case KindPlainText:
		return "plain-text"
	case KindRichEditor:
		return "rich-editor"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindEmail:
		return "email"
	case KindURL:
		return "url"
	case KindDateTime:
		return "datetime"
	case KindAutodate:
		return "autodate"
	case KindJSON:
		return "json"
	case KindSelect:
		return "select"
	case KindFile:
		return "file"
	case KindRelation:
		return "relation"
	case KindGeoPoint:
		return "geo-point"
	case KindSystem:
		return "system"
	default:
		return "plain-text"
	}
}

// ParseFieldKind maps a type string to its FieldKind. Unknown or empty
// strings fall back to KindPlainText; an unrecognized type is a display
// choice the registry doesn't know yet, not an error. Matching is
// case-insensitive and "boolean" is accepted as an alias of "bool".
func ParseFieldKind(s string) FieldKind {
	switch strings.ToLower(s) {
	case "plain-text":
		return KindPlainText
	case "rich-editor":
		return KindRichEditor
	case "number":
		return KindNumber
	case "bool", "boolean":
		return KindBool
	case "email":
		return KindEmail
	case "url":
		return KindURL
	case "datetime":
		return KindDateTime
	case "autodate":
		return KindAutodate
	case "json":
		return KindJSON
	case "select":
		return KindSelect
	case "file":
		return KindFile
	case "relation":
		return KindRelation
	case "geo-point":
		return KindGeoPoint
	case "system":
		return KindSystem
	default:
		return KindPlainText
	}
}

// reservedFieldNames are record keys managed by the server. Fields with
// these names are never populated from user-supplied data.
var reservedFieldNames = map[string]struct{}{
	"id":        {},
	"created":   {},
	"updated":   {},
	"createdAt": {},
	"updatedAt": {},
	"order":     {},
}

// IsReservedFieldName reports whether name is a server-managed record key.
// Matching is case-sensitive, mirroring how records are keyed.
func IsReservedFieldName(name string) bool {
	_, ok := reservedFieldNames[name]
	return ok
}

// IsSystemField reports whether f must be excluded from user-supplied
// record data: either its name is reserved or its declared kind is System.
func IsSystemField(f CollectionField) bool {
	return IsReservedFieldName(f.Name) || ParseFieldKind(f.Type) == KindSystem
}
