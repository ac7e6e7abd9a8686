package record

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/genialcrm/genial-backend/internal/domain"
)

func ticketFields() []domain.CollectionField {
	return []domain.CollectionField{
		{Name: "title", Type: "plain-text", Order: 1},
		{Name: "urgent", Type: "bool", Order: 2},
		{Name: "priority", Type: "number", Order: 3},
	}
}

func TestMapForm_BoolAbsentIsFalse(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"title":    {"Server down"},
		"priority": {"2"},
	}

	doc := MapForm(ticketFields(), form)

	v, ok := doc.Get("urgent")
	if !ok {
		t.Fatal("urgent missing from document")
	}
	if v.Kind != domain.ValueBool || v.Bool != false {
		t.Errorf("urgent: got %+v, want false", v)
	}
}

func TestMapForm_BoolPresentIsTrue(t *testing.T) {
	t.Parallel()

	// Any value counts as presence, including "on" and "".
	for _, raw := range []string{"on", "true", "false", ""} {
		form := url.Values{"urgent": {raw}}
		doc := MapForm(ticketFields(), form)

		v, _ := doc.Get("urgent")
		if v.Kind != domain.ValueBool || v.Bool != true {
			t.Errorf("urgent with value %q: got %+v, want true", raw, v)
		}
	}
}

func TestMapForm_EmptyStringBecomesNull(t *testing.T) {
	t.Parallel()

	form := url.Values{"title": {""}}
	doc := MapForm(ticketFields(), form)

	v, _ := doc.Get("title")
	if v.Kind != domain.ValueNull {
		t.Errorf("empty title: got kind %v, want null", v.Kind)
	}
}

func TestMapForm_DeclaredAbsentBecomesNull(t *testing.T) {
	t.Parallel()

	doc := MapForm(ticketFields(), url.Values{})

	v, ok := doc.Get("title")
	if !ok || v.Kind != domain.ValueNull {
		t.Errorf("absent title: got %+v, want null", v)
	}
	v, _ = doc.Get("priority")
	if v.Kind != domain.ValueNull {
		t.Errorf("absent priority: got %+v, want null", v)
	}
}

func TestMapForm_NumberParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want domain.Value
	}{
		{"2", domain.IntValue(2)},
		{"-17", domain.IntValue(-17)},
		{"2.5", domain.FloatValue(2.5)},
		{"abc", domain.TextValue("abc")},
		{"1e3", domain.FloatValue(1000)},
	}

	for _, tt := range tests {
		form := url.Values{"priority": {tt.raw}}
		doc := MapForm(ticketFields(), form)

		v, _ := doc.Get("priority")
		if v != tt.want {
			t.Errorf("priority %q: got %+v, want %+v", tt.raw, v, tt.want)
		}
	}
}

func TestMapForm_ExtraKeysAppendedAfterDeclared(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"title":  {"Server down"},
		"urgent": {"on"},
		"notes":  {"call ops"},
		"blank":  {""},
	}

	doc := MapForm(ticketFields(), form)

	// Declared fields keep declaration order at the front.
	names := doc.Names()
	wantFront := []string{"title", "urgent", "priority"}
	if !reflect.DeepEqual(names[:3], wantFront) {
		t.Fatalf("declared prefix: got %v, want %v", names[:3], wantFront)
	}

	v, ok := doc.Get("notes")
	if !ok || v != domain.TextValue("call ops") {
		t.Errorf("notes: got %+v", v)
	}
	v, _ = doc.Get("blank")
	if v.Kind != domain.ValueNull {
		t.Errorf("blank extra: got kind %v, want null", v.Kind)
	}
}

func TestMapForm_TransportKeysSkipped(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"collectionId":               {"abc"},
		"__RequestVerificationToken": {"tok"},
		"title":                      {"x"},
	}

	doc := MapForm(ticketFields(), form)

	if doc.Has("collectionId") {
		t.Error("collectionId must not be stored")
	}
	if doc.Has("__RequestVerificationToken") {
		t.Error("anti-forgery token must not be stored")
	}
}

func TestMapForm_SystemFieldsSkippedInDeclaredPass(t *testing.T) {
	t.Parallel()

	fields := []domain.CollectionField{
		{Name: "id", Type: "plain-text", Order: 1},
		{Name: "meta", Type: "system", Order: 2},
		{Name: "title", Type: "plain-text", Order: 3},
	}

	doc := MapForm(fields, url.Values{"title": {"x"}, "id": {"payload-id"}})

	if doc.Has("meta") {
		t.Error("system-kind field must not be mapped")
	}
	// "id" is reserved in the declared pass and declared in the schema,
	// so it is neither nulled nor appended as an extra.
	if doc.Has("id") {
		t.Error("declared system field must not reach the document")
	}
}

func TestMapForm_MultipleValuesJoined(t *testing.T) {
	t.Parallel()

	form := url.Values{"title": {"a", "b"}}
	doc := MapForm(ticketFields(), form)

	v, _ := doc.Get("title")
	if v != domain.TextValue("a,b") {
		t.Errorf("joined value: got %+v", v)
	}
}
