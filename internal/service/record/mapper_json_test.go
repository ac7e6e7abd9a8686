package record

import (
	"testing"

	"github.com/genialcrm/genial-backend/internal/domain"
)

func TestMapJSON_NativePassthrough(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"title": "hello",
		"count": 3,
		"ratio": 2.5,
		"done": true,
		"note": null,
		"empty": ""
	}`)

	doc, err := MapJSON(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]domain.Value{
		"title": domain.TextValue("hello"),
		"count": domain.IntValue(3),
		"ratio": domain.FloatValue(2.5),
		"done":  domain.BoolValue(true),
		"note":  domain.Null(),
		// The JSON path does not apply the form path's empty-string rule.
		"empty": domain.TextValue(""),
	}
	for name, want := range tests {
		got, ok := doc.Get(name)
		if !ok {
			t.Errorf("%s missing", name)
			continue
		}
		if got != want {
			t.Errorf("%s: got %+v, want %+v", name, got, want)
		}
	}
}

func TestMapJSON_PreservesPayloadOrder(t *testing.T) {
	t.Parallel()

	doc, err := MapJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := doc.Names()
	want := []string{"z", "a", "m"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order: got %v, want %v", names, want)
		}
	}
}

func TestMapJSON_IntegralFloatStaysFloatOnlyWhenFractional(t *testing.T) {
	t.Parallel()

	doc, err := MapJSON([]byte(`{"a": 10, "b": 10.0, "c": 10.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := doc.Get("a"); v != domain.IntValue(10) {
		t.Errorf("a: got %+v, want int 10", v)
	}
	// "10.0" does not parse as an int64, so it stays a float.
	if v, _ := doc.Get("b"); v != domain.FloatValue(10) {
		t.Errorf("b: got %+v, want float 10", v)
	}
	if v, _ := doc.Get("c"); v != domain.FloatValue(10.5) {
		t.Errorf("c: got %+v, want float 10.5", v)
	}
}

func TestMapJSON_NestedValuesStoredAsText(t *testing.T) {
	t.Parallel()

	doc, err := MapJSON([]byte(`{"tags": ["a","b"], "meta": {"k": 1}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := doc.Get("tags"); v != domain.TextValue(`["a","b"]`) {
		t.Errorf("tags: got %+v", v)
	}
	if v, _ := doc.Get("meta"); v != domain.TextValue(`{"k":1}`) {
		t.Errorf("meta: got %+v", v)
	}
}

func TestMapJSON_RejectsNonObject(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{`[1,2]`, `"str"`, `42`, `not json`} {
		if _, err := MapJSON([]byte(payload)); err == nil {
			t.Errorf("payload %s: expected error", payload)
		}
	}
}
