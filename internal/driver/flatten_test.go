package driver

import (
	"reflect"
	"testing"
)

func TestFlattenJSON(t *testing.T) {
	doc := []byte(`{
		"name": "Alice",
		"age": 30,
		"active": true,
		"nickname": null,
		"address": {"city": "Riga", "zip": "LV-1010"},
		"items": [
			{"name": "first", "price": 9.99},
			{"name": ""}
		]
	}`)

	got, err := FlattenJSON(doc)
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}

	want := map[string]string{
		"name":          "Alice",
		"age":           "30",
		"active":        "true",
		"nickname":      "",
		"address.city":  "Riga",
		"address.zip":   "LV-1010",
		"items.0.name":  "first",
		"items.0.price": "9.99",
		"items.1.name":  "",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("flattened = %v, want %v", got, want)
	}
}

func TestFlattenJSONKeepsNumberForm(t *testing.T) {
	got, err := FlattenJSON([]byte(`{"a": 1.50, "b": 1e3}`))
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	// json.Number preserves the source text, no float round-trip.
	if got["a"] != "1.50" || got["b"] != "1e3" {
		t.Fatalf("number forms = %v", got)
	}
}

func TestFlattenJSONRejectsInvalid(t *testing.T) {
	if _, err := FlattenJSON([]byte(`{"a":`)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}
