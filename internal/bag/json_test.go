package bag

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestToJSONCompact(t *testing.T) {
	b := New()
	b.Add("foo", "bar")
	b.Add("boom", "baz")

	want := `{"foo":["bar"],"boom":["baz"]}`
	if got := b.ToJSON(0); got != want {
		t.Fatalf("compact json = %s, want %s", got, want)
	}
	if b.String() != want {
		t.Fatalf("String() must equal compact ToJSON")
	}
}

func TestToJSONEmpty(t *testing.T) {
	if got := New().ToJSON(); got != "{}" {
		t.Fatalf("empty bag json = %s", got)
	}
}

func TestToJSONIndented(t *testing.T) {
	b := New()
	b.Add("foo", "bar")

	want := "{\n  \"foo\": [\n    \"bar\"\n  ]\n}"
	if got := b.ToJSON(2); got != want {
		t.Fatalf("indented json:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestToJSONEscapesAndRoundTrips(t *testing.T) {
	b := New()
	b.Add(`we"ird`, "line\nbreak")
	b.Add("plain", `back\slash`)

	var decoded map[string][]string
	if err := json.Unmarshal([]byte(b.ToJSON()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, b.ToMap()) {
		t.Fatalf("decoded = %v, want %v", decoded, b.ToMap())
	}
}
