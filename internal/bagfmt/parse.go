package bagfmt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"msgbag/internal/bag"
)

// ParseJSON reads a bag back from JSON text. Accepted shapes are the bag's
// own output ({"key": ["msg", ...], ...}) and the wrapped form
// ({"errors": {...}}). Decoding walks the token stream so document order
// becomes bag insertion order; json.Unmarshal into a map would scramble it.
func ParseJSON(data []byte) (*bag.Bag, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse bag JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("bag JSON must be an object, got %v", tok)
	}

	b := bag.New()
	first := true
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse bag JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		// Wrapped form: a leading "errors" member holding an object is the
		// envelope, not a key.
		if first && key == "errors" && bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
			return ParseJSON(raw)
		}
		first = false

		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err != nil {
			return nil, fmt.Errorf("key %q: expected array of strings: %w", key, err)
		}
		b.MergeMap(map[string][]string{key: msgs})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse bag JSON: %w", err)
	}
	return b, nil
}
