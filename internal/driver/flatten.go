package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlattenJSON decodes a JSON document into a flat field→value map with
// dot-separated keys; array elements get numeric segments. The flattened
// shape is what makes wildcard rules and lookups like "items.*.name" work.
// Scalars are stringified (numbers keep their source form, null becomes "").
func FlattenJSON(data []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	out := make(map[string]string)
	flattenValue("", doc, out)
	return out, nil
}

func flattenValue(prefix string, v any, out map[string]string) {
	switch val := v.(type) {
	case map[string]any:
		for key, child := range val {
			flattenValue(joinKey(prefix, key), child, out)
		}
	case []any:
		for i, child := range val {
			flattenValue(joinKey(prefix, strconv.Itoa(i)), child, out)
		}
	case string:
		out[prefix] = val
	case json.Number:
		out[prefix] = val.String()
	case bool:
		out[prefix] = strconv.FormatBool(val)
	case nil:
		out[prefix] = ""
	}
}

func joinKey(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}
