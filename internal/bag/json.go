package bag

import (
	"encoding/json"
	"strings"
)

// ToJSON serialises the raw mapping as a JSON object whose member order is
// the bag's key insertion order. encoding/json cannot do that for a map, so
// the object is assembled by hand with json.Marshal handling escaping per
// element. indent is the number of spaces per level; omitted or zero means
// compact output.
func (b *Bag) ToJSON(indent ...int) string {
	n := 0
	if len(indent) > 0 && indent[0] > 0 {
		n = indent[0]
	}
	if len(b.keys) == 0 {
		return "{}"
	}

	pad := strings.Repeat(" ", n)
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range b.keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		if n > 0 {
			sb.WriteByte('\n')
			sb.WriteString(pad)
		}
		writeJSONString(&sb, key)
		sb.WriteByte(':')
		if n > 0 {
			sb.WriteByte(' ')
		}
		writeJSONArray(&sb, b.entries[key], pad, n)
	}
	if n > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteByte('}')
	return sb.String()
}

// String is ToJSON with zero indentation.
func (b *Bag) String() string {
	return b.ToJSON()
}

func writeJSONString(sb *strings.Builder, s string) {
	raw, err := json.Marshal(s)
	if err != nil {
		// Marshal of a string cannot fail.
		sb.WriteString(`""`)
		return
	}
	sb.Write(raw)
}

func writeJSONArray(sb *strings.Builder, msgs []string, pad string, n int) {
	if len(msgs) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteByte(',')
		}
		if n > 0 {
			sb.WriteByte('\n')
			sb.WriteString(pad)
			sb.WriteString(pad)
		}
		writeJSONString(sb, msg)
	}
	if n > 0 {
		sb.WriteByte('\n')
		sb.WriteString(pad)
	}
	sb.WriteByte(']')
}
