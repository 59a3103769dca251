package bagfmt

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"msgbag/internal/bag"
)

// Current schema version - increment when Payload format changes
const payloadSchemaVersion uint16 = 1

// Payload is the msgpack wire form of a bag. Keys carry insertion order
// separately because the map loses it.
type Payload struct {
	Schema   uint16
	Format   string
	Keys     []string
	Messages map[string][]string
	Count    uint32
}

// EncodeMsgpack serialises a bag into the versioned msgpack payload.
func EncodeMsgpack(b *bag.Bag) ([]byte, error) {
	count, err := safecast.Conv[uint32](b.Count())
	if err != nil {
		return nil, fmt.Errorf("bag too large for payload: %w", err)
	}
	payload := Payload{
		Schema:   payloadSchemaVersion,
		Format:   b.Format(),
		Keys:     b.Keys(),
		Messages: b.ToMap(),
		Count:    count,
	}
	return msgpack.Marshal(&payload)
}

// DecodeMsgpack rebuilds a bag from a payload, restoring key order and the
// stored default format. Unknown schema versions are rejected rather than
// misread.
func DecodeMsgpack(data []byte) (*bag.Bag, error) {
	var payload Payload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if payload.Schema != payloadSchemaVersion {
		return nil, fmt.Errorf("unsupported payload schema %d (want %d)", payload.Schema, payloadSchemaVersion)
	}

	b := bag.New()
	if payload.Format != "" {
		b.SetFormat(payload.Format)
	}
	for _, key := range payload.Keys {
		// MergeMap keeps duplicate messages; Add would silently drop the
		// duplicates a concatenative Merge may have produced upstream.
		b.MergeMap(map[string][]string{key: payload.Messages[key]})
	}
	return b, nil
}
