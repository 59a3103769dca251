package bag

import (
	"slices"
	"sort"
	"strings"
)

// DefaultFormat leaves messages untouched: the raw text passes through.
const DefaultFormat = ":message"

// Bag holds messages grouped under string keys, in insertion order.
// The zero value is not usable; construct with New or FromMap.
type Bag struct {
	keys    []string
	entries map[string][]string
	format  string
}

// New returns an empty bag with the default format.
func New() *Bag {
	return &Bag{
		entries: make(map[string][]string),
		format:  DefaultFormat,
	}
}

// FromMap seeds a bag from a key→sequence mapping. Duplicates within a
// sequence are dropped, keeping the first occurrence. Go maps carry no order,
// so seeded keys are inserted in sorted order for determinism.
func FromMap(init map[string][]string) *Bag {
	b := New()
	for _, key := range sortedKeys(init) {
		for _, msg := range init[key] {
			b.Add(key, msg)
		}
	}
	return b
}

// FromStringMap seeds a bag from a key→single-message mapping; each value is
// normalised into a one-element sequence. Keys are inserted in sorted order.
func FromStringMap(init map[string]string) *Bag {
	b := New()
	for _, key := range sortedKeys(init) {
		b.Add(key, init[key])
	}
	return b
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add appends message under key unless that exact message is already stored
// for the key. A new key is created on first use and keeps its position in
// iteration order forever. Returns the bag for chaining.
func (b *Bag) Add(key, message string) *Bag {
	if slices.Contains(b.entries[key], message) {
		return b
	}
	if _, ok := b.entries[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.entries[key] = append(b.entries[key], message)
	return b
}

// AddIf is Add gated on condition; a no-op when condition is false.
func (b *Bag) AddIf(condition bool, key, message string) *Bag {
	if condition {
		b.Add(key, message)
	}
	return b
}

// Merge appends every sequence of other onto this bag, creating keys as
// needed. Unlike Add, Merge does NOT deduplicate: merging {foo: [bar]} into a
// bag already holding {foo: [bar]} yields {foo: [bar, bar]}. The asymmetry is
// part of the contract; do not align it with Add.
func (b *Bag) Merge(other *Bag) *Bag {
	if other == nil {
		return b
	}
	for _, key := range other.keys {
		b.appendAll(key, other.entries[key])
	}
	return b
}

// MergeMap is Merge for a raw key→sequence mapping. Keys absent from the bag
// are inserted in sorted order, since a Go map carries no order of its own.
func (b *Bag) MergeMap(m map[string][]string) *Bag {
	for _, key := range sortedKeys(m) {
		b.appendAll(key, m[key])
	}
	return b
}

func (b *Bag) appendAll(key string, msgs []string) {
	if len(msgs) == 0 {
		return
	}
	if _, ok := b.entries[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.entries[key] = append(b.entries[key], msgs...)
}

// Result is the outcome of a Get lookup. The shape depends on the key:
// an exact hit yields Messages, a wildcard lookup yields Keys+Groups.
// Callers must branch on Exact.
type Result struct {
	// Exact is true when the key named a stored sequence verbatim (or named
	// no sequence and contained no wildcard, in which case Messages is empty).
	Exact bool
	// Messages holds the formatted sequence for an exact lookup.
	Messages []string
	// Keys lists matched keys in stored order for a wildcard lookup.
	Keys []string
	// Groups maps each matched key to its formatted sequence.
	Groups map[string][]string
}

// Get returns the messages stored under key, formatted. An exact key yields
// its sequence; a key containing '*' is treated as a wildcard pattern and
// yields a mapping of every matching stored key to its formatted sequence.
// An absent non-wildcard key yields an empty sequence, not an empty mapping.
// An optional format overrides the bag default for this call only.
func (b *Bag) Get(key string, format ...string) Result {
	f := b.resolveFormat(format)
	if msgs, ok := b.entries[key]; ok {
		return Result{Exact: true, Messages: formatAll(f, key, msgs)}
	}
	if !strings.Contains(key, "*") {
		return Result{Exact: true, Messages: []string{}}
	}
	res := Result{Groups: make(map[string][]string)}
	m := newMatcher(key)
	for _, k := range b.keys {
		if m.match(k) {
			res.Keys = append(res.Keys, k)
			res.Groups[k] = formatAll(f, k, b.entries[k])
		}
	}
	return res
}

// First returns the first formatted message found under key, or "" when
// nothing matches. An empty key searches the whole bag. Wildcard lookups are
// flattened in stored-key order before taking the first element.
func (b *Bag) First(key string, format ...string) string {
	if key == "" {
		for _, k := range b.keys {
			if msgs := b.entries[k]; len(msgs) > 0 {
				return applyFormat(b.resolveFormat(format), k, msgs[0])
			}
		}
		return ""
	}
	res := b.Get(key, format...)
	if res.Exact {
		if len(res.Messages) > 0 {
			return res.Messages[0]
		}
		return ""
	}
	for _, k := range res.Keys {
		if msgs := res.Groups[k]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// Has reports whether every given key (exact or wildcard) has at least one
// message. With no keys it asks whether the bag holds anything at all.
// Always false on an empty bag.
func (b *Bag) Has(keys ...string) bool {
	if b.IsEmpty() {
		return false
	}
	if len(keys) == 0 {
		return true
	}
	for _, key := range keys {
		if b.First(key) == "" {
			return false
		}
	}
	return true
}

// HasAny reports whether any of the given keys has at least one message.
// Same input shapes as Has, OR semantics instead of AND.
func (b *Bag) HasAny(keys ...string) bool {
	if b.IsEmpty() {
		return false
	}
	if len(keys) == 0 {
		return true
	}
	for _, key := range keys {
		if b.First(key) != "" {
			return true
		}
	}
	return false
}

// Keys returns the stored keys in first-insertion order.
func (b *Bag) Keys() []string {
	return slices.Clone(b.keys)
}

// All returns every formatted message across every key, flattened in
// insertion order (keys first, then each key's sequence).
func (b *Bag) All(format ...string) []string {
	f := b.resolveFormat(format)
	out := make([]string, 0, b.Count())
	for _, key := range b.keys {
		out = append(out, formatAll(f, key, b.entries[key])...)
	}
	return out
}

// Unique is All with exact-duplicate formatted strings removed, keeping the
// first occurrence of each.
func (b *Bag) Unique(format ...string) []string {
	all := b.All(format...)
	seen := make(map[string]struct{}, len(all))
	out := all[:0]
	for _, msg := range all {
		if _, ok := seen[msg]; ok {
			continue
		}
		seen[msg] = struct{}{}
		out = append(out, msg)
	}
	return out
}

// Count returns the total number of stored messages across all keys.
func (b *Bag) Count() int {
	n := 0
	for _, msgs := range b.entries {
		n += len(msgs)
	}
	return n
}

// Len is Count.
func (b *Bag) Len() int { return b.Count() }

// IsEmpty reports whether the bag holds no messages.
func (b *Bag) IsEmpty() bool { return b.Count() == 0 }

// IsNotEmpty reports whether the bag holds at least one message.
func (b *Bag) IsNotEmpty() bool { return !b.IsEmpty() }

// Format returns the bag's default format template.
func (b *Bag) Format() string { return b.format }

// SetFormat replaces the bag's default format template.
func (b *Bag) SetFormat(format string) *Bag {
	b.format = format
	return b
}

func (b *Bag) resolveFormat(override []string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return b.format
}

// ToMap returns the raw key→sequence mapping, unformatted. The sequences are
// copies; mutating them does not touch the bag. Key order is not carried by
// the map, use Keys for that.
func (b *Bag) ToMap() map[string][]string {
	out := make(map[string][]string, len(b.entries))
	for key, msgs := range b.entries {
		out[key] = slices.Clone(msgs)
	}
	return out
}
