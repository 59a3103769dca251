// Package bag defines the message-bag container shared by the rules engine,
// the driver and the CLI.
//
// # Purpose
//
//   - Provide a deterministic, serialisable container that accumulates
//     textual messages (typically validation errors) under string keys.
//   - Offer lookup by exact key or by wildcard pattern, plus per-message
//     output formatting through a small ":message"/":key" template.
//   - Stay a pure in-memory value type: no IO, no locking, no error paths.
//
// # Scope
//
// Package bag does not decide what messages mean or how they are rendered to
// a terminal. Producers live in internal/rules and the driver layer; rendering
// responsibilities live in internal/bagfmt.
//
// # Data model
//
// Bag is the central record. It keeps:
//
//   - an insertion-ordered list of keys, never reordered by later inserts;
//   - per key, an ordered sequence of messages. Add refuses exact duplicates
//     within a key; Merge deliberately does not (see Merge).
//   - a per-instance default format template, ":message" by default.
//
// All operations are total over their input types: a missing key yields an
// empty result, never an error. A Bag is not safe for concurrent use; callers
// that share one across goroutines must synchronise access themselves.
package bag
