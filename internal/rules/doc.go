// Package rules evaluates pipe-separated validation rule strings against a
// flat string map and collects failures into a bag.Bag, one key per field.
//
// A rule string looks like "required|min:2|email". Rule names map to checks
// in checks.go; parameters follow a colon and are comma-separated. Fields may
// contain '*' wildcards, which expand against the data keys before checking.
// Default message wording lives in messages.go and can be overridden per
// field.rule, as can display names for attributes.
package rules
