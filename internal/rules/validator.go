package rules

import (
	"sort"
	"strings"

	"msgbag/internal/bag"
)

// Validator applies a rule set to a flat field→value map and accumulates
// failures into a message bag keyed by field.
type Validator struct {
	data       map[string]string
	fields     []string
	rules      map[string][]rule
	messages   map[string]string
	attributes map[string]string

	errors  *bag.Bag
	checked bool
}

// Make builds a validator for data under the given rules. Fields are
// evaluated in sorted order so the resulting bag is deterministic.
func Make(data map[string]string, ruleSet Rules) *Validator {
	v := &Validator{
		data:       data,
		rules:      make(map[string][]rule, len(ruleSet)),
		messages:   map[string]string{},
		attributes: map[string]string{},
		errors:     bag.New(),
	}
	for field, spec := range ruleSet {
		v.fields = append(v.fields, field)
		v.rules[field] = parseRuleList(spec)
	}
	sort.Strings(v.fields)
	return v
}

// MakeList is Make for pre-split rule lists: every element is exactly one
// rule spec and is not re-split on '|', so regex parameters containing pipes
// stay intact.
func MakeList(data map[string]string, ruleSet map[string][]string) *Validator {
	v := &Validator{
		data:       data,
		rules:      make(map[string][]rule, len(ruleSet)),
		messages:   map[string]string{},
		attributes: map[string]string{},
		errors:     bag.New(),
	}
	for field, specs := range ruleSet {
		v.fields = append(v.fields, field)
		parsed := make([]rule, 0, len(specs))
		for _, spec := range specs {
			if spec = strings.TrimSpace(spec); spec != "" {
				parsed = append(parsed, parseRule(spec))
			}
		}
		v.rules[field] = parsed
	}
	sort.Strings(v.fields)
	return v
}

// WithMessages overrides failure wording. Keys are "field.rule" for one
// field or a bare rule name for every field using that rule.
func (v *Validator) WithMessages(messages map[string]string) *Validator {
	for k, m := range messages {
		v.messages[k] = m
	}
	return v
}

// WithAttributes overrides the display name used for :attribute and :other.
func (v *Validator) WithAttributes(attributes map[string]string) *Validator {
	for k, a := range attributes {
		v.attributes[k] = a
	}
	return v
}

// Passes runs the checks once and reports whether no message was recorded.
func (v *Validator) Passes() bool {
	v.run()
	return v.errors.IsEmpty()
}

// Fails is the negation of Passes.
func (v *Validator) Fails() bool { return !v.Passes() }

// Errors returns the bag of failures, running the checks if needed.
func (v *Validator) Errors() *bag.Bag {
	v.run()
	return v.errors
}

func (v *Validator) run() {
	if v.checked {
		return
	}
	v.checked = true
	for _, field := range v.fields {
		for _, key := range v.expand(field) {
			v.checkField(field, key)
		}
	}
}

// expand resolves a rule field to concrete data keys. Plain fields map to
// themselves whether or not the data holds them (required must see absent
// fields); wildcard fields expand to every matching data key, in sorted
// order, and silently vanish when nothing matches.
func (v *Validator) expand(field string) []string {
	if !strings.Contains(field, "*") {
		return []string{field}
	}
	var keys []string
	for key := range v.data {
		if bag.MatchKey(field, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func (v *Validator) checkField(field, dataKey string) {
	value, present := v.data[dataKey]
	list := v.rules[field]

	for _, r := range list {
		switch r.name {
		case "sometimes":
			if !present {
				return
			}
			continue
		case "nullable":
			if value == "" {
				return
			}
			continue
		case "required":
			// handled below like any other check
		default:
			// Non-required rules skip empty values; required alone decides
			// whether emptiness is an error.
			if value == "" {
				continue
			}
		}

		check, ok := checks[r.name]
		if !ok {
			// Unknown rule names are a ruleset bug, not a data error.
			continue
		}
		if !check(v, dataKey, value, r) {
			v.errors.Add(dataKey, v.message(field, dataKey, r))
		}
	}
}
