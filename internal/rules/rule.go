package rules

import "strings"

// Rules maps a field name (possibly containing '*' wildcards) to its
// pipe-separated rule string.
type Rules map[string]string

type rule struct {
	name   string
	params []string
}

// parseRuleList splits a pipe-separated rule string into individual rules.
// "regex" keeps everything after the first colon as a single parameter, since
// patterns routinely contain commas. Patterns containing '|' cannot be
// expressed in the pipe form at all; use the TOML array form for those.
func parseRuleList(spec string) []rule {
	parts := strings.Split(spec, "|")
	out := make([]rule, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, parseRule(part))
	}
	return out
}

func parseRule(spec string) rule {
	name, rest, ok := strings.Cut(spec, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	if !ok {
		return rule{name: name}
	}
	if name == "regex" {
		return rule{name: name, params: []string{rest}}
	}
	params := strings.Split(rest, ",")
	for i := range params {
		params[i] = strings.TrimSpace(params[i])
	}
	return rule{name: name, params: params}
}

func (r rule) param(i int) string {
	if i < len(r.params) {
		return r.params[i]
	}
	return ""
}
