package rules

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Ruleset is the on-disk description of a validation run: rule strings per
// field plus optional message and attribute overrides.
type Ruleset struct {
	// Rules holds one rule spec per element, already split: the pipe form is
	// exploded on load, the array form is taken verbatim so '|' inside a
	// regex parameter survives.
	Rules      map[string][]string
	Messages   map[string]string
	Attributes map[string]string
}

type rulesetFile struct {
	Rules      map[string]toml.Primitive `toml:"rules"`
	Messages   map[string]string         `toml:"messages"`
	Attributes map[string]string         `toml:"attributes"`
}

// Load reads a ruleset from a TOML file. A rule value is either a
// pipe-separated string or an array of rule strings; the array form exists
// for rules whose parameters contain '|' (regex, mostly).
//
//	[rules]
//	username = "required|min:3"
//	tag      = ["required", "regex:^(a|b)$"]
//
//	[messages]
//	"username.required" = "pick a username"
//
//	[attributes]
//	username = "user name"
func Load(path string) (*Ruleset, error) {
	var raw rulesetFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("rules") {
		return nil, fmt.Errorf("%s: missing [rules]", path)
	}
	if len(raw.Rules) == 0 {
		return nil, fmt.Errorf("%s: [rules] is empty", path)
	}

	rs := &Ruleset{
		Rules:      make(map[string][]string, len(raw.Rules)),
		Messages:   raw.Messages,
		Attributes: raw.Attributes,
	}
	for field, prim := range raw.Rules {
		var single string
		if err := meta.PrimitiveDecode(prim, &single); err == nil {
			for _, spec := range strings.Split(single, "|") {
				if spec = strings.TrimSpace(spec); spec != "" {
					rs.Rules[field] = append(rs.Rules[field], spec)
				}
			}
			continue
		}
		var many []string
		if err := meta.PrimitiveDecode(prim, &many); err != nil {
			return nil, fmt.Errorf("%s: rules.%s must be a string or array of strings", path, field)
		}
		rs.Rules[field] = many
	}
	return rs, nil
}

// Validate runs the ruleset against data with its overrides applied.
func (rs *Ruleset) Validate(data map[string]string) *Validator {
	return MakeList(data, rs.Rules).
		WithMessages(rs.Messages).
		WithAttributes(rs.Attributes)
}
