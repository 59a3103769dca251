package rules

import "strings"

// defaultMessages holds the wording used when no per-field override exists.
// Placeholders: :attribute (display name), :min/:max/:size/:value (rule
// parameters), :other (the compared field's display name).
var defaultMessages = map[string]string{
	"required":   "The :attribute field is required.",
	"string":     "The :attribute must be a string.",
	"min":        "The :attribute must be at least :min characters.",
	"max":        "The :attribute may not be greater than :max characters.",
	"size":       "The :attribute must be :size characters.",
	"between":    "The :attribute must be between :min and :max characters.",
	"alpha":      "The :attribute may only contain letters.",
	"alpha_num":  "The :attribute may only contain letters and numbers.",
	"alpha_dash": "The :attribute may only contain letters, numbers, dashes and underscores.",
	"regex":      "The :attribute format is invalid.",
	"email":      "The :attribute must be a valid email address.",
	"url":        "The :attribute format is invalid.",
	"numeric":    "The :attribute must be a number.",
	"integer":    "The :attribute must be an integer.",
	"gt":         "The :attribute must be greater than :value.",
	"gte":        "The :attribute must be greater than or equal to :value.",
	"lt":         "The :attribute must be less than :value.",
	"lte":        "The :attribute must be less than or equal to :value.",
	"confirmed":  "The :attribute confirmation does not match.",
	"same":       "The :attribute and :other must match.",
	"different":  "The :attribute and :other must be different.",
	"boolean":    "The :attribute field must be true or false.",
	"in":         "The selected :attribute is invalid.",
	"not_in":     "The selected :attribute is invalid.",
}

const fallbackMessage = "The :attribute is invalid."

// message renders the failure text for field under r. Custom messages are
// looked up as "field.rule" first, then "rule", then the built-in default.
func (v *Validator) message(field, dataKey string, r rule) string {
	tpl, ok := v.messages[field+"."+r.name]
	if !ok {
		tpl, ok = v.messages[r.name]
	}
	if !ok {
		tpl, ok = defaultMessages[r.name]
	}
	if !ok {
		tpl = fallbackMessage
	}

	rep := strings.NewReplacer(
		":attribute", v.displayName(dataKey),
		":other", v.displayName(r.param(0)),
		":min", r.param(0),
		":max", maxParam(r),
		":size", r.param(0),
		":value", r.param(0),
	)
	return rep.Replace(tpl)
}

// between carries min,max while min/max/size/gt… carry a single parameter.
func maxParam(r rule) string {
	if r.name == "between" {
		return r.param(1)
	}
	return r.param(0)
}

// displayName resolves the human wording for a field: an explicit attribute
// alias if present, otherwise the key with separators turned into spaces.
func (v *Validator) displayName(field string) string {
	if alias, ok := v.attributes[field]; ok {
		return alias
	}
	return strings.NewReplacer("_", " ", ".", " ").Replace(field)
}
