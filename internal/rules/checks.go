package rules

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// checkFn reports whether value passes the rule. The validator is passed in
// for cross-field rules (confirmed, same, different).
type checkFn func(v *Validator, field, value string, r rule) bool

var checks = map[string]checkFn{
	"string": func(*Validator, string, string, rule) bool { return true },
	"required": func(_ *Validator, _, value string, _ rule) bool {
		return strings.TrimSpace(value) != ""
	},
	"min": func(_ *Validator, _, value string, r rule) bool {
		n, err := strconv.Atoi(r.param(0))
		return err == nil && charLen(value) >= n
	},
	"max": func(_ *Validator, _, value string, r rule) bool {
		n, err := strconv.Atoi(r.param(0))
		return err == nil && charLen(value) <= n
	},
	"size": func(_ *Validator, _, value string, r rule) bool {
		n, err := strconv.Atoi(r.param(0))
		return err == nil && charLen(value) == n
	},
	"between": func(_ *Validator, _, value string, r rule) bool {
		lo, err1 := strconv.Atoi(r.param(0))
		hi, err2 := strconv.Atoi(r.param(1))
		n := charLen(value)
		return err1 == nil && err2 == nil && n >= lo && n <= hi
	},
	"alpha": func(_ *Validator, _, value string, _ rule) bool {
		return allRunes(value, unicode.IsLetter)
	},
	"alpha_num": func(_ *Validator, _, value string, _ rule) bool {
		return allRunes(value, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		})
	},
	"alpha_dash": func(_ *Validator, _, value string, _ rule) bool {
		return allRunes(value, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
		})
	},
	"regex": func(_ *Validator, _, value string, r rule) bool {
		re, err := regexp.Compile(r.param(0))
		return err == nil && re.MatchString(value)
	},
	"email": func(_ *Validator, _, value string, _ rule) bool {
		addr, err := mail.ParseAddress(value)
		// Reject the "Name <addr>" form; only the bare address counts.
		return err == nil && addr.Address == value
	},
	"url": func(_ *Validator, _, value string, _ rule) bool {
		u, err := url.ParseRequestURI(value)
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	},
	"numeric": func(_ *Validator, _, value string, _ rule) bool {
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	},
	"integer": func(_ *Validator, _, value string, _ rule) bool {
		_, err := strconv.Atoi(value)
		return err == nil
	},
	"gt":  numericCompare(func(a, b float64) bool { return a > b }),
	"gte": numericCompare(func(a, b float64) bool { return a >= b }),
	"lt":  numericCompare(func(a, b float64) bool { return a < b }),
	"lte": numericCompare(func(a, b float64) bool { return a <= b }),
	"confirmed": func(v *Validator, field, value string, _ rule) bool {
		return v.data[field+"_confirmation"] == value
	},
	"same": func(v *Validator, _, value string, r rule) bool {
		return v.data[r.param(0)] == value
	},
	"different": func(v *Validator, _, value string, r rule) bool {
		return v.data[r.param(0)] != value
	},
	"boolean": func(_ *Validator, _, value string, _ rule) bool {
		switch strings.ToLower(value) {
		case "true", "false", "1", "0", "yes", "no":
			return true
		}
		return false
	},
	"in": func(_ *Validator, _, value string, r rule) bool {
		for _, p := range r.params {
			if p == value {
				return true
			}
		}
		return false
	},
	"not_in": func(_ *Validator, _, value string, r rule) bool {
		for _, p := range r.params {
			if p == value {
				return false
			}
		}
		return true
	},
}

func numericCompare(cmp func(a, b float64) bool) checkFn {
	return func(_ *Validator, _, value string, r rule) bool {
		a, err1 := strconv.ParseFloat(value, 64)
		b, err2 := strconv.ParseFloat(r.param(0), 64)
		return err1 == nil && err2 == nil && cmp(a, b)
	}
}

// charLen counts user-visible characters. Values are NFC-normalised first so
// a decomposed "é" counts once, matching what min/max promise the user.
func charLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func allRunes(s string, ok func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !ok(r) {
			return false
		}
	}
	return true
}
