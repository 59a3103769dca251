package bag

import (
	"regexp"
	"strings"
)

// matcher tests stored keys against one wildcard pattern. Every '*' in the
// pattern matches zero or more characters of any kind; every other regex
// metacharacter is literal. The translated expression is anchored at the
// start of the candidate only, so a pattern may match as a prefix.
type matcher struct {
	pattern string
	re      *regexp.Regexp
}

func newMatcher(pattern string) matcher {
	expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, ".*")
	re, err := regexp.Compile(expr)
	if err != nil {
		// QuoteMeta leaves nothing to miscompile; treat failure as match-nothing.
		re = nil
	}
	return matcher{pattern: pattern, re: re}
}

func (m matcher) match(key string) bool {
	if m.pattern == key {
		return true
	}
	return m.re != nil && m.re.MatchString(key)
}

// MatchKey reports whether pattern matches key under the bag's wildcard
// rules. Exposed for callers that match against keys not stored in a bag,
// such as wildcard rule expansion in the rules engine.
func MatchKey(pattern, key string) bool {
	return newMatcher(pattern).match(key)
}
