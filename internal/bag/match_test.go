package bag

import "testing"

func TestMatchKey(t *testing.T) {
	cases := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"foo", "foo", true},
		{"foo", "Foo", false}, // case-sensitive
		{"foo.*", "foo.1", true},
		{"foo.*", "foo.", true}, // star matches zero characters
		{"foo.*", "foo", false},
		{"foo.*.name", "foo.12.name", true},
		{"foo.*.name", "foo.12.name.deep", true}, // prefix-anchored, not full-string
		{"foo.*.name", "foo.12.title", false},
		{"*", "anything at all", true},
		{"*", "", true},
		{"a*c", "abc", true},
		{"a*c", "ac", true},
		{"a*c", "a/weird|key?c", true}, // star crosses any characters
		{"a*c", "bac", false},          // anchored at start
		{"price.(usd)", "price.(usd)", true},
		{"price.(usd)", "price.Xusd)", false}, // metacharacters stay literal
		{"foo+", "foo", false},
		{"foo+", "foo+bar", true}, // prefix match after literal '+'
	}

	for _, tc := range cases {
		if got := MatchKey(tc.pattern, tc.key); got != tc.want {
			t.Errorf("MatchKey(%q, %q) = %v, want %v", tc.pattern, tc.key, got, tc.want)
		}
	}
}
