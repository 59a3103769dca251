package rules

import (
	"reflect"
	"strings"
	"testing"
)

func TestPassesAndFails(t *testing.T) {
	v := Make(map[string]string{
		"name":  "Alice",
		"email": "alice@example.com",
	}, Rules{
		"name":  "required|min:2|max:100",
		"email": "required|email",
	})
	if !v.Passes() {
		t.Fatalf("expected pass, got errors: %v", v.Errors().All())
	}

	v = Make(map[string]string{"email": "not-an-email"}, Rules{
		"name":  "required",
		"email": "required|email",
	})
	if !v.Fails() {
		t.Fatal("expected failure")
	}
	if got := v.Errors().First("name"); got != "The name field is required." {
		t.Fatalf("required message = %q", got)
	}
	if got := v.Errors().First("email"); got != "The email must be a valid email address." {
		t.Fatalf("email message = %q", got)
	}
}

func TestErrorsAreDeterministicallyOrdered(t *testing.T) {
	v := Make(map[string]string{}, Rules{
		"zeta":  "required",
		"alpha": "required",
		"mid":   "required",
	})
	want := []string{"alpha", "mid", "zeta"}
	if got := v.Errors().Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("error keys = %v, want %v", got, want)
	}
}

func TestEmptyValuesSkipNonRequiredRules(t *testing.T) {
	v := Make(map[string]string{"age": ""}, Rules{"age": "integer|gte:18"})
	if v.Fails() {
		t.Fatalf("empty optional value must not fail: %v", v.Errors().All())
	}

	v = Make(map[string]string{"age": "seventeen"}, Rules{"age": "integer|gte:18"})
	got := v.Errors().Get("age").Messages
	want := []string{
		"The age must be an integer.",
		"The age must be greater than or equal to 18.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("messages = %v, want %v", got, want)
	}
}

func TestNullableStopsProcessing(t *testing.T) {
	v := Make(map[string]string{"nickname": ""}, Rules{"nickname": "nullable|min:3"})
	if v.Fails() {
		t.Fatalf("nullable empty value failed: %v", v.Errors().All())
	}
}

func TestSometimesSkipsAbsentFields(t *testing.T) {
	v := Make(map[string]string{}, Rules{"phone": "sometimes|required|numeric"})
	if v.Fails() {
		t.Fatalf("sometimes on absent field failed: %v", v.Errors().All())
	}

	v = Make(map[string]string{"phone": "abc"}, Rules{"phone": "sometimes|required|numeric"})
	if !v.Fails() {
		t.Fatal("present field must still be checked")
	}
}

func TestCrossFieldRules(t *testing.T) {
	data := map[string]string{
		"password":              "hunter2!",
		"password_confirmation": "hunter2",
		"old_password":          "hunter2!",
	}
	v := Make(data, Rules{"password": "required|confirmed|different:old_password"})
	msgs := v.Errors().Get("password").Messages
	if len(msgs) != 2 {
		t.Fatalf("expected confirmed+different failures, got %v", msgs)
	}
	if !strings.Contains(msgs[0], "confirmation does not match") {
		t.Fatalf("confirmed message = %q", msgs[0])
	}
	if !strings.Contains(msgs[1], "old password must be different") {
		t.Fatalf("different message = %q", msgs[1])
	}
}

func TestWildcardFieldsExpandAgainstData(t *testing.T) {
	data := map[string]string{
		"items.0.name": "ok",
		"items.1.name": "",
		"items.2.name": "x",
	}
	v := Make(data, Rules{"items.*.name": "required|min:2"})
	errs := v.Errors()

	if errs.Has("items.0.name") {
		t.Fatal("valid element must not error")
	}
	if !errs.Has("items.1.name", "items.2.name") {
		t.Fatalf("expected errors for elements 1 and 2: %v", errs.All())
	}
	if got := errs.First("items.*"); got == "" {
		t.Fatal("wildcard lookup over expanded keys must find a message")
	}
}

func TestCustomMessagesAndAttributes(t *testing.T) {
	v := Make(map[string]string{}, Rules{"email": "required"}).
		WithMessages(map[string]string{"email.required": "we need your :attribute"}).
		WithAttributes(map[string]string{"email": "e-mail address"})

	if got := v.Errors().First("email"); got != "we need your e-mail address" {
		t.Fatalf("custom message = %q", got)
	}
}

func TestRuleParsingEdgeCases(t *testing.T) {
	// regex keeps everything after the first colon, commas included
	v := Make(map[string]string{"code": "a,b"}, Rules{"code": `regex:^[a-z],[a-z]$`})
	if v.Fails() {
		t.Fatalf("regex with comma failed: %v", v.Errors().All())
	}

	// between carries two parameters
	v = Make(map[string]string{"bio": "hello"}, Rules{"bio": "between:2,10"})
	if v.Fails() {
		t.Fatalf("between failed: %v", v.Errors().All())
	}
	v = Make(map[string]string{"bio": "x"}, Rules{"bio": "between:2,10"})
	if got := v.Errors().First("bio"); got != "The bio must be between 2 and 10 characters." {
		t.Fatalf("between message = %q", got)
	}
}

func TestMakeListKeepsPipesInsideRegex(t *testing.T) {
	v := MakeList(map[string]string{"tag": "beta"}, map[string][]string{
		"tag": {"required", `regex:^(alpha|beta)$`},
	})
	if v.Fails() {
		t.Fatalf("alternation regex failed: %v", v.Errors().All())
	}
}

func TestChecksTable(t *testing.T) {
	cases := []struct {
		rule  string
		value string
		pass  bool
	}{
		{"min:3", "ab", false},
		{"min:3", "abc", true},
		{"min:2", "éx", true}, // decomposed é counts as one character
		{"max:3", "abcd", false},
		{"size:4", "abcd", true},
		{"alpha", "abcДЖ", true},
		{"alpha", "ab1", false},
		{"alpha_num", "ab1", true},
		{"alpha_dash", "ab-1_c", true},
		{"alpha_dash", "ab c", false},
		{"email", "a@b.co", true},
		{"email", "Alice <a@b.co>", false},
		{"url", "https://example.com", true},
		{"url", "https://example.com/x?q=1", true},
		{"url", "ftp://example.com", false},
		{"url", "http://", false},            // scheme without host
		{"url", "https://not a url", false},  // spaces are not a URL
		{"url", "example.com", false},        // scheme required
		{"numeric", "3.25", true},
		{"numeric", "3,25", false},
		{"integer", "42", true},
		{"integer", "4.2", false},
		{"gt:10", "11", true},
		{"lt:10", "10", false},
		{"boolean", "Yes", true},
		{"boolean", "maybe", false},
		{"in:red,green", "green", true},
		{"in:red,green", "blue", false},
		{"not_in:red,green", "blue", true},
	}

	for _, tc := range cases {
		v := Make(map[string]string{"f": tc.value}, Rules{"f": tc.rule})
		if got := v.Passes(); got != tc.pass {
			t.Errorf("rule %q on %q: passes = %v, want %v (errors: %v)",
				tc.rule, tc.value, got, tc.pass, v.Errors().All())
		}
	}
}
