package bag

import "testing"

func TestFormatSubstitution(t *testing.T) {
	b := New()
	b.Add("foo", "bar")

	if got := b.First("foo", ":key :message"); got != "foo bar" {
		t.Fatalf("per-call format = %q, want %q", got, "foo bar")
	}

	b.SetFormat("<li>:message</li>")
	if got := b.First("foo"); got != "<li>bar</li>" {
		t.Fatalf("default format = %q", got)
	}
	if b.Format() != "<li>:message</li>" {
		t.Fatalf("format accessor = %q", b.Format())
	}

	// Override wins over the stored default for a single call.
	if got := b.First("foo", ":message"); got != "bar" {
		t.Fatalf("override = %q, want raw message", got)
	}
}

func TestDefaultFormatIsIdentity(t *testing.T) {
	b := New()
	b.Add("foo", "a :key inside the message")

	// The :message fast path must not substitute tokens in the raw text.
	if got := b.First("foo"); got != "a :key inside the message" {
		t.Fatalf("identity format mangled the message: %q", got)
	}
}

func TestFormatAppliesToEveryRetrieval(t *testing.T) {
	b := New()
	b.Add("foo", "1")
	b.Add("bar", "2")

	all := b.All("(:key) :message")
	if len(all) != 2 || all[0] != "(foo) 1" || all[1] != "(bar) 2" {
		t.Fatalf("formatted all = %v", all)
	}

	res := b.Get("b*", "[:key] :message")
	if res.Exact || res.Groups["bar"][0] != "[bar] 2" {
		t.Fatalf("formatted wildcard get = %+v", res)
	}
}
