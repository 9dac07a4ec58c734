package content

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var testProfile = Profile{
	FullName: "Jan Kowalski",
	Email:    "jan@example.org",
	Phone:    "+48 111 222 333",
	GitHub:   "https://github.com/jank",
}

func TestResolveAliases(t *testing.T) {
	got := Resolve("Hi {{ full_name_from_external_file }} <{{email_from_external_file}}>", testProfile)
	want := "Hi Jan Kowalski <jan@example.org>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveDirectProfileKey(t *testing.T) {
	if got := Resolve("{{ github }}", testProfile); got != "https://github.com/jank" {
		t.Fatalf("got %q", got)
	}
	// snake_case spelling resolves too
	if got := Resolve("{{ full_name }}", testProfile); got != "Jan Kowalski" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveUnknownTokenYieldsEmpty(t *testing.T) {
	got := Resolve("before {{ no_such_key }} after", testProfile)
	if got != "before  after" {
		t.Fatalf("unknown token must resolve to empty string, got %q", got)
	}
}

func TestResolvePreservesShape(t *testing.T) {
	in := map[string]any{
		"title": "{{ full_name_from_external_file }}",
		"items": []any{"{{email}}", float64(7), true},
		"nested": map[string]any{
			"phone": "call {{ phone_from_external_file }}",
		},
	}
	want := map[string]any{
		"title": "Jan Kowalski",
		"items": []any{"jan@example.org", float64(7), true},
		"nested": map[string]any{
			"phone": "call +48 111 222 333",
		},
	}
	got := Resolve(in, testProfile)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestResolveNonStringPassthrough(t *testing.T) {
	if got := Resolve(float64(3.5), testProfile); got != float64(3.5) {
		t.Fatalf("got %v", got)
	}
	if got := Resolve(nil, testProfile); got != nil {
		t.Fatalf("got %v", got)
	}
}

func TestResolveProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("idempotent on arbitrary strings", prop.ForAll(
		func(s string) bool {
			once := Resolve(s, testProfile)
			return Resolve(once, testProfile) == once
		},
		gen.AnyString(),
	))

	properties.Property("no token survives resolution", prop.ForAll(
		func(token string) bool {
			out := Resolve("x {{ "+token+" }} y", testProfile).(string)
			return !placeholderPattern.MatchString(out)
		},
		gen.RegexMatch(`[a-z_]{1,12}`),
	))

	properties.TestingRun(t)
}
