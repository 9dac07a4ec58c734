package content

import "testing"

func TestResolveAcceptLanguageHonorsQValues(t *testing.T) {
	got := ResolveAcceptLanguage("pl;q=0.8, en;q=0.9", []string{"en", "pl"}, "en")
	if got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestResolveAcceptLanguageRegionVariant(t *testing.T) {
	got := ResolveAcceptLanguage("pl-PL,pl;q=0.9,en-US;q=0.8", []string{"en", "pl"}, "en")
	if got != "pl" {
		t.Fatalf("expected pl, got %s", got)
	}
}

func TestResolveAcceptLanguageFallback(t *testing.T) {
	if got := ResolveAcceptLanguage("de,fr;q=0.9", []string{"en", "pl"}, "en"); got != "en" {
		t.Fatalf("expected fallback en, got %s", got)
	}
	if got := ResolveAcceptLanguage("", []string{"en", "pl"}, "pl"); got != "pl" {
		t.Fatalf("expected fallback pl, got %s", got)
	}
}

func TestBundleDotPathLookup(t *testing.T) {
	b := &Bundle{Strings: map[string]any{
		"flat":            "flat value",
		"contact":         map[string]any{"contact_title": "Reach me"},
		"weird.flat.name": "flat wins",
		"weird":           map[string]any{"flat": map[string]any{"name": "nested"}},
	}}
	if got := b.Text("flat"); got != "flat value" {
		t.Fatalf("got %q", got)
	}
	if got := b.Text("contact.contact_title"); got != "Reach me" {
		t.Fatalf("got %q", got)
	}
	if got := b.Text("weird.flat.name"); got != "flat wins" {
		t.Fatalf("flat key must win over path, got %q", got)
	}
	if got := b.Text("missing.path"); got != "" {
		t.Fatalf("miss must be empty, got %q", got)
	}
	if got := b.TextOr("missing", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
}
