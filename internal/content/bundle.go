package content

import (
	"strings"

	"zielinski.dev/folio-web/internal/config"
	"zielinski.dev/folio-web/internal/project"
)

// Bundle is the fully resolved content set for one locale: the localized
// strings document (placeholder-resolved), the profile, and the effective
// project list. Bundles are replaced wholesale on locale change, never
// patched.
type Bundle struct {
	Locale   string
	Settings config.Settings
	Strings  map[string]any
	Profile  Profile
	Projects []project.Record
}

// Text returns the string value for a key, supporting both flat keys and
// dot-path traversal into nested objects ("contact.contact_title"). A miss
// or a non-string value yields the empty string.
func (b *Bundle) Text(key string) string {
	v, ok := b.lookup(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// TextOr returns Text(key), or fallback when the key resolves empty.
func (b *Bundle) TextOr(key, fallback string) string {
	if s := b.Text(key); s != "" {
		return s
	}
	return fallback
}

// List returns the array value for a key, or nil.
func (b *Bundle) List(key string) []any {
	v, ok := b.lookup(key)
	if !ok {
		return nil
	}
	a, _ := v.([]any)
	return a
}

// Section returns the object value for a key, or nil.
func (b *Bundle) Section(key string) map[string]any {
	v, ok := b.lookup(key)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// StringList returns the string items of an array value, skipping non-strings.
func (b *Bundle) StringList(key string) []string {
	items := b.List(key)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (b *Bundle) lookup(key string) (any, bool) {
	if b == nil || b.Strings == nil {
		return nil, false
	}
	// flat key wins over a path with the same spelling
	if v, ok := b.Strings[key]; ok {
		return v, true
	}
	if !strings.Contains(key, ".") {
		return nil, false
	}
	var cur any = b.Strings
	for _, seg := range strings.Split(key, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
