package content

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{ token }} markers, whitespace-tolerant.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// tokenAliases are the fixed indirections content documents historically use
// for the externally sourced personal fields. They take priority over direct
// profile lookups.
var tokenAliases = map[string]string{
	"full_name_from_external_file": "fullName",
	"email_from_external_file":     "email",
	"phone_from_external_file":     "phone",
}

// Resolve substitutes placeholder tokens throughout a content value against
// the profile. Strings are rewritten, arrays and objects are resolved
// element-wise with their shape preserved, and any other scalar passes
// through unchanged. Unknown tokens resolve to the empty string, never the
// literal marker. A single substitution pass is made, so resolution cannot
// loop on self-referential values and is idempotent on resolved content.
func Resolve(value any, p Profile) any {
	switch v := value.(type) {
	case string:
		return resolveString(v, p)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Resolve(item, p)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Resolve(item, p)
		}
		return out
	default:
		return value
	}
}

func resolveString(s string, p Profile) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		token := placeholderPattern.FindStringSubmatch(match)[1]
		if alias, ok := tokenAliases[token]; ok {
			token = alias
		}
		if v, ok := p.Field(token); ok {
			return v
		}
		return ""
	})
}
