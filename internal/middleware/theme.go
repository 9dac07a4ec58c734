package middleware

import (
	"context"
	"net/http"
	"strings"
)

const themeCookieName = "theme"

// Theme resolves the visitor's color theme from the session or the `theme`
// cookie, defaulting to the configured site theme. Only "light" and "dark"
// are recognized.
func Theme(defaultTheme string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := GetSession(r)
			if s.Theme == "" {
				if c, err := r.Cookie(themeCookieName); err == nil {
					s.Theme = sanitizeTheme(c.Value)
				}
				if s.Theme == "" {
					s.Theme = sanitizeTheme(defaultTheme)
				}
				if s.Theme == "" {
					s.Theme = "light"
				}
				s.MarkDirty()
			}
			ctx := context.WithValue(r.Context(), ctxKeyTheme, s.Theme)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ToggleTheme flips the persisted theme and returns the new value.
func ToggleTheme(w http.ResponseWriter, r *http.Request) string {
	s := GetSession(r)
	next := "dark"
	if CurrentTheme(r) == "dark" {
		next = "light"
	}
	s.Theme = next
	s.MarkDirty()
	http.SetCookie(w, &http.Cookie{Name: themeCookieName, Value: next, Path: "/"})
	return next
}

// CurrentTheme returns the resolved theme for the request.
func CurrentTheme(r *http.Request) string {
	if s := GetSession(r); s != nil && s.Theme != "" {
		return s.Theme
	}
	if v, ok := r.Context().Value(ctxKeyTheme).(string); ok && v != "" {
		return v
	}
	return "light"
}

func sanitizeTheme(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	return ""
}
