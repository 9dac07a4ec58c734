package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"zielinski.dev/folio-web/internal/content"
)

const localeCookieName = "lang"

var localeCodePattern = regexp.MustCompile(`^[a-z]{2}(-[a-z0-9]{2,8})?$`)

// Locale resolves the visitor's language and persists it in the session and
// the `lang` cookie. Precedence: ?hl= query override, then session, then
// cookie, then Accept-Language against the supported list, then the
// configured default. A requested code is accepted even when no strings
// document exists for it; the content assembler handles that with its
// template fallback.
func Locale(supported []string, fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := GetSession(r)
			if q := sanitizeLocale(r.URL.Query().Get("hl")); q != "" {
				s.Locale = q
				s.MarkDirty()
				setLocaleCookie(w, q)
			} else if s.Locale == "" {
				if c, err := r.Cookie(localeCookieName); err == nil {
					if v := sanitizeLocale(c.Value); v != "" {
						s.Locale = v
					}
				}
				if s.Locale == "" {
					s.Locale = content.ResolveAcceptLanguage(
						r.Header.Get("Accept-Language"), supported, fallback)
				}
				s.MarkDirty()
			}
			if s.Locale != "" {
				w.Header().Set("Content-Language", s.Locale)
			}
			ctx := context.WithValue(r.Context(), ctxKeyLocale, s.Locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetLocale persists a new locale choice on the current session and cookie.
func SetLocale(w http.ResponseWriter, r *http.Request, code string) string {
	code = sanitizeLocale(code)
	if code == "" {
		return Lang(r)
	}
	s := GetSession(r)
	s.Locale = code
	s.MarkDirty()
	setLocaleCookie(w, code)
	return code
}

// Lang returns the resolved language for the request.
func Lang(r *http.Request) string {
	if s := GetSession(r); s != nil && s.Locale != "" {
		return s.Locale
	}
	if v, ok := r.Context().Value(ctxKeyLocale).(string); ok && v != "" {
		return v
	}
	return "en"
}

// VaryLocale sets Vary for Accept-Language on dynamic responses.
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r)
	})
}

func setLocaleCookie(w http.ResponseWriter, code string) {
	http.SetCookie(w, &http.Cookie{Name: localeCookieName, Value: code, Path: "/"})
}

func sanitizeLocale(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if !localeCodePattern.MatchString(code) {
		return ""
	}
	return code
}
