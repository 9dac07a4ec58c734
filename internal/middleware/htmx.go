package middleware

import (
	"encoding/json"
	"net/http"
)

// HTMX detects fragment requests via the HX-Request header and marks them in
// the request context, so handlers can choose between a fragment swap and a
// full-page response.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fragment := r.Header.Get("HX-Request") == "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), fragment)))
	})
}

// Trigger asks htmx to dispatch a client-side event after the swap. Must be
// called before the response body is written.
func Trigger(w http.ResponseWriter, event string) {
	w.Header().Set("HX-Trigger", event)
}

// WriteError answers htmx requests with a small JSON body (so a failed swap
// surfaces in the console instead of replacing page content) and plain
// navigation with http.Error.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if !IsHTMX(r.Context()) {
		http.Error(w, msg, code)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
}
