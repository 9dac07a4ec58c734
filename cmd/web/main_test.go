package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"zielinski.dev/folio-web/internal/config"
	"zielinski.dev/folio-web/internal/content"
	"zielinski.dev/folio-web/internal/showcase"
	"zielinski.dev/folio-web/internal/writeup"
)

// newTestRouter wires the real handlers against the repo's content and
// templates, with dev-mode template parsing so no cache priming is needed.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	cfg = config.Config{
		ContentDir:   "../../content",
		TemplatesDir: "../../templates",
		PublicDir:    "../../public",
		SiteURL:      "https://zielinski.dev",
		Dev:          true,
	}
	logger = zap.NewNop()
	assembler = content.NewAssembler(cfg.ContentDir, logger)
	writeups = writeup.NewStore(filepath.Join(cfg.ContentDir, "writeups"), logger)
	showcases = showcase.NewManager(assembler.Settings(), logger)
	locales = content.AvailableLocales(cfg.ContentDir)
	return newRouter()
}

func get(t *testing.T, r chi.Router, path string, htmx bool, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, r, "GET", path, htmx, cookies...)
}

func do(t *testing.T, r chi.Router, method, path string, htmx bool, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/healthz", false)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHomeRendersShowcase(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	// first project active: a bare video id becomes a provider embed URL
	if !strings.Contains(body, "https://www.youtube.com/embed/jNQXAC9IVRw") {
		t.Fatal("expected the first project's embed iframe")
	}
	// configured default theme
	if !strings.Contains(body, "theme-dark") {
		t.Fatal("expected the default theme class on the page shell")
	}
	// initial render carries no scroll directive
	if strings.Contains(body, `data-scroll`) {
		t.Fatal("initial render must not request a scroll")
	}
}

func TestHomeIssuesSessionCookie(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/", false)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "FOLIO_SESSION" && c.Value != "" {
			return
		}
	}
	t.Fatal("session cookie missing")
}

func TestHomeUnsupportedLocaleFallsBackToTemplate(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/?hl=de", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	if cl := rec.Header().Get("Content-Language"); cl != "de" {
		t.Fatalf("requested code must stick, got %q", cl)
	}
	// template.json still gives the page a project grid
	if !strings.Contains(rec.Body.String(), "project-grid") {
		t.Fatal("template fallback must keep the page renderable")
	}
}

func TestShowcaseSelectFragment(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/fragment/showcase/arcade", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "https://play.zielinski.dev/arcade/") {
		t.Fatal("partner embed URL missing")
	}
	if !strings.Contains(body, `data-scroll="true"`) {
		t.Fatal("user selection must request a scroll")
	}
	if !strings.Contains(body, "data-token=") {
		t.Fatal("selection token missing from the fragment")
	}
	if rec.Header().Get("HX-Trigger") != "showcase:activated" {
		t.Fatalf("got trigger %q", rec.Header().Get("HX-Trigger"))
	}
}

func TestShowcaseSelectUnknownID(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/fragment/showcase/nope", true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("got %d", rec.Code)
	}
}

func TestShowcaseLoadedEndpoint(t *testing.T) {
	r := newTestRouter(t)
	if rec := do(t, r, "POST", "/fragment/showcase/arcade/loaded?token=1", true); rec.Code != http.StatusNoContent {
		t.Fatalf("got %d", rec.Code)
	}
	if rec := do(t, r, "POST", "/fragment/showcase/arcade/loaded?token=abc", true); rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d", rec.Code)
	}
}

func TestLangSwitchHTMX(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/lang/pl", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	var langCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "lang" {
			langCookie = c
		}
	}
	if langCookie == nil || langCookie.Value != "pl" {
		t.Fatalf("lang cookie not persisted, got %v", langCookie)
	}
	if cl := rec.Header().Get("Content-Language"); cl != "pl" {
		t.Fatalf("got %q", cl)
	}
}

func TestLangSwitchPlainNavigationRedirects(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/lang/pl", false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("got %q", loc)
	}
}

func TestThemeToggle(t *testing.T) {
	r := newTestRouter(t)
	// site default is dark, so the first toggle lands on light
	rec := do(t, r, "POST", "/theme/toggle", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	var themeCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "theme" {
			themeCookie = c
		}
	}
	if themeCookie == nil || themeCookie.Value != "light" {
		t.Fatalf("got %v", themeCookie)
	}
	if !strings.Contains(rec.Body.String(), "theme-light") {
		t.Fatal("page fragment must carry the new theme class")
	}

	// a persisted light theme toggles back to dark
	rec = do(t, r, "POST", "/theme/toggle", true, &http.Cookie{Name: "theme", Value: "light"})
	for _, c := range rec.Result().Cookies() {
		if c.Name == "theme" && c.Value == "dark" {
			return
		}
	}
	t.Fatal("second toggle must flip to dark")
}

func TestAssetsServeWithETag(t *testing.T) {
	r := newTestRouter(t)
	rec := get(t, r, "/assets/css/site.css", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d", rec.Code)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("ETag missing")
	}

	req := httptest.NewRequest("GET", "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec2 := httptest.NewRecorder()
	r.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusNotModified {
		t.Fatalf("got %d", rec2.Code)
	}
}
