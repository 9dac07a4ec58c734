package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zielinski.dev/folio-web/internal/handlers"
	mw "zielinski.dev/folio-web/internal/middleware"
)

// LangHandler switches the active locale. The locale-dependent content is
// reassembled from scratch, every derived section re-renders, and the
// showcase re-applies the initial-render rule (selection does not persist
// across locale changes). htmx requests get the page body swapped in place;
// plain navigation redirects home.
func LangHandler(w http.ResponseWriter, r *http.Request) {
	code := mw.SetLocale(w, r, chi.URLParam(r, "code"))
	b := assembler.Rebuild(code)
	ctrl := showcases.For(mw.GetSession(r).ID)
	v := ctrl.Reset(b.Projects)

	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	pd := handlers.BuildPageData(b, mw.CurrentTheme(r), locales, cfg.SiteURL, v, writeups)
	render(w, r, "page", pd)
}

// ThemeToggleHandler flips the persisted theme and re-renders the page
// shell so the class markers and icon glyph update without a reload.
func ThemeToggleHandler(w http.ResponseWriter, r *http.Request) {
	mw.ToggleTheme(w, r)
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	b := assembler.Assemble(mw.Lang(r))
	ctrl := showcases.For(mw.GetSession(r).ID)
	ctrl.Sync(b.Projects)
	v := ctrl.Snapshot()
	pd := handlers.BuildPageData(b, mw.CurrentTheme(r), locales, cfg.SiteURL, v, writeups)
	render(w, r, "page", pd)
}
