package main

import (
	"net/http"

	"zielinski.dev/folio-web/internal/handlers"
	mw "zielinski.dev/folio-web/internal/middleware"
)

// HomeHandler renders the full portfolio page. A full page load is the
// initial-render transition: the first project becomes active without
// scroll or focus.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	b := assembler.Assemble(mw.Lang(r))
	ctrl := showcases.For(mw.GetSession(r).ID)
	v := ctrl.Reset(b.Projects)
	pd := handlers.BuildPageData(b, mw.CurrentTheme(r), locales, cfg.SiteURL, v, writeups)
	render(w, r, "base", pd)
}
