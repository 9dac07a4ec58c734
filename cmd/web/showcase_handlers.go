package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"zielinski.dev/folio-web/internal/handlers"
	mw "zielinski.dev/folio-web/internal/middleware"
)

// showcaseUpdate is the fragment view model: the refreshed panel plus an
// out-of-band swap of the project grid so the active card highlight stays
// consistent with the selection.
type showcaseUpdate struct {
	Showcase handlers.ShowcaseData
	Projects []handlers.ProjectCard
}

// ShowcaseSelectHandler activates a project and returns the showcase panel
// fragment. User-initiated, so the fragment carries scroll and focus
// directives.
func ShowcaseSelectHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	b := assembler.Assemble(mw.Lang(r))
	ctrl := showcases.For(mw.GetSession(r).ID)
	ctrl.Sync(b.Projects)
	v, ok := ctrl.Select(id)
	if !ok {
		mw.WriteError(w, r, http.StatusNotFound, "unknown project")
		return
	}
	upd := showcaseUpdate{
		Showcase: handlers.BuildShowcaseData(b, v, writeups),
		Projects: handlers.BuildProjectCards(b, v.ActiveID),
	}
	mw.Trigger(w, "showcase:activated")
	render(w, r, "showcase_update", upd)
}

// ShowcaseLoadedHandler receives the embed load signal from the page. A
// current token cancels the pending degrade; stale tokens are ignored.
func ShowcaseLoadedHandler(w http.ResponseWriter, r *http.Request) {
	token, err := strconv.ParseUint(r.URL.Query().Get("token"), 10, 64)
	if err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "bad token")
		return
	}
	showcases.For(mw.GetSession(r).ID).EmbedLoaded(token)
	w.WriteHeader(http.StatusNoContent)
}
