package api

import (
	"encoding/json"
	"net/http"

	"github.com/dbenedek/docnav/internal/check"
	"github.com/go-chi/chi/v5"
)

// handleNav returns the full navigation tree in authoring order.
func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"entries":   snap.Tree,
		"loaded_at": snap.LoadedAt,
	})
}

// handleNavGroups returns the grouped sidebar view.
func (s *Server) handleNavGroups(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"groups":    snap.Tree.Groups(),
		"loaded_at": snap.LoadedAt,
	})
}

// handleResolve resolves a slug to a page. Slugs may contain slashes, so
// the route uses a wildcard. Sections and disabled pages are not routes.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "*")
	snap := s.store.Current()

	rt, ok := snap.Router.Resolve(slug)
	if !ok {
		jsonError(w, "no page for slug: "+slug, http.StatusNotFound)
		return
	}

	resp := map[string]any{
		"page": rt.Page,
		"url":  rt.URL,
	}
	if doc, found := snap.Index.Lookup(rt.Page.Path); found {
		resp["document"] = doc
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleCheck reports the issues found against the current snapshot.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	issues := snap.Issues
	if issues == nil {
		issues = []check.Issue{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"issues": issues,
		"errors": check.Errors(issues),
	})
}

// handleReload rebuilds the snapshot from disk on demand.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.loader.Build()
	if err != nil {
		jsonError(w, "reload failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.store.Swap(snap)
	check.Report(s.log, snap.Issues)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"entries":   len(snap.Tree),
		"documents": snap.Index.Len(),
		"issues":    len(snap.Issues),
		"loaded_at": snap.LoadedAt,
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
