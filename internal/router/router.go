// Package router builds the route table for a navigation tree. It owns the
// slug-uniqueness rule: the tree itself is pure data and never checks it.
package router

import (
	"fmt"
	"path"
	"strings"

	"github.com/dbenedek/docnav/internal/nav"
)

// Route is a resolved navigation target.
type Route struct {
	Page nav.Entry `json:"page"`
	URL  string    `json:"url"`
}

// Router maps slugs to pages. Sections and disabled pages never get routes.
type Router struct {
	bySlug map[string]Route
	slugs  []string // authoring order, for stable listing
}

// SlugFor returns the route identifier for a page: the explicit slug when
// set, otherwise one derived from the content path. Derivation strips the
// markdown extension, drops a trailing "index" segment, lowercases, and
// replaces spaces with hyphens, so "Server Module Languages/Rust/index.md"
// becomes "server-module-languages/rust".
func SlugFor(e nav.Entry) string {
	if e.Slug != "" {
		return e.Slug
	}
	p := e.Path
	p = strings.TrimSuffix(p, ".markdown")
	p = strings.TrimSuffix(p, ".md")
	p = strings.TrimSuffix(p, ".html")
	p = strings.TrimSuffix(p, ".htm")
	if path.Base(p) == "index" {
		p = path.Dir(p)
		if p == "." {
			p = ""
		}
	}
	p = strings.ToLower(p)
	p = strings.ReplaceAll(p, " ", "-")
	return p
}

// New builds the route table, rejecting duplicate slugs. Href pages route
// to their link target instead of a generated URL.
func New(tree nav.Tree) (*Router, error) {
	r := &Router{bySlug: make(map[string]Route)}
	seen := make(map[string]int)

	for i, e := range tree {
		if !e.IsPage() {
			continue
		}
		slug := SlugFor(e)
		if prev, dup := seen[slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q: entries %d and %d", slug, prev, i)
		}
		seen[slug] = i

		if e.Disabled {
			continue
		}
		url := "/" + slug
		if e.Href != "" {
			url = e.Href
		}
		r.bySlug[slug] = Route{Page: e, URL: url}
		r.slugs = append(r.slugs, slug)
	}
	return r, nil
}

// Resolve looks up a route by slug. Unknown, disabled, and section slugs
// all miss.
func (r *Router) Resolve(slug string) (Route, bool) {
	rt, ok := r.bySlug[strings.Trim(slug, "/")]
	return rt, ok
}

// Slugs returns all routable slugs in authoring order.
func (r *Router) Slugs() []string {
	out := make([]string, len(r.slugs))
	copy(out, r.slugs)
	return out
}
