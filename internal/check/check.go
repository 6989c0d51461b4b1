// Package check cross-references the navigation tree against the content
// index and reports what a site build would otherwise discover too late.
package check

import (
	"fmt"
	"log/slog"

	"github.com/dbenedek/docnav/internal/content"
	"github.com/dbenedek/docnav/internal/nav"
	"github.com/dbenedek/docnav/internal/router"
)

// Severity classifies an issue.
type Severity string

const (
	SevError Severity = "error"
	SevWarn  Severity = "warning"
)

// Issue is one finding against a navigation entry. Pos is the entry's
// position in authoring order.
type Issue struct {
	Pos      int      `json:"pos"`
	Path     string   `json:"path,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Run checks the tree against the content index. Entries are never
// dropped: every problem becomes an issue for the build log.
func Run(tree nav.Tree, ix *content.Index) []Issue {
	var issues []Issue

	seenSlug := make(map[string]int)
	for i, e := range tree {
		switch {
		case e.IsSection():
			if e.Title == "" {
				issues = append(issues, Issue{
					Pos: i, Severity: SevError,
					Message: "section has empty title",
				})
			}
			continue
		case !e.IsPage():
			issues = append(issues, Issue{
				Pos: i, Severity: SevError,
				Message: fmt.Sprintf("unknown entry type %q", e.Type),
			})
			continue
		}

		if e.Path == "" || e.Title == "" {
			issues = append(issues, Issue{
				Pos: i, Path: e.Path, Severity: SevError,
				Message: "page is missing path or title",
			})
			continue
		}

		slug := router.SlugFor(e)
		if prev, dup := seenSlug[slug]; dup {
			issues = append(issues, Issue{
				Pos: i, Path: e.Path, Severity: SevError,
				Message: fmt.Sprintf("slug %q duplicates entry %d", slug, prev),
			})
		} else {
			seenSlug[slug] = i
		}

		doc, ok := ix.Lookup(e.Path)
		if !ok {
			issues = append(issues, Issue{
				Pos: i, Path: e.Path, Severity: SevError,
				Message: "path does not exist under the content root",
			})
			continue
		}
		if doc.Title != "" && doc.Title != e.Title {
			issues = append(issues, Issue{
				Pos: i, Path: e.Path, Severity: SevWarn,
				Message: fmt.Sprintf("nav title %q differs from document title %q", e.Title, doc.Title),
			})
		}
	}

	return issues
}

// Errors counts error-severity issues.
func Errors(issues []Issue) int {
	n := 0
	for _, is := range issues {
		if is.Severity == SevError {
			n++
		}
	}
	return n
}

// Report writes every issue to the log, one line each.
func Report(log *slog.Logger, issues []Issue) {
	for _, is := range issues {
		attrs := []any{"entry", is.Pos, "path", is.Path}
		switch is.Severity {
		case SevError:
			log.Error(is.Message, attrs...)
		default:
			log.Warn(is.Message, attrs...)
		}
	}
}
