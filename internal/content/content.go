// Package content indexes the documentation content root so navigation
// entries can be checked against the documents they point at.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Doc is the indexed structure of one content document.
type Doc struct {
	Path     string   // relative to the content root, slash-separated
	Title    string   // document title (first heading, <title>, or filename)
	Headings []string // section headings in document order
}

// Index is an immutable snapshot of the content root.
type Index struct {
	root string
	docs map[string]Doc
}

// Scan walks the content root and indexes every document, honoring the
// ignore glob patterns (doublestar syntax, matched against relative paths).
func Scan(root string, ignore []string) (*Index, error) {
	ix := &Index{root: root, docs: make(map[string]Doc)}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		for _, pattern := range ignore {
			ok, merr := doublestar.Match(pattern, rel)
			if merr != nil {
				return fmt.Errorf("ignore pattern %q: %w", pattern, merr)
			}
			if ok {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}
		if d.IsDir() {
			return nil
		}

		doc, err := extract(p, rel)
		if err != nil {
			return fmt.Errorf("index %s: %w", rel, err)
		}
		ix.docs[rel] = doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan content root %s: %w", root, err)
	}
	return ix, nil
}

// extract reads one file and pulls out its structure. Unknown extensions
// are indexed by path only so presence checks still work for them.
func extract(abs, rel string) (Doc, error) {
	switch strings.ToLower(filepath.Ext(rel)) {
	case ".md", ".markdown":
		data, err := os.ReadFile(abs)
		if err != nil {
			return Doc{}, err
		}
		return extractMarkdown(data, rel), nil
	case ".html", ".htm":
		f, err := os.Open(abs)
		if err != nil {
			return Doc{}, err
		}
		defer f.Close()
		return extractHTML(f, rel)
	default:
		return Doc{Path: rel, Title: titleFromFilename(rel)}, nil
	}
}

// Lookup returns the indexed document for a relative path.
func (ix *Index) Lookup(rel string) (Doc, bool) {
	doc, ok := ix.docs[filepath.ToSlash(rel)]
	return doc, ok
}

// Has reports whether a relative path exists under the content root.
func (ix *Index) Has(rel string) bool {
	_, ok := ix.docs[filepath.ToSlash(rel)]
	return ok
}

// Paths returns all indexed paths, sorted.
func (ix *Index) Paths() []string {
	paths := make([]string, 0, len(ix.docs))
	for p := range ix.docs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int { return len(ix.docs) }

// titleFromFilename falls back to the bare filename without extension.
func titleFromFilename(rel string) string {
	base := filepath.Base(rel)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
