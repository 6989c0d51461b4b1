package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScan_IndexesContentRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Overview/index.md", "# Overview\n\nIntro text.\n\n## Concepts\n")
	writeFile(t, root, "faq.html", "<html><head><title>FAQ</title></head><body><h1>Questions</h1></body></html>")
	writeFile(t, root, "assets/logo.svg", "<svg/>")

	ix, err := Scan(root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ix.Len() != 3 {
		t.Fatalf("expected 3 indexed files, got %d: %v", ix.Len(), ix.Paths())
	}

	doc, ok := ix.Lookup("Overview/index.md")
	if !ok {
		t.Fatal("expected Overview/index.md to be indexed")
	}
	if doc.Title != "Overview" {
		t.Errorf("expected title %q, got %q", "Overview", doc.Title)
	}
	if len(doc.Headings) != 2 || doc.Headings[1] != "Concepts" {
		t.Errorf("unexpected headings: %v", doc.Headings)
	}

	htmlDoc, ok := ix.Lookup("faq.html")
	if !ok {
		t.Fatal("expected faq.html to be indexed")
	}
	if htmlDoc.Title != "FAQ" {
		t.Errorf("expected title %q, got %q", "FAQ", htmlDoc.Title)
	}

	// Unknown extensions are presence-only.
	svg, ok := ix.Lookup("assets/logo.svg")
	if !ok {
		t.Fatal("expected assets/logo.svg to be indexed")
	}
	if svg.Title != "logo" {
		t.Errorf("expected fallback title %q, got %q", "logo", svg.Title)
	}
}

func TestScan_HonorsIgnoreGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home\n")
	writeFile(t, root, "node_modules/pkg/readme.md", "# Not content\n")
	writeFile(t, root, "drafts/wip.md", "# WIP\n")

	ix, err := Scan(root, []string{"**/node_modules/**", "drafts/**"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !ix.Has("index.md") {
		t.Error("expected index.md to be indexed")
	}
	if ix.Has("node_modules/pkg/readme.md") {
		t.Error("node_modules content should be ignored")
	}
	if ix.Has("drafts/wip.md") {
		t.Error("drafts content should be ignored")
	}
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Fatal("expected error for missing content root")
	}
	if !strings.Contains(err.Error(), "scan content root") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExtractMarkdown_NoHeadings(t *testing.T) {
	doc := extractMarkdown([]byte("Just some plain text.\n"), "notes/plain.md")
	if doc.Title != "plain" {
		t.Errorf("expected filename fallback title %q, got %q", "plain", doc.Title)
	}
	if len(doc.Headings) != 0 {
		t.Errorf("expected no headings, got %v", doc.Headings)
	}
}

func TestExtractMarkdown_FirstH1Wins(t *testing.T) {
	src := "## Early h2\n\n# Real Title\n\n# Second h1\n"
	doc := extractMarkdown([]byte(src), "doc.md")
	if doc.Title != "Real Title" {
		t.Errorf("expected title %q, got %q", "Real Title", doc.Title)
	}
	if len(doc.Headings) != 3 {
		t.Errorf("expected 3 headings, got %v", doc.Headings)
	}
}

func TestExtractHTML_FirstHeadingFallback(t *testing.T) {
	r := strings.NewReader("<html><body><h2>Only Heading</h2></body></html>")
	doc, err := extractHTML(r, "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "Only Heading" {
		t.Errorf("expected heading fallback title, got %q", doc.Title)
	}
}
