package router

import (
	"strings"
	"testing"

	"github.com/dbenedek/docnav/internal/nav"
)

func TestSlugFor(t *testing.T) {
	tests := []struct {
		entry nav.Entry
		want  string
	}{
		{nav.Page("Overview/index.md", "Overview"), "overview"},
		{nav.Page("Server Module Languages/Rust/index.md", "Rust"), "server-module-languages/rust"},
		{nav.Page("changelog.md", "Changelog"), "changelog"},
		{nav.Page("guide.markdown", "Guide"), "guide"},
		{nav.Page("faq.html", "FAQ"), "faq"},
		{nav.Page("index.md", "Home"), ""},
		{nav.PageWith("Overview/index.md", "Overview", nav.PageOptions{Slug: "start-here"}), "start-here"},
	}

	for _, tt := range tests {
		if got := SlugFor(tt.entry); got != tt.want {
			t.Errorf("SlugFor(%q): expected %q, got %q", tt.entry.Path, tt.want, got)
		}
	}
}

func TestNew_ResolvesPages(t *testing.T) {
	tree := nav.Tree{
		nav.Section("Intro"),
		nav.Page("Overview/index.md", "Overview"),
		nav.PageWith("sdk/rust.md", "Rust SDK", nav.PageOptions{Slug: "rust"}),
	}

	r, err := New(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rt, ok := r.Resolve("overview")
	if !ok {
		t.Fatal("expected overview to resolve")
	}
	if rt.Page.Path != "Overview/index.md" {
		t.Errorf("unexpected page: %+v", rt.Page)
	}
	if rt.URL != "/overview" {
		t.Errorf("expected URL /overview, got %q", rt.URL)
	}

	if _, ok := r.Resolve("rust"); !ok {
		t.Error("expected explicit slug to resolve")
	}
}

func TestNew_RejectsDuplicateSlugs(t *testing.T) {
	tree := nav.Tree{
		nav.Page("a/index.md", "A"),
		nav.PageWith("b.md", "B", nav.PageOptions{Slug: "a"}),
	}
	_, err := New(tree)
	if err == nil {
		t.Fatal("expected duplicate slug error")
	}
	if !strings.Contains(err.Error(), `duplicate slug "a"`) {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "entries 0 and 1") {
		t.Errorf("expected error to name both positions, got: %v", err)
	}
}

func TestRouter_SectionsNeverResolve(t *testing.T) {
	tree := nav.Tree{
		nav.Section("Intro"),
		nav.Page("intro/index.md", "Intro Page"),
	}
	r, err := New(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "Intro" is a section title, not a route.
	if _, ok := r.Resolve("Intro"); ok {
		t.Error("section resolved as a route")
	}
}

func TestRouter_DisabledPagesNotRoutable(t *testing.T) {
	tree := nav.Tree{
		nav.PageWith("wip.md", "WIP", nav.PageOptions{Disabled: true}),
	}
	r, err := New(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := r.Resolve("wip"); ok {
		t.Error("disabled page resolved as a route")
	}
}

func TestRouter_HrefOverridesURL(t *testing.T) {
	tree := nav.Tree{
		nav.PageWith("community.md", "Community", nav.PageOptions{Href: "https://example.com/discord"}),
	}
	r, err := New(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rt, ok := r.Resolve("community")
	if !ok {
		t.Fatal("expected community to resolve")
	}
	if rt.URL != "https://example.com/discord" {
		t.Errorf("expected href URL, got %q", rt.URL)
	}
}

func TestRouter_Slugs_AuthoringOrder(t *testing.T) {
	tree := nav.Tree{
		nav.Page("b.md", "B"),
		nav.Page("a.md", "A"),
		nav.Page("c.md", "C"),
	}
	r, err := New(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := r.Slugs()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d slugs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slug %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
