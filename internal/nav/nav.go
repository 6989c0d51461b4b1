package nav

// EntryType discriminates the two kinds of navigation entries.
type EntryType string

const (
	TypeSection EntryType = "section"
	TypePage    EntryType = "page"
)

// Entry is one element of the navigation tree: either a section divider
// or a navigable page. Optional fields are omitted from serialized output
// when not set, so a consumer only ever sees what the author wrote.
type Entry struct {
	Type  EntryType `json:"type" yaml:"type"`
	Title string    `json:"title" yaml:"title"`

	// Page-only fields. Path is the content document, relative to the
	// content root (e.g. "Server Module Languages/Rust/index.md").
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Slug        string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Href        string `json:"href,omitempty" yaml:"href,omitempty"`
	Disabled    bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// IsPage reports whether the entry is a navigable page.
func (e Entry) IsPage() bool { return e.Type == TypePage }

// IsSection reports whether the entry is a section divider.
func (e Entry) IsSection() bool { return e.Type == TypeSection }

// PageOptions lists every recognized optional page attribute. The zero
// value of each field means "not supplied" and has no effect.
type PageOptions struct {
	Slug        string // explicit route identifier, overrides derivation from Path
	Description string // optional summary text
	Href        string // overrides normal routing with a direct link
	Disabled    bool   // listed in the sidebar but not linked
}

// Page constructs a minimal page entry.
func Page(path, title string) Entry {
	return PageWith(path, title, PageOptions{})
}

// PageWith constructs a page entry with options. Construction never fails;
// malformed input (empty path or title) is caught by Tree.Validate.
func PageWith(path, title string, opts PageOptions) Entry {
	return Entry{
		Type:        TypePage,
		Title:       title,
		Path:        path,
		Slug:        opts.Slug,
		Description: opts.Description,
		Href:        opts.Href,
		Disabled:    opts.Disabled,
	}
}

// Section constructs a section divider entry.
func Section(title string) Entry {
	return Entry{Type: TypeSection, Title: title}
}

// Tree is the ordered navigation sequence. The flat list is the canonical
// representation: a section groups everything after it up to the next
// section, and that grouping is implied by position, not nesting.
type Tree []Entry

// Pages returns the page entries in authoring order.
func (t Tree) Pages() []Entry {
	var pages []Entry
	for _, e := range t {
		if e.IsPage() {
			pages = append(pages, e)
		}
	}
	return pages
}

// Group is a derived view pairing a section title with the pages it
// introduces. Pages before the first section get an empty section title.
type Group struct {
	Section string  `json:"section"`
	Pages   []Entry `json:"pages"`
}

// Groups materializes the implicit grouping for renderers that want it.
// The tree itself stays flat.
func (t Tree) Groups() []Group {
	var groups []Group
	current := Group{}
	open := false
	for _, e := range t {
		if e.IsSection() {
			if open {
				groups = append(groups, current)
			}
			current = Group{Section: e.Title}
			open = true
			continue
		}
		current.Pages = append(current.Pages, e)
		if !open {
			open = true
		}
	}
	if open {
		groups = append(groups, current)
	}
	return groups
}
