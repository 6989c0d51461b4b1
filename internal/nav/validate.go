package nav

import "fmt"

// Validate checks the tree eagerly so malformed entries fail at load time
// instead of surfacing as broken links in the rendered site. Errors name
// the offending entry's position in authoring order.
func (t Tree) Validate() error {
	for i, e := range t {
		switch e.Type {
		case TypeSection:
			if e.Title == "" {
				return fmt.Errorf("entry %d: section has empty title", i)
			}
			if e.Path != "" || e.Slug != "" || e.Href != "" {
				return fmt.Errorf("entry %d: section %q carries page fields", i, e.Title)
			}
		case TypePage:
			if e.Path == "" {
				return fmt.Errorf("entry %d: page %q has empty path", i, e.Title)
			}
			if e.Title == "" {
				return fmt.Errorf("entry %d: page %q has empty title", i, e.Path)
			}
		default:
			return fmt.Errorf("entry %d: unknown entry type %q", i, e.Type)
		}
	}
	return nil
}
