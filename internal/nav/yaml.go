package nav

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlEntry is the authoring shape of one nav.yaml list item. A section is
// written as `- section: "Title"`; a page as `- path: ...` with `title:`
// and any of the optional fields. The two shapes are mutually exclusive.
type yamlEntry struct {
	Section string `yaml:"section"`

	Path        string `yaml:"path"`
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Href        string `yaml:"href"`
	Disabled    bool   `yaml:"disabled"`
}

type yamlFile struct {
	Nav []yamlEntry `yaml:"nav"`
}

// LoadFile reads a navigation tree from a YAML file and validates it.
func LoadFile(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read nav file: %w", err)
	}
	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Parse decodes YAML nav data into a Tree, preserving authoring order.
func Parse(data []byte) (Tree, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse nav yaml: %w", err)
	}

	tree := make(Tree, 0, len(f.Nav))
	for i, ye := range f.Nav {
		switch {
		case ye.Section != "" && ye.Path != "":
			return nil, fmt.Errorf("entry %d: has both section and path", i)
		case ye.Section != "":
			tree = append(tree, Section(ye.Section))
		case ye.Path != "":
			tree = append(tree, PageWith(ye.Path, ye.Title, PageOptions{
				Slug:        ye.Slug,
				Description: ye.Description,
				Href:        ye.Href,
				Disabled:    ye.Disabled,
			}))
		default:
			return nil, fmt.Errorf("entry %d: neither section nor path", i)
		}
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree, nil
}
