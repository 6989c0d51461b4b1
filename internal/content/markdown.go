package content

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// extractMarkdown pulls the title and heading list out of a markdown
// document by walking the goldmark AST. The first h1 becomes the title;
// without one the filename stands in.
func extractMarkdown(src []byte, rel string) Doc {
	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := Doc{Path: rel}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := string(h.Text(src))
		if title == "" {
			continue
		}
		doc.Headings = append(doc.Headings, title)
		if doc.Title == "" && h.Level == 1 {
			doc.Title = title
		}
	}

	if doc.Title == "" {
		doc.Title = titleFromFilename(rel)
	}
	return doc
}
