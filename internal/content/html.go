package content

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// extractHTML pulls the title and heading list out of an HTML document.
// The <title> tag wins; without one the first heading or filename stands in.
func extractHTML(r io.Reader, rel string) (Doc, error) {
	root, err := html.Parse(r)
	if err != nil {
		return Doc{}, fmt.Errorf("parse html: %w", err)
	}

	doc := Doc{Path: rel}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if doc.Title == "" {
					doc.Title = textContent(n)
				}
				return
			case "script", "style":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				if t := textContent(n); t != "" {
					doc.Headings = append(doc.Headings, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if doc.Title == "" && len(doc.Headings) > 0 {
		doc.Title = doc.Headings[0]
	}
	if doc.Title == "" {
		doc.Title = titleFromFilename(rel)
	}
	return doc, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
