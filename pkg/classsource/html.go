package classsource

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/stackb/javimp/pkg/config"
)

// ExtractClasses returns the class names linked from an HTML class index.
// Anchors are selected by their target attribute when src.AnchorTarget is
// set, and by having an ancestor carrying the CSS class src.ParentClass when
// that is set.  Each href is turned into a dotted name, for example
// "java/util/List.html" -> "java.util.List".
func ExtractClasses(page []byte, src *config.Source) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.URL, err)
	}

	var names []string
	var visit func(n *html.Node, inParent bool)
	visit = func(n *html.Node, inParent bool) {
		if n.Type == html.ElementNode {
			if src.ParentClass != "" && hasClass(n, src.ParentClass) {
				inParent = true
			}
			if n.Data == "a" && selected(n, src, inParent) {
				if name, ok := hrefToClass(attr(n, "href"), src.TrimPrefix); ok {
					names = append(names, name)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c, inParent)
		}
	}
	visit(doc, false)

	return names, nil
}

func selected(n *html.Node, src *config.Source, inParent bool) bool {
	if src.AnchorTarget != "" && attr(n, "target") != src.AnchorTarget {
		return false
	}
	if src.ParentClass != "" && !inParent {
		return false
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// hrefToClass converts a link to a class page into a dotted class name.
func hrefToClass(href, trimPrefix string) (string, bool) {
	if i := strings.IndexAny(href, "#?"); i >= 0 {
		href = href[:i]
	}
	if trimPrefix != "" {
		href = strings.TrimPrefix(href, trimPrefix)
	}
	href = strings.TrimPrefix(href, "/")
	href = strings.TrimSuffix(href, ".html")
	if href == "" || strings.Contains(href, "://") {
		return "", false
	}

	name := strings.ReplaceAll(href, "/", ".")
	for _, seg := range strings.Split(name, ".") {
		if seg == "" || strings.ContainsAny(seg, " \t-") {
			return "", false
		}
	}
	return name, true
}
