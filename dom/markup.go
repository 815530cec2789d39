package dom

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// SetClass sets the class attribute of element n to a space-separated list of
// classes, replacing any previous classes. Empty class names are skipped; if
// no class remains, the attribute is removed. Nodes other than elements are
// left untouched.
func SetClass(n *html.Node, classes ...string) {
	if n == nil || n.Type != html.ElementNode {
		return
	}
	classes = slices.DeleteFunc(slices.Clone(classes), func(c string) bool { return c == "" })
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == "class"
	})
	if len(classes) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	}
}

// Classes returns the classes of element n.
func Classes(n *html.Node) []string {
	if n == nil {
		return nil
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

// Select returns all elements below and including root which match the CSS
// selector sel, in document order.
func Select(root *html.Node, sel string) ([]*html.Node, error) {
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("dom: invalid selector %q: %w", sel, err)
	}
	return s.MatchAll(root), nil
}

// Render writes the HTML of doc to w.
func Render(w io.Writer, doc *html.Node) error {
	return html.Render(w, doc)
}
