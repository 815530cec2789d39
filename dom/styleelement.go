package dom

import (
	"errors"
	"sync"

	"github.com/npillmayer/stylist/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead is returned by NewStyleElement for documents without <head>.
var ErrNoHead = errors.New("document has no <head> element")

// StyleElement is a cssom.Sink which appends rule text to a <style> element.
// Every blob becomes a text node of its own. StyleElement serializes access to
// the <style> element, but not to the rest of the document.
type StyleElement struct {
	mx   sync.Mutex
	node *html.Node
}

var _ cssom.Sink = &StyleElement{}

// NewStyleElement creates a new <style> element as the last child of the
// <head> of doc.
func NewStyleElement(doc *html.Node) (*StyleElement, error) {
	head := findElement(doc, atom.Head)
	if head == nil {
		return nil, ErrNoHead
	}
	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     atom.Style.String(),
	}
	head.AppendChild(style)
	tracer().Debugf("dom: created <style> element in <head>")
	return &StyleElement{node: style}, nil
}

// AppendRuleText appends blob as a text node to the <style> element.
//
// Interface cssom.Sink
func (se *StyleElement) AppendRuleText(blob string) error {
	se.mx.Lock()
	defer se.mx.Unlock()
	se.node.AppendChild(&html.Node{Type: html.TextNode, Data: blob})
	return nil
}

// Node returns the <style> element.
func (se *StyleElement) Node() *html.Node {
	return se.node
}

// Text returns the concatenated rule text of the <style> element.
func (se *StyleElement) Text() string {
	se.mx.Lock()
	defer se.mx.Unlock()
	var text string
	for ch := se.node.FirstChild; ch != nil; ch = ch.NextSibling {
		text += ch.Data
	}
	return text
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(ch, a); r != nil {
			return r
		}
	}
	return nil
}
