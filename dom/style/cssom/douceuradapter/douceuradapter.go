/*
Package douceuradapter is a concrete implementation of interfaces cssom.StyleSheet
and cssom.Sink, based on the CSS parser of github.com/aymerick/douceur.

Sink parses every blob of rule text before accepting it. It is used to verify
the output of a style cache and to inspect the rules it has produced:

	sink := douceuradapter.NewSink(nil)
	cache := stylecache.New(sink)
	…
	for _, rule := range sink.StyleSheet().Rules() {
		fmt.Println(rule.Selector())
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylist/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'stylist.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylist.style")
}

// ErrParse is returned by Sink.AppendRuleText for rule text which is not
// valid CSS.
var ErrParse = errors.New("cannot parse rule text")

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
// Stylesheets of other implementations are ignored.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("douceuradapter: cannot append rules from %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) string {
	if d := r.declaration(key); d != nil {
		return d.Value
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.declaration(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) declaration(key string) *css.Declaration {
	for _, d := range slices.Backward(r.Declarations) {
		if d.Property == key {
			return d
		}
	}
	return nil
}

var _ cssom.Rule = &Rule{}

// --- Sink ------------------------------------------------------------------

// Sink is a cssom.Sink which parses every blob of rule text it receives. Blobs
// which do not parse are rejected with an error wrapping ErrParse. Accepted
// blobs are forwarded to an optional downstream sink and collected into a
// stylesheet. A Sink is safe for concurrent use.
type Sink struct {
	mx    sync.Mutex
	next  cssom.Sink
	sheet CSSStyles
	blobs int
}

var _ cssom.Sink = &Sink{}

// NewSink creates a parsing sink. If next is non-nil, every accepted blob is
// forwarded to it; a blob rejected by next is not collected.
func NewSink(next cssom.Sink) *Sink {
	return &Sink{next: next}
}

// AppendRuleText parses blob and, if successful, forwards it to the downstream
// sink and collects its rules.
//
// Interface cssom.Sink
func (sink *Sink) AppendRuleText(blob string) error {
	parsed, err := parse(blob)
	if err != nil {
		tracer().Errorf("douceuradapter: rejecting rule text %q: %v", blob, err)
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	sink.mx.Lock()
	defer sink.mx.Unlock()
	if sink.next != nil {
		if err := sink.next.AppendRuleText(blob); err != nil {
			return err
		}
	}
	sink.sheet.AppendRules(Wrap(parsed))
	sink.blobs++
	return nil
}

// Len returns the number of blobs accepted so far.
func (sink *Sink) Len() int {
	sink.mx.Lock()
	defer sink.mx.Unlock()
	return sink.blobs
}

// StyleSheet returns a snapshot of all rules collected so far.
func (sink *Sink) StyleSheet() *CSSStyles {
	sink.mx.Lock()
	defer sink.mx.Unlock()
	return &CSSStyles{css: css.Stylesheet{Rules: slices.Clone(sink.sheet.css.Rules)}}
}

// parse runs the douceur parser on text which has passed checkRules.
func parse(text string) (*css.Stylesheet, error) {
	if err := checkRules(text); err != nil {
		return nil, err
	}
	return parser.Parse(text)
}

// --- Extracting styles from HTML -------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which do not parse are
// skipped.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css = append(css, extractStyles(body)...)
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style {
			continue
		}
		c, err := parse(textContent(ch))
		if err != nil {
			tracer().Errorf("douceuradapter: skipping <style>: %v", err)
			continue
		}
		css = append(css, Wrap(c))
	}
	return css
}

// textContent concatenates the text children of a <style> element. Sinks may
// append one text node per rule blob.
func textContent(n *html.Node) string {
	var text string
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			text += ch.Data
		}
	}
	return text
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
