/*
Package stylist generates CSS classes from typed styles and attaches them to
HTML documents.

Styles are built from the typed properties of package dom/style. A Context
owns the style cache of an application: it turns every distinct Style into a
class name, writing the rules of the Style to a sink exactly once.

	ctx, err := stylist.New(stylist.WithDocument(doc))
	…
	st := style.New().
		Self(style.BorderCollapse(style.BorderCollapseCollapse)).
		Rule(style.Self().Hover(), style.ColorRGBA(css.RGB(0xff, 0, 0)))
	err = stylist.SetClass[Table](ctx, node, st)

Create one Context at program start and pass it to every place which
generates markup.

# Status

This is a first draft. The API may change without notice.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylist

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/stylist/dom"
	"github.com/npillmayer/stylist/dom/style"
	"github.com/npillmayer/stylist/dom/style/cssom"
	"github.com/npillmayer/stylist/dom/style/stylecache"
	"golang.org/x/net/html"
)

// tracer will return a tracer. We are tracing to 'stylist.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylist.dom")
}

// ErrConfig is returned by New for contradicting options.
var ErrConfig = errors.New("invalid stylist configuration")

// Context is the styling context of an application. It is safe for
// concurrent use.
type Context struct {
	sink  cssom.Sink
	doc   *html.Node
	cache *stylecache.Cache
}

// New creates a styling context. Without options, rules are collected in a
// cssom.Buffer.
func New(opts ...Option) (*Context, error) {
	p := props{}
	for _, option := range opts {
		p = option.config(p)
	}
	ctx := &Context{sink: p.sink, doc: p.doc}
	switch {
	case p.sink != nil && p.doc != nil:
		return nil, fmt.Errorf("%w: WithSink and WithDocument exclude each other", ErrConfig)
	case p.doc != nil:
		se, err := dom.NewStyleElement(p.doc)
		if err != nil {
			return nil, fmt.Errorf("stylist: %w", err)
		}
		ctx.sink = se
	case p.sink == nil:
		ctx.sink = &cssom.Buffer{}
	}
	ctx.cache = stylecache.New(ctx.sink, p.cacheOptions...)
	tracer().Debugf("stylist: new context with sink %T", ctx.sink)
	return ctx, nil
}

// Fetch returns the class name for st, materializing st if necessary.
// See stylecache.Cache.Fetch.
func (ctx *Context) Fetch(st style.Style) (string, error) {
	return ctx.cache.Fetch(st)
}

// Sink returns the rule sink of ctx.
func (ctx *Context) Sink() cssom.Sink {
	return ctx.sink
}

// Cache returns the style cache of ctx.
func (ctx *Context) Cache() *stylecache.Cache {
	return ctx.cache
}

// Document returns the document set with WithDocument, or nil.
func (ctx *Context) Document() *html.Node {
	return ctx.doc
}

// SetClass materializes st and sets the class attribute of n to the kind
// class of T followed by the class of st. An empty Style contributes the kind
// class only.
func SetClass[T any](ctx *Context, n *html.Node, st style.Style) error {
	kind := dom.KindClass[T]()
	if st.IsEmpty() {
		dom.SetClass(n, kind)
		return nil
	}
	class, err := ctx.Fetch(st)
	if err != nil {
		return err
	}
	dom.SetClass(n, kind, class)
	return nil
}
