package stylist

import (
	"github.com/npillmayer/stylist/dom/style/cssom"
	"github.com/npillmayer/stylist/dom/style/stylecache"
	"golang.org/x/net/html"
)

type props struct {
	sink         cssom.Sink
	doc          *html.Node
	cacheOptions []stylecache.Option
}

// Option is a type to help initializing contexts at creation time.
type Option struct {
	config func(props) props
}

// WithSink directs rules to sink.
func WithSink(sink cssom.Sink) Option {
	return Option{config: func(p props) props {
		p.sink = sink
		return p
	}}
}

// WithDocument directs rules to a new <style> element in the <head> of doc.
func WithDocument(doc *html.Node) Option {
	return Option{config: func(p props) props {
		p.doc = doc
		return p
	}}
}

// WithSeed sets the fingerprint seed of the style cache, see stylecache.WithSeed.
func WithSeed(seed uint64) Option {
	return Option{config: func(p props) props {
		p.cacheOptions = append(p.cacheOptions, stylecache.WithSeed(seed))
		return p
	}}
}

// WithMaxProbes sets the probe limit of the style cache, see stylecache.WithMaxProbes.
func WithMaxProbes(n int) Option {
	return Option{config: func(p props) props {
		p.cacheOptions = append(p.cacheOptions, stylecache.WithMaxProbes(n))
		return p
	}}
}
