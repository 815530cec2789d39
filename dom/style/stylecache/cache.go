package stylecache

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/npillmayer/stylist/dom/style"
	"github.com/npillmayer/stylist/dom/style/cssom"
)

// ErrSink is returned by Fetch if the rule sink failed to accept the rule text
// of a Style. The sink's error is wrapped as well.
var ErrSink = errors.New("style sink failed")

// ErrCollision is returned by Fetch if no free fingerprint could be found for
// a Style within the configured number of probes.
var ErrCollision = errors.New("fingerprint collision")

// DefaultMaxProbes is the default number of fingerprints tried for a Style.
const DefaultMaxProbes = 8

// Entry is a snapshot of a materialized Style.
type Entry struct {
	Class       string      // generated class name
	Fingerprint uint64      // fingerprint the class name has been derived from
	Style       style.Style // the Style as fetched, with placeholders unresolved
	Text        string      // rule text appended to the sink
}

// Stats counts cache operations.
type Stats struct {
	Hits       int // fetches answered from the cache
	Misses     int // fetches which appended rule text to the sink
	Collisions int // probes which hit an entry of different content
	SinkErrors int // fetches which failed because of the sink
}

type entry struct {
	Entry
	canonical []byte
}

// Cache is a content-addressed cache of Styles. It is safe for concurrent use.
// Create one with New.
type Cache struct {
	props
	sink    cssom.Sink
	mx      sync.Mutex
	entries map[uint64]*entry
	order   []*entry
	stats   Stats
}

// New creates a cache which appends rule text to sink.
func New(sink cssom.Sink, opts ...Option) *Cache {
	if sink == nil {
		panic("stylecache: sink must not be nil")
	}
	c := &Cache{
		props:   defaultProps(),
		sink:    sink,
		entries: make(map[uint64]*entry),
	}
	for _, option := range opts {
		c.props = option.config(c.props)
	}
	return c
}

// Fetch returns the class name for s. If s has not been fetched before, its
// placeholders are replaced by the class name and the resulting rule text is
// appended to the sink before Fetch returns.
//
// If the sink fails, Fetch returns an error wrapping ErrSink and nothing is
// recorded; fetching s again will retry.
// Concurrent fetches of equal Styles append the rule text at most once.
func (c *Cache) Fetch(s style.Style) (string, error) {
	canonical := s.Canonical()
	c.mx.Lock()
	defer c.mx.Unlock()
	for probe := 0; probe < c.maxProbes; probe++ {
		fp := c.hash(c.seed, probe, canonical)
		e, found := c.entries[fp]
		if !found {
			return c.insert(s, fp, canonical)
		}
		if bytes.Equal(e.canonical, canonical) {
			c.stats.Hits++
			return e.Class, nil
		}
		c.stats.Collisions++
		tracer().Infof("stylecache: fingerprint %x taken by %s, probing", fp, e.Class)
	}
	tracer().Errorf("stylecache: no free fingerprint after %d probes", c.maxProbes)
	return "", fmt.Errorf("%w: %d probes exhausted", ErrCollision, c.maxProbes)
}

// insert materializes s. c.mx must be held.
func (c *Cache) insert(s style.Style, fp uint64, canonical []byte) (string, error) {
	class := ClassName(fp)
	text := s.Resolve(class).String()
	if err := c.sink.AppendRuleText(text); err != nil {
		c.stats.SinkErrors++
		tracer().Errorf("stylecache: sink rejected rules for %s: %v", class, err)
		return "", fmt.Errorf("%w: %w", ErrSink, err)
	}
	e := &entry{
		Entry: Entry{
			Class:       class,
			Fingerprint: fp,
			Style:       s,
			Text:        text,
		},
		canonical: canonical,
	}
	c.entries[fp] = e
	c.order = append(c.order, e)
	c.stats.Misses++
	tracer().Debugf("stylecache: new class %s = %s", class, text)
	return class, nil
}

// Lookup returns the class name for s if s has been materialized. It never
// touches the sink.
func (c *Cache) Lookup(s style.Style) (string, bool) {
	canonical := s.Canonical()
	c.mx.Lock()
	defer c.mx.Unlock()
	for probe := 0; probe < c.maxProbes; probe++ {
		e, found := c.entries[c.hash(c.seed, probe, canonical)]
		if !found {
			return "", false
		}
		if bytes.Equal(e.canonical, canonical) {
			return e.Class, true
		}
	}
	return "", false
}

// Len returns the number of materialized Styles.
func (c *Cache) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()
	return len(c.order)
}

// Entries returns a snapshot of all materialized Styles in the order they have
// been appended to the sink.
func (c *Cache) Entries() []Entry {
	c.mx.Lock()
	defer c.mx.Unlock()
	r := make([]Entry, len(c.order))
	for i, e := range c.order {
		r[i] = e.Entry
	}
	return r
}

// Stats returns the operation counters of c.
func (c *Cache) Stats() Stats {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.stats
}

// ClassName derives a class name from a fingerprint: "s" followed by the
// fingerprint in base 36.
func ClassName(fp uint64) string {
	return "s" + strconv.FormatUint(fp, 36)
}

// fingerprint hashes the canonical form of a Style. Every probe uses a
// different seed.
func fingerprint(seed uint64, probe int, canonical []byte) uint64 {
	d := xxhash.NewWithSeed(seed + uint64(probe)*0x9e3779b97f4a7c15)
	d.Write(canonical)
	return d.Sum64()
}
