/*
Package stylecache maps Styles to generated class names and materializes every
distinct Style exactly once.

A Cache fingerprints the content of a Style. The first time a Style is fetched,
the cache derives a class name from the fingerprint, substitutes it for the
class placeholders of the Style, and appends the resulting rule text to a
cssom.Sink. Subsequent fetches of an equal Style, wherever it has been built,
return the same class name without touching the sink:

	cache := stylecache.New(&cssom.Buffer{})
	class, err := cache.Fetch(style.New().Self(style.Hyphens(style.HyphensAuto)))

Class names depend on the content of a Style and on the seed of the cache only,
so they are stable across program runs. Entries are never evicted.

# Status

This is a first draft. The API may change without notice.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stylecache

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylist.cache'
func tracer() tracing.Trace {
	return tracing.Select("stylist.cache")
}
