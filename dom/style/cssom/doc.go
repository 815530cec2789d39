/*
Package cssom provides the interfaces between generated style rules and the
presentation layer.

Style rules produced by a style cache are handed to a Sink as text blobs. A
Sink is append-only: rules are written once and never changed or removed.
Package cssom provides Buffer, an in-memory sink which collects the blobs in
order. Other sinks live next to the presentation layer they feed, e.g. the
<style>-element sink of package dom or the parsing sink of sub-package
douceuradapter.

Reading stylesheets is de-coupled by introducing interfaces StyleSheet and
Rule. Concrete implementations may be found in sub-packages.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. There is not
very much open source Go code around for CSS handling, except the great work
of https://godoc.org/github.com/andybalholm/cascadia and
https://godoc.org/github.com/aymerick/douceur.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stylist.style'.
func tracer() tracing.Trace {
	return tracing.Select("stylist.style")
}
