/*
Package style provides typed style properties and the structural Style type.

A Property is one CSS declaration, e.g. "border-collapse:collapse;". Properties form
a closed set: they can only be created with the typed constructors of this
package, most of which are generated from properties.yaml by cmd/propgen.
Every Property has exactly one textual representation, and this text is its
identity: two properties are equal if and only if they serialize identically.

A Style is an ordered list of rules, each rule pairing a Selector with a list of
properties. Selectors may contain a placeholder component which stands for the
class a Style will be assigned once it is materialized, i.e. a Style may refer to
its own identity before that identity is known:

	st := style.New().
		Self(style.BorderCollapse(style.BorderCollapseCollapse)).
		Rule(style.Self().Hover(), style.ColorRGBA(css.RGB(0xff, 0, 0)))

Styles are immutable values; appending a rule returns a new Style. Two Styles
built independently but with the same content are equal.

# Status

This is a first draft. The API may change without notice.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

//go:generate go run ../../cmd/propgen --schema properties.yaml --out properties_gen.go --package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylist.style'
func tracer() tracing.Trace {
	return tracing.Select("stylist.style")
}
