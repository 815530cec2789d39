/*
Package css provides the value model for typed style properties.

Stylesheet values are mostly numbers with a unit attached to them, and colors.
This package shields clients from the textual nature of CSS values: a Scalar
is a number which is guaranteed not to be NaN, a Unit is a Scalar tagged with one
of a closed set of dimensions, and a Color is an RGBA quadruple. All of them are
immutable, comparable values with exactly one textual representation, so that
two values serialize identically if and only if they are equal.

# Status

This is a first draft. The API may change without notice.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stylist.css'.
func tracer() tracing.Trace {
	return tracing.Select("stylist.css")
}
