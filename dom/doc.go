/*
Package dom attaches generated styles to HTML documents.

Documents are parse trees of golang.org/x/net/html. Package dom provides

  - StyleElement, a rule sink which appends rule text to a <style> element
    in the <head> of a document,
  - SetClass and Classes to manipulate the class attribute of elements,
  - KindClass, a class name derived from a Go type, which lets all elements
    created for the same kind of component share a common class,
  - Select, which finds elements by CSS selector (using cascadia), and
  - Registry, which hands out handles for elements before they are built.

# Status

Early draft, the API may change frequently. Please stay patient.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'stylist.dom'
func tracer() tracing.Trace {
	return tracing.Select("stylist.dom")
}
