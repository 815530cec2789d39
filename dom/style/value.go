package style

import (
	"github.com/npillmayer/stylist/css"
)

type valueKind uint8

const (
	keywordKind valueKind = iota // keyword, including initial/inherit/unset
	unitKind                     // css.Unit
	zeroKind                     // the unit-less 0
	numberKind                   // css.Scalar
	colorKind                    // css.Color
	textKind                     // raw text, inserted verbatim
)

// Value is the value part of a property, i.e. everything right of the colon.
// Values are comparable.
type Value struct {
	text   string // keyword or raw text
	unit   css.Unit
	number css.Scalar
	color  css.Color
	kind   valueKind
}

func keywordValue(k string) Value { return Value{kind: keywordKind, text: k} }
func unitValue(u css.Unit) Value { return Value{kind: unitKind, unit: u} }
func zeroValue() Value { return Value{kind: zeroKind} }
func numberValue(n css.Scalar) Value { return Value{kind: numberKind, number: n} }
func colorValue(c css.Color) Value { return Value{kind: colorKind, color: c} }
func textValue(s string) Value { return Value{kind: textKind, text: s} }

// CSS-wide keywords, valid for every property.
var (
	initialValue = keywordValue("initial")
	inheritValue = keywordValue("inherit")
	unsetValue   = keywordValue("unset")
)

// String returns the CSS text of v.
func (v Value) String() string {
	switch v.kind {
	case unitKind:
		return v.unit.String()
	case zeroKind:
		return "0"
	case numberKind:
		return v.number.String()
	case colorKind:
		return v.color.String()
	}
	return v.text
}

// keywordText returns the keyword at position i of a generated keyword table.
// Keyword types are plain integers, so a conversion from an arbitrary integer may
// produce an index outside of the table; those values serialize as "unset".
func keywordText(table []string, i int) string {
	if i < 0 || i >= len(table) {
		tracer().Errorf("style: keyword #%d out of range, using 'unset'", i)
		return "unset"
	}
	return table[i]
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for v, used like this:
//
//	var u css.Unit
//	switch m := v.Match(); m {
//	case m.Unit(&u):
//		…
//	case m.Keyword(nil):
//		…
//	}
func (v Value) Match() *ValueMatcher {
	return &ValueMatcher{value: v}
}

// ValueMatcher matches values by shape. Every matching method returns the matcher
// itself if the value has the requested shape, nil otherwise.
type ValueMatcher struct {
	value Value
}

// Keyword matches keyword values, including CSS-wide keywords.
func (m *ValueMatcher) Keyword(k *string) *ValueMatcher {
	if m.value.kind != keywordKind {
		return nil
	}
	if k != nil {
		*k = m.value.text
	}
	return m
}

// Unit matches dimensioned values.
func (m *ValueMatcher) Unit(u *css.Unit) *ValueMatcher {
	if m.value.kind != unitKind {
		return nil
	}
	if u != nil {
		*u = m.value.unit
	}
	return m
}

// Zero matches the unit-less 0.
func (m *ValueMatcher) Zero() *ValueMatcher {
	if m.value.kind != zeroKind {
		return nil
	}
	return m
}

// Number matches unit-less numbers.
func (m *ValueMatcher) Number(n *css.Scalar) *ValueMatcher {
	if m.value.kind != numberKind {
		return nil
	}
	if n != nil {
		*n = m.value.number
	}
	return m
}

// Color matches RGBA colors.
func (m *ValueMatcher) Color(c *css.Color) *ValueMatcher {
	if m.value.kind != colorKind {
		return nil
	}
	if c != nil {
		*c = m.value.color
	}
	return m
}

// Text matches raw text values, e.g. a list of font families.
func (m *ValueMatcher) Text(s *string) *ValueMatcher {
	if m.value.kind != textKind {
		return nil
	}
	if s != nil {
		*s = m.value.text
	}
	return m
}
