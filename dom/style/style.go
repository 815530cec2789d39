package style

import (
	"bytes"
	"encoding/binary"
	"slices"
)

// Rule pairs a selector with an ordered list of properties. Later properties
// override earlier ones of the same name, as within a CSS rule.
type Rule struct {
	selector   Selector
	properties []Property
}

// NewRule creates a rule. Both arguments are copied. A rule must select
// something: an empty selector is taken as Self(), i.e. the properties apply to
// the elements the Style is attached to.
func NewRule(sel Selector, props ...Property) Rule {
	if len(sel) == 0 {
		sel = Self()
	}
	return Rule{selector: slices.Clone(sel), properties: slices.Clone(props)}
}

// Selector returns a copy of the rule's selector.
func (r Rule) Selector() Selector {
	return slices.Clone(r.selector)
}

// Properties returns a copy of the rule's properties.
func (r Rule) Properties() []Property {
	return slices.Clone(r.properties)
}

// String returns "selector{prop;prop;}".
func (r Rule) String() string {
	return string(r.appendText(nil))
}

func (r Rule) appendText(b []byte) []byte {
	b = append(b, r.selector.String()...)
	b = append(b, '{')
	for _, p := range r.properties {
		b = p.appendText(b)
	}
	return append(b, '}')
}

// Style is an ordered list of rules, treated as one structural value.
// Styles are immutable: Rule and Self return extended copies and never modify
// the receiver, so a Style may be shared freely.
//
// The zero value is an empty Style, ready to use.
type Style struct {
	rules []Rule
}

// New creates a Style from a list of rules.
func New(rules ...Rule) Style {
	st := Style{}
	for _, r := range rules {
		st = st.append(NewRule(r.selector, r.properties...))
	}
	return st
}

func (st Style) append(r Rule) Style {
	return Style{rules: append(slices.Clip(st.rules), r)}
}

// Rule returns a copy of st with a rule appended.
func (st Style) Rule(sel Selector, props ...Property) Style {
	return st.append(NewRule(sel, props...))
}

// Self returns a copy of st with a rule for selector Self() appended.
func (st Style) Self(props ...Property) Style {
	return st.append(NewRule(Self(), props...))
}

// Rules returns a copy of the rules of st.
func (st Style) Rules() []Rule {
	return slices.Clone(st.rules)
}

// Len returns the number of rules.
func (st Style) Len() int {
	return len(st.rules)
}

// IsEmpty is true for a Style without rules.
func (st Style) IsEmpty() bool {
	return len(st.rules) == 0
}

// Resolve returns a copy of st with every class placeholder replaced by a class
// selector for class. st itself is not modified.
func (st Style) Resolve(class string) Style {
	r := Style{rules: make([]Rule, len(st.rules))}
	for i, rule := range st.rules {
		r.rules[i] = Rule{selector: rule.selector.Resolve(class), properties: rule.properties}
	}
	return r
}

// String serializes st: all rules concatenated, each as "selector{prop;prop;}".
// Unresolved placeholders render as "&".
func (st Style) String() string {
	return string(st.AppendText(nil))
}

// AppendText appends the serialization of st to b.
func (st Style) AppendText(b []byte) []byte {
	for _, r := range st.rules {
		b = r.appendText(b)
	}
	return b
}

// Canonical returns an unambiguous binary encoding of the content of st,
// suitable for fingerprinting. Selectors are encoded as runs of literal text
// separated by placeholder markers, so a placeholder never encodes like a literal
// class, while selectors with identical text encode identically regardless of how
// they have been split into components. All texts are length-prefixed.
func (st Style) Canonical() []byte {
	b := binary.AppendUvarint(nil, uint64(len(st.rules)))
	for _, r := range st.rules {
		b = appendSelector(b, r.selector)
		b = binary.AppendUvarint(b, uint64(len(r.properties)))
		for _, p := range r.properties {
			b = appendString(b, p.String())
		}
	}
	return b
}

const (
	literalMarker     = 'L'
	placeholderMarker = 'P'
	selectorEnd       = 'E'
)

func appendSelector(b []byte, sel Selector) []byte {
	var run []byte
	for _, c := range sel {
		if !c.IsPlaceholder() {
			run = append(run, c.String()...)
			continue
		}
		if len(run) > 0 {
			b = append(b, literalMarker)
			b = appendString(b, string(run))
			run = run[:0]
		}
		b = append(b, placeholderMarker)
	}
	if len(run) > 0 {
		b = append(b, literalMarker)
		b = appendString(b, string(run))
	}
	return append(b, selectorEnd)
}

func appendString(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

// Equal is true if st and other have the same rules, in the same order.
func (st Style) Equal(other Style) bool {
	return bytes.Equal(st.Canonical(), other.Canonical())
}
