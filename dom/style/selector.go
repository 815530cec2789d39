package style

import (
	"slices"
	"strings"
)

type componentKind uint8

const (
	tagComponent componentKind = iota + 1
	classComponent
	rawComponent
	placeholderComponent
)

// SelectorComponent is one part of a selector: a tag name, a class, raw selector
// text (pseudo-classes, combinators, attribute selectors), or the class placeholder.
// Components are comparable values.
type SelectorComponent struct {
	text string
	kind componentKind
}

// ClassPlaceholder stands for the class a Style will receive once it is materialized.
// It is replaced by a class component carrying the generated class when the Style
// is fetched from a style cache.
var ClassPlaceholder = SelectorComponent{kind: placeholderComponent}

// TagComponent creates a type selector component, e.g. "div".
func TagComponent(name string) SelectorComponent {
	return SelectorComponent{kind: tagComponent, text: name}
}

// ClassComponent creates a class selector component. The leading dot is added on
// serialization, i.e. ClassComponent("x") renders as ".x".
func ClassComponent(name string) SelectorComponent {
	return SelectorComponent{kind: classComponent, text: name}
}

// RawComponent creates a component which is rendered verbatim, e.g. ":hover" or " > ".
func RawComponent(text string) SelectorComponent {
	return SelectorComponent{kind: rawComponent, text: text}
}

// IsPlaceholder is true for the class placeholder.
func (c SelectorComponent) IsPlaceholder() bool {
	return c.kind == placeholderComponent
}

// String returns the selector text of c. An unresolved placeholder renders as "&".
func (c SelectorComponent) String() string {
	switch c.kind {
	case classComponent:
		return "." + c.text
	case placeholderComponent:
		return "&"
	}
	return c.text
}

// Selector is an ordered sequence of selector components. Its text is the plain
// concatenation of the components' texts; no separators are inserted.
type Selector []SelectorComponent

// Self is the selector consisting of the class placeholder only, i.e. it selects
// the elements a Style is attached to.
func Self() Selector {
	return Selector{ClassPlaceholder}
}

// Sel creates a selector from components.
func Sel(components ...SelectorComponent) Selector {
	return slices.Clone(Selector(components))
}

func (sel Selector) with(c SelectorComponent) Selector {
	return append(slices.Clip(sel), c)
}

// Tag appends a type selector.
func (sel Selector) Tag(name string) Selector { return sel.with(TagComponent(name)) }

// Class appends a class selector.
func (sel Selector) Class(name string) Selector { return sel.with(ClassComponent(name)) }

// Raw appends raw selector text.
func (sel Selector) Raw(text string) Selector { return sel.with(RawComponent(text)) }

// Placeholder appends the class placeholder.
func (sel Selector) Placeholder() Selector { return sel.with(ClassPlaceholder) }

// Hover appends pseudo-class ":hover".
func (sel Selector) Hover() Selector { return sel.Raw(":hover") }

// Child appends a child combinator.
func (sel Selector) Child() Selector { return sel.Raw(">") }

// Descendant appends a descendant combinator.
func (sel Selector) Descendant() Selector { return sel.Raw(" ") }

// HasPlaceholder is true if sel contains at least one class placeholder.
func (sel Selector) HasPlaceholder() bool {
	return slices.Contains(sel, ClassPlaceholder)
}

// Resolve returns a copy of sel with every placeholder replaced by class.
func (sel Selector) Resolve(class string) Selector {
	r := slices.Clone(sel)
	for i, c := range r {
		if c.IsPlaceholder() {
			r[i] = ClassComponent(class)
		}
	}
	return r
}

func (sel Selector) String() string {
	var b strings.Builder
	for _, c := range sel {
		b.WriteString(c.String())
	}
	return b.String()
}
