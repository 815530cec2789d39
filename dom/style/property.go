package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// PropertyName identifies a CSS property. The set of property names is closed;
// the constants are generated into properties_gen.go.
type PropertyName uint16

// NoProperty is the zero value of PropertyName. It is not a valid property.
const NoProperty PropertyName = 0

// String returns the kebab-case name of a property, e.g. "margin-top".
func (n PropertyName) String() string {
	if int(n) >= len(propertyNames) {
		return ""
	}
	return propertyNames[n]
}

// LookupProperty finds a property name by its CSS name.
func LookupProperty(name string) (PropertyName, bool) {
	for i := 1; i < len(propertyNames); i++ {
		if propertyNames[i] == name {
			return PropertyName(i), true
		}
	}
	return NoProperty, false
}

// Property is a single typed CSS declaration, e.g.
//
//	border-collapse: collapse
//
// Properties are created by the constructor functions of this package and are
// immutable afterwards. They are comparable with ==, but the authoritative
// notion of equality is Equal, which compares their serialized text.
type Property struct {
	name  PropertyName
	value Value
}

func declare(name PropertyName, v Value) Property {
	return Property{name: name, value: v}
}

// Initial sets property name to its initial value.
func Initial(name PropertyName) Property {
	return declare(name, initialValue)
}

// Inherit makes property name take its parent's value.
func Inherit(name PropertyName) Property {
	return declare(name, inheritValue)
}

// Unset resets property name to its inherited or initial value.
func Unset(name PropertyName) Property {
	return declare(name, unsetValue)
}

// Name returns the name of the property.
func (p Property) Name() PropertyName {
	return p.name
}

// Value returns the value of the property.
func (p Property) Value() Value {
	return p.value
}

// String returns the canonical text of p: "name:value;" without any whitespace.
func (p Property) String() string {
	return string(p.appendText(nil))
}

func (p Property) appendText(b []byte) []byte {
	b = append(b, p.name.String()...)
	b = append(b, ':')
	b = append(b, p.value.String()...)
	return append(b, ';')
}

// Equal is true if p and other serialize identically.
func (p Property) Equal(other Property) bool {
	return p == other || p.String() == other.String()
}
