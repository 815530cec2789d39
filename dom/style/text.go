package style

import (
	"strings"
)

// FontFamily creates property font-family from a prioritized list of families.
// Every family name is quoted:
//
//	FontFamily("Helvetica", "Arial") ⇒ font-family:"Helvetica","Arial";
//
// An empty list yields property font-family:initial.
func FontFamily(families ...string) Property {
	if len(families) == 0 {
		return Initial(PropFontFamily)
	}
	var b strings.Builder
	for i, f := range families {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		for _, r := range f {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		b.WriteByte('"')
	}
	return declare(PropFontFamily, textValue(b.String()))
}
