package style

import (
	"github.com/npillmayer/stylist/css"
)

// Border shorthands expand into the four longhand properties, in the order
// left, right, top, bottom (corners: top-left, top-right, bottom-left, bottom-right).
// Use them as
//
//	style.New().Rule(sel, style.BorderWidthUnit(css.Px(1))...)
//

// BorderWidth sets the width of all four borders to a keyword.
func BorderWidth(k LineWidthKeyword) []Property {
	return []Property{BorderLeftWidth(k), BorderRightWidth(k), BorderTopWidth(k), BorderBottomWidth(k)}
}

// BorderWidthUnit sets the width of all four borders.
func BorderWidthUnit(u css.Unit) []Property {
	return []Property{BorderLeftWidthUnit(u), BorderRightWidthUnit(u), BorderTopWidthUnit(u),
		BorderBottomWidthUnit(u)}
}

// BorderWidthZero sets the width of all four borders to 0.
func BorderWidthZero() []Property {
	return []Property{BorderLeftWidthZero(), BorderRightWidthZero(), BorderTopWidthZero(),
		BorderBottomWidthZero()}
}

// BorderStyle sets the style of all four borders.
func BorderStyle(k LineStyleKeyword) []Property {
	return []Property{BorderLeftStyle(k), BorderRightStyle(k), BorderTopStyle(k), BorderBottomStyle(k)}
}

// BorderColor sets the color of all four borders to a keyword.
func BorderColor(k BorderColorKeyword) []Property {
	return []Property{BorderLeftColor(k), BorderRightColor(k), BorderTopColor(k), BorderBottomColor(k)}
}

// BorderColorRGBA sets the color of all four borders.
func BorderColorRGBA(c css.Color) []Property {
	return []Property{BorderLeftColorRGBA(c), BorderRightColorRGBA(c), BorderTopColorRGBA(c),
		BorderBottomColorRGBA(c)}
}

// BorderRadiusUnit sets the radius of all four corners.
func BorderRadiusUnit(u css.Unit) []Property {
	return []Property{BorderTopLeftRadiusUnit(u), BorderTopRightRadiusUnit(u),
		BorderBottomLeftRadiusUnit(u), BorderBottomRightRadiusUnit(u)}
}

// BorderRadiusZero sets the radius of all four corners to 0.
func BorderRadiusZero() []Property {
	return []Property{BorderTopLeftRadiusZero(), BorderTopRightRadiusZero(),
		BorderBottomLeftRadiusZero(), BorderBottomRightRadiusZero()}
}
