package style_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylist/css"
	"github.com/npillmayer/stylist/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestPropertyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.style")
	defer teardown()
	//
	cases := []struct {
		p    style.Property
		text string
	}{
		{style.BorderCollapse(style.BorderCollapseCollapse), "border-collapse:collapse;"},
		{style.ColorRGBA(css.RGB(0xff, 0, 0)), "color:#ff0000ff;"},
		{style.FontSizeUnit(css.Px(12)), "font-size:12px;"},
		{style.LineHeightNumber(css.MustScalar(1.5)), "line-height:1.5;"},
		{style.TextIndentZero(), "text-indent:0;"},
		{style.WordSpacingUnit(css.Em(0.25)), "word-spacing:0.25em;"},
		{style.TextRendering(style.TextRenderingOptimizeSpeed), "text-rendering:optimizeSpeed;"},
		{style.BreakAfter(style.BreakAvoidPage), "break-after:avoid-page;"},
		{style.TextOverflowText(`"…"`), `text-overflow:"…";`},
		{style.Initial(style.PropColor), "color:initial;"},
		{style.Inherit(style.PropFontSize), "font-size:inherit;"},
		{style.Unset(style.PropDirection), "direction:unset;"},
	}
	for _, c := range cases {
		assert.Equal(t, c.text, c.p.String())
	}
}

func TestFontFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.style")
	defer teardown()
	//
	p := style.FontFamily("Helvetica", "Arial")
	assert.Equal(t, `font-family:"Helvetica","Arial";`, p.String())
	p = style.FontFamily(`My "Font"`, `back\slash`)
	assert.Equal(t, `font-family:"My \"Font\"","back\\slash";`, p.String())
	assert.Equal(t, "font-family:initial;", style.FontFamily().String())
	assert.Equal(t, style.PropFontFamily, p.Name())
}

func TestKeywordOutOfRange(t *testing.T) {
	k := style.BorderCollapseKeyword(200)
	assert.Equal(t, "unset", k.String())
	assert.Equal(t, "border-collapse:unset;", style.BorderCollapse(k).String())
}

func TestSharedKeywordDomains(t *testing.T) {
	// all border widths share one keyword type
	assert.Equal(t, "border-top-width:thin;", style.BorderTopWidth(style.LineWidthThin).String())
	assert.Equal(t, "outline-width:thick;", style.OutlineWidth(style.LineWidthThick).String())
	assert.Equal(t, "text-decoration-color:currentcolor;",
		style.TextDecorationColor(style.ColorCurrentcolor).String())
}

func TestPropertyNames(t *testing.T) {
	assert.Equal(t, "border-collapse", style.PropBorderCollapse.String())
	assert.Equal(t, "", style.NoProperty.String())
	assert.Equal(t, "", style.PropertyName(9999).String())
	n, ok := style.LookupProperty("text-decoration-color")
	assert.True(t, ok)
	assert.Equal(t, style.PropTextDecorationColor, n)
	_, ok = style.LookupProperty("margin-top")
	assert.False(t, ok)
	_, ok = style.LookupProperty("")
	assert.False(t, ok)
}

func TestPropertyEquality(t *testing.T) {
	p1 := style.ColorRGBA(css.RGB(1, 2, 3))
	p2 := style.ColorRGBA(css.RGB(1, 2, 3))
	assert.True(t, p1.Equal(p2))
	assert.Equal(t, p1, p2)
	assert.False(t, p1.Equal(style.ColorRGBA(css.RGB(1, 2, 4))))
	// same name, same text, different construction
	assert.True(t, style.FontSizeUnit(css.Px(12)).Equal(style.FontSizeUnit(css.Px(12.0))))
	// same value, different name
	assert.False(t, style.BorderTopWidthZero().Equal(style.BorderLeftWidthZero()))
}

func TestBorderShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.style")
	defer teardown()
	//
	props := style.BorderWidthUnit(css.Px(1))
	var names []string
	for _, p := range props {
		names = append(names, p.Name().String())
		assert.Equal(t, "1px", p.Value().String())
	}
	assert.Equal(t, []string{"border-left-width", "border-right-width", "border-top-width",
		"border-bottom-width"}, names)
	//
	props = style.BorderRadiusZero()
	names = names[:0]
	for _, p := range props {
		names = append(names, p.Name().String())
	}
	assert.Equal(t, []string{"border-top-left-radius", "border-top-right-radius",
		"border-bottom-left-radius", "border-bottom-right-radius"}, names)
	//
	for _, p := range style.BorderStyle(style.LineStyleDashed) {
		assert.Equal(t, "dashed", p.Value().String())
	}
	for _, p := range style.BorderColorRGBA(css.Gray(0x80)) {
		assert.Equal(t, "#808080ff", p.Value().String())
	}
	assert.Len(t, style.BorderColor(style.BorderColorTransparent), 4)
	assert.Len(t, style.BorderWidth(style.LineWidthMedium), 4)
	assert.Len(t, style.BorderWidthZero(), 4)
	assert.Len(t, style.BorderRadiusUnit(css.Pct(50)), 4)
}

func TestValueMatch(t *testing.T) {
	var u css.Unit
	v := style.FontSizeUnit(css.Rem(2)).Value()
	switch m := v.Match(); m {
	case m.Keyword(nil):
		t.Errorf("expected unit value, matched keyword")
	case m.Unit(&u):
		assert.Equal(t, css.UnitRem, u.Kind())
	default:
		t.Errorf("expected unit value, did not match")
	}
	//
	var kw string
	v = style.Inherit(style.PropColor).Value()
	if m := v.Match(); m.Keyword(&kw) == nil || kw != "inherit" {
		t.Errorf("expected keyword 'inherit', have %q", kw)
	}
	var c css.Color
	v = style.ColorRGBA(css.RGBA(1, 2, 3, 4)).Value()
	assert.NotNil(t, v.Match().Color(&c))
	assert.Equal(t, css.RGBA(1, 2, 3, 4), c)
	assert.Nil(t, v.Match().Zero())
	assert.NotNil(t, style.TextIndentZero().Value().Match().Zero())
	var n css.Scalar
	assert.NotNil(t, style.TabSizeNumber(css.MustScalar(4)).Value().Match().Number(&n))
	assert.Equal(t, float32(4), n.Float32())
	var s string
	assert.NotNil(t, style.FontFamily("serif").Value().Match().Text(&s))
	assert.Equal(t, `"serif"`, s)
}
