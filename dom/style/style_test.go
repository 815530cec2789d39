package style_test

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stylist/css"
	"github.com/npillmayer/stylist/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestSelectorText(t *testing.T) {
	cases := []struct {
		sel  style.Selector
		text string
	}{
		{style.Self(), "&"},
		{style.Self().Hover(), "&:hover"},
		{style.Sel(style.TagComponent("div")).Class("a"), "div.a"},
		{style.Self().Child().Tag("li"), "&>li"},
		{style.Self().Descendant().Placeholder(), "& &"},
		{style.Sel(), ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.text, c.sel.String())
	}
}

func TestSelectorResolve(t *testing.T) {
	sel := style.Self().Hover().Descendant().Tag("span")
	assert.True(t, sel.HasPlaceholder())
	r := sel.Resolve("s1x")
	assert.Equal(t, ".s1x:hover span", r.String())
	assert.False(t, r.HasPlaceholder())
	assert.True(t, sel.HasPlaceholder(), "Resolve must not modify its receiver")
	assert.False(t, style.Sel(style.TagComponent("p")).HasPlaceholder())
}

func TestSelectorBuilderDoesNotAlias(t *testing.T) {
	base := style.Self()
	a := base.Hover()
	b := base.Child()
	assert.Equal(t, "&:hover", a.String())
	assert.Equal(t, "&>", b.String())
	assert.Equal(t, "&", base.String())
}

func TestStyleText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.style")
	defer teardown()
	//
	st := style.New().Self(style.BorderCollapse(style.BorderCollapseCollapse))
	assert.Equal(t, "&{border-collapse:collapse;}", st.String())
	assert.Equal(t, ".sABC{border-collapse:collapse;}", st.Resolve("sABC").String())
	//
	st = st.Rule(style.Self().Hover(), style.ColorRGBA(css.RGB(0xff, 0, 0)), style.FontSizeUnit(css.Px(12)))
	assert.Equal(t, "&{border-collapse:collapse;}&:hover{color:#ff0000ff;font-size:12px;}", st.String())
	assert.Equal(t, 2, st.Len())
	//
	empty := style.Style{}
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, "", empty.String())
	assert.Equal(t, "x", string(empty.AppendText([]byte("x"))))
}

func TestStyleImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stylist.style")
	defer teardown()
	//
	base := style.New().Self(style.Direction(style.DirectionRtl))
	a := base.Rule(style.Self().Hover(), style.FontStyle(style.FontStyleItalic))
	b := base.Rule(style.Self().Hover(), style.FontStyle(style.FontStyleOblique))
	assert.Equal(t, 1, base.Len())
	assert.Contains(t, a.String(), "italic")
	assert.NotContains(t, a.String(), "oblique")
	assert.Contains(t, b.String(), "oblique")
	//
	props := []style.Property{style.TextAlign(style.TextAlignLeft)}
	st := style.New().Self(props...)
	props[0] = style.TextAlign(style.TextAlignRight)
	assert.Equal(t, "&{text-align:left;}", st.String())
	//
	rules := st.Rules()
	rules[0] = style.NewRule(style.Sel(style.TagComponent("p")))
	assert.Equal(t, "&{text-align:left;}", st.String())
	resolved := st.Resolve("c")
	assert.Equal(t, "&{text-align:left;}", st.String())
	assert.Equal(t, ".c{text-align:left;}", resolved.String())
}

func TestStyleEquality(t *testing.T) {
	build := func() style.Style {
		return style.New().
			Self(style.BorderWidthUnit(css.Px(1))...).
			Rule(style.Self().Hover(), style.ColorRGBA(css.RGB(0, 0, 0xff)))
	}
	a, b := build(), build()
	assert.True(t, a.Equal(b))
	assert.True(t, bytes.Equal(a.Canonical(), b.Canonical()))
	//
	c := build().Self(style.Hyphens(style.HyphensAuto))
	assert.False(t, a.Equal(c))
	// order of rules is significant
	r1 := style.NewRule(style.Self(), style.Hyphens(style.HyphensNone))
	r2 := style.NewRule(style.Self().Hover(), style.Hyphens(style.HyphensAuto))
	assert.False(t, style.New(r1, r2).Equal(style.New(r2, r1)))
	assert.True(t, style.New(r1, r2).Equal(style.New().Rule(r1.Selector(), r1.Properties()...).
		Rule(r2.Selector(), r2.Properties()...)))
}

func TestCanonicalDistinguishesPlaceholder(t *testing.T) {
	p := style.WhiteSpace(style.WhiteSpaceNowrap)
	withPlaceholder := style.New().Self(p)
	withRaw := style.New().Rule(style.Sel(style.RawComponent("&")), p)
	assert.Equal(t, withPlaceholder.String(), withRaw.String())
	assert.False(t, withPlaceholder.Equal(withRaw))
	//
	withClass := style.New().Rule(style.Sel(style.ClassComponent("x")), p)
	assert.False(t, withPlaceholder.Equal(withClass))
	assert.Equal(t, withPlaceholder.Resolve("x").String(), withClass.String())
}

func TestCanonicalIgnoresComponentSplit(t *testing.T) {
	p := style.WordBreak(style.WordBreakKeepAll)
	a := style.New().Rule(style.Sel(style.TagComponent("div")).Hover(), p)
	b := style.New().Rule(style.Sel(style.RawComponent("div:hover")), p)
	assert.True(t, a.Equal(b))
}

func TestCanonicalIsUnambiguous(t *testing.T) {
	// two rules must not encode like one rule with concatenated properties
	p1 := style.WordWrap(style.WordWrapNormal)
	p2 := style.WordWrap(style.WordWrapBreakWord)
	one := style.New().Self(p1, p2)
	two := style.New().Self(p1).Self(p2)
	assert.False(t, one.Equal(two))
	// empty rule vs. missing rule
	a := style.New().Self()
	assert.False(t, a.Equal(style.Style{}))
}

func TestEmptySelectorSelectsSelf(t *testing.T) {
	p := style.Hyphens(style.HyphensAuto)
	st := style.New().Rule(style.Sel(), p)
	assert.Equal(t, "&{hyphens:auto;}", st.String())
	assert.True(t, st.Equal(style.New().Self(p)))
	assert.Equal(t, "&", style.NewRule(nil, p).Selector().String())
	assert.True(t, style.New(style.Rule{}).Equal(style.New().Self()))
}
