package css_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/stylist/css"
	"github.com/stretchr/testify/assert"
)

func TestColorText(t *testing.T) {
	assert.Equal(t, "#ff0000ff", css.RGBA(255, 0, 0, 255).String())
	assert.Equal(t, "#0a0b0cff", css.RGB(10, 11, 12).String())
	assert.Equal(t, "#80808080", css.RGBA(0x80, 0x80, 0x80, 0x80).String())
	assert.Equal(t, "#333333ff", css.Gray(0x33).String())
	assert.Equal(t, "#00000000", css.Color{}.String())
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, css.RGB(0xff, 0, 0), css.ColorOf(color.RGBA{0xff, 0, 0, 0xff}))
	assert.Equal(t, css.Gray(0), css.ColorOf(color.Black))
	assert.Equal(t, css.Color{}, css.ColorOf(nil))
	c := css.RGBA(1, 2, 3, 4)
	assert.Equal(t, c, css.ColorOf(c))
}
