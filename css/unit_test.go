package css_test

import (
	"math"
	"testing"

	"github.com/npillmayer/stylist/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitText(t *testing.T) {
	assert.Equal(t, "12px", css.Px(12).String())
	assert.Equal(t, "1.5em", css.Em(1.5).String())
	assert.Equal(t, "2rem", css.Rem(2).String())
	assert.Equal(t, "100vw", css.Vw(100).String())
	assert.Equal(t, "50vh", css.Vh(50).String())
	assert.Equal(t, "10vmin", css.Vmin(10).String())
	assert.Equal(t, "10vmax", css.Vmax(10).String())
	assert.Equal(t, "33.5%", css.Pct(33.5).String())
	assert.Equal(t, "0px", css.Unit{}.String())
}

func TestUnitTextIsInjective(t *testing.T) {
	seen := make(map[string]css.Unit)
	kinds := []css.UnitKind{css.UnitPx, css.UnitEm, css.UnitRem, css.UnitVw,
		css.UnitVh, css.UnitVmin, css.UnitVmax, css.UnitPercent}
	for _, k := range kinds {
		for _, v := range []float64{0, 1, 1.5, 10, 15, 100, 0.25} {
			u, err := css.NewUnit(k, v)
			require.NoError(t, err)
			text := u.String()
			if other, ok := seen[text]; ok && other != u {
				t.Errorf("units %#v and %#v both serialize to %q", other, u, text)
			}
			seen[text] = u
		}
	}
}

func TestNewUnitErrors(t *testing.T) {
	_, err := css.NewUnit(css.UnitEm, math.NaN())
	assert.ErrorIs(t, err, css.ErrNaN)
	_, err = css.NewUnit(css.UnitKind(99), 1)
	assert.ErrorIs(t, err, css.ErrUnitKind)
	assert.Panics(t, func() { css.Px(math.NaN()) })
}

func TestUnitOfRejectsUnknownKind(t *testing.T) {
	_, err := css.UnitOf(css.UnitKind(200), css.MustScalar(3))
	assert.ErrorIs(t, err, css.ErrUnitKind)
	u, err := css.UnitOf(css.UnitRem, css.MustScalar(3))
	require.NoError(t, err)
	assert.Equal(t, "3rem", u.String())
}

func TestUnitMatch(t *testing.T) {
	var s css.Scalar
	u := css.Rem(3)
	switch m := u.Match(); m {
	case m.Absolute(&s):
		t.Errorf("expected rem not to match absolute")
	case m.FontRelative(&s):
		t.Logf("font relative value = %s", s)
	default:
		t.Errorf("expected 3rem to be font relative, isn't: %#v", u)
	}
	if s != css.MustScalar(3) {
		t.Errorf("expected matched value to be 3, is %s", s)
	}
	v := css.Vmin(20)
	switch m := v.Match(); m {
	case m.ViewportRelative(nil):
	default:
		t.Errorf("expected vmin to be viewport relative")
	}
}

func TestUnitDimen(t *testing.T) {
	d, ok := css.Px(4).Dimen()
	require.True(t, ok)
	assert.Equal(t, dimen.DU(3*dimen.PT), d)
	_, ok = css.Em(1).Dimen()
	assert.False(t, ok)
}
