package css

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
)

// ErrUnitKind is returned for a unit kind outside of the known set.
var ErrUnitKind = errors.New("css: unknown unit kind")

// UnitKind is the dimension of a Unit.
type UnitKind uint8

// Unit kinds. UnitPx is the zero value, making the zero Unit equal to 0px.
const (
	UnitPx      UnitKind = iota // CSS pixels
	UnitEm                      // relative to the element's font size
	UnitRem                     // relative to the root element's font size
	UnitVw                      // 1% of the viewport width
	UnitVh                      // 1% of the viewport height
	UnitVmin                    // 1% of the smaller viewport dimension
	UnitVmax                    // 1% of the larger viewport dimension
	UnitPercent                 // relative to a reference length
	unitKindCount
)

var unitSuffixes = [...]string{"px", "em", "rem", "vw", "vh", "vmin", "vmax", "%"}

// Suffix returns the CSS suffix for a unit kind, e.g. "px".
func (k UnitKind) Suffix() string {
	if k >= unitKindCount {
		return ""
	}
	return unitSuffixes[k]
}

func (k UnitKind) String() string {
	if k >= unitKindCount {
		return fmt.Sprintf("UnitKind(%d)", uint8(k))
	}
	return unitSuffixes[k]
}

// Unit is a dimensioned CSS value, i.e. a Scalar tagged with a unit kind.
// Units are immutable and comparable. Two units serialize to the same
// text if and only if they are equal.
type Unit struct {
	value Scalar
	kind  UnitKind
}

/*
type Unit
	= Px Scalar
	| Em Scalar
	| Rem Scalar
	| Vw Scalar
	| Vh Scalar
	| Vmin Scalar
	| Vmax Scalar
	| Percent Scalar
*/

// NewUnit creates a unit of kind k with value n. It fails if n is not representable
// as a Scalar or if k is not a valid unit kind.
func NewUnit[N Number](k UnitKind, n N) (Unit, error) {
	if k >= unitKindCount {
		return Unit{}, fmt.Errorf("%w: %d", ErrUnitKind, k)
	}
	s, err := NewScalar(n)
	if err != nil {
		return Unit{}, err
	}
	return Unit{value: s, kind: k}, nil
}

// UnitOf creates a unit from an already validated Scalar. It fails if k is not
// a valid unit kind.
func UnitOf(k UnitKind, s Scalar) (Unit, error) {
	if k >= unitKindCount {
		return Unit{}, fmt.Errorf("%w: %d", ErrUnitKind, k)
	}
	return Unit{value: s, kind: k}, nil
}

func mustUnit[N Number](k UnitKind, n N) Unit {
	return Unit{value: MustScalar(n), kind: k}
}

// Px creates a pixel value. Px and its siblings are intended for literals and
// will panic if n is NaN; use NewUnit for values of unknown origin.
func Px[N Number](n N) Unit { return mustUnit(UnitPx, n) }

// Em creates a font-relative value. Panics if n is NaN.
func Em[N Number](n N) Unit { return mustUnit(UnitEm, n) }

// Rem creates a root-font-relative value. Panics if n is NaN.
func Rem[N Number](n N) Unit { return mustUnit(UnitRem, n) }

// Vw creates a viewport-width-relative value. Panics if n is NaN.
func Vw[N Number](n N) Unit { return mustUnit(UnitVw, n) }

// Vh creates a viewport-height-relative value. Panics if n is NaN.
func Vh[N Number](n N) Unit { return mustUnit(UnitVh, n) }

// Vmin creates a value relative to the smaller viewport dimension. Panics if n is NaN.
func Vmin[N Number](n N) Unit { return mustUnit(UnitVmin, n) }

// Vmax creates a value relative to the larger viewport dimension. Panics if n is NaN.
func Vmax[N Number](n N) Unit { return mustUnit(UnitVmax, n) }

// Pct creates a percentage. Panics if n is NaN.
func Pct[N Number](n N) Unit { return mustUnit(UnitPercent, n) }

// Kind returns the unit kind of u.
func (u Unit) Kind() UnitKind {
	return u.kind
}

// Value returns the numeric part of u.
func (u Unit) Value() Scalar {
	return u.value
}

// String returns the CSS text of u, e.g. "12px" or "50%".
func (u Unit) String() string {
	return u.value.String() + u.kind.Suffix()
}

// pxInPoints is the size of a CSS pixel in typesetter's points (1px = 1/96in = 0.75pt).
const pxInPoints = 0.75

// Dimen converts an absolute unit into a typesetting dimension. Relative units
// cannot be resolved without a layout context, in which case Dimen returns false.
func (u Unit) Dimen() (dimen.DU, bool) {
	var s Scalar
	switch m := u.Match(); m {
	case m.Absolute(&s):
		return dimen.DU(math.Round(float64(s.x) * pxInPoints * float64(dimen.PT))), true
	}
	return 0, false
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for u. Clients use it like this:
//
//	var s css.Scalar
//	switch m := u.Match(); m {
//	case m.Absolute(&s):
//		…
//	case m.FontRelative(&s):
//		…
//	}
func (u Unit) Match() *UnitMatcher {
	return &UnitMatcher{unit: u}
}

// UnitMatcher matches units by kind. Every matching method returns the matcher
// itself if the unit matches, nil otherwise.
type UnitMatcher struct {
	unit Unit
}

func (m *UnitMatcher) extract(s *Scalar) *UnitMatcher {
	if s != nil {
		*s = m.unit.value
	}
	return m
}

// Kind matches units of kind k.
func (m *UnitMatcher) Kind(k UnitKind, s *Scalar) *UnitMatcher {
	if m.unit.kind == k {
		return m.extract(s)
	}
	return nil
}

// Absolute matches pixel units.
func (m *UnitMatcher) Absolute(s *Scalar) *UnitMatcher {
	return m.Kind(UnitPx, s)
}

// FontRelative matches em and rem units.
func (m *UnitMatcher) FontRelative(s *Scalar) *UnitMatcher {
	if m.unit.kind == UnitEm || m.unit.kind == UnitRem {
		return m.extract(s)
	}
	return nil
}

// ViewportRelative matches vw, vh, vmin and vmax units.
func (m *UnitMatcher) ViewportRelative(s *Scalar) *UnitMatcher {
	if m.unit.kind >= UnitVw && m.unit.kind <= UnitVmax {
		return m.extract(s)
	}
	return nil
}

// Percentage matches percentages.
func (m *UnitMatcher) Percentage(s *Scalar) *UnitMatcher {
	return m.Kind(UnitPercent, s)
}
