package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Errors returned for numbers which cannot be represented as a Scalar.
var (
	ErrNaN      = errors.New("css: scalar is not a number")
	ErrInfinite = errors.New("css: scalar is infinite")
)

// Number is the set of numeric types a Scalar may be constructed from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Scalar is a 32-bit floating point number which is never NaN or infinite.
// Negative zero is stored as zero. With these restrictions, == on Scalars is
// a total equivalence and Scalars may be used as map keys.
//
// The zero value is the number 0.
type Scalar struct {
	x float32
}

// NewScalar creates a Scalar from a number. It fails with ErrNaN if n is not a number,
// and with ErrInfinite if n is infinite or exceeds the range of a float32.
func NewScalar[N Number](n N) (Scalar, error) {
	f := float64(n)
	if math.IsNaN(f) {
		tracer().Debugf("css: rejecting NaN scalar")
		return Scalar{}, ErrNaN
	}
	x := float32(f)
	if math.IsInf(float64(x), 0) {
		tracer().Debugf("css: rejecting infinite scalar %g", f)
		return Scalar{}, ErrInfinite
	}
	if x == 0 {
		x = 0 // drop the sign of -0
	}
	return Scalar{x: x}, nil
}

// MustScalar is like NewScalar, but panics for numbers which are not representable.
// It is intended for literals.
func MustScalar[N Number](n N) Scalar {
	s, err := NewScalar(n)
	if err != nil {
		panic(fmt.Sprintf("css: %v: %v", err, n))
	}
	return s
}

// Float32 returns the value of s.
func (s Scalar) Float32() float32 {
	return s.x
}

// IsZero is true for a value of 0.
func (s Scalar) IsZero() bool {
	return s.x == 0
}

// String returns the shortest decimal representation which reads back to the same
// float32. Exponent notation is never used, as CSS does not accept it everywhere.
func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s.x), 'f', -1, 32)
}
