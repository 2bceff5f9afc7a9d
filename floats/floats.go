// Package floats defines the numeric capability set shared by the
// time-value packages: a constraint over the supported float widths plus
// the handful of width-aware primitives (machine epsilon, power, NaN)
// that the generic code cannot express directly.
package floats

import "math"

// Real is the set of floating-point types the library computes over.
type Real interface {
	~float32 | ~float64
}

// Epsilon returns the machine epsilon of T: the gap between 1.0 and the
// next representable value of the type.
func Epsilon[T Real]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.Nextafter32(1, 2) - 1)
	default:
		return T(math.Nextafter(1, 2) - 1)
	}
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Real]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.MaxFloat32)
	default:
		max := math.MaxFloat64
		return T(max)
	}
}

// NaN returns the quiet NaN of T.
func NaN[T Real]() T {
	return T(math.NaN())
}

// IsNaN reports whether x is NaN.
func IsNaN[T Real](x T) bool {
	return x != x
}

// Abs returns the absolute value of x.
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of a and b.
func Max[T Real](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Pow returns x**y. For float32 the computation runs in float64 and is
// rounded once on the way out.
func Pow[T Real](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Real](x T) bool {
	if IsNaN(x) {
		return false
	}
	max := MaxValue[T]()
	return x <= max && x >= -max
}
