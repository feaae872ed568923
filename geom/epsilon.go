package geom

import "math"

// Epsilon is the difference between 1 and the smallest float32 greater
// than 1. Values closer together than Epsilon compare as equal.
const Epsilon float32 = 0x1p-23

// minNormal is the smallest positive normal float32.
const minNormal float32 = 0x1p-126

// Compare returns 0 if f1 and f2 are within [Epsilon] of each other,
// -1 if f1 is less than f2 and +1 otherwise.
func Compare(f1, f2 float32) int {
	return CompareEps(f1, f2, Epsilon)
}

// CompareEps is like [Compare] but uses the given tolerance.
//
// Equal infinities compare as equal. The result for NaN arguments is
// undefined.
func CompareEps(f1, f2, epsilon float32) int {
	if f1 == f2 {
		return 0
	}

	diff := f1 - f2
	if abs(diff) < epsilon {
		return 0
	}
	if diff < 0 {
		return -1
	}
	return 1
}

// CloseToZero reports whether f is within [Epsilon] of zero.
func CloseToZero(f float32) bool {
	return abs(f) < Epsilon
}

func abs(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) &^ (1 << 31))
}

func isInf(f float32) bool {
	return math.IsInf(float64(f), 0)
}

func isNaN(f float32) bool {
	return f != f
}

func nan() float32 {
	return float32(math.NaN())
}

func inf(sign int) float32 {
	return float32(math.Inf(sign))
}

// fixDim snaps f to the nearest half unit in the way that lines drawn
// on pixel boundaries expect: a fractional part above 0.15 rounds to
// the following half, anything else to the preceding one.
func fixDim(f float32) float32 {
	i, frac := math.Modf(float64(f))
	if frac > 0.15 {
		return float32(i + 0.5)
	}
	return float32(i - 0.5)
}

func hypot(x, y float32) float32 {
	return float32(math.Hypot(float64(x), float64(y)))
}
