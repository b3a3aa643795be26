package format

import "math"

// Numeric coercion rules shared by the typed numeric readers.
//
// A value stored under one numeric tag may be read as another:
//   - Int64 -> Int32 keeps the low 32 bits (two's complement wraparound).
//   - Double -> integral truncates toward zero.
//   - Integral -> Double is the nearest representable float64.
//
// Conversions from Double that cannot be represented in int64 saturate
// (NaN becomes 0) so the result never depends on the platform.

// DoubleToInt64 truncates f toward zero.
func DoubleToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// DoubleToInt32 truncates f toward zero and keeps the low 32 bits.
func DoubleToInt32(f float64) int32 {
	return Int64ToInt32(DoubleToInt64(f))
}

// Int64ToInt32 keeps the low 32 bits of v.
func Int64ToInt32(v int64) int32 {
	return int32(v) //nolint:gosec
}
