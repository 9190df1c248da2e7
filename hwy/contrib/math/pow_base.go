package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"github.com/go-xmvec/xmvec/hwy"
)

// Pow computes x^y for each corresponding pair of elements in the vectors.
//
// Special cases follow Go's math.Pow, including:
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, 1) = x for any x
//	Pow(NaN, y) = NaN
//	Pow(x, NaN) = NaN
//	Pow(±0, y) = +Inf for finite y < 0 and not an odd integer
//	Pow(x, +Inf) = +Inf for |x| > 1
//	Pow(x, +Inf) = +0 for |x| < 1
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
func Pow[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	xData := x.Data()
	yData := y.Data()
	n := min(len(xData), len(yData))
	result := make([]T, n)
	var zero T
	switch any(zero).(type) {
	case float32:
		for i := range n {
			result[i] = T(math32.Pow(float32(xData[i]), float32(yData[i])))
		}
	default:
		for i := range n {
			result[i] = T(stdmath.Pow(float64(xData[i]), float64(yData[i])))
		}
	}
	return hwy.Load(result)
}
