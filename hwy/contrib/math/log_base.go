package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"github.com/go-xmvec/xmvec/hwy"
)

// Log computes the natural logarithm ln(x) for each element in the vector.
//
// Special cases:
//   - Log(+Inf) = +Inf
//   - Log(0) = -Inf
//   - Log(x < 0) = NaN
//   - Log(NaN) = NaN
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return lanewise(v, math32.Log, stdmath.Log)
}
