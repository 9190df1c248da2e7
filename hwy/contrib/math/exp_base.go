package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"github.com/go-xmvec/xmvec/hwy"
)

// Exp computes e^x for each element in the vector.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - float32 lanes overflow to +Inf above ~88.72
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return lanewise(v, math32.Exp, stdmath.Exp)
}
