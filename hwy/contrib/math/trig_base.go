// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

import (
	stdmath "math"

	"github.com/chewxy/math32"
	"github.com/go-xmvec/xmvec/hwy"
)

// Sin computes sin(x) for each element in the vector.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return lanewise(v, math32.Sin, stdmath.Sin)
}

// Cos computes cos(x) for each element in the vector.
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return lanewise(v, math32.Cos, stdmath.Cos)
}

// Acos computes arccos(x) for each element in the vector, in radians.
// Inputs outside [-1, 1] give NaN; callers that may overshoot through
// rounding clamp first (see hwy.Clamp).
func Acos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return lanewise(v, math32.Acos, stdmath.Acos)
}
