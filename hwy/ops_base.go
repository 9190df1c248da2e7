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

package hwy

import (
	"math"

	"github.com/chewxy/math32"
)

// This file provides pure Go (scalar) implementations of the lane operations.
// Binary operations work on the common prefix of their inputs, so a 4-lane
// Vec combined with a full-width Set yields 4 lanes.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

func binary[T Lanes](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func unary[T Lanes](v Vec[T], fn func(x T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = fn(x)
	}
	return Vec[T]{data: result}
}

// floatLanes applies f32 to float32 lanes and f64 to float64 lanes.
// float32 lanes stay in single precision instead of round-tripping
// through float64.
func floatLanes[T Floats](v Vec[T], f32 func(float32) float32, f64 func(float64) float64) Vec[T] {
	result := make([]T, len(v.data))
	var zero T
	switch any(zero).(type) {
	case float32:
		for i, x := range v.data {
			result[i] = T(f32(float32(x)))
		}
	default:
		for i, x := range v.data {
			result[i] = T(f64(float64(x)))
		}
	}
	return Vec[T]{data: result}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
// Division by zero follows IEEE 754 (±Inf or NaN).
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// MulAdd computes a*b + c element-wise.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return Add(Mul(a, b), c)
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs computes absolute value. The sign bit is cleared, so Abs(-0) = +0
// and Abs(NaN) is NaN.
func Abs[T Floats](v Vec[T]) Vec[T] {
	return floatLanes(v, math32.Abs, math.Abs)
}

// Min returns element-wise minimum.
// If either lane is NaN the lane from b is returned.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns element-wise maximum.
// If either lane is NaN the lane from b is returned.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Clamp limits each lane of v to [lo, hi]. NaN lanes stay NaN.
func Clamp[T Floats](v, lo, hi Vec[T]) Vec[T] {
	n := min(len(v.data), len(lo.data), len(hi.data))
	result := make([]T, n)
	for i := range n {
		x := v.data[i]
		switch {
		case x < lo.data[i]:
			x = lo.data[i]
		case x > hi.data[i]:
			x = hi.data[i]
		}
		result[i] = x
	}
	return Vec[T]{data: result}
}

// Sqrt computes square root. Negative lanes produce NaN.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return floatLanes(v, math32.Sqrt, math.Sqrt)
}

// RSqrt computes reciprocal square root (1/sqrt(x)).
func RSqrt[T Floats](v Vec[T]) Vec[T] {
	return floatLanes(v,
		func(x float32) float32 { return 1 / math32.Sqrt(x) },
		func(x float64) float64 { return 1 / math.Sqrt(x) })
}

// RSqrtEstimate approximates 1/sqrt(x) with a maximum relative error of
// about 6.5e-4 for normal inputs, trading accuracy for speed the way the
// hardware rsqrt instructions do.
//
// It uses an integer seed followed by one tuned Newton-Raphson step
// (Moroz et al., "Fast calculation of inverse square root with the use of
// magic constant"). Lanes are evaluated in float32.
//
// Special cases:
//   - RSqrtEstimate(+0) = +Inf
//   - RSqrtEstimate(+Inf) = +0
//   - RSqrtEstimate(x < 0) = NaN
//   - RSqrtEstimate(NaN) = NaN
func RSqrtEstimate[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(rsqrtEstimate32(float32(x))) })
}

// SqrtEstimate approximates sqrt(x) as x * RSqrtEstimate(x), with the same
// relative error bound. SqrtEstimate(0) = 0 and SqrtEstimate(+Inf) = +Inf.
func SqrtEstimate[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T {
		f := float32(x)
		if f == 0 || math32.IsInf(f, 1) {
			return x
		}
		return T(f * rsqrtEstimate32(f))
	})
}

func rsqrtEstimate32(x float32) float32 {
	switch {
	case x != x || x < 0:
		return math32.NaN()
	case x == 0:
		return math32.Inf(1)
	case math32.IsInf(x, 1):
		return 0
	}
	y := math.Float32frombits(0x5F1FFFF9 - math.Float32bits(x)>>1)
	return y * (0.703952253 * (2.38924456 - x*y*y))
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	return ReduceSumN(v, len(v.data))
}

// ReduceSumN sums lanes [0, n). Lanes past NumLanes are ignored.
func ReduceSumN[T Lanes](v Vec[T], n int) T {
	var sum T
	for _, x := range v.data[:min(n, len(v.data))] {
		sum += x
	}
	return sum
}

func compare[T Lanes](a, b Vec[T], fn func(x, y T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = fn(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
// NaN lanes compare not-equal.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return compare(v, v, func(x, y T) bool { return x != y })
}

// IfThenElse performs conditional selection: a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}
