package xm

import (
	"fmt"

	"github.com/go-xmvec/xmvec/hwy"
	hmath "github.com/go-xmvec/xmvec/hwy/contrib/math"
)

// Abs returns |v| per lane.
func Abs(v Vector) Vector {
	return fromLanes(hwy.Abs(v.lanes()))
}

// Cos returns cos(v) per lane, v in radians.
func Cos(v Vector) Vector {
	return fromLanes(hmath.Cos(v.lanes()))
}

// Sin returns sin(v) per lane, v in radians.
func Sin(v Vector) Vector {
	return fromLanes(hmath.Sin(v.lanes()))
}

// Log returns the natural logarithm per lane. Negative lanes give NaN,
// zero lanes give -Inf.
func Log(v Vector) Vector {
	return fromLanes(hmath.Log(v.lanes()))
}

// Exp returns e^v per lane.
func Exp(v Vector) Vector {
	return fromLanes(hmath.Exp(v.lanes()))
}

// Pow returns base^exponent per lane.
func Pow(base, exponent Vector) Vector {
	return fromLanes(hmath.Pow(base.lanes(), exponent.lanes()))
}

// Sqrt returns the square root per lane. Negative lanes give NaN.
func Sqrt(v Vector) Vector {
	return fromLanes(hwy.Sqrt(v.lanes()))
}

// Min returns the elementwise minimum of u and v.
func Min(u, v Vector) Vector {
	return fromLanes(hwy.Min(u.lanes(), v.lanes()))
}

// Max returns the elementwise maximum of u and v.
func Max(u, v Vector) Vector {
	return fromLanes(hwy.Max(u.lanes(), v.lanes()))
}

// Clamp limits each lane of v to [lo, hi]. NaN lanes stay NaN.
func Clamp(v, lo, hi Vector) Vector {
	return fromLanes(hwy.Clamp(v.lanes(), lo.lanes(), hi.lanes()))
}

// Saturate clamps each lane of v to [0, 1].
func Saturate(v Vector) Vector {
	return fromLanes(hwy.Clamp(v.lanes(), splat(0), splat(1)))
}

// Swizzle returns (v[i0], v[i1], v[i2], v[i3]), where 0 selects x, 1 y,
// 2 z and 3 w. It panics if an index is outside [0, 3].
//
//	Swizzle(NewVector(1, 2, 4, 8), 2, 2, 1, 3) // (4, 4, 2, 8)
func Swizzle(v Vector, i0, i1, i2, i3 int) Vector {
	idx := []int32{int32(i0), int32(i1), int32(i2), int32(i3)}
	for _, i := range []int{i0, i1, i2, i3} {
		if i < 0 || i > 3 {
			panic(fmt.Sprintf("xm: swizzle index %d out of range [0, 3]", i))
		}
	}
	return fromLanes(hwy.TableLookupLanes(v.lanes(), hwy.Load(idx)))
}
