package xm

import "github.com/go-xmvec/xmvec/hwy"

// Add returns u + v.
func Add(u, v Vector) Vector {
	return fromLanes(hwy.Add(u.lanes(), v.lanes()))
}

// Subtract returns u - v.
func Subtract(u, v Vector) Vector {
	return fromLanes(hwy.Sub(u.lanes(), v.lanes()))
}

// Multiply returns the elementwise product of u and v.
func Multiply(u, v Vector) Vector {
	return fromLanes(hwy.Mul(u.lanes(), v.lanes()))
}

// Scale returns s * v, all four lanes scaled.
func Scale(v Vector, s float32) Vector {
	return fromLanes(hwy.Mul(v.lanes(), splat(s)))
}

// Negate returns -v.
func Negate(v Vector) Vector {
	return fromLanes(hwy.Neg(v.lanes()))
}

// Add returns v + u.
func (v Vector) Add(u Vector) Vector { return Add(v, u) }

// Sub returns v - u.
func (v Vector) Sub(u Vector) Vector { return Subtract(v, u) }

// Mul returns the elementwise product of v and u.
func (v Vector) Mul(u Vector) Vector { return Multiply(v, u) }

// Scale returns v * s.
func (v Vector) Scale(s float32) Vector { return Scale(v, s) }

// Neg returns -v.
func (v Vector) Neg() Vector { return Negate(v) }
