package xm

import (
	"fmt"

	"github.com/go-xmvec/xmvec/hwy"
)

// Vector is a four-component float32 vector (x, y, z, w).
//
// The zero value is the zero vector. Index it directly (v[2] is z) or use
// the accessors.
type Vector [4]float32

// NewVector returns the vector (x, y, z, w).
func NewVector(x, y, z, w float32) Vector {
	return Vector{x, y, z, w}
}

// NewVector3 returns the vector (x, y, z, 0).
func NewVector3(x, y, z float32) Vector {
	return Vector{x, y, z, 0}
}

// Splat returns a vector with all four lanes set to s.
func Splat(s float32) Vector {
	return Vector{s, s, s, s}
}

// Zero returns (0, 0, 0, 0).
func Zero() Vector {
	return Vector{}
}

// X returns the x component.
func (v Vector) X() float32 { return v[0] }

// Y returns the y component.
func (v Vector) Y() float32 { return v[1] }

// Z returns the z component.
func (v Vector) Z() float32 { return v[2] }

// W returns the w component.
func (v Vector) W() float32 { return v[3] }

// Get returns component i, where 0 is x and 3 is w.
func (v Vector) Get(i int) float32 {
	if i < 0 || i > 3 {
		panic(fmt.Sprintf("xm: component index %d out of range [0, 3]", i))
	}
	return hwy.GetLane(v.lanes(), i)
}

// WithW returns v with its w component replaced.
func (v Vector) WithW(w float32) Vector {
	return fromLanes(hwy.InsertLane(v.lanes(), 3, w))
}

// String renders v as "(x, y, z, w)".
func (v Vector) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}

func (v Vector) lanes() hwy.Vec[float32] {
	return hwy.Load(v[:])
}

func fromLanes(l hwy.Vec[float32]) Vector {
	var v Vector
	hwy.Store(l, v[:])
	return v
}

func splat(s float32) hwy.Vec[float32] {
	return hwy.Load([]float32{s, s, s, s})
}

// nan returns a vector with every lane NaN.
func nan() Vector {
	return Splat(nanf())
}
