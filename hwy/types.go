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

// Package hwy provides the portable lane layer underneath the xm vector
// algebra package.
//
// A Vec holds a short run of lanes (four for xm.Vector) and every operation
// is applied lane by lane. Runtime CPU detection is reported through
// CurrentLevel and VerifyCPUSupport; results never depend on it.
//
// Basic usage:
//
//	import "github.com/go-xmvec/xmvec/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	sum := hwy.Add(a, b)
//	hwy.Store(sum, output)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Lanes is a constraint for all types that can be stored in lanes.
// int32 lanes are used as indices by TableLookupLanes.
type Lanes interface {
	Floats | ~int32
}

// Vec is a portable vector handle. It wraps a slice of lanes.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// The slice must not be modified.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse and Merge to perform conditional operations.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// FirstNTrue reports whether lanes [0, n) are all active.
// Lanes beyond NumLanes count as inactive.
func (m Mask[T]) FirstNTrue(n int) bool {
	if n > len(m.bits) {
		return false
	}
	for _, bit := range m.bits[:n] {
		if !bit {
			return false
		}
	}
	return true
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
