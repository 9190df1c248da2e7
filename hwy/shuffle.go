package hwy

// This file provides lane access and permutation operations.

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a new vector with the value inserted at the given lane.
// Returns original vector if index is out of bounds.
func InsertLane[T Lanes](v Vec[T], idx int, val T) Vec[T] {
	n := len(v.data)
	if idx < 0 || idx >= n {
		return v
	}
	result := make([]T, n)
	copy(result, v.data)
	result[idx] = val
	return Vec[T]{data: result}
}

// Broadcast broadcasts a single lane to all lanes in the vector.
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	result := make([]T, len(v.data))
	val := GetLane(v, lane)
	for i := range result {
		result[i] = val
	}
	return Vec[T]{data: result}
}

// Reverse reverses the order of lanes in the vector.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i, x := range v.data {
		result[n-1-i] = x
	}
	return Vec[T]{data: result}
}

// Shuffle0123 shuffles each group of 4 lanes according to the given indices.
// Each index specifies which lane of the group to place in that position.
// For example: Shuffle0123(v, 3, 2, 1, 0) reverses a 4-lane vector.
//
// Indices must be in [0, 3]; a trailing partial group is copied unchanged.
func Shuffle0123[T Lanes](v Vec[T], i0, i1, i2, i3 int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for base := 0; base < n; base += 4 {
		if base+4 > n {
			copy(result[base:], v.data[base:])
			break
		}
		result[base+0] = v.data[base+i0]
		result[base+1] = v.data[base+i1]
		result[base+2] = v.data[base+i2]
		result[base+3] = v.data[base+i3]
	}
	return Vec[T]{data: result}
}

// TableLookupLanes performs a lane-level table lookup.
// Each lane in idx specifies which lane from tbl to select.
// Out-of-range indices select zero.
func TableLookupLanes[T Lanes](tbl Vec[T], idx Vec[int32]) Vec[T] {
	n := min(len(tbl.data), len(idx.data))
	result := make([]T, n)
	for i := range n {
		idxVal := int(idx.data[i])
		if idxVal >= 0 && idxVal < len(tbl.data) {
			result[i] = tbl.data[idxVal]
		}
	}
	return Vec[T]{data: result}
}
