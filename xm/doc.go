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

// Package xm provides a four-lane float32 vector type with the algebra of
// DirectXMath's XMVECTOR: elementwise arithmetic, exact and estimated
// length and normalization, dot and cross products, projection onto a
// normal, angles, lane-wise transcendentals, swizzles and tolerant
// comparison.
//
// Vector is a plain value. Every function returns a fresh Vector and none
// keeps state, so all of them are safe for concurrent use.
//
// # Lanes
//
// A Vector holds x, y, z, w. Functions with a 3 suffix (Length3, Dot3,
// Cross3, Normalize3, AngleBetween3, NearEqual3, ...) read only x, y and z.
// Elementwise functions (Add, Scale, Exp, Saturate, ...) carry w along.
// By convention w = 0 marks a direction and w = 1 a point; nothing here
// enforces it.
//
// # Errors
//
// Domain errors produce NaN, never a misleading finite value:
// Normalize3 and Normalize3Est of a zero-length vector return a vector with
// every lane NaN, and AngleBetween3 with a zero input returns NaN. Use
// IsNaN3 to test for them. NaN and Inf inputs propagate per IEEE 754.
//
// Caller bugs panic: a Swizzle index outside [0, 3], or a normal passed to
// ComponentsFromNormal whose length is not 1.
//
// # Estimates
//
// Length3Est and Normalize3Est trade accuracy for speed with a reciprocal
// square root estimate (relative error below 0.1%). They are separate
// functions and never stand in for the exact ones.
//
// Example:
//
//	u := xm.NewVector3(1, 2, 3)
//	v := xm.NewVector3(-2, 1, -3)
//	fmt.Println(xm.Dot3(u, v))   // -9
//	fmt.Println(xm.Cross3(u, v)) // (-9, -3, 5, 0)
package xm
