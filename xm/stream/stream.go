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

// Package stream applies xm operations to slices of vectors.
//
// Every function takes an optional worker pool. Batches of at least
// MinParallelVectors are split across the pool's workers; smaller batches,
// or a nil pool, run on the calling goroutine. Results are identical either
// way since each element is computed independently.
//
// Output slices may alias their input slices. A dst shorter than the input
// panics.
package stream

import (
	"github.com/go-xmvec/xmvec/hwy/contrib/workerpool"
	"github.com/go-xmvec/xmvec/xm"
)

// Parallel tuning parameters.
const (
	// MinParallelVectors is the minimum batch length before work is handed
	// to the pool.
	MinParallelVectors = 4096

	// MinChunkVectors is the smallest range given to a single worker.
	MinChunkVectors = 1024
)

// apply runs fn over [0, n), in parallel when the pool and batch size allow.
func apply(pool *workerpool.Pool, n int, fn func(start, end int)) {
	if pool == nil || n < MinParallelVectors {
		fn(0, n)
		return
	}
	pool.ParallelFor(n, MinChunkVectors, fn)
}

func checkDst(dstLen, n int) {
	if dstLen < n {
		panic("stream: dst slice too short")
	}
}

func checkPair(u, v []xm.Vector) {
	if len(u) != len(v) {
		panic("stream: input slices differ in length")
	}
}

// Normalize3Stream stores xm.Normalize3(src[i]) in dst[i].
func Normalize3Stream(pool *workerpool.Pool, dst, src []xm.Vector) {
	unaryVec(pool, dst, src, xm.Normalize3)
}

// Normalize3EstStream stores xm.Normalize3Est(src[i]) in dst[i].
func Normalize3EstStream(pool *workerpool.Pool, dst, src []xm.Vector) {
	unaryVec(pool, dst, src, xm.Normalize3Est)
}

// Length3Stream stores xm.Length3(src[i]) in dst[i].
func Length3Stream(pool *workerpool.Pool, dst []float32, src []xm.Vector) {
	checkDst(len(dst), len(src))
	apply(pool, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = xm.Length3(src[i])
		}
	})
}

// Dot3Stream stores xm.Dot3(u[i], v[i]) in dst[i].
// u and v must have the same length.
func Dot3Stream(pool *workerpool.Pool, dst []float32, u, v []xm.Vector) {
	checkPair(u, v)
	checkDst(len(dst), len(u))
	apply(pool, len(u), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = xm.Dot3(u[i], v[i])
		}
	})
}

// Cross3Stream stores xm.Cross3(u[i], v[i]) in dst[i].
// u and v must have the same length.
func Cross3Stream(pool *workerpool.Pool, dst, u, v []xm.Vector) {
	checkPair(u, v)
	checkDst(len(dst), len(u))
	apply(pool, len(u), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = xm.Cross3(u[i], v[i])
		}
	})
}

func unaryVec(pool *workerpool.Pool, dst, src []xm.Vector, fn func(xm.Vector) xm.Vector) {
	checkDst(len(dst), len(src))
	apply(pool, len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	})
}
