package xm

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares float32 lanes within an absolute margin; NaN equals NaN.
func approx(margin float64) cmp.Option {
	return cmp.Options{cmpopts.EquateApprox(0, margin), cmpopts.EquateNaNs()}
}

// requireVector fails the test if got and want differ by more than margin
// in any lane.
func requireVector(t *testing.T, want, got Vector, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx(margin)); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

// randomVectors returns n vectors with x, y, z uniform in [-scale, scale]
// and w = 0, from a fixed seed.
func randomVectors(n int, scale float32) []Vector {
	r := rand.New(rand.NewPCG(1, 2))
	vs := make([]Vector, n)
	for i := range vs {
		vs[i] = NewVector3(
			(r.Float32()*2-1)*scale,
			(r.Float32()*2-1)*scale,
			(r.Float32()*2-1)*scale,
		)
	}
	return vs
}
