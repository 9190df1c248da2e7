package xm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementwiseFunctions(t *testing.T) {
	u := NewVector(1, 2, 4, 8)
	v := NewVector(-2, 1, -3, 2.5)
	p := NewVector(2, 2, 1, 0)

	tests := []struct {
		name   string
		got    Vector
		want   Vector
		margin float64
	}{
		{"Abs", Abs(v), Vector{2, 1, 3, 2.5}, 0},
		{"Cos", Cos(NewVector(0, PiDiv4, PiDiv2, Pi)), Vector{1, 0.707107, 0, -1}, 2e-6},
		{"Sin", Sin(NewVector(0, PiDiv4, PiDiv2, Pi)), Vector{0, 0.707107, 1, 0}, 2e-6},
		{"Log", Log(u), Vector{0, 0.693147, 1.386294, 2.079442}, 2e-6},
		{"Exp", Exp(p), Vector{7.389056, 7.389056, 2.718282, 1}, 1e-5},
		{"Pow", Pow(u, p), Vector{1, 4, 4, 1}, 1e-5},
		{"Sqrt", Sqrt(u), Vector{1, 1.414214, 2, 2.828427}, 2e-6},
		{"Multiply", Multiply(u, v), Vector{-2, 2, -12, 20}, 0},
		{"Min", Min(p, v), Vector{-2, 1, -3, 0}, 0},
		{"Max", Max(p, v), Vector{2, 2, 1, 2.5}, 0},
		{"Swizzle", Swizzle(u, 2, 1, 0, 3), Vector{4, 2, 1, 8}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireVector(t, tt.want, tt.got, tt.margin)
		})
	}
}

func TestElementwiseDomainErrors(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	requireVector(t, Vector{nan, float32(math.Inf(-1)), 0, 1}, Log(NewVector(-1, 0, 1, math.E)), 1e-6)
	requireVector(t, Vector{nan, 0, 1, inf}, Sqrt(NewVector(-4, 0, 1, inf)), 0)
	requireVector(t, Vector{0, 1, inf, nan}, Exp(NewVector(float32(math.Inf(-1)), 0, 1000, nan)), 0)
	require.True(t, math.IsNaN(float64(Pow(Splat(-2), Splat(0.5)).X())))
	require.True(t, math.IsNaN(float64(Cos(Splat(inf)).X())))
}

func TestSaturate(t *testing.T) {
	require.Equal(t, Vector{1, 0, 0.5, 0.1}, Saturate(NewVector(2, -0.5, 0.5, 0.1)))
	require.Equal(t, Vector{0, 1, 0, 1}, Saturate(NewVector(0, 1, float32(math.Inf(-1)), float32(math.Inf(1)))))

	got := Saturate(NewVector(float32(math.NaN()), 0.25, 0, 0))
	require.True(t, math.IsNaN(float64(got.X())), "NaN lanes stay NaN")
	require.Equal(t, float32(0.25), got.Y())
}

func TestSaturateRange(t *testing.T) {
	for _, v := range randomVectors(500, 3) {
		s := Saturate(v.WithW(v.X() * 2))
		for i, x := range s {
			require.True(t, x >= 0 && x <= 1, "Saturate(%v)[%d] = %v", v, i, x)
		}
		require.Equal(t, s, Saturate(s), "idempotent")
	}
}

func TestClamp(t *testing.T) {
	got := Clamp(NewVector(-5, 0.5, 5, 2), Splat(-1), NewVector(1, 1, 1, 3))
	require.Equal(t, Vector{-1, 0.5, 1, 2}, got)
}

func TestSwizzle(t *testing.T) {
	v := NewVector(1, 2, 4, 8)

	require.Equal(t, v, Swizzle(v, 0, 1, 2, 3))
	require.Equal(t, Vector{8, 4, 2, 1}, Swizzle(v, 3, 2, 1, 0))
	require.Equal(t, Vector{4, 4, 2, 8}, Swizzle(v, 2, 2, 1, 3))
	require.Equal(t, Splat(8), Swizzle(v, 3, 3, 3, 3))

	require.Equal(t, v, Swizzle(Swizzle(v, 1, 2, 3, 0), 3, 0, 1, 2), "rotation round trip")
}

func TestSwizzleOutOfRange(t *testing.T) {
	v := NewVector(1, 2, 4, 8)
	require.PanicsWithValue(t, "xm: swizzle index 4 out of range [0, 3]",
		func() { Swizzle(v, 0, 1, 2, 4) })
	require.PanicsWithValue(t, "xm: swizzle index -1 out of range [0, 3]",
		func() { Swizzle(v, -1, 1, 2, 3) })
}

func TestMinMaxOrdering(t *testing.T) {
	vs := randomVectors(200, 50)
	for i := 0; i+1 < len(vs); i += 2 {
		a, b := vs[i], vs[i+1]
		lo, hi := Min(a, b), Max(a, b)
		for j := range 4 {
			require.LessOrEqual(t, lo[j], hi[j])
			require.Equal(t, lo[j]+hi[j], a[j]+b[j])
		}
	}
}

func BenchmarkPow(b *testing.B) {
	u := NewVector(1, 2, 4, 8)
	p := NewVector(2, 2, 1, 0)
	for b.Loop() {
		_ = Pow(u, p)
	}
}
