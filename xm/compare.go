package xm

import "github.com/go-xmvec/xmvec/hwy"

// NearEqual3 reports whether |u - v| <= epsilon in each of x, y and z.
// w is ignored. A NaN lane is never near.
//
//	xm.NearEqual3(a, b, xm.Splat(xm.DefaultEpsilon))
func NearEqual3(u, v, epsilon Vector) bool {
	diff := hwy.Abs(hwy.Sub(u.lanes(), v.lanes()))
	return hwy.LessEqual(diff, epsilon.lanes()).FirstNTrue(3)
}

// Equal3 reports whether x, y and z of u and v are exactly equal.
func Equal3(u, v Vector) bool {
	return hwy.Equal(u.lanes(), v.lanes()).FirstNTrue(3)
}

// NotEqual3 reports whether any of x, y, z differ. NaN lanes differ.
func NotEqual3(u, v Vector) bool {
	return !Equal3(u, v)
}
