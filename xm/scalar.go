package xm

import "github.com/chewxy/math32"

// Angle constants, rounded to float32.
const (
	Pi     float32 = 3.141592654
	TwoPi  float32 = 6.283185307
	PiDiv2 float32 = 1.570796327
	PiDiv4 float32 = 0.785398163
)

// DefaultEpsilon is the tolerance Equals uses.
const DefaultEpsilon float32 = 0.001

// ConvertToDegrees converts radians to degrees.
func ConvertToDegrees(radians float32) float32 {
	return radians * (180 / Pi)
}

// ConvertToRadians converts degrees to radians.
func ConvertToRadians(degrees float32) float32 {
	return degrees * (Pi / 180)
}

// NearEqual reports whether |a - b| < epsilon.
// NaN is never near anything.
func NearEqual(a, b, epsilon float32) bool {
	return math32.Abs(a-b) < epsilon
}

// Equals reports whether a and b are within DefaultEpsilon of each other.
// Use it instead of == for results of float arithmetic: the length of a
// normalized vector is rarely exactly 1.
func Equals(a, b float32) bool {
	return NearEqual(a, b, DefaultEpsilon)
}

func nanf() float32 {
	return math32.NaN()
}
