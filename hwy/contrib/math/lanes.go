package math

import "github.com/go-xmvec/xmvec/hwy"

// lanewise applies f32 to float32 lanes and f64 to float64 lanes.
func lanewise[T hwy.Floats](v hwy.Vec[T], f32 func(float32) float32, f64 func(float64) float64) hwy.Vec[T] {
	data := v.Data()
	result := make([]T, len(data))
	var zero T
	switch any(zero).(type) {
	case float32:
		for i, x := range data {
			result[i] = T(f32(float32(x)))
		}
	default:
		for i, x := range data {
			result[i] = T(f64(float64(x)))
		}
	}
	return hwy.Load(result)
}
