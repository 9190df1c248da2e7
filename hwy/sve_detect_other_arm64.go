//go:build !linux && arm64

package hwy

// HasSVE is false where the OS does not expose SVE state to user space.
func HasSVE() bool {
	return false
}
