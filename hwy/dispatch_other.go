//go:build !amd64 && !arm64

package hwy

func init() {
	// No 128-bit baseline to check on other architectures; the portable
	// lane code runs everywhere.
	cpuSupported = true
	setScalarMode()
}
