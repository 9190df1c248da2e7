package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchSVE, "sve"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want at least 16", CurrentWidth())
	}
	if got := MaxLanes[float32](); got < 4 {
		t.Errorf("MaxLanes[float32]() = %d, want at least 4", got)
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with HWY_NO_SIMD=%q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSetScalarMode(t *testing.T) {
	level, width := currentLevel, currentWidth
	defer func() { currentLevel, currentWidth = level, width }()

	setScalarMode()
	if CurrentLevel() != DispatchScalar || CurrentWidth() != 16 {
		t.Errorf("setScalarMode: level %v width %d, want scalar 16", CurrentLevel(), CurrentWidth())
	}
}

func TestVerifyCPUSupport(t *testing.T) {
	// Every platform Go targets with amd64/arm64 meets the 128-bit baseline.
	if !VerifyCPUSupport() {
		t.Errorf("VerifyCPUSupport() = false on %s", CurrentName())
	}
}
