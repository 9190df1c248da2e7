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

//go:build linux && arm64

package hwy

import (
	"os"

	"golang.org/x/sys/cpu"
)

var hasSVE = cpu.ARM64.HasSVE

// HasSVE reports whether the CPU supports SVE and it has not been disabled
// with HWY_NO_SIMD or HWY_NO_SVE.
//
// SVE keeps the 128-bit NEON register view, so the reported width stays 16.
func HasSVE() bool {
	if NoSimdEnv() || os.Getenv("HWY_NO_SVE") != "" {
		return false
	}
	return hasSVE
}
