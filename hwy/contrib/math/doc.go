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

// Package math provides lane-wise transcendental functions over hwy.Vec.
//
// Each function applies the scalar function to every lane independently.
// float32 lanes are computed in single precision with
// github.com/chewxy/math32; float64 lanes use the standard library.
// Special values follow the scalar functions: Log and Acos of
// out-of-domain inputs give NaN, NaN inputs propagate.
//
// Functions:
//   - Exp(x) - e^x
//   - Log(x) - ln(x)
//   - Sin(x), Cos(x)
//   - Acos(x) - result in [0, π]
//   - Pow(x, y) - x^y
package math
