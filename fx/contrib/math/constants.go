// Copyright 2025 go-fixedpoint Authors
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

package math

// Logarithm base conversion factors in Q31.
const (
	ln2Q31      int64 = 1488522236 // ln(2)
	log10Of2Q31 int64 = 646456993  // log10(2)

	// Rounding term and shift for the Q31 products.
	q31Half  = 1 << 30
	q31Shift = 31
)

// Internal angle format: a half turn (π) is 1<<cordicFrac.
const (
	cordicFrac         = 61
	cordicPi     int64 = 1 << cordicFrac
	cordicHalfPi       = cordicPi >> 1

	// Vectoring pre-scales its inputs so that the larger one has this
	// top bit, leaving headroom for the CORDIC gain.
	cordicInputBit = 59
)
