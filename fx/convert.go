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

package fx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FromReal converts a real value to fixed point at the given radix.
//
// The scaled value is rounded half away from zero (x-0.5 for negative x,
// x+0.5 otherwise, then truncated), so FromReal[int16](0.5, 0) is 1 and
// FromReal[int16](-0.5, 0) is -1. Results outside T's range saturate.
// NaN input gives an unspecified value.
func FromReal[T Fixed, F constraints.Float](x F, radix uint) T {
	v := math.Ldexp(float64(x), int(radix))
	if v < 0 {
		v -= 0.5
	} else {
		v += 0.5
	}
	limit := math.Ldexp(1, int(Bits[T]()-1))
	if v >= limit {
		return MaxOf[T]()
	}
	if v <= -limit {
		return MinOf[T]()
	}
	return T(int64(v))
}

// ToReal converts a fixed-point value at the given radix to a real value.
// float64 results are exact for storage widths up to 32 bits.
func ToReal[F constraints.Float, T Fixed](x T, radix uint) F {
	return F(math.Ldexp(float64(x), -int(radix)))
}
