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

import "github.com/ajroetker/go-fixedpoint/fx"

// ISqrt64 returns floor(sqrt(x)).
//
// The root is seeded with the power of two at half the bit length of x and
// then refined one bit at a time from the next lower bit down.
func ISqrt64(x uint64) uint32 {
	if x == 0 {
		return 0
	}
	y := uint64(1) << (fx.ILog2(x) / 2)
	for s := y >> 1; s != 0; s >>= 1 {
		if t := y + s; t*t <= x {
			y = t
		}
	}
	return uint32(y)
}

// ISqrt128 returns floor(sqrt(x)) for a 128-bit radicand.
func ISqrt128(x fx.Uint128) uint64 {
	if x.IsUint64() {
		return uint64(ISqrt64(x.Lo))
	}
	y := uint64(1) << (x.ILog2() / 2)
	for s := y >> 1; s != 0; s >>= 1 {
		if t := y + s; fx.MulUint64(t, t).Cmp(x) <= 0 {
			y = t
		}
	}
	return y
}

// Sqrt returns the square root of x in the same format, truncated.
// Sqrt(x) = 0 for x <= 0.
func Sqrt[T fx.Fixed](x T, radix uint) T {
	if x <= 0 {
		return 0
	}
	r := ISqrt128(fx.MulUint64(uint64(x), uint64(1)<<radix))
	if r > uint64(fx.MaxOf[T]()) {
		return fx.MaxOf[T]()
	}
	return T(r)
}
