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

// Log2 returns the binary logarithm of x in the same format.
//
// The argument is shifted into [1.0, 2.0) while the integer part of the
// result is counted, then each fractional bit is produced by squaring the
// mantissa and halving it whenever it reaches 2.0.
//
// Special cases:
//   - Log2(x) = 0 for x <= 0
//   - results outside the range of T saturate
func Log2[T fx.Fixed](x T, radix uint) T {
	return fx.NarrowSat[T](log2Wide(x, radix))
}

// Ln returns the natural logarithm of x in the same format.
// Special cases are those of Log2.
func Ln[T fx.Fixed](x T, radix uint) T {
	return fx.NarrowSat[T](scaleQ31(log2Wide(x, radix), ln2Q31))
}

// Log10 returns the common logarithm of x in the same format.
// Special cases are those of Log2.
func Log10[T fx.Fixed](x T, radix uint) T {
	return fx.NarrowSat[T](scaleQ31(log2Wide(x, radix), log10Of2Q31))
}

// scaleQ31 returns v*c/2^31 rounded to nearest.
func scaleQ31(v fx.Int128, c int64) fx.Int128 {
	return v.Scale(c).Add(fx.Int128From(q31Half)).Shr(q31Shift)
}

// log2Wide computes the unsaturated logarithm. For int64 formats with a
// large radix the integer part shifted by radix overflows 64 bits.
func log2Wide[T fx.Fixed](x T, radix uint) fx.Int128 {
	if x <= 0 {
		return fx.Int128{}
	}
	m := uint64(x)
	intPart := fx.ILog2(m) - int(radix)
	if intPart > 0 {
		m >>= uint(intPart)
	} else {
		m <<= uint(-intPart)
	}

	// m now holds the mantissa in [1<<radix, 2<<radix).
	var frac uint64
	for w := uint64(1) << radix >> 1; w != 0; w >>= 1 {
		if 2*radix+2 <= 64 {
			sq := m * m >> radix
			if sq>>(radix+1) != 0 {
				sq >>= 1
				frac |= w
			}
			m = sq
		} else {
			sq := fx.MulUint64(m, m).Shr(radix)
			if sq.Shr(radix+1) != (fx.Uint128{}) {
				sq = sq.Shr(1)
				frac |= w
			}
			m = sq.Uint64()
		}
	}
	return fx.Int128From(int64(intPart)).Shl(radix).Add(fx.Int128From(int64(frac)))
}
