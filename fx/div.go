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

// Division truncates toward zero, following native integer division; no
// rounding compensation is applied. A zero divisor is a precondition
// violation and is not checked: it traps exactly like native division.

// Div returns x/y at the given radix, computed as (x << radix) / y in double
// width. The narrowed result wraps on overflow.
func Div[T Fixed](x, y T, radix uint) T {
	if Bits[T]() <= 32 {
		return T((int64(x) << radix) / int64(y))
	}
	return Narrow[T](Int128From(int64(x)).Shl(radix).QuoInt64(int64(y)))
}

// DivSat is Div with the result clamped to T's range.
func DivSat[T Fixed](x, y T, radix uint) T {
	if Bits[T]() <= 32 {
		return SaturateTo[T]((int64(x) << radix) / int64(y))
	}
	return NarrowSat[T](Int128From(int64(x)).Shl(radix).QuoInt64(int64(y)))
}

// Recip returns 1/x at the given radix, computed as (1 << 2*radix) / x in
// double width. The narrowed result wraps on overflow.
func Recip[T Fixed](x T, radix uint) T {
	if Bits[T]() <= 32 {
		return T((int64(1) << (2 * radix)) / int64(x))
	}
	return Narrow[T](Int128From(1).Shl(2 * radix).QuoInt64(int64(x)))
}

// RecipSat is Recip with the result clamped to T's range.
func RecipSat[T Fixed](x T, radix uint) T {
	if Bits[T]() <= 32 {
		return SaturateTo[T]((int64(1) << (2 * radix)) / int64(x))
	}
	return NarrowSat[T](Int128From(1).Shl(2 * radix).QuoInt64(int64(x)))
}
