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

import "math"

// Add returns a+b. Overflow wraps.
func Add[T Fixed](a, b T) T {
	return a + b
}

// Sub returns a-b. Overflow wraps.
func Sub[T Fixed](a, b T) T {
	return a - b
}

// AddSat returns a+b clamped to T's range.
// For example, int16: 32767 + 1 = 32767 (not -32768).
func AddSat[T Fixed](a, b T) T {
	if Bits[T]() < 64 {
		return SaturateTo[T](int64(a) + int64(b))
	}
	av, bv := int64(a), int64(b)
	// Check for overflow before adding
	if bv > 0 && av > math.MaxInt64-bv {
		return MaxOf[T]()
	}
	if bv < 0 && av < math.MinInt64-bv {
		return MinOf[T]()
	}
	return a + b
}

// SubSat returns a-b clamped to T's range.
func SubSat[T Fixed](a, b T) T {
	if Bits[T]() < 64 {
		return SaturateTo[T](int64(a) - int64(b))
	}
	av, bv := int64(a), int64(b)
	// Check for overflow before subtracting
	if bv < 0 && av > math.MaxInt64+bv {
		return MaxOf[T]()
	}
	if bv > 0 && av < math.MinInt64+bv {
		return MinOf[T]()
	}
	return a - b
}

// Min returns the smaller of a and b.
func Min[T Fixed](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Fixed](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns |a|. Abs(MinOf[T]()) wraps to MinOf[T]().
func Abs[T Fixed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// AbsSat returns |a|, with Abs(MinOf[T]()) clamped to MaxOf[T]().
func AbsSat[T Fixed](a T) T {
	if a == MinOf[T]() {
		return MaxOf[T]()
	}
	return Abs(a)
}

// Neg returns -a. Neg(MinOf[T]()) wraps to MinOf[T]().
func Neg[T Fixed](a T) T {
	return -a
}

// NegSat returns -a, with Neg(MinOf[T]()) clamped to MaxOf[T]().
func NegSat[T Fixed](a T) T {
	if a == MinOf[T]() {
		return MaxOf[T]()
	}
	return -a
}

// Mul returns the fixed-point product (a*b) >> radix, computed in double
// width. The shift is arithmetic, so the result rounds toward negative
// infinity. Overflow of the narrowed result wraps.
func Mul[T Fixed](a, b T, radix uint) T {
	if Bits[T]() <= 32 {
		return T((int64(a) * int64(b)) >> radix)
	}
	return Narrow[T](MulInt64(int64(a), int64(b)).Shr(radix))
}

// MulSat is Mul with the result clamped to T's range.
func MulSat[T Fixed](a, b T, radix uint) T {
	if Bits[T]() <= 32 {
		return SaturateTo[T]((int64(a) * int64(b)) >> radix)
	}
	return NarrowSat[T](MulInt64(int64(a), int64(b)).Shr(radix))
}

// MulLong returns the exact product a*b with no radix shift. The result has
// radix 2*radix of the inputs.
func MulLong[T Fixed](a, b T) Int128 {
	return MulInt64(int64(a), int64(b))
}
