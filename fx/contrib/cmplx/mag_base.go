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

package cmplx

import (
	"github.com/ajroetker/go-fixedpoint/fx"
	fxmath "github.com/ajroetker/go-fixedpoint/fx/contrib/math"
)

// SqMagLong returns re² + im² exactly, without the radix shift.
func SqMagLong[T fx.Fixed](a Complex[T]) fx.Uint128 {
	re, im := fx.MulLong(a.Re, a.Re).Abs(), fx.MulLong(a.Im, a.Im).Abs()
	return re.Add(im)
}

// SqMag returns re² + im² in the radix format. The result is non-negative
// in value but wraps in T when it does not fit.
func SqMag[T fx.Fixed](a Complex[T], radix uint) T {
	return T(SqMagLong(a).Shr(radix).Lo)
}

// SqMagSat returns re² + im² in the radix format, clamped to
// [0, MaxOf[T]].
func SqMagSat[T fx.Fixed](a Complex[T], radix uint) T {
	return fx.NarrowUnsignedSat[T](SqMagLong(a).Shr(radix))
}

// Mag returns sqrt(re² + im²) in the format of a, truncated. The radix
// drops out of the root, so none is needed. The result wraps when it does
// not fit T, which happens only near the corners of the range.
func Mag[T fx.Fixed](a Complex[T]) T {
	return T(fxmath.ISqrt128(SqMagLong(a)))
}

// MagSat returns sqrt(re² + im²) clamped to MaxOf[T].
func MagSat[T fx.Fixed](a Complex[T]) T {
	m := fxmath.ISqrt128(SqMagLong(a))
	if m > uint64(fx.MaxOf[T]()) {
		return fx.MaxOf[T]()
	}
	return T(m)
}

// Normalize scales a to magnitude 1.0 in the radix format by multiplying
// each component by the reciprocal of the magnitude. The reciprocal
// floor(2^(2*radix) / |a|) is kept at double width and each product is
// shifted right by radix, so results can sit one LSB below a direct
// division. Components clamp when 1.0 is not representable.
// Normalize(0) = 0.
func Normalize[T fx.Fixed](a Complex[T], radix uint) Complex[T] {
	m := MagSat(a)
	if m == 0 {
		return a
	}
	// |component| <= m, so each product stays below 2^(2*radix).
	r := fx.Int128From(1).Shl(2 * radix).QuoInt64(int64(m))
	return Complex[T]{
		Re: fx.NarrowSat[T](r.Scale(int64(a.Re)).Shr(radix)),
		Im: fx.NarrowSat[T](r.Scale(int64(a.Im)).Shr(radix)),
	}
}
