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

import "github.com/ajroetker/go-fixedpoint/fx"

// MulLong returns the exact product a*b without the radix shift:
//
//	re = a.re*b.re - a.im*b.im
//	im = a.im*b.re + a.re*b.im
//
// For int64 components the sums wrap only when all four inputs are
// MinInt64.
func MulLong[T fx.Fixed](a, b Complex[T]) Long {
	return Long{
		Re: fx.MulLong(a.Re, b.Re).Sub(fx.MulLong(a.Im, b.Im)),
		Im: fx.MulLong(a.Im, b.Re).Add(fx.MulLong(a.Re, b.Im)),
	}
}

// Mul returns a*b in the radix format. The shift rounds toward negative
// infinity and the narrowing wraps.
func Mul[T fx.Fixed](a, b Complex[T], radix uint) Complex[T] {
	return Narrow[T](MulLong(a, b), radix)
}

// MulSat returns a*b in the radix format with each component clamped.
func MulSat[T fx.Fixed](a, b Complex[T], radix uint) Complex[T] {
	return NarrowSat[T](MulLong(a, b), radix)
}

// ConjMulLong returns the exact product a*conj(b) without the radix shift:
//
//	re = a.re*b.re + a.im*b.im
//	im = a.im*b.re - a.re*b.im
func ConjMulLong[T fx.Fixed](a, b Complex[T]) Long {
	return Long{
		Re: fx.MulLong(a.Re, b.Re).Add(fx.MulLong(a.Im, b.Im)),
		Im: fx.MulLong(a.Im, b.Re).Sub(fx.MulLong(a.Re, b.Im)),
	}
}

// ConjMul returns a*conj(b) in the radix format, wrapping.
func ConjMul[T fx.Fixed](a, b Complex[T], radix uint) Complex[T] {
	return Narrow[T](ConjMulLong(a, b), radix)
}

// ConjMulSat returns a*conj(b) in the radix format with each component
// clamped.
func ConjMulSat[T fx.Fixed](a, b Complex[T], radix uint) Complex[T] {
	return NarrowSat[T](ConjMulLong(a, b), radix)
}
