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

package filter

import (
	"github.com/ajroetker/go-fixedpoint/fx"
)

// EMA advances an exponential moving average by one sample:
//
//	acc + (alpha*(x - acc) + 2^(radix-1)) >> radix
//
// The product is formed at double width and rounded to nearest; the
// rounding term is omitted at radix 0. The result wraps to T.
func EMA[T fx.Fixed](acc, x, alpha T, radix uint) T {
	if fx.Bits[T]() < 32 {
		return T(emaInt64(acc, x, alpha, radix))
	}
	return fx.Narrow[T](emaWide(acc, x, alpha, radix))
}

// EMASat is EMA with the result clamped to T's range.
func EMASat[T fx.Fixed](acc, x, alpha T, radix uint) T {
	if fx.Bits[T]() < 32 {
		return fx.SaturateTo[T](emaInt64(acc, x, alpha, radix))
	}
	return fx.NarrowSat[T](emaWide(acc, x, alpha, radix))
}

func emaInt64[T fx.Fixed](acc, x, alpha T, radix uint) int64 {
	p := int64(alpha) * (int64(x) - int64(acc))
	if radix > 0 {
		p += int64(1) << (radix - 1)
	}
	return int64(acc) + p>>radix
}

func emaWide[T fx.Fixed](acc, x, alpha T, radix uint) fx.Int128 {
	a := fx.Int128From(int64(acc))
	p := fx.Int128From(int64(x)).Sub(a).Scale(int64(alpha))
	if radix > 0 {
		p = p.Add(fx.Int128From(1).Shl(radix - 1))
	}
	return a.Add(p.Shr(radix))
}

// Alpha returns the smoothing factor for a first-order low-pass with the
// given time constant in seconds at the given sample rate in Hz, that is
// 1/(timeConstant*sampleRate), capped at 1.0. A non-positive product gives
// 1.0, which passes the input through unfiltered.
func Alpha[T fx.Fixed](timeConstant, sampleRate float64, radix uint) T {
	n := timeConstant * sampleRate
	if n <= 1 {
		return fx.FromReal[T](1.0, radix)
	}
	return fx.FromReal[T](1/n, radix)
}
