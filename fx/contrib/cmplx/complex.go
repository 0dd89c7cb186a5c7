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

// Complex is a fixed-point complex value, Re + i*Im.
type Complex[T fx.Fixed] struct {
	Re, Im T
}

// Long is an extended-precision complex value holding exact products
// before the radix shift.
type Long struct {
	Re, Im fx.Int128
}

// Narrow shifts v right by radix and wraps each component to T.
func Narrow[T fx.Fixed](v Long, radix uint) Complex[T] {
	return Complex[T]{
		Re: fx.Narrow[T](v.Re.Shr(radix)),
		Im: fx.Narrow[T](v.Im.Shr(radix)),
	}
}

// NarrowSat shifts v right by radix and clamps each component to T.
func NarrowSat[T fx.Fixed](v Long, radix uint) Complex[T] {
	return Complex[T]{
		Re: fx.NarrowSat[T](v.Re.Shr(radix)),
		Im: fx.NarrowSat[T](v.Im.Shr(radix)),
	}
}

// Add returns a+b. Overflow wraps.
func Add[T fx.Fixed](a, b Complex[T]) Complex[T] {
	return Complex[T]{a.Re + b.Re, a.Im + b.Im}
}

// Sub returns a-b. Overflow wraps.
func Sub[T fx.Fixed](a, b Complex[T]) Complex[T] {
	return Complex[T]{a.Re - b.Re, a.Im - b.Im}
}

// AddSat returns a+b with each component clamped.
func AddSat[T fx.Fixed](a, b Complex[T]) Complex[T] {
	return Complex[T]{fx.AddSat(a.Re, b.Re), fx.AddSat(a.Im, b.Im)}
}

// SubSat returns a-b with each component clamped.
func SubSat[T fx.Fixed](a, b Complex[T]) Complex[T] {
	return Complex[T]{fx.SubSat(a.Re, b.Re), fx.SubSat(a.Im, b.Im)}
}

// Conj returns the complex conjugate of a. An Im of MinOf[T] wraps.
func Conj[T fx.Fixed](a Complex[T]) Complex[T] {
	return Complex[T]{a.Re, -a.Im}
}

// ConjSat returns the complex conjugate of a with Im clamped.
func ConjSat[T fx.Fixed](a Complex[T]) Complex[T] {
	return Complex[T]{a.Re, fx.NegSat(a.Im)}
}
