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

// Package fx provides bit-exact fixed-point arithmetic for signal processing
// on processors without a fast floating-point unit.
//
// A fixed-point value is a signed integer interpreted as stored / 2^radix.
// The radix is never stored with the value; it is passed at every call that
// depends on it and the caller keeps it consistent across a pipeline.
//
// Every binary operation comes in up to three precision tiers:
//
//   - truncated (plain name): the result has the nominal width and wraps on
//     overflow. Bounding the inputs is the caller's job.
//   - saturated (Sat suffix): the result is clamped to the representable
//     range of the nominal width. Overflow is never reported.
//   - extended (Long suffix): the exact result in an Int128 with no radix
//     shift, narrowed later with Narrow or NarrowSat.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-fixedpoint/fx"
//
//	const radix = 15
//	a := fx.FromReal[int32](0.75, radix)
//	b := fx.FromReal[int32](0.5, radix)
//	p := fx.MulSat(a, b, radix)       // 0.375
//	q := fx.Div(a, b, radix)          // 1.5
//	r := fx.ToReal[float64](p, radix) // 0.375
//
// All functions are pure, allocation free and safe for concurrent use.
package fx

import "unsafe"

// Fixed is the constraint for fixed-point storage types.
type Fixed interface {
	~int16 | ~int32 | ~int64
}

// Uints is a constraint for unsigned integer types accepted by ILog2.
type Uints interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the storage width of T in bits.
func Bits[T Fixed]() uint {
	var dummy T
	return uint(unsafe.Sizeof(dummy)) * 8
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Fixed]() T {
	return T(int64(1)<<(Bits[T]()-1) - 1)
}

// MinOf returns the smallest value representable by T.
func MinOf[T Fixed]() T {
	return -MaxOf[T]() - 1
}

// One returns 1.0 at the given radix. The result wraps when radix >= Bits[T]()-1.
func One[T Fixed](radix uint) T {
	return T(int64(1) << radix)
}
