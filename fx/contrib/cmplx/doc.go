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

// Package cmplx provides complex fixed-point arithmetic at the three
// precision tiers of package fx.
//
// A Complex[T] is a pair of fixed-point values of the same width and radix.
// Products are accumulated exactly in 128 bits, so the cross terms of a
// multiply never overflow before the radix shift.
//
//   - Mul, ConjMul, SqMag, Mag: truncated, results wrap
//   - MulSat, ConjMulSat, SqMagSat, MagSat: re and im clamped independently
//   - MulLong, ConjMulLong, SqMagLong: exact, no radix shift
//
// Normalize scales a value to unit magnitude, leaving zero untouched.
package cmplx
