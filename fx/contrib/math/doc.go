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

// Package math provides fixed-point transcendental functions built on the
// scalar kernel in package fx.
//
// All functions are generic over fx.Fixed and take the radix (number of
// fractional bits) of their arguments explicitly. Results are bit-exact
// across platforms: no floating point is used on any computation path.
//
// # Logarithms
//
//   - Log2(x, radix) - binary logarithm by normalization and digit recurrence
//   - Ln(x, radix) - natural logarithm, Log2 scaled by ln 2
//   - Log10(x, radix) - common logarithm, Log2 scaled by log10 2
//
// Non-positive inputs return 0. Results that do not fit the format saturate.
//
// # Square roots
//
//   - ISqrt64(x) - floor square root of a 64-bit unsigned integer
//   - ISqrt128(x) - floor square root of an fx.Uint128
//   - Sqrt(x, radix) - fixed-point square root in the same format
//
// # Trigonometry
//
// Angles are normalized: the interval [-1.0, 1.0) in the argument's format
// maps onto [-π, π), and arguments outside it wrap around.
//
//   - Sin(x, radix), Cos(x, radix), SinCos(x, radix)
//   - Atan2(y, x, radix) - angle of the vector (x, y) in the same units
//
// Sine and the arctangent are evaluated by CORDIC in a 61-bit internal
// format, so every width from int16 to int64 shares one code path. The
// angle table and gain in cordic_table.go are produced by cmd/fxgen.
//
// Trigonometric functions require 1 <= radix <= fx.Bits[T]()-2 so that
// both ±1.0 and the period fit the format.
package math

//go:generate go run ../../../cmd/fxgen -mode tables -output cordic_table.go
//go:generate go run ../../../cmd/fxgen -mode vectors -output testdata/reference.yaml
