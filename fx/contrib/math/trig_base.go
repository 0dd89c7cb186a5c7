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

// Sin returns the sine of the normalized angle x, where 1.0 in the radix
// format stands for π. The result is in the same format.
//
// Special cases:
//   - Sin(0) = 0
//   - Sin(-x) = -Sin(x) exactly
//   - Sin(x + 2.0) = Sin(x)
func Sin[T fx.Fixed](x T, radix uint) T {
	return fromQ61[T](sinQ61(toQ61(x, radix)), radix)
}

// Cos returns the cosine of the normalized angle x, computed as Sin of the
// angle advanced by a quarter turn.
func Cos[T fx.Fixed](x T, radix uint) T {
	one := int64(1) << radix
	v := int64(x) + one>>1
	if v > one {
		v -= 2 * one
	}
	return Sin(T(v), radix)
}

// SinCos returns Sin(x) and Cos(x).
func SinCos[T fx.Fixed](x T, radix uint) (sin, cos T) {
	return Sin(x, radix), Cos(x, radix)
}

// Atan2 returns the angle of the vector (x, y) in normalized units, in
// [-1.0, 1.0]. Atan2(0, 0) = 0.
func Atan2[T fx.Fixed](y, x T, radix uint) T {
	return fromQ61[T](atan2Q61(int64(y), int64(x)), radix)
}

// toQ61 wraps x into [-1.0, 1.0) and rescales it to the internal angle
// format.
func toQ61[T fx.Fixed](x T, radix uint) int64 {
	// Sign-extend from bit radix, discarding whole turns.
	k := 63 - radix
	v := int64(x) << k >> k
	if radix > cordicFrac {
		return v >> (radix - cordicFrac)
	}
	return v << (cordicFrac - radix)
}

// fromQ61 rounds v to the radix format, half away from zero so that odd
// symmetry survives the rounding.
func fromQ61[T fx.Fixed](v int64, radix uint) T {
	neg := v < 0
	if neg {
		v = -v
	}
	switch {
	case radix < cordicFrac:
		v = (v + int64(1)<<(cordicFrac-1-radix)) >> (cordicFrac - radix)
	case radix > cordicFrac:
		v <<= radix - cordicFrac
	}
	r := fx.SaturateTo[T](v)
	if neg {
		r = -r
	}
	return r
}

// sinQ61 evaluates the sine of an angle in [-π, π) by CORDIC rotation.
// The angle is folded into [0, π/2] first and the sign restored at the end.
func sinQ61(z int64) int64 {
	neg := z < 0
	if neg {
		z = -z
	}
	if z > cordicHalfPi {
		z = cordicPi - z
	}
	if z == 0 {
		return 0
	}
	x, y := cordicGain, int64(0)
	for i := range cordicSteps {
		dx, dy := y>>i, x>>i
		if z >= 0 {
			x, y, z = x-dx, y+dy, z-cordicAtan[i]
		} else {
			x, y, z = x+dx, y-dy, z+cordicAtan[i]
		}
	}
	y = min(max(y, 0), cordicPi)
	if neg {
		y = -y
	}
	return y
}

// atan2Q61 evaluates the angle of (x, y) by CORDIC vectoring, driving y to
// zero while accumulating the rotation.
func atan2Q61(y, x int64) int64 {
	if x == 0 && y == 0 {
		return 0
	}
	n := fx.ILog2(absUint64(x) | absUint64(y))
	if n > cordicInputBit {
		s := uint(n - cordicInputBit)
		x, y = x>>s, y>>s
	} else {
		s := uint(cordicInputBit - n)
		x, y = x<<s, y<<s
	}

	var z int64
	if x < 0 {
		// Rotate by π into the right half plane.
		if y >= 0 {
			z = cordicPi
		} else {
			z = -cordicPi
		}
		x, y = -x, -y
	}
	for i := range cordicSteps {
		dx, dy := y>>i, x>>i
		if y >= 0 {
			x, y, z = x+dx, y-dy, z+cordicAtan[i]
		} else {
			x, y, z = x-dx, y+dy, z-cordicAtan[i]
		}
	}
	return z
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}
