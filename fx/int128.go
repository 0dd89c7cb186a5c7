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

import "math/bits"

// Int128 is a signed two's complement 128-bit integer with value
// Hi*2^64 + Lo. It carries the extended precision tier for every storage
// width: the exact product of two int64 values always fits.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128 is an unsigned 128-bit integer with value Hi*2^64 + Lo.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128From sign-extends v.
func Int128From(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// MulInt64 returns the exact signed product a*b.
func MulInt64(a, b int64) Int128 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	// Unsigned high word minus the two's complement corrections.
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return Int128{Hi: int64(hi), Lo: lo}
}

// Scale returns x*y, wrapping at 128 bits.
func (x Int128) Scale(y int64) Int128 {
	hi, lo := bits.Mul64(x.Lo, uint64(y))
	hi += uint64(x.Hi) * uint64(y)
	if y < 0 {
		hi -= x.Lo
	}
	return Int128{Hi: int64(hi), Lo: lo}
}

// Add returns x+y, wrapping at 128 bits.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	return Int128{Hi: x.Hi + y.Hi + int64(carry), Lo: lo}
}

// Sub returns x-y, wrapping at 128 bits.
func (x Int128) Sub(y Int128) Int128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	return Int128{Hi: x.Hi - y.Hi - int64(borrow), Lo: lo}
}

// Neg returns -x.
func (x Int128) Neg() Int128 {
	return Int128{}.Sub(x)
}

// Shl returns x << n.
func (x Int128) Shl(n uint) Int128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return Int128{Hi: x.Hi<<n | int64(x.Lo>>(64-n)), Lo: x.Lo << n}
	case n < 128:
		return Int128{Hi: int64(x.Lo << (n - 64))}
	default:
		return Int128{}
	}
}

// Shr returns x >> n with sign extension (rounds toward negative infinity).
func (x Int128) Shr(n uint) Int128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return Int128{Hi: x.Hi >> n, Lo: x.Lo>>n | uint64(x.Hi)<<(64-n)}
	case n < 128:
		return Int128{Hi: x.Hi >> 63, Lo: uint64(x.Hi >> (n - 64))}
	default:
		return Int128{Hi: x.Hi >> 63, Lo: uint64(x.Hi >> 63)}
	}
}

// Sign returns -1, 0 or +1.
func (x Int128) Sign() int {
	switch {
	case x.Hi < 0:
		return -1
	case x.Hi == 0 && x.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	default:
		return 0
	}
}

// IsInt64 reports whether x can be represented as an int64.
func (x Int128) IsInt64() bool {
	return x.Hi == int64(x.Lo)>>63
}

// Int64 returns the low 64 bits of x as an int64.
func (x Int128) Int64() int64 {
	return int64(x.Lo)
}

// Abs returns |x| as an unsigned value. Abs of the most negative Int128 is 2^127.
func (x Int128) Abs() Uint128 {
	if x.Hi < 0 {
		x = x.Neg()
	}
	return Uint128{Hi: uint64(x.Hi), Lo: x.Lo}
}

// QuoInt64 returns x/y truncated toward zero. y must not be zero.
func (x Int128) QuoInt64(y int64) Int128 {
	neg := (x.Hi < 0) != (y < 0)
	n := x.Abs()
	d := uint64(y)
	if y < 0 {
		d = -d
	}
	// Schoolbook two-digit division; the second step never overflows
	// because the remainder of the first is below d.
	qhi := n.Hi / d
	qlo, _ := bits.Div64(n.Hi%d, n.Lo, d)
	q := Int128{Hi: int64(qhi), Lo: qlo}
	if neg {
		q = q.Neg()
	}
	return q
}

// MulUint64 returns the exact unsigned product a*b.
func MulUint64(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Add returns x+y, wrapping at 128 bits.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	return Uint128{Hi: x.Hi + y.Hi + carry, Lo: lo}
}

// Shr returns x >> n.
func (x Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return Uint128{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
	case n < 128:
		return Uint128{Lo: x.Hi >> (n - 64)}
	default:
		return Uint128{}
	}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi:
		return -1
	case x.Hi > y.Hi:
		return 1
	case x.Lo < y.Lo:
		return -1
	case x.Lo > y.Lo:
		return 1
	default:
		return 0
	}
}

// IsUint64 reports whether x fits in a uint64.
func (x Uint128) IsUint64() bool {
	return x.Hi == 0
}

// Uint64 returns the low 64 bits of x.
func (x Uint128) Uint64() uint64 {
	return x.Lo
}

// ILog2 returns the index of the highest set bit of x, or 0 if x is zero.
func (x Uint128) ILog2() int {
	if x.Hi != 0 {
		return 64 + ILog2(x.Hi)
	}
	return ILog2(x.Lo)
}
