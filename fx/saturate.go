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

// This file provides saturation and narrowing.
// Saturation clamps a wide intermediate to the target range instead of
// wrapping; it is applied after the wide computation and before narrowing.

// Saturate clamps v to [-limit-1, limit], the range of a signed type whose
// largest value is limit.
func Saturate(v, limit int64) int64 {
	if v > limit {
		return limit
	}
	if v < -limit-1 {
		return -limit - 1
	}
	return v
}

// SaturateUnsigned clamps v to [0, limit].
func SaturateUnsigned(v int64, limit uint64) uint64 {
	if v < 0 {
		return 0
	}
	if uint64(v) > limit {
		return limit
	}
	return uint64(v)
}

// SaturateTo narrows v to T, clamping to T's range.
func SaturateTo[T Fixed](v int64) T {
	return T(Saturate(v, int64(MaxOf[T]())))
}

// Narrow returns the low Bits[T]() bits of v. Values outside T's range wrap.
func Narrow[T Fixed](v Int128) T {
	return T(int64(v.Lo))
}

// NarrowSat narrows v to T, clamping to T's range.
func NarrowSat[T Fixed](v Int128) T {
	if v.IsInt64() {
		return SaturateTo[T](v.Int64())
	}
	if v.Hi < 0 {
		return MinOf[T]()
	}
	return MaxOf[T]()
}

// NarrowUnsignedSat narrows an unsigned v to T, clamping to [0, MaxOf[T]()].
func NarrowUnsignedSat[T Fixed](v Uint128) T {
	limit := uint64(MaxOf[T]())
	if !v.IsUint64() || v.Lo > limit {
		return T(limit)
	}
	return T(v.Lo)
}
