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

import (
	"math/bits"
	"unsafe"
)

// debruijnLog2 maps the top five bits of (mask * debruijnMul) to the index
// of the highest set bit, where mask has every bit below that index set.
var debruijnLog2 = [32]uint8{
	0, 9, 1, 10, 13, 21, 2, 29, 11, 14, 16, 18, 22, 25, 3, 30,
	8, 12, 20, 28, 15, 17, 24, 7, 19, 27, 23, 6, 26, 5, 4, 31,
}

const debruijnMul = 0x07C4ACDD

// ilog2Impl32 and ilog2Impl64 are selected by the dispatcher at init.
var (
	ilog2Impl32 = ilog2Portable32
	ilog2Impl64 = ilog2Portable64
)

// ILog2 returns the index of the highest set bit of x, or 0 if x is zero.
//
// The portable path spreads the highest bit down into a mask, multiplies by
// a de Bruijn-like constant and looks up the top five bits of the product.
// 64-bit inputs test the high word first. On CPUs with a bit-scan
// instruction the dispatcher substitutes math/bits; both paths agree on
// every input.
func ILog2[T Uints](x T) int {
	var dummy T
	if unsafe.Sizeof(dummy) == 8 {
		return ilog2Impl64(uint64(x))
	}
	return ilog2Impl32(uint32(x))
}

func ilog2Portable32(v uint32) int {
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return int(debruijnLog2[(v*debruijnMul)>>27])
}

func ilog2Portable64(v uint64) int {
	if hi := uint32(v >> 32); hi != 0 {
		return 32 + ilog2Portable32(hi)
	}
	return ilog2Portable32(uint32(v))
}

func ilog2Native32(v uint32) int {
	if v == 0 {
		return 0
	}
	return bits.Len32(v) - 1
}

func ilog2Native64(v uint64) int {
	if v == 0 {
		return 0
	}
	return bits.Len64(v) - 1
}
