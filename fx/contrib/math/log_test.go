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

import (
	"testing"

	"github.com/ajroetker/go-fixedpoint/fx"
)

// TestLog2_Int32 checks exact results at radix 16.
func TestLog2_Int32(t *testing.T) {
	tests := []struct {
		x               int32
		log2, ln, log10 int32
	}{
		{65536, 0, 0, 0},                     // 1.0
		{131072, 65536, 45426, 19728},        // 2.0
		{32768, -65536, -45426, -19728},      // 0.5
		{196608, 103872, 71999, 31269},       // 3.0
		{655360, 217705, 150902, 65536},      // 10.0
		{6554, -217701, -150899, -65535},     // 0.1
		{1, -1048576, -726817, -315653},      // smallest positive
		{2147483647, 983039, 681391, 295924}, // largest
		{0, 0, 0, 0},
		{-65536, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Log2(tt.x, 16); got != tt.log2 {
			t.Errorf("Log2(%d) = %d, want %d", tt.x, got, tt.log2)
		}
		if got := Ln(tt.x, 16); got != tt.ln {
			t.Errorf("Ln(%d) = %d, want %d", tt.x, got, tt.ln)
		}
		if got := Log10(tt.x, 16); got != tt.log10 {
			t.Errorf("Log10(%d) = %d, want %d", tt.x, got, tt.log10)
		}
	}
}

// TestLog2_Int64 checks a wide radix where the intermediate needs 128 bits.
func TestLog2_Int64(t *testing.T) {
	tests := []struct {
		x               int64
		log2, ln, log10 int64
	}{
		{1 << 40, 0, 0, 0},
		{2 << 40, 1099511627776, 762123384832, 330985980416},
		{1 << 39, -1099511627776, -762123384832, -330985980416},
		{3 << 40, 1742684699131, 1207936985881, 524600367224},
		{1, -43980465111040, -30484935393280, -13239439216640},
		{9223372036854775807, 25288767438847, 17528837851135, 7612677549568},
	}
	for _, tt := range tests {
		if got := Log2(tt.x, 40); got != tt.log2 {
			t.Errorf("Log2(%d) = %d, want %d", tt.x, got, tt.log2)
		}
		if got := Ln(tt.x, 40); got != tt.ln {
			t.Errorf("Ln(%d) = %d, want %d", tt.x, got, tt.ln)
		}
		if got := Log10(tt.x, 40); got != tt.log10 {
			t.Errorf("Log10(%d) = %d, want %d", tt.x, got, tt.log10)
		}
	}
}

// TestLog2_Saturation checks results that do not fit an int16 format.
func TestLog2_Saturation(t *testing.T) {
	tests := []struct {
		x               int16
		radix           uint
		log2, ln, log10 int16
	}{
		{8192, 12, 4096, 2839, 1233},
		{1, 12, -32768, -32768, -14796},
		{1638, 14, -32768, -32768, -16386},
		{1, 14, -32768, -32768, -32768},
		{32767, 14, 16383, 11356, 4932},
	}
	for _, tt := range tests {
		if got := Log2(tt.x, tt.radix); got != tt.log2 {
			t.Errorf("Log2(%d, %d) = %d, want %d", tt.x, tt.radix, got, tt.log2)
		}
		if got := Ln(tt.x, tt.radix); got != tt.ln {
			t.Errorf("Ln(%d, %d) = %d, want %d", tt.x, tt.radix, got, tt.ln)
		}
		if got := Log10(tt.x, tt.radix); got != tt.log10 {
			t.Errorf("Log10(%d, %d) = %d, want %d", tt.x, tt.radix, got, tt.log10)
		}
	}
}

// TestLog2_PowersOfTwo checks that exact powers give exact integers.
func TestLog2_PowersOfTwo(t *testing.T) {
	const radix = 20
	for e := -radix; e <= 62-radix; e++ {
		x := int64(1) << uint(e+radix)
		want := int64(e) << radix
		if got := Log2(x, radix); got != want {
			t.Errorf("Log2(2^%d) = %d, want %d", e, got, want)
		}
	}
}

// TestLog2_Monotonic checks that Log2 never decreases along a sweep.
func TestLog2_Monotonic(t *testing.T) {
	prev := Log2(int32(1), 16)
	for x := int32(2); x < 1<<22; x += 997 {
		got := Log2(x, 16)
		if got < prev {
			t.Fatalf("Log2(%d) = %d, below Log2 of a smaller input %d", x, got, prev)
		}
		prev = got
	}
}

func TestLog2_MatchesIntegerLog(t *testing.T) {
	// At radix 0 the result is the integer logarithm.
	for _, x := range []int64{1, 2, 3, 4, 1000, 1 << 40, 1<<62 + 12345} {
		if got, want := Log2(x, 0), int64(fx.ILog2(uint64(x))); got != want {
			t.Errorf("Log2(%d, 0) = %d, want %d", x, got, want)
		}
	}
}

func BenchmarkLog2_Int32(b *testing.B) {
	x := fx.FromReal[int32](3.7, 16)
	for range b.N {
		_ = Log2(x, 16)
	}
}

func BenchmarkLog2_Int64(b *testing.B) {
	x := fx.FromReal[int64](3.7, 48)
	for range b.N {
		_ = Log2(x, 48)
	}
}
