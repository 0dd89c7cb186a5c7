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
	"math/rand"
	"testing"

	"modernc.org/mathutil"
)

func TestILog2PowersOfTwo(t *testing.T) {
	for k := 0; k < 64; k++ {
		x := uint64(1) << k
		if got := ILog2(x); got != k {
			t.Errorf("ILog2(2^%d) = %d, want %d", k, got, k)
		}
		if got := ILog2(x | (x - 1)); got != k {
			t.Errorf("ILog2(2^%d | (2^%d-1)) = %d, want %d", k, k, got, k)
		}
	}
	for k := 0; k < 32; k++ {
		if got := ILog2(uint32(1) << k); got != k {
			t.Errorf("ILog2(uint32 2^%d) = %d, want %d", k, got, k)
		}
	}
}

func TestILog2Small(t *testing.T) {
	if got := ILog2(uint32(0)); got != 0 {
		t.Errorf("ILog2(uint32(0)) = %d, want 0", got)
	}
	if got := ILog2(uint64(0)); got != 0 {
		t.Errorf("ILog2(uint64(0)) = %d, want 0", got)
	}
	if got := ILog2(uint8(255)); got != 7 {
		t.Errorf("ILog2(uint8(255)) = %d, want 7", got)
	}
	if got := ILog2(uint16(0x8000)); got != 15 {
		t.Errorf("ILog2(uint16(0x8000)) = %d, want 15", got)
	}
	if got := ILog2(uint64(0x0000_0001_0000_0000)); got != 32 {
		t.Errorf("ILog2(2^32) = %d, want 32", got)
	}
}

func TestILog2PortableMatchesNative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 10000 {
		v := rng.Uint64() >> uint(rng.Intn(64))
		if v == 0 {
			continue
		}
		want := mathutil.Log2Uint64(v)
		if got := ilog2Portable64(v); got != want {
			t.Errorf("ilog2Portable64(%#x) = %d, want %d", v, got, want)
		}
		if got := ilog2Native64(v); got != want {
			t.Errorf("ilog2Native64(%#x) = %d, want %d", v, got, want)
		}
		v32 := uint32(v)
		if v32 == 0 {
			continue
		}
		want = mathutil.Log2Uint32(v32)
		if got := ilog2Portable32(v32); got != want {
			t.Errorf("ilog2Portable32(%#x) = %d, want %d", v32, got, want)
		}
		if got := ilog2Native32(v32); got != want {
			t.Errorf("ilog2Native32(%#x) = %d, want %d", v32, got, want)
		}
	}
}

func BenchmarkILog2Portable(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink += ilog2Portable64(uint64(i) * 0x9E3779B97F4A7C15)
	}
	_ = sink
}

func BenchmarkILog2Native(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink += ilog2Native64(uint64(i) * 0x9E3779B97F4A7C15)
	}
	_ = sink
}
