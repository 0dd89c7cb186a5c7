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
	"math"
	"testing"
)

func TestFromRealRounding(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		radix uint
		want  int16
	}{
		{"half rounds up", 0.5, 0, 1},
		{"negative half rounds down", -0.5, 0, -1},
		{"below half", 0.49, 0, 0},
		{"negative below half", -0.49, 0, 0},
		{"2.5", 2.5, 0, 3},
		{"-1.5", -1.5, 0, -2},
		{"1.25 at radix 1", 1.25, 1, 3},
		{"0.5 at radix 14", 0.5, 14, 8192},
		{"-0.25 at radix 14", -0.25, 14, -4096},
		{"1.0 at radix 15 saturates", 1.0, 15, math.MaxInt16},
		{"-1.0 at radix 15", -1.0, 15, math.MinInt16},
		{"-2.0 at radix 15 saturates", -2.0, 15, math.MinInt16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromReal[int16](tt.x, tt.radix); got != tt.want {
				t.Errorf("FromReal[int16](%v, %d) = %d, want %d", tt.x, tt.radix, got, tt.want)
			}
		})
	}
}

func TestFromRealWidths(t *testing.T) {
	if got := FromReal[int32](0.2, 16); got != 13107 {
		t.Errorf("FromReal[int32](0.2, 16) = %d, want 13107", got)
	}
	if got := FromReal[int32](0.05, 16); got != 3277 {
		t.Errorf("FromReal[int32](0.05, 16) = %d, want 3277", got)
	}
	if got := FromReal[int32](-0.05, 16); got != -3277 {
		t.Errorf("FromReal[int32](-0.05, 16) = %d, want -3277", got)
	}
	if got := FromReal[int32](float32(0.75), 15); got != 24576 {
		t.Errorf("FromReal[int32](float32(0.75), 15) = %d, want 24576", got)
	}
	if got := FromReal[int64](4.0, 62); got != math.MaxInt64 {
		t.Errorf("FromReal[int64](4.0, 62) = %d, want %d", got, int64(math.MaxInt64))
	}
	if got := FromReal[int64](-2.0, 62); got != math.MinInt64 {
		t.Errorf("FromReal[int64](-2.0, 62) = %d, want %d", got, int64(math.MinInt64))
	}
	if got := FromReal[int64](1.5, 40); got != 3<<39 {
		t.Errorf("FromReal[int64](1.5, 40) = %d, want %d", got, int64(3<<39))
	}
}

func TestToReal(t *testing.T) {
	if got := ToReal[float64](int16(16384), 15); got != 0.5 {
		t.Errorf("ToReal(16384, 15) = %v, want 0.5", got)
	}
	if got := ToReal[float32](int32(-3<<15), 16); got != -1.5 {
		t.Errorf("ToReal(-3<<15, 16) = %v, want -1.5", got)
	}
	if got := ToReal[float64](int64(5), 0); got != 5 {
		t.Errorf("ToReal(5, 0) = %v, want 5", got)
	}
}

func TestRealRoundTrip(t *testing.T) {
	for _, radix := range []uint{4, 10, 15, 24, 30} {
		tol := math.Ldexp(1, -int(radix))
		for i := -1000; i < 1000; i++ {
			x := float64(i) * 0.000999 // spans [-0.999, 0.999]
			got := ToReal[float64](FromReal[int32](x, radix), radix)
			if math.Abs(got-x) > tol {
				t.Errorf("radix %d: ToReal(FromReal(%v)) = %v, error %g > %g", radix, x, got, math.Abs(got-x), tol)
			}
		}
	}
}
