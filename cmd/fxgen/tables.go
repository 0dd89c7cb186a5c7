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

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"math/big"
	"text/template"
)

const (
	// Fractional bits of the internal angle format, where π is 1<<angleFrac.
	angleFrac = 61

	defaultSteps = 61
	maxSteps     = 63

	// Working precision in bits, well beyond the 64-bit outputs.
	precision = 320
)

// cordicTables holds the rounded CORDIC constants.
type cordicTables struct {
	Steps int
	Gain  int64   // prod 1/sqrt(1+2^-2i), Q61
	Atan  []int64 // atan(2^-i)/π, Q61
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(precision)
}

// atanSeries returns atan(x) by its Taylor series. It converges for
// |x| <= 1/2 at one bit per term or better.
func atanSeries(x *big.Float) *big.Float {
	sum := newFloat()
	term := newFloat().Set(x)
	x2 := newFloat().Mul(x, x)
	eps := newFloat().SetMantExp(big.NewFloat(1), -precision)
	for k := int64(0); ; k++ {
		t := newFloat().Quo(term, newFloat().SetInt64(2*k+1))
		if t.Cmp(eps) < 0 {
			break
		}
		if k%2 == 0 {
			sum.Add(sum, t)
		} else {
			sum.Sub(sum, t)
		}
		term.Mul(term, x2)
	}
	return sum
}

// machinPi returns π = 16 atan(1/5) - 4 atan(1/239).
func machinPi() *big.Float {
	a := atanSeries(newFloat().Quo(newFloat().SetInt64(1), newFloat().SetInt64(5)))
	b := atanSeries(newFloat().Quo(newFloat().SetInt64(1), newFloat().SetInt64(239)))
	a.Mul(a, newFloat().SetInt64(16))
	b.Mul(b, newFloat().SetInt64(4))
	return a.Sub(a, b)
}

// roundQ returns round(v * 2^frac) for v >= 0.
func roundQ(v *big.Float, frac int) int64 {
	s := newFloat().SetMantExp(v, frac)
	s.Add(s, big.NewFloat(0.5))
	i, _ := s.Int64()
	return i
}

func computeCordicTables(steps int) cordicTables {
	pi := machinPi()
	one := newFloat().SetInt64(1)
	t := cordicTables{Steps: steps, Atan: make([]int64, steps)}
	gain := newFloat().SetInt64(1)
	for i := range steps {
		var angle *big.Float
		if i == 0 {
			angle = newFloat().Quo(pi, newFloat().SetInt64(4))
		} else {
			angle = atanSeries(newFloat().SetMantExp(one, -i))
		}
		t.Atan[i] = roundQ(newFloat().Quo(angle, pi), angleFrac)

		k := newFloat().SetMantExp(one, -2*i)
		k.Add(k, one)
		gain.Quo(gain, k.Sqrt(k))
	}
	t.Gain = roundQ(gain, angleFrac)
	return t
}

var tablesTemplate = template.Must(template.New("tables").Parse(licenseHeader + `
// Code generated by fxgen. DO NOT EDIT.

package {{.Package}}

// cordicSteps is the number of CORDIC iterations.
const cordicSteps = {{.Tables.Steps}}

// cordicGain is the product of 1/sqrt(1+2^-2i) over all steps, in Q61.
const cordicGain int64 = {{.Tables.Gain}}

// cordicAtan[i] is atan(2^-i) in Q61 half turns.
var cordicAtan = [cordicSteps]int64{
{{- range .Tables.Atan}}
	{{.}},
{{- end}}
}
`))

func emitTables(w io.Writer, pkg string, t cordicTables) error {
	var buf bytes.Buffer
	err := tablesTemplate.Execute(&buf, struct {
		Package string
		Tables  cordicTables
	}{pkg, t})
	if err != nil {
		return err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(formatted)
	return err
}
