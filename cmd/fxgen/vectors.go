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
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// sinePoints is the number of reference samples over a half period.
const sinePoints = 32

// logInputs are the reference arguments for the logarithm family.
var logInputs = []float64{0.125, 0.5, 0.75, 1, 1.5, 2, math.E, 3, 10, 100, 1000}

type sinePoint struct {
	Angle float64 `yaml:"angle"` // In half turns, 1.0 = π
	Sin   float64 `yaml:"sin"`
	Cos   float64 `yaml:"cos"`
}

type logPoint struct {
	X     float64 `yaml:"x"`
	Log2  float64 `yaml:"log2"`
	Ln    float64 `yaml:"ln"`
	Log10 float64 `yaml:"log10"`
}

// referenceVectors is the layout of testdata/reference.yaml.
type referenceVectors struct {
	Sine []sinePoint `yaml:"sine"`
	Log  []logPoint  `yaml:"log"`
}

func computeReference() referenceVectors {
	var ref referenceVectors
	for k := 0; k <= sinePoints; k++ {
		a := float64(k) / sinePoints
		ref.Sine = append(ref.Sine, sinePoint{
			Angle: a,
			Sin:   math.Sin(a * math.Pi),
			Cos:   math.Cos(a * math.Pi),
		})
	}
	for _, x := range logInputs {
		ref.Log = append(ref.Log, logPoint{
			X:     x,
			Log2:  math.Log2(x),
			Ln:    math.Log(x),
			Log10: math.Log10(x),
		})
	}
	return ref
}

func emitVectors(w io.Writer, ref referenceVectors) error {
	if _, err := io.WriteString(w, "# Code generated by fxgen. DO NOT EDIT.\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ref); err != nil {
		return fmt.Errorf("encode reference vectors: %w", err)
	}
	return enc.Close()
}
