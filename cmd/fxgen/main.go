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

// Command fxgen generates the constant tables and reference vectors used by
// the fixed-point math package.
//
// Usage:
//
//	fxgen -mode tables -output cordic_table.go
//	fxgen -mode vectors -output testdata/reference.yaml
//
// Or via go:generate, from fx/contrib/math:
//
//	//go:generate go run ../../../cmd/fxgen -mode tables -output cordic_table.go
//
// In tables mode the CORDIC arctangent table and gain are computed in
// arbitrary precision and emitted as Go source. In vectors mode float64
// reference values for sine, cosine and the logarithms are written as YAML.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	mode       = flag.String("mode", "tables", "What to generate ("+strings.Join(availableModes, ",")+")")
	outputFile = flag.String("output", "", "Output file (required)")
	packageOut = flag.String("pkg", "math", "Package name for generated Go source")
	steps      = flag.Int("steps", defaultSteps, "Number of CORDIC iterations in tables mode")
)

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Mode:       *mode,
		OutputFile: *outputFile,
		PackageOut: *packageOut,
		Steps:      *steps,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s (%s)\n", *outputFile, *mode)
}
