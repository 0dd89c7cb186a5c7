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
	"os"
	"path/filepath"
	"slices"
)

const (
	modeTables  = "tables"
	modeVectors = "vectors"
)

// licenseHeader opens every generated Go file.
const licenseHeader = `// Copyright 2025 go-fixedpoint Authors
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
`

var availableModes = []string{modeTables, modeVectors}

// Generator produces one output file per run.
type Generator struct {
	Mode       string // modeTables or modeVectors
	OutputFile string // Destination path
	PackageOut string // Package clause for Go output
	Steps      int    // CORDIC iterations
}

// Run generates the output selected by g.Mode and writes it to g.OutputFile.
func (g *Generator) Run() error {
	if !slices.Contains(availableModes, g.Mode) {
		return fmt.Errorf("unknown mode %q (want one of %v)", g.Mode, availableModes)
	}

	var buf bytes.Buffer
	switch g.Mode {
	case modeTables:
		if g.Steps < 1 || g.Steps > maxSteps {
			return fmt.Errorf("steps must be in [1, %d], got %d", maxSteps, g.Steps)
		}
		if err := emitTables(&buf, g.PackageOut, computeCordicTables(g.Steps)); err != nil {
			return fmt.Errorf("emit tables: %w", err)
		}
	case modeVectors:
		if err := emitVectors(&buf, computeReference()); err != nil {
			return fmt.Errorf("emit vectors: %w", err)
		}
	}

	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}
