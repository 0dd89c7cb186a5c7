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
	"os"
	"strconv"
)

// DispatchLevel identifies which implementation of the bit-scan primitives
// is in use.
type DispatchLevel int

const (
	// DispatchPortable uses the table-driven paths only. Results are
	// identical on every platform, including soft targets without a
	// count-leading-zeros instruction.
	DispatchPortable DispatchLevel = iota

	// DispatchNative uses math/bits, which lowers to the CPU's bit-scan
	// instruction (BSR/LZCNT on amd64, CLZ on ARM).
	DispatchNative
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchPortable:
		return "portable"
	case DispatchNative:
		return "native"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName names the instruction backing the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// hasDSP reports saturating integer instructions (ARM EDSP, SSE2 PADDS*,
// AArch64 SQADD).
var hasDSP bool

// hasFastMul reports a single-instruction 32x32->64 multiply.
var hasFastMul bool

// CurrentLevel returns the dispatch level in use.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns the name of the bit-scan implementation in use,
// for example "lzcnt", "clz" or "debruijn".
func CurrentName() string {
	return currentName
}

// HasDSP reports whether the CPU has saturating integer arithmetic
// instructions. It is informational: results never depend on it.
func HasDSP() bool {
	return hasDSP
}

// HasFastMul reports whether the CPU has a 32x32->64 multiply instruction.
// It is informational: results never depend on it.
func HasFastMul() bool {
	return hasFastMul
}

// PortableEnv checks if the FXP_PORTABLE environment variable is set.
// When set, the table-driven paths are used regardless of CPU capabilities.
// This is useful for testing the paths that embedded targets run.
func PortableEnv() bool {
	val := os.Getenv("FXP_PORTABLE")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setPortableMode() {
	currentLevel = DispatchPortable
	currentName = "debruijn"
	ilog2Impl32 = ilog2Portable32
	ilog2Impl64 = ilog2Portable64
}

func setNativeMode(name string) {
	currentLevel = DispatchNative
	currentName = name
	ilog2Impl32 = ilog2Native32
	ilog2Impl64 = ilog2Native64
}
