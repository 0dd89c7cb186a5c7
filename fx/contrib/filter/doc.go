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

// Package filter provides fixed-point recursive filters.
//
// The exponential moving average keeps its state in a single accumulator
// owned by the caller:
//
//	alpha := filter.Alpha[int32](1.0, 20, radix) // 1 s time constant at 20 Hz
//	for _, x := range samples {
//		acc = filter.EMA(acc, x, alpha, radix)
//	}
package filter
