// Copyright 2025 go-pulpdsp Authors
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

package hwy

// LoopBounds splits count elements into full steps of width elements plus a
// cleanup remainder. A non-positive count yields (0, 0).
//
// Example:
//
//	steps, cleanup := hwy.LoopBounds(numSamples, 2)
//	for i := range steps {
//	    // two complex samples at 4*i
//	}
//	if cleanup != 0 {
//	    // one trailing sample at 4*steps
//	}
func LoopBounds(count, width int) (steps, cleanup int) {
	if count <= 0 || width <= 0 {
		return 0, 0
	}
	return count / width, count % width
}

// ProcessWithTail calls fullFn(offset) for every full step of width elements
// and tailFn(offset, remaining) once for the remainder, if any. Offsets are in
// elements.
//
// Example:
//
//	hwy.ProcessWithTail(numSamples, 2,
//	    func(offset int) {
//	        // samples offset and offset+1
//	    },
//	    func(offset, remaining int) {
//	        // remaining < 2 samples starting at offset
//	    },
//	)
func ProcessWithTail(count, width int, fullFn func(offset int), tailFn func(offset, remaining int)) {
	steps, cleanup := LoopBounds(count, width)
	for i := range steps {
		fullFn(i * width)
	}
	if cleanup > 0 {
		tailFn(steps*width, cleanup)
	}
}
