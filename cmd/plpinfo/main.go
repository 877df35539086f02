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

// Command plpinfo prints the dispatch decisions go-pulpdsp makes on this host.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/pulp-platform/go-pulpdsp/hwy"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Printf("Dispatch name: %s\n", hwy.CurrentName())
	fmt.Printf("HWY_NO_SIMD: %q (forced scalar: %v)\n", os.Getenv("HWY_NO_SIMD"), hwy.NoSimdEnv())
	fmt.Println()

	pe := hwy.CurrentPE()
	fmt.Printf("Processing element: core %d, cluster %d\n", pe.CoreID, pe.ClusterID)
	fmt.Printf("Role: %s\n", pe.Role())
	fmt.Printf("Cluster size (HWY_NUM_PE=%q): %d\n", os.Getenv("HWY_NUM_PE"), hwy.ClusterSize())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:   %v (paired kernels)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:      %v\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMDDP: %v (dot product)\n", cpu.ARM64.HasASIMDDP)
	fmt.Printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:  %v (paired kernels)\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41: %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasAVX2:  %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:   %v\n", cpu.X86.HasFMA)
}
