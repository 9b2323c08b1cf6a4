// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Command cpuinfo prints the dispatch decision go-raster made on this
// machine, plus the raw capability bits it was derived from. Handy when a
// bug report needs to say which path actually ran.
//
// Usage: go run ./internal/cpuinfo
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/rasterlab/go-raster/raster"
)

func main() {
	fmt.Println("=== go-raster dispatch ===")
	fmt.Printf("GOARCH:      %s\n", runtime.GOARCH)
	fmt.Printf("level:       %s\n", raster.CurrentLevel())
	fmt.Printf("width:       %d bytes\n", raster.CurrentWidth())
	fmt.Printf("accelerated: %v\n", raster.Accelerated())
	fmt.Printf("batch lanes: %d\n", raster.BatchLanes)
	fmt.Printf("RASTER_NO_SIMD: %v\n", raster.NoSimdEnv())

	switch runtime.GOARCH {
	case "amd64":
		fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
		fmt.Printf("HasSSE2:   %v\n", cpu.X86.HasSSE2)
		fmt.Printf("HasAVX:    %v\n", cpu.X86.HasAVX)
		fmt.Printf("HasAVX2:   %v\n", cpu.X86.HasAVX2)
		fmt.Printf("HasAVX512: %v\n", cpu.X86.HasAVX512)
	case "arm64":
		fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
		fmt.Printf("HasASIMD: %v\n", cpu.ARM64.HasASIMD)
		fmt.Printf("HasSVE:   %v\n", cpu.ARM64.HasSVE)
	}
}
