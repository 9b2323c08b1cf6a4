// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package raster

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpu.X86.HasAVX512:
		currentLevel = DispatchAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
	default:
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
	}
}
