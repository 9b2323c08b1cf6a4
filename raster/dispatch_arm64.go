// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package raster

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) as part of the ARMv8-A base
	// architecture. The cpu package check is kept for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		setScalarMode()
	}
}
