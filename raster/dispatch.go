// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package raster provides low-level image-analysis primitives: perceptual
// LAB color-space conversion, Sobel gradient kernels, and batched distance
// computation, with a runtime-dispatched accelerated path for the hot
// per-pixel loops.
//
// The accelerated path processes BatchLanes pixels per step and is selected
// once at startup from the CPU capability probe. Both paths compute the same
// float32 operations in the same order, so results are identical regardless
// of which path runs.
package raster

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction-set tier selected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates the pure scalar fallback.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// BatchLanes is the number of pixels processed per step on the accelerated
// path. Remainders are handled by a scalar tail loop.
const BatchLanes = 8

// currentLevel is the detected level for this process.
// Set by init() in dispatch_*.go files, read-only afterwards.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
var currentWidth int

// CurrentLevel returns the instruction-set tier selected for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// Accelerated reports whether the batched path is in use. When false, every
// batch operation runs its scalar fallback. Dispatch never fails: an absent
// capability silently selects the fallback.
func Accelerated() bool {
	return currentLevel > DispatchScalar
}

// NoSimdEnv checks the RASTER_NO_SIMD environment variable. When set, the
// scalar fallback is used regardless of CPU capabilities. Useful for testing
// and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("RASTER_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep a 16-byte nominal width even in scalar mode
}
