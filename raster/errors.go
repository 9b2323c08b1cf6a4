// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

import "errors"

// Sentinel errors for the whole module. Wrapped values carry detail; callers
// match with errors.Is. None of these are retried internally: the engine
// performs no I/O and has no transient failure modes.
var (
	// ErrInvalidImage indicates a pixel buffer whose length does not match
	// its stated dimensions, or an output buffer that cannot be reassembled.
	ErrInvalidImage = errors.New("raster: invalid image")

	// ErrInvalidParameter indicates a caller error such as k == 0, an empty
	// sample set, or mismatched buffer lengths. Operations fail fast before
	// any computation begins.
	ErrInvalidParameter = errors.New("raster: invalid parameter")

	// ErrUnsupported indicates an operation that is not implemented.
	ErrUnsupported = errors.New("raster: unsupported operation")
)
