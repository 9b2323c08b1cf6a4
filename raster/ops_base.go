// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

import "math"

// Scalar fallback kernels. These are the reference implementations: the
// batch kernels in ops_vec.go must match them exactly.

func rgbToLabBatchScalar(pix []byte, channels int, dst []Vec3) {
	for i := range dst {
		off := i * channels
		dst[i] = RGBToLab(pix[off], pix[off+1], pix[off+2])
	}
}

func distanceBatchScalar(points []Vec3, c Vec3, dst []float32) {
	for i, p := range points {
		dst[i] = Distance(p, c)
	}
}

func sobelRowScalar(gray []byte, width, y int, dst []float32) {
	for x := 1; x < width-1; x++ {
		dst[x] = sobelAt(gray, width, x, y)
	}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
