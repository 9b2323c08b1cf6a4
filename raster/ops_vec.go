// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

// Batched kernels used when the capability probe selects an accelerated
// level. Each kernel processes BatchLanes pixels per iteration with a scalar
// tail for the remainder. The per-lane math is the same scalar code as the
// fallback, so the equivalence contract holds bit-for-bit; the unrolled body
// exists to keep the lanes independent for the compiler's vectorizer.

func rgbToLabBatchVec(pix []byte, channels int, dst []Vec3) {
	n := len(dst)
	full := n / BatchLanes * BatchLanes

	for i := 0; i < full; i += BatchLanes {
		off := i * channels
		dst[i+0] = RGBToLab(pix[off], pix[off+1], pix[off+2])
		off += channels
		dst[i+1] = RGBToLab(pix[off], pix[off+1], pix[off+2])
		off += channels
		dst[i+2] = RGBToLab(pix[off], pix[off+1], pix[off+2])
		off += channels
		dst[i+3] = RGBToLab(pix[off], pix[off+1], pix[off+2])
		off += channels
		dst[i+4] = RGBToLab(pix[off], pix[off+1], pix[off+2])
		off += channels
		dst[i+5] = RGBToLab(pix[off], pix[off+1], pix[off+2])
		off += channels
		dst[i+6] = RGBToLab(pix[off], pix[off+1], pix[off+2])
		off += channels
		dst[i+7] = RGBToLab(pix[off], pix[off+1], pix[off+2])
	}

	// Scalar tail
	for i := full; i < n; i++ {
		off := i * channels
		dst[i] = RGBToLab(pix[off], pix[off+1], pix[off+2])
	}
}

func distanceBatchVec(points []Vec3, c Vec3, dst []float32) {
	n := len(points)
	full := n / BatchLanes * BatchLanes

	for i := 0; i < full; i += BatchLanes {
		dst[i+0] = Distance(points[i+0], c)
		dst[i+1] = Distance(points[i+1], c)
		dst[i+2] = Distance(points[i+2], c)
		dst[i+3] = Distance(points[i+3], c)
		dst[i+4] = Distance(points[i+4], c)
		dst[i+5] = Distance(points[i+5], c)
		dst[i+6] = Distance(points[i+6], c)
		dst[i+7] = Distance(points[i+7], c)
	}

	for i := full; i < n; i++ {
		dst[i] = Distance(points[i], c)
	}
}

func sobelRowVec(gray []byte, width, y int, dst []float32) {
	interior := width - 2
	full := interior / BatchLanes * BatchLanes

	for i := 0; i < full; i += BatchLanes {
		x := i + 1
		dst[x+0] = sobelAt(gray, width, x+0, y)
		dst[x+1] = sobelAt(gray, width, x+1, y)
		dst[x+2] = sobelAt(gray, width, x+2, y)
		dst[x+3] = sobelAt(gray, width, x+3, y)
		dst[x+4] = sobelAt(gray, width, x+4, y)
		dst[x+5] = sobelAt(gray, width, x+5, y)
		dst[x+6] = sobelAt(gray, width, x+6, y)
		dst[x+7] = sobelAt(gray, width, x+7, y)
	}

	for x := full + 1; x < width-1; x++ {
		dst[x] = sobelAt(gray, width, x, y)
	}
}
