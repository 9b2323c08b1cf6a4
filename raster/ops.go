// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

// Batched entry points for the hot per-pixel loops. Each one selects the
// accelerated batch kernel or the scalar fallback from the startup probe;
// the two paths produce identical float32 results (same operations, same
// order), so callers never observe which one ran.

// RGBToLabBatch converts interleaved pixels to LAB triples. channels must be
// 3 or 4; the alpha byte of 4-channel input is skipped. Conversion stops at
// min(len(dst), pixel count).
func RGBToLabBatch(pix []byte, channels int, dst []Vec3) {
	if channels != 3 && channels != 4 {
		return
	}
	n := min(len(dst), len(pix)/channels)
	if n == 0 {
		return
	}
	if Accelerated() {
		rgbToLabBatchVec(pix, channels, dst[:n])
		return
	}
	rgbToLabBatchScalar(pix, channels, dst[:n])
}

// DistanceBatch computes the Delta-E distance from every point to a single
// centroid. This is the inner loop of k-means assignment, where one centroid
// is compared against a long run of samples.
func DistanceBatch(points []Vec3, centroid Vec3, dst []float32) {
	n := min(len(points), len(dst))
	if n == 0 {
		return
	}
	if Accelerated() {
		distanceBatchVec(points[:n], centroid, dst[:n])
		return
	}
	distanceBatchScalar(points[:n], centroid, dst[:n])
}

// SobelRow computes gradient magnitudes for one interior row y of a
// single-channel image. dst must hold width values; dst[0] and dst[width-1]
// stay zero because the 3x3 kernel needs a full neighborhood. Rows outside
// the interior, or rows of images narrower than the kernel, produce an
// all-zero dst.
func SobelRow(gray []byte, width, y int, dst []float32) {
	if len(dst) < width {
		return
	}
	dst = dst[:width]
	for i := range dst {
		dst[i] = 0
	}
	if width < 3 || y < 1 || (y+2)*width > len(gray) {
		return
	}
	if Accelerated() {
		sobelRowVec(gray, width, y, dst)
		return
	}
	sobelRowScalar(gray, width, y, dst)
}

// sobelAt applies the 3x3 Sobel X/Y kernels at interior position (x, y) and
// returns the gradient magnitude sqrt(gx²+gy²).
func sobelAt(gray []byte, width, x, y int) float32 {
	up := (y - 1) * width
	mid := y * width
	down := (y + 1) * width

	a := int32(gray[up+x-1])
	b := int32(gray[up+x])
	c := int32(gray[up+x+1])
	d := int32(gray[mid+x-1])
	f := int32(gray[mid+x+1])
	g := int32(gray[down+x-1])
	h := int32(gray[down+x])
	i := int32(gray[down+x+1])

	// X kernel [[-1,0,1],[-2,0,2],[-1,0,1]], Y kernel [[-1,-2,-1],[0,0,0],[1,2,1]]
	gx := -a + c - 2*d + 2*f - g + i
	gy := -a - 2*b - c + g + 2*h + i

	return sqrt32(float32(gx*gx + gy*gy))
}
