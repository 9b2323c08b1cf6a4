// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package edge detects intensity edges with 3x3 Sobel kernels and blends
// heterogeneous edge maps.
//
// An edge map is a single-channel buffer holding classified edge strength:
// 0, WeakEdge, or StrongEdge. Border rows and columns are never classified
// and stay 0, because the kernel needs a full 3x3 neighborhood.
package edge

import (
	"fmt"
	"math"

	"github.com/rasterlab/go-raster/raster"
	"github.com/rasterlab/go-raster/raster/contrib/workerpool"
)

const (
	// StrongEdge marks gradient magnitude above the caller's threshold.
	StrongEdge = 255

	// WeakEdge marks magnitude above half the threshold in the multi-scale
	// classifier. Weak edges are not traced or promoted: this is a
	// three-level approximation of hysteresis, not the real thing.
	WeakEdge = 128
)

// rowBatch rows per pool grab.
const rowBatch = 16

// Sobel computes a binary edge map: StrongEdge where the gradient magnitude
// exceeds threshold, 0 elsewhere. Output rows are independent, so interior
// rows run in parallel when a pool is supplied.
func Sobel(buf *raster.Buffer, threshold uint8, pool *workerpool.Pool) (*raster.Buffer, error) {
	t := float32(threshold)
	return classify(buf, pool, func(mag float32) uint8 {
		if mag > t {
			return StrongEdge
		}
		return 0
	})
}

// MultiScaleSobel computes a three-level edge map: StrongEdge above
// threshold, WeakEdge above threshold/2, 0 elsewhere. There is no
// connectivity walk promoting weak edges next to strong ones; callers that
// need true hysteresis need a real Canny, which this module does not have.
func MultiScaleSobel(buf *raster.Buffer, threshold uint8, pool *workerpool.Pool) (*raster.Buffer, error) {
	t := float32(threshold)
	return classify(buf, pool, func(mag float32) uint8 {
		switch {
		case mag > t:
			return StrongEdge
		case mag > t*0.5:
			return WeakEdge
		default:
			return 0
		}
	})
}

// Canny always fails with ErrUnsupported. The entry point exists so callers
// get an explicit error instead of a silent degrade; use Sobel instead.
func Canny(buf *raster.Buffer, low, high uint8) (*raster.Buffer, error) {
	return nil, fmt.Errorf("%w: canny edge detection is not implemented, use Sobel", raster.ErrUnsupported)
}

// Blend mixes two edge maps: out = a*(1-alpha) + b*alpha, rounded. alpha is
// clamped to [0,1]; alpha 0 reproduces a exactly and alpha 1 reproduces b
// exactly, bytewise. Mismatched lengths fail with ErrInvalidParameter.
func Blend(a, b []byte, alpha float32) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: edge maps differ in length (%d vs %d)", raster.ErrInvalidParameter, len(a), len(b))
	}

	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	beta := 1 - alpha

	out := make([]byte, len(a))
	for i := range a {
		v := math.Round(float64(float32(a[i])*beta + float32(b[i])*alpha))
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		out[i] = uint8(v)
	}
	return out, nil
}

// classify converts to luminance, runs the gradient kernel over every
// interior row and maps each magnitude through fn. Borders stay 0.
func classify(buf *raster.Buffer, pool *workerpool.Pool, fn func(mag float32) uint8) (*raster.Buffer, error) {
	gray, err := raster.Luminance(buf)
	if err != nil {
		return nil, err
	}

	w, h := buf.Width, buf.Height
	out := raster.NewBuffer(w, h, 1)
	if w < 3 || h < 3 {
		return out, nil // no interior pixels
	}

	rows := func(start, end int) {
		mags := make([]float32, w)
		for r := start; r < end; r++ {
			y := r + 1 // interior rows are 1..h-2
			raster.SobelRow(gray.Pix, w, y, mags)
			row := out.Pix[y*w : (y+1)*w]
			for x := 1; x < w-1; x++ {
				row[x] = fn(mags[x])
			}
		}
	}

	if pool == nil {
		rows(0, h-2)
	} else {
		pool.ParallelForBatched(h-2, rowBatch, rows)
	}
	return out, nil
}
