// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package saliency estimates per-pixel visual prominence from local
// perceptual contrast: a pixel that differs strongly from its neighborhood
// in LAB space is salient.
package saliency

import (
	"fmt"

	"github.com/rasterlab/go-raster/raster"
	"github.com/rasterlab/go-raster/raster/contrib/workerpool"
)

// Radius is the half-width of the contrast window; the window spans
// (2*Radius+1)² pixels. The O(w·h·window²) cost is accepted for quality.
const Radius = 5

// rowBatch is how many rows one pool grab processes. Border rows do less
// comparison work than interior rows, so batched stealing balances better
// than fixed splits.
const rowBatch = 8

// Map computes the saliency map: for every pixel, including borders, the
// mean Delta-E against every other pixel of its window, clamped to [0,255].
// Window coordinates are clamped to the image bounds (replicate-border
// policy). Each output pixel is independent; rows run in parallel when a
// pool is supplied.
func Map(buf *raster.Buffer, pool *workerpool.Pool) (*raster.Buffer, error) {
	if buf == nil || len(buf.Pix) != buf.Width*buf.Height*buf.Channels {
		return nil, fmt.Errorf("%w: malformed buffer", raster.ErrInvalidImage)
	}
	if buf.Channels != 3 && buf.Channels != 4 {
		return nil, fmt.Errorf("%w: need RGB or RGBA input, got %d channels", raster.ErrInvalidImage, buf.Channels)
	}

	w, h := buf.Width, buf.Height
	labs := make([]raster.Vec3, buf.NumPixels())
	raster.RGBToLabBatch(buf.Pix, buf.Channels, labs)

	out := raster.NewBuffer(w, h, 1)

	rows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				out.Pix[y*w+x] = localContrast(labs, w, h, x, y)
			}
		}
	}

	if pool == nil {
		rows(0, h)
	} else {
		pool.ParallelForBatched(h, rowBatch, rows)
	}
	return out, nil
}

// localContrast sums Delta-E from the center to every window pixel except
// the center itself, then averages. Clamped coordinates mean border windows
// revisit edge pixels; those duplicates count, matching the replicate
// policy.
func localContrast(labs []raster.Vec3, w, h, x, y int) uint8 {
	center := labs[y*w+x]

	var sum float32
	count := 0
	for dy := -Radius; dy <= Radius; dy++ {
		ny := clamp(y+dy, 0, h-1)
		for dx := -Radius; dx <= Radius; dx++ {
			nx := clamp(x+dx, 0, w-1)
			if nx == x && ny == y {
				continue
			}
			sum += raster.Distance(center, labs[ny*w+nx])
			count++
		}
	}

	if count == 0 {
		return 0
	}
	s := sum / float32(count)
	if s > 255 {
		s = 255
	}
	return uint8(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
