// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package quantize reduces an image to k representative colors.
//
// Two variants exist: RGB clusters raw channel values, Lab clusters in the
// perceptual LAB space, which costs two color-space conversions but groups
// colors the way the eye does.
package quantize

import (
	"fmt"
	"math"

	"github.com/rasterlab/go-raster/raster"
	"github.com/rasterlab/go-raster/raster/contrib/kmeans"
	"github.com/rasterlab/go-raster/raster/contrib/workerpool"
)

// RGB quantizes the buffer by k-means over raw RGB triples. Every pixel is
// replaced by its cluster centroid, rounded to bytes. The alpha channel of a
// 4-channel input does not participate in clustering and is forced fully
// opaque in the output.
func RGB(buf *raster.Buffer, k, maxIter int, pool *workerpool.Pool) (*raster.Buffer, error) {
	points, err := rgbPoints(buf)
	if err != nil {
		return nil, err
	}

	res, err := kmeans.Run(points, k, maxIter, pool)
	if err != nil {
		return nil, err
	}

	out := raster.NewBuffer(buf.Width, buf.Height, buf.Channels)
	c := buf.Channels
	for i, ci := range res.Assignments {
		cen := res.Centroids[ci]
		off := i * c
		out.Pix[off] = roundByte(cen[0])
		out.Pix[off+1] = roundByte(cen[1])
		out.Pix[off+2] = roundByte(cen[2])
		if c == 4 {
			out.Pix[off+3] = 255
		}
	}
	return out, nil
}

// Lab quantizes the buffer by k-means in LAB space. After clustering, the
// nearest centroid is recomputed for every pixel rather than read from the
// stored assignment vector, then mapped back to sRGB once per centroid.
func Lab(buf *raster.Buffer, k, maxIter int, pool *workerpool.Pool) (*raster.Buffer, error) {
	labs, err := labPoints(buf)
	if err != nil {
		return nil, err
	}

	res, err := kmeans.Run(labs, k, maxIter, pool)
	if err != nil {
		return nil, err
	}

	// Palette: one sRGB triple per LAB centroid.
	type rgb struct{ r, g, b uint8 }
	palette := make([]rgb, len(res.Centroids))
	for i, cen := range res.Centroids {
		r, g, b := raster.LabToRGB(cen)
		palette[i] = rgb{r, g, b}
	}

	nearest := make([]int, len(labs))
	kmeans.Assign(labs, res.Centroids, nearest, pool)

	out := raster.NewBuffer(buf.Width, buf.Height, buf.Channels)
	c := buf.Channels
	for i, ci := range nearest {
		off := i * c
		out.Pix[off] = palette[ci].r
		out.Pix[off+1] = palette[ci].g
		out.Pix[off+2] = palette[ci].b
		if c == 4 {
			out.Pix[off+3] = 255
		}
	}
	return out, nil
}

// Palette runs LAB k-means and returns only the k representative colors as
// sRGB triples, without rebuilding the image.
func Palette(buf *raster.Buffer, k, maxIter int, pool *workerpool.Pool) ([][3]uint8, error) {
	labs, err := labPoints(buf)
	if err != nil {
		return nil, err
	}

	res, err := kmeans.Run(labs, k, maxIter, pool)
	if err != nil {
		return nil, err
	}

	colors := make([][3]uint8, len(res.Centroids))
	for i, cen := range res.Centroids {
		r, g, b := raster.LabToRGB(cen)
		colors[i] = [3]uint8{r, g, b}
	}
	return colors, nil
}

func rgbPoints(buf *raster.Buffer) ([]raster.Vec3, error) {
	if err := checkColor(buf); err != nil {
		return nil, err
	}

	c := buf.Channels
	points := make([]raster.Vec3, buf.NumPixels())
	for i := range points {
		off := i * c
		points[i] = raster.Vec3{
			float32(buf.Pix[off]),
			float32(buf.Pix[off+1]),
			float32(buf.Pix[off+2]),
		}
	}
	return points, nil
}

func labPoints(buf *raster.Buffer) ([]raster.Vec3, error) {
	if err := checkColor(buf); err != nil {
		return nil, err
	}

	labs := make([]raster.Vec3, buf.NumPixels())
	raster.RGBToLabBatch(buf.Pix, buf.Channels, labs)
	return labs, nil
}

func checkColor(buf *raster.Buffer) error {
	if buf == nil || len(buf.Pix) != buf.Width*buf.Height*buf.Channels {
		return fmt.Errorf("%w: malformed buffer", raster.ErrInvalidImage)
	}
	if buf.Channels != 3 && buf.Channels != 4 {
		return fmt.Errorf("%w: need RGB or RGBA input, got %d channels", raster.ErrInvalidImage, buf.Channels)
	}
	return nil
}

func roundByte(f float32) uint8 {
	r := math.Round(float64(f))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
