// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package edge

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/rasterlab/go-raster/raster"
	"github.com/rasterlab/go-raster/raster/contrib/modelcache"
	"github.com/rasterlab/go-raster/raster/contrib/workerpool"
)

// Detect is the model-gated detection policy: when the model at modelPath is
// available it runs the multi-scale detector, otherwise plain Sobel. Only
// presence is checked — no model is loaded or run here; inference belongs to
// the external model subsystem.
//
// cache may be nil, in which case the filesystem is probed directly. An
// empty modelPath always takes the Sobel branch.
func Detect(buf *raster.Buffer, modelPath string, threshold uint8, cache *modelcache.Cache, pool *workerpool.Pool) (*raster.Buffer, error) {
	useModel := false
	if modelPath != "" {
		if cache != nil {
			useModel = cache.Check(modelPath)
		} else {
			useModel = modelcache.ModelExists(modelPath)
		}
	}

	if useModel {
		return MultiScaleSobel(buf, threshold, pool)
	}
	return Sobel(buf, threshold, pool)
}

// PrepareModelInput resizes the image to the model's input size with
// Catmull-Rom resampling and returns planar CHW float32 data normalized to
// [0,1]: all red values, then all green, then all blue.
func PrepareModelInput(buf *raster.Buffer, width, height int) ([]float32, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: model input size %dx%d", raster.ErrInvalidParameter, width, height)
	}

	src, err := buf.ToImage()
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	n := width * height
	input := make([]float32, 3*n)
	for i := range n {
		off := i * 4
		input[i] = float32(dst.Pix[off]) / 255
		input[n+i] = float32(dst.Pix[off+1]) / 255
		input[2*n+i] = float32(dst.Pix[off+2]) / 255
	}
	return input, nil
}

// ModelOutputToEdges maps a model's float edge activations back to an edge
// byte buffer: each value is clamped to [0,1] and scaled to [0,255].
func ModelOutputToEdges(output []float32) []byte {
	edges := make([]byte, len(output))
	for i, v := range output {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		edges[i] = uint8(v * 255)
	}
	return edges
}
