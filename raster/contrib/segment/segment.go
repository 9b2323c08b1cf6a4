// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package segment partitions an image into k perceptually coherent regions
// and extracts each region as an isolated layer.
package segment

import (
	"fmt"
	"math"
	"sort"

	"github.com/rasterlab/go-raster/raster"
	"github.com/rasterlab/go-raster/raster/contrib/kmeans"
	"github.com/rasterlab/go-raster/raster/contrib/workerpool"
)

// Mask clusters every pixel in LAB space and returns a single-channel mask
// where each pixel carries round(clusterIndex/k*255).
//
// The byte value is a monotonic encoding of region identity, not a stable
// label: masks produced with different k are not comparable.
func Mask(buf *raster.Buffer, k, maxIter int, pool *workerpool.Pool) (*raster.Buffer, error) {
	if err := checkColor(buf); err != nil {
		return nil, err
	}

	labs := make([]raster.Vec3, buf.NumPixels())
	raster.RGBToLabBatch(buf.Pix, buf.Channels, labs)

	res, err := kmeans.Run(labs, k, maxIter, pool)
	if err != nil {
		return nil, err
	}

	mask := raster.NewBuffer(buf.Width, buf.Height, 1)
	for i, ci := range res.Assignments {
		mask.Pix[i] = uint8(math.Round(float64(ci) / float64(k) * 255))
	}
	return mask, nil
}

// ExtractLayers splits src into one RGBA buffer per observed mask value.
// Pixels outside a layer's region are fully transparent; pixels inside copy
// the source color with full opacity.
//
// Grouping is by the byte values actually present in the mask, not by an
// assumed 0..k-1 range, so a mask from any source works. Layers are returned
// in ascending mask-value order for deterministic output.
func ExtractLayers(src, mask *raster.Buffer) ([]*raster.Buffer, error) {
	if err := checkColor(src); err != nil {
		return nil, err
	}
	if mask == nil || mask.Channels != 1 {
		return nil, fmt.Errorf("%w: mask must be single-channel", raster.ErrInvalidImage)
	}
	if mask.Width != src.Width || mask.Height != src.Height || len(mask.Pix) != mask.NumPixels() {
		return nil, fmt.Errorf("%w: mask %dx%d does not match image %dx%d",
			raster.ErrInvalidImage, mask.Width, mask.Height, src.Width, src.Height)
	}

	// Group pixel indices by observed region value.
	groups := make(map[uint8][]int)
	for i, v := range mask.Pix {
		groups[v] = append(groups[v], i)
	}

	values := make([]int, 0, len(groups))
	for v := range groups {
		values = append(values, int(v))
	}
	sort.Ints(values)

	c := src.Channels
	layers := make([]*raster.Buffer, 0, len(values))
	for _, v := range values {
		layer := raster.NewBuffer(src.Width, src.Height, 4)
		for _, i := range groups[uint8(v)] {
			srcOff := i * c
			dstOff := i * 4
			layer.Pix[dstOff] = src.Pix[srcOff]
			layer.Pix[dstOff+1] = src.Pix[srcOff+1]
			layer.Pix[dstOff+2] = src.Pix[srcOff+2]
			layer.Pix[dstOff+3] = 255
		}
		layers = append(layers, layer)
	}
	return layers, nil
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
