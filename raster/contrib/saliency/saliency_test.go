// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package saliency

import (
	"errors"
	"testing"

	"github.com/rasterlab/go-raster/raster"
	"github.com/rasterlab/go-raster/raster/contrib/workerpool"
)

func uniform(w, h int, c [3]uint8) *raster.Buffer {
	buf := raster.NewBuffer(w, h, 3)
	for i := 0; i < len(buf.Pix); i += 3 {
		copy(buf.Pix[i:], c[:])
	}
	return buf
}

func TestUniformImageIsZero(t *testing.T) {
	buf := uniform(20, 15, [3]uint8{37, 120, 240})

	m, err := Map(buf, nil)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if m.Width != 20 || m.Height != 15 || m.Channels != 1 {
		t.Fatalf("map shape = %dx%dx%d, want 20x15x1", m.Width, m.Height, m.Channels)
	}
	for i, v := range m.Pix {
		if v != 0 {
			t.Fatalf("saliency[%d] = %d, want 0 for uniform image", i, v)
		}
	}
}

func TestOutlierPixelIsSalient(t *testing.T) {
	buf := uniform(21, 21, [3]uint8{128, 128, 128})
	// White outlier in the center of a gray field.
	center := (10*21 + 10) * 3
	buf.Pix[center] = 255
	buf.Pix[center+1] = 255
	buf.Pix[center+2] = 255

	m, err := Map(buf, nil)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}

	got := m.Pix[10*21+10]
	corner := m.Pix[0]
	if got <= corner {
		t.Errorf("outlier saliency %d not above corner saliency %d", got, corner)
	}
	if got == 0 {
		t.Error("outlier saliency = 0, want > 0")
	}
}

// Borders are evaluated too (unlike edge detection): a contrast edge at the
// image boundary must register.
func TestBorderPixelsEvaluated(t *testing.T) {
	buf := uniform(16, 16, [3]uint8{0, 0, 0})
	// White first column.
	for y := range 16 {
		off := y * 16 * 3
		buf.Pix[off] = 255
		buf.Pix[off+1] = 255
		buf.Pix[off+2] = 255
	}

	m, err := Map(buf, nil)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if m.Pix[0] == 0 {
		t.Error("corner pixel saliency = 0, want > 0 at a contrast border")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	buf := uniform(33, 29, [3]uint8{10, 10, 10})
	for i := 0; i < len(buf.Pix); i += 7 {
		buf.Pix[i] = byte(i)
	}

	pool := workerpool.New(4)
	defer pool.Close()

	seq, err := Map(buf, nil)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	par, err := Map(buf, pool)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	for i := range seq.Pix {
		if seq.Pix[i] != par.Pix[i] {
			t.Fatalf("pixel %d: sequential %d != parallel %d", i, seq.Pix[i], par.Pix[i])
		}
	}
}

func TestTinyImage(t *testing.T) {
	buf := uniform(1, 1, [3]uint8{200, 100, 50})

	m, err := Map(buf, nil)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	// Every window neighbor clamps onto the center, which is excluded, so
	// there is nothing to contrast against.
	if m.Pix[0] != 0 {
		t.Errorf("1x1 saliency = %d, want 0", m.Pix[0])
	}
}

func TestMapErrors(t *testing.T) {
	if _, err := Map(raster.NewBuffer(4, 4, 1), nil); !errors.Is(err, raster.ErrInvalidImage) {
		t.Errorf("gray input: err = %v, want ErrInvalidImage", err)
	}
	if _, err := Map(nil, nil); !errors.Is(err, raster.ErrInvalidImage) {
		t.Errorf("nil input: err = %v, want ErrInvalidImage", err)
	}
}
