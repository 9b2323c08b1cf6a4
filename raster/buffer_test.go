// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestWrapValidation(t *testing.T) {
	if _, err := Wrap(make([]byte, 12), 2, 2, 3); err != nil {
		t.Errorf("valid 2x2x3 buffer rejected: %v", err)
	}

	bad := []struct {
		name       string
		n, w, h, c int
	}{
		{"length mismatch", 11, 2, 2, 3},
		{"zero width", 0, 0, 2, 3},
		{"zero height", 0, 2, 0, 3},
		{"two channels", 8, 2, 2, 2},
	}
	for _, tt := range bad {
		_, err := Wrap(make([]byte, tt.n), tt.w, tt.h, tt.c)
		if !errors.Is(err, ErrInvalidImage) {
			t.Errorf("%s: err = %v, want ErrInvalidImage", tt.name, err)
		}
	}
}

func TestLuminanceMatchesGrayModel(t *testing.T) {
	buf := NewBuffer(4, 1, 3)
	pixels := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {12, 199, 43}}
	for i, p := range pixels {
		copy(buf.Pix[i*3:], p[:])
	}

	gray, err := Luminance(buf)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}

	for i, p := range pixels {
		want := color.GrayModel.Convert(color.RGBA{p[0], p[1], p[2], 255}).(color.Gray).Y
		if gray.Pix[i] != want {
			t.Errorf("pixel %d: luma = %d, want %d (GrayModel)", i, gray.Pix[i], want)
		}
	}
}

func TestLuminanceGrayPassthrough(t *testing.T) {
	buf := NewBuffer(3, 2, 1)
	for i := range buf.Pix {
		buf.Pix[i] = byte(40 * i)
	}

	gray, err := Luminance(buf)
	if err != nil {
		t.Fatalf("Luminance: %v", err)
	}
	for i := range buf.Pix {
		if gray.Pix[i] != buf.Pix[i] {
			t.Errorf("pixel %d: %d, want %d", i, gray.Pix[i], buf.Pix[i])
		}
	}
}

func TestFromImageToImageRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 11)
	}

	buf := FromImage(img)
	if buf.Width != 3 || buf.Height != 2 || buf.Channels != 4 {
		t.Fatalf("buffer shape = %dx%dx%d, want 3x2x4", buf.Width, buf.Height, buf.Channels)
	}

	back, err := buf.ToImage()
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	got, ok := back.(*image.NRGBA)
	if !ok {
		t.Fatalf("ToImage returned %T, want *image.NRGBA", back)
	}
	for i := range img.Pix {
		if got.Pix[i] != img.Pix[i] {
			t.Fatalf("byte %d: %d, want %d", i, got.Pix[i], img.Pix[i])
		}
	}
}

func TestToImageOpaqueRGB(t *testing.T) {
	buf := NewBuffer(2, 1, 3)
	copy(buf.Pix, []byte{1, 2, 3, 4, 5, 6})

	img, err := buf.ToImage()
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	n := img.(*image.NRGBA)
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	for i := range want {
		if n.Pix[i] != want[i] {
			t.Errorf("byte %d: %d, want %d", i, n.Pix[i], want[i])
		}
	}
}

func TestToImageInvalid(t *testing.T) {
	buf := &Buffer{Pix: make([]byte, 5), Width: 2, Height: 2, Channels: 3}
	if _, err := buf.ToImage(); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("err = %v, want ErrInvalidImage", err)
	}
}
