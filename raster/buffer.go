// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a decoded pixel buffer: a flat row-major sequence of interleaved
// channel bytes with explicit dimensions. Channels is 1 (grayscale), 3 (RGB)
// or 4 (RGBA). Decode and encode of compressed formats happen outside this
// module; a Buffer is always fully materialized before any operation runs.
type Buffer struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// NewBuffer allocates a zeroed buffer of the given shape.
func NewBuffer(width, height, channels int) *Buffer {
	return &Buffer{
		Pix:      make([]byte, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Wrap wraps an existing pixel slice without copying. It fails with
// ErrInvalidImage when the slice length does not match width*height*channels
// or the shape is degenerate.
func Wrap(pix []byte, width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, width, height)
	}
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidImage, channels)
	}
	if len(pix) != width*height*channels {
		return nil, fmt.Errorf("%w: %d bytes for %dx%dx%d", ErrInvalidImage, len(pix), width, height, channels)
	}
	return &Buffer{Pix: pix, Width: width, Height: height, Channels: channels}, nil
}

// NumPixels returns Width*Height.
func (b *Buffer) NumPixels() int {
	return b.Width * b.Height
}

// validate re-checks the buffer invariant; mutated buffers can drift.
func (b *Buffer) validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidImage)
	}
	_, err := Wrap(b.Pix, b.Width, b.Height, b.Channels)
	return err
}

// FromImage converts any decoded image into a 4-channel buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := NewBuffer(w, h, 4)

	if src, ok := img.(*image.NRGBA); ok && src.Stride == 4*w {
		copy(buf.Pix, src.Pix)
		return buf
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			buf.Pix[i] = c.R
			buf.Pix[i+1] = c.G
			buf.Pix[i+2] = c.B
			buf.Pix[i+3] = c.A
			i += 4
		}
	}
	return buf
}

// ToImage reassembles the buffer into a std image for the encoding
// collaborator. Grayscale buffers become *image.Gray, 3-channel buffers an
// opaque *image.NRGBA, 4-channel buffers *image.NRGBA.
func (b *Buffer) ToImage() (image.Image, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	switch b.Channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		copy(img.Pix, b.Pix)
		return img, nil
	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
		for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
			img.Pix[j] = b.Pix[i]
			img.Pix[j+1] = b.Pix[i+1]
			img.Pix[j+2] = b.Pix[i+2]
			img.Pix[j+3] = 255
		}
		return img, nil
	case 4:
		img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
		copy(img.Pix, b.Pix)
		return img, nil
	}
	return nil, fmt.Errorf("%w: %d channels", ErrInvalidImage, b.Channels)
}

// Luminance reduces the buffer to a single luma channel using the BT.601
// integer weights of image/color.GrayModel, so results match the standard
// library's grayscale conversion exactly. A 1-channel input is copied.
func Luminance(b *Buffer) (*Buffer, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	out := NewBuffer(b.Width, b.Height, 1)
	if b.Channels == 1 {
		copy(out.Pix, b.Pix)
		return out, nil
	}

	c := b.Channels
	for i, j := 0, 0; i < len(b.Pix); i, j = i+c, j+1 {
		// Same math as color.GrayModel: weights applied to 16-bit channels.
		r := uint32(b.Pix[i]) * 0x101
		g := uint32(b.Pix[i+1]) * 0x101
		bl := uint32(b.Pix[i+2]) * 0x101
		out.Pix[j] = uint8((19595*r + 38470*g + 7471*bl + 1<<15) >> 24)
	}
	return out, nil
}
