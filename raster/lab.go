// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

import "math"

// Vec3 is a point in a three-component color space. For LAB values the
// components are (L, a, b) with L in [0,100] and a/b nominally in
// [-128,127]; intermediate values are not clamped, only final byte
// quantization is. The same type carries raw RGB triples for
// non-perceptual clustering.
type Vec3 [3]float32

// D65 reference white (2° observer).
const (
	d65X = 95.047
	d65Y = 100.0
	d65Z = 108.883
)

// RGBToLab converts a gamma-encoded sRGB byte triple to LAB.
// Equal distances in LAB correspond to roughly equal perceived color
// differences, which makes it the clustering space for quantization,
// segmentation and saliency.
func RGBToLab(r, g, b uint8) Vec3 {
	rl := gammaToLinear(float32(r) / 255)
	gl := gammaToLinear(float32(g) / 255)
	bl := gammaToLinear(float32(b) / 255)

	// Linear RGB to XYZ, D65 illuminant.
	x := rl*0.4124564 + gl*0.3575761 + bl*0.1804375
	y := rl*0.2126729 + gl*0.7151522 + bl*0.0721750
	z := rl*0.0193339 + gl*0.1191920 + bl*0.9503041

	return xyzToLab(x*100, y*100, z*100)
}

// LabToRGB converts a LAB triple back to sRGB bytes, rounding and clamping
// each channel to [0,255]. It is the algebraic inverse of RGBToLab up to
// rounding: round-tripping any byte triple stays within ±2 per channel.
func LabToRGB(v Vec3) (r, g, b uint8) {
	x, y, z := labToXYZ(v)
	x /= 100
	y /= 100
	z /= 100

	rl := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	gl := x*-0.9692660 + y*1.8760108 + z*0.0415560
	bl := x*0.0556434 + y*-0.2040259 + z*1.0572252

	r = clampByte(linearToGamma(rl) * 255)
	g = clampByte(linearToGamma(gl) * 255)
	b = clampByte(linearToGamma(bl) * 255)
	return r, g, b
}

// Distance returns the Euclidean distance between two LAB triples (the
// Delta-E approximation). It is symmetric, zero iff a == b, and satisfies
// the triangle inequality, so it is usable as a clustering metric.
func Distance(a, b Vec3) float32 {
	dl := a[0] - b[0]
	da := a[1] - b[1]
	db := a[2] - b[2]
	return float32(math.Sqrt(float64(dl*dl + da*da + db*db)))
}

// sRGB piecewise gamma decode: linear below 0.04045.
func gammaToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64((c+0.055)/1.055), 2.4))
}

func linearToGamma(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return float32(1.055*math.Pow(float64(c), 1.0/2.4) - 0.055)
}

func xyzToLab(x, y, z float32) Vec3 {
	fx := labF(x / d65X)
	fy := labF(y / d65Y)
	fz := labF(z / d65Z)

	return Vec3{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

func labToXYZ(v Vec3) (x, y, z float32) {
	fy := (v[0] + 16) / 116
	fx := v[1]/500 + fy
	fz := fy - v[2]/200

	return d65X * labFInv(fx), d65Y * labFInv(fy), d65Z * labFInv(fz)
}

// labF is the CIE f(t) function: cube root above the (6/29)^3 breakpoint,
// linear below.
func labF(t float32) float32 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return float32(math.Cbrt(float64(t)))
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float32) float32 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

func clampByte(f float32) uint8 {
	r := math.Round(float64(f))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
