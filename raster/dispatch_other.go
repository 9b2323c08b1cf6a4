//go:build !amd64 && !arm64

package raster

func init() {
	// Other architectures fall back to scalar mode for now.
	setScalarMode()
}
