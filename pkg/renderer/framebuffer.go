package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer stores one unclamped linear color per pixel in row-major
// order. Clamping and desaturation happen at write-out, not here.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer creates a zeroed width x height framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Set stores the color of pixel (i, j)
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[j*fb.Width+i] = c
}
