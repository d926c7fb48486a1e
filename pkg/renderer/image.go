package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// pixelColor converts an unclamped linear color to 8-bit channels. A pixel
// brighter than full white in any channel is desaturated by its largest
// channel before clamping, so overexposed highlights fade toward white
// instead of shifting hue.
func pixelColor(c core.Vec3) (uint8, uint8, uint8) {
	if m := c.MaxComponent(); m > 1 {
		c = c.Multiply(1 / m)
	}
	c = c.Clamp(0, 1)
	return uint8(255 * c.X), uint8(255 * c.Y), uint8(255 * c.Z)
}

// ToImage converts the framebuffer to an 8-bit RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r, g, b := pixelColor(fb.At(i, j))
			img.SetRGBA(i, j, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePNG encodes the framebuffer as a PNG image
func (fb *Framebuffer) WritePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// WritePPM encodes the framebuffer in the binary PPM P6 format: a text
// header followed by raw RGB bytes in row-major order.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			r, g, b := pixelColor(fb.At(i, j))
			if _, err := bw.Write([]byte{r, g, b}); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
