package renderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestToImage_ClampAndDesaturate(t *testing.T) {
	fb := NewFramebuffer(3, 1)
	fb.Set(0, 0, core.NewVec3(0.5, 0.25, 0))    // In range: scaled to 255
	fb.Set(1, 0, core.NewVec3(2, 1, 0.5))       // Overexposed: desaturated by max channel
	fb.Set(2, 0, core.NewVec3(-1, 0.5, 1))      // Negative channel clamps to zero

	img := fb.ToImage()

	tests := []struct {
		x       int
		r, g, b uint8
	}{
		{0, 127, 63, 0},
		{1, 255, 127, 63}, // (2,1,0.5) * 1/2 = (1, 0.5, 0.25)
		{2, 0, 127, 255},
	}
	for _, tt := range tests {
		c := img.RGBAAt(tt.x, 0)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
			t.Errorf("Pixel %d: expected (%d,%d,%d,255), got (%d,%d,%d,%d)",
				tt.x, tt.r, tt.g, tt.b, c.R, c.G, c.B, c.A)
		}
	}
}

func TestWritePPM(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(1, 0, core.NewVec3(0, 1, 0))

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expectedHeader := "P6\n2 1\n255\n"
	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte(expectedHeader)) {
		t.Fatalf("Expected header %q, got %q", expectedHeader, data[:min(len(data), len(expectedHeader))])
	}

	body := data[len(expectedHeader):]
	expectedBody := []byte{255, 0, 0, 0, 255, 0}
	if !bytes.Equal(body, expectedBody) {
		t.Errorf("Expected body %v, got %v", expectedBody, body)
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Set(2, 1, core.NewVec3(0.2, 0.7, 0.8))

	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode written PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 3 {
		t.Errorf("Expected 4x3 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
