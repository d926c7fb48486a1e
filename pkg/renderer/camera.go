package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera maps pixel coordinates to primary rays. It sits at the origin
// looking down -z; there is no state beyond the image dimensions and the
// field of view, so a Camera value can be shared freely.
type Camera struct {
	Width  int
	Height int
	FOV    float64 // Vertical field of view in radians
}

// NewCamera creates a camera for a width x height image
func NewCamera(width, height int, fov float64) Camera {
	return Camera{Width: width, Height: height, FOV: fov}
}

// RayForPixel returns the primary ray through the center of pixel (i, j).
// Pixel coordinates are remapped to normalized device coordinates in
// [-1, 1], scaled by tan(fov/2) and the aspect ratio, and the resulting
// direction is normalized.
func (c Camera) RayForPixel(i, j int) core.Ray {
	xNDC := 2*(float64(i)+0.5)/float64(c.Width) - 1
	yNDC := 1 - 2*(float64(j)+0.5)/float64(c.Height)

	scale := math.Tan(c.FOV / 2)
	x := xNDC * scale * float64(c.Width) / float64(c.Height)
	y := yNDC * scale

	direction := core.NewVec3(x, y, -1).Normalize()
	return core.NewRay(core.NewVec3(0, 0, 0), direction)
}
