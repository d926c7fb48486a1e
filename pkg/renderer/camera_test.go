package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_CenterPixelLooksDownNegativeZ(t *testing.T) {
	// Odd dimensions put a pixel center exactly on the optical axis
	camera := NewCamera(101, 101, math.Pi/3)

	ray := camera.RayForPixel(50, 50)
	expected := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected center ray %v, got %v", expected, ray.Direction)
	}
	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected camera at origin, got %v", ray.Origin)
	}
}

func TestCamera_DirectionsAreNormalized(t *testing.T) {
	camera := NewCamera(64, 48, math.Pi/3)

	for _, pixel := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		ray := camera.RayForPixel(pixel[0], pixel[1])
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("Pixel %v: expected unit direction, got length %f",
				pixel, ray.Direction.Length())
		}
	}
}

func TestCamera_ScreenOrientation(t *testing.T) {
	camera := NewCamera(100, 100, math.Pi/3)

	topLeft := camera.RayForPixel(0, 0).Direction
	bottomRight := camera.RayForPixel(99, 99).Direction

	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected top-left ray to point left and up, got %v", topLeft)
	}
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Expected bottom-right ray to point right and down, got %v", bottomRight)
	}
}

func TestCamera_AspectRatioWidensHorizontalSpread(t *testing.T) {
	wide := NewCamera(200, 100, math.Pi/3)

	left := wide.RayForPixel(0, 50).Direction
	top := wide.RayForPixel(100, 0).Direction

	// With a 2:1 aspect ratio the horizontal half-extent is twice the
	// vertical one, so the leftmost ray leans further from the axis.
	horizontal := math.Abs(left.X / left.Z)
	vertical := math.Abs(top.Y / top.Z)
	if horizontal <= vertical {
		t.Errorf("Expected horizontal spread %f to exceed vertical spread %f",
			horizontal, vertical)
	}
}

func TestCamera_FOVControlsSpread(t *testing.T) {
	narrow := NewCamera(100, 100, math.Pi/6)
	wide := NewCamera(100, 100, math.Pi/2)

	narrowEdge := math.Abs(narrow.RayForPixel(0, 50).Direction.X)
	wideEdge := math.Abs(wide.RayForPixel(0, 50).Direction.X)
	if wideEdge <= narrowEdge {
		t.Errorf("Expected wider FOV to spread rays further: narrow %f, wide %f",
			narrowEdge, wideEdge)
	}
}
