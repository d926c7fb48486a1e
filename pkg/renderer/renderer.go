package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/df07/go-whitted-raytracer/pkg/tracer"
)

// ProgressFunc is called after each completed row band with the
// framebuffer and the total number of rows finished so far. Only the
// render coordinator writes the framebuffer and calls are serialized on
// it, so the callback may read the framebuffer without synchronizing;
// bands that are still rendering hold only zero pixels.
type ProgressFunc func(fb *Framebuffer, rowsDone int)

// Renderer drives the per-pixel render loop: camera ray in, traced color
// out. Each pixel depends only on the read-only scene and its own primary
// ray, so rows can be rendered on any number of goroutines without locks.
type Renderer struct {
	camera Camera
	tracer *tracer.Whitted
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and camera
func NewRenderer(s *scene.Scene, camera Camera, config tracer.Config, logger core.Logger) *Renderer {
	return &Renderer{
		camera: camera,
		tracer: tracer.NewWhitted(s, config),
		logger: logger,
	}
}

// Camera returns the renderer's camera
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Render traces every pixel sequentially and returns the framebuffer
func (r *Renderer) Render() *Framebuffer {
	fb := NewFramebuffer(r.camera.Width, r.camera.Height)
	r.renderRows(fb, 0, r.camera.Height)
	return fb
}

// RenderParallel renders with the given number of worker goroutines,
// splitting the image into row bands. The result is identical to Render:
// pixels depend only on their own primary ray, so band order cannot
// change the image. If progress is non-nil it is invoked after every
// completed band.
func (r *Renderer) RenderParallel(workers int, progress ProgressFunc) *Framebuffer {
	if workers <= 1 && progress == nil {
		return r.Render()
	}
	if workers < 1 {
		workers = 1
	}
	if r.logger != nil {
		r.logger.Printf("Rendering %d rows on %d worker(s)", r.camera.Height, workers)
	}

	fb := NewFramebuffer(r.camera.Width, r.camera.Height)
	pool := newBandPool(r, fb, workers)
	pool.run(progress)
	return fb
}

// renderRows traces rows [y0, y1) into the framebuffer
func (r *Renderer) renderRows(fb *Framebuffer, y0, y1 int) {
	for j := y0; j < y1; j++ {
		for i := 0; i < r.camera.Width; i++ {
			ray := r.camera.RayForPixel(i, j)
			fb.Set(i, j, r.tracer.CastRay(ray.Origin, ray.Direction, 0))
		}
	}
}

// renderBand traces rows [y0, y1) into a fresh row-major buffer
func (r *Renderer) renderBand(y0, y1 int) []core.Vec3 {
	width := r.camera.Width
	pixels := make([]core.Vec3, (y1-y0)*width)
	for j := y0; j < y1; j++ {
		for i := 0; i < width; i++ {
			ray := r.camera.RayForPixel(i, j)
			pixels[(j-y0)*width+i] = r.tracer.CastRay(ray.Origin, ray.Direction, 0)
		}
	}
	return pixels
}
