package renderer

import (
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// bandHeight is the number of rows in one work unit. Small enough to keep
// workers busy near the end of a frame, large enough that channel traffic
// stays negligible next to tracing cost.
const bandHeight = 16

// bandTask is a half-open row range [y0, y1) for one worker to render
type bandTask struct {
	y0, y1 int
}

// bandResult carries a rendered band back to the coordinator
type bandResult struct {
	y0, y1 int
	pixels []core.Vec3
}

// bandPool renders row bands in parallel. Workers trace into private
// buffers and hand them to the coordinator, which is the only writer of
// the framebuffer, so progress callbacks can read it freely.
type bandPool struct {
	renderer *Renderer
	fb       *Framebuffer
	workers  int
	tasks    chan bandTask
	results  chan bandResult
	wg       sync.WaitGroup
}

func newBandPool(r *Renderer, fb *Framebuffer, workers int) *bandPool {
	bands := (fb.Height + bandHeight - 1) / bandHeight
	return &bandPool{
		renderer: r,
		fb:       fb,
		workers:  workers,
		tasks:    make(chan bandTask, bands),
		results:  make(chan bandResult, bands),
	}
}

// run enqueues all bands, renders them on the pool's workers, and invokes
// progress (if non-nil) as bands land in the framebuffer. It returns once
// the framebuffer is fully rendered.
func (p *bandPool) run(progress ProgressFunc) {
	bands := 0
	for y0 := 0; y0 < p.fb.Height; y0 += bandHeight {
		y1 := min(y0+bandHeight, p.fb.Height)
		p.tasks <- bandTask{y0: y0, y1: y1}
		bands++
	}
	close(p.tasks)

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}

	rowsDone := 0
	for i := 0; i < bands; i++ {
		result := <-p.results
		copy(p.fb.Pixels[result.y0*p.fb.Width:result.y1*p.fb.Width], result.pixels)
		rowsDone += result.y1 - result.y0
		if progress != nil {
			progress(p.fb, rowsDone)
		}
	}

	p.wg.Wait()
	close(p.results)
}

// work is the worker loop: drain tasks, render each band into a private
// buffer, send it back
func (p *bandPool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.results <- bandResult{
			y0:     task.y0,
			y1:     task.y1,
			pixels: p.renderer.renderBand(task.y0, task.y1),
		}
	}
}
