package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dmf77/go-whitted-raytracer/pkg/canvas"
	"github.com/dmf77/go-whitted-raytracer/pkg/world"
)

// rowResult carries the outcome of rendering one scanline.
type rowResult struct {
	y   int
	err error
}

// Render resolves a color for every pixel of the camera's canvas and
// returns the filled pixel buffer. Scanlines are rendered in parallel by
// one worker per CPU; each pixel's color depends only on the read-only
// world and its own ray, so workers only ever touch disjoint rows.
func (c *Camera) Render(w *world.World) (*canvas.Canvas, error) {
	return c.RenderWorkers(w, runtime.NumCPU())
}

// RenderWorkers renders with an explicit worker count. A count below one
// renders on a single worker.
func (c *Camera) RenderWorkers(w *world.World, numWorkers int) (*canvas.Canvas, error) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	image := canvas.New(c.hsize, c.vsize)

	rows := make(chan int, c.vsize)
	results := make(chan rowResult, c.vsize)

	// once any row fails, the remaining rows are skipped rather than
	// rendered: the buffer is discarded on error anyway
	var failed atomic.Bool

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				if failed.Load() {
					continue
				}
				err := c.renderRow(w, image, y)
				if err != nil {
					failed.Store(true)
				}
				results <- rowResult{y: y, err: err}
			}
		}()
	}

	for y := 0; y < c.vsize; y++ {
		rows <- y
	}
	close(rows)

	wg.Wait()
	close(results)

	for result := range results {
		if result.err != nil {
			return nil, result.err
		}
	}
	return image, nil
}

// renderRow resolves every pixel of one scanline.
func (c *Camera) renderRow(w *world.World, image *canvas.Canvas, y int) error {
	for x := 0; x < c.hsize; x++ {
		ray, err := c.RayForPixel(x, y)
		if err != nil {
			return err
		}
		color, err := w.ColorAt(ray, world.MaxDepth)
		if err != nil {
			return err
		}
		if err := image.WritePixel(x, y, canvas.Color(color)); err != nil {
			return err
		}
	}
	return nil
}
