// Package engine evaluates a plan over a frame range using a pool of
// workers. It exists because the surrounding renderer hands out frame
// ranges to independent workers; the plan being an immutable value makes
// that safe with no locks, and this package is the in-process version of
// that arrangement.
package engine

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/frameval/internal/config"
	"github.com/ivlev/frameval/internal/timeline"
)

// FrameValues is one evaluated frame.
type FrameValues struct {
	Frame  float64
	Values timeline.PropertyValues
}

// Job describes a frame range to evaluate. Step defaults to 1; fractional
// steps produce sub-frame samples for scrubbing previews.
type Job struct {
	Plan  *timeline.Plan
	Start float64
	End   float64
	Step  float64
}

// Ranges longer than this are clamped with a warning instead of trying to
// allocate the output. The evaluator itself has no such limit.
const maxJobFrames = 1 << 26

type Engine struct {
	workers   int
	showStats bool
}

// New builds an engine from config. Workers 0 sizes from the machine.
func New(cfg *config.Config) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Engine{workers: workers, showStats: cfg.ShowStats}
}

// DefaultWorkers picks a worker count from the logical CPU count, backing
// off when the machine is short on memory.
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = 4
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm.Available < 512*1024*1024 && n > 2 {
		n = 2
	}
	return n
}

// Run evaluates the job's frame range and returns results in frame order.
// The range is split into contiguous chunks, one per worker; because
// evaluation is pure, the output is identical to a serial pass regardless
// of worker count or scheduling. Evaluation itself cannot fail, so the only
// error source is context cancellation.
func (e *Engine) Run(ctx context.Context, job Job) ([]FrameValues, error) {
	if job.Plan == nil {
		return nil, fmt.Errorf("engine: job has no plan")
	}
	step := job.Step
	if step <= 0 {
		step = 1
	}
	if math.IsNaN(job.Start) || math.IsInf(job.Start, 0) || math.IsNaN(job.End) || math.IsInf(job.End, 0) {
		return nil, fmt.Errorf("engine: frame range [%g, %g] is not finite", job.Start, job.End)
	}
	if job.End < job.Start {
		return nil, fmt.Errorf("engine: frame range end %g before start %g", job.End, job.Start)
	}

	n := int(math.Floor((job.End-job.Start)/step)) + 1
	if n > maxJobFrames {
		log.Printf("[!] Frame range of %d samples clamped to %d", n, maxJobFrames)
		n = maxJobFrames
	}

	results := make([]FrameValues, n)

	workers := e.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				frame := job.Start + float64(i)*step
				results[i] = FrameValues{
					Frame:  frame,
					Values: job.Plan.Evaluate(frame),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if e.showStats {
		elapsed := time.Since(startTime)
		fps := float64(n) / elapsed.Seconds()
		fmt.Printf(
			"--- [PERFORMANCE REPORT] ---\n"+
				"Frames: %d\n"+
				"Workers: %d\n"+
				"Total Time: %.3fs\n"+
				"Effective FPS: %.0f\n"+
				"----------------------------\n",
			n, workers, elapsed.Seconds(), fps,
		)
	}

	return results, nil
}
