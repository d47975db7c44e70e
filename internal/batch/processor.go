// Package batch measures collections of shapes concurrently. Each shape is
// owned by exactly one task for the duration of a run: the processor reads
// shapes but never mutates them, and callers must not call UpdateSides on a
// shape that is part of an in-flight run.
package batch

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"geomkit/internal/geometry"
	"geomkit/internal/logging"
)

// Measurement is the computed result for one shape. A shape whose area
// computation fails contributes a Measurement with Err set instead of
// failing the whole run.
type Measurement struct {
	Name      string
	Kind      string
	Perimeter float64
	Area      float64
	Err       error
}

// Processor runs measurement batches with a bounded worker count.
type Processor struct {
	workers int
	log     logging.Logger
}

// NewProcessor returns a processor with the given parallelism. Workers below
// one are clamped to one; a nil logger defaults to the console sink.
func NewProcessor(workers int, log logging.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logging.NewConsoleLogger()
	}
	return &Processor{workers: workers, log: log}
}

// Process measures every shape and returns results in input order. Each
// shape is measured by a single task; the run aborts early only on context
// cancellation, never on a per-shape computation error.
func (p *Processor) Process(ctx context.Context, shapes []geometry.Shape) ([]Measurement, error) {
	runID := uuid.NewString()
	p.log.LogInfo(fmt.Sprintf("Batch %s started: %d shapes, %d workers", runID, len(shapes), p.workers))

	results := make([]Measurement, len(shapes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, s := range shapes {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = measure(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.log.LogInfo(fmt.Sprintf("Batch %s aborted: %v", runID, err))
		return nil, fmt.Errorf("batch %s: %w", runID, err)
	}

	p.log.LogInfo(fmt.Sprintf("Batch %s finished", runID))
	return results, nil
}

func measure(s geometry.Shape) Measurement {
	m := Measurement{
		Name:      s.Name(),
		Kind:      shapeKind(s),
		Perimeter: s.Perimeter(),
	}
	m.Area, m.Err = s.Area()
	return m
}

// shapeKind names the concrete shape for reporting. RightTriangle must be
// matched before Triangle since it embeds one.
func shapeKind(s geometry.Shape) string {
	switch v := s.(type) {
	case *geometry.RightTriangle:
		return v.TriangleType().String()
	case *geometry.Triangle:
		return "Triangle"
	case *geometry.Circle:
		return "Circle"
	case *geometry.Polygon:
		return "Polygon"
	default:
		return fmt.Sprintf("%T", s)
	}
}
