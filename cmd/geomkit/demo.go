package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geomkit/internal/batch"
	"geomkit/internal/config"
	"geomkit/internal/geometry"
	"geomkit/internal/logging"
)

// demoCmd exercises the shape model end to end: construction, polymorphic
// measurement, classification, and the validation failure paths.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the shape modeling demonstration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		return runDemo(cmd, cfg)
	},
}

func runDemo(cmd *cobra.Command, cfg *config.Config) error {
	logger.Debug("demo starting",
		zap.String("sink", cfg.Logging.Sink),
		zap.Int("workers", cfg.Demo.Workers))

	shapeLog, closeLog, err := config.NewShapeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("building shape logger: %w", err)
	}
	if closeLog != nil {
		defer func() {
			if err := closeLog(); err != nil {
				logger.Warn("closing shape logger", zap.Error(err))
			}
		}()
	}

	shapes, err := showcaseShapes(shapeLog)
	if err != nil {
		return fmt.Errorf("building showcase shapes: %w", err)
	}

	workers := cfg.Demo.Workers
	if !cfg.Demo.Parallel {
		workers = 1
	}
	results, err := batch.NewProcessor(workers, shapeLog).Process(cmd.Context(), shapes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderMeasurements("Shape measurements", results))
	fmt.Fprintln(out)

	demoClassification(out, shapeLog)
	demoUpdateAtomicity(out, shapeLog)
	demoValidationFailures(out, shapeLog)

	logger.Debug("demo finished", zap.Int("shapes", len(shapes)))
	return nil
}

func showcaseShapes(log logging.Logger) ([]geometry.Shape, error) {
	tri, err := geometry.NewTriangle("Scalene demo", 5, 6, 7, log)
	if err != nil {
		return nil, err
	}
	ramp, err := geometry.NewRightTriangleFromLegs("Ramp", 3, 4, log)
	if err != nil {
		return nil, err
	}
	ladder, err := geometry.NewRightTriangleFromSides("Ladder", 5, 12, 13, log)
	if err != nil {
		return nil, err
	}
	wheel, err := geometry.NewCircle("Wheel", 2.5, log)
	if err != nil {
		return nil, err
	}
	box, err := geometry.NewPolygon("Box", []geometry.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
	}, log)
	if err != nil {
		return nil, err
	}
	return []geometry.Shape{tri, ramp, ladder, wheel, box}, nil
}

func demoClassification(out io.Writer, log logging.Logger) {
	fmt.Fprintln(out, sectionStyle.Render("Triangle classification"))
	triples := [][3]float64{
		{5, 5, 5},
		{5, 5, 8},
		{5, 6, 7},
	}
	for _, s := range triples {
		tri, err := geometry.NewTriangle("", s[0], s[1], s[2], log)
		if err != nil {
			fmt.Fprintf(out, "  (%.2f, %.2f, %.2f) -> %v\n", s[0], s[1], s[2], err)
			continue
		}
		fmt.Fprintf(out, "  (%.2f, %.2f, %.2f) -> %s\n", s[0], s[1], s[2], tri.TriangleType())
	}
	fmt.Fprintln(out)
}

func demoUpdateAtomicity(out io.Writer, log logging.Logger) {
	fmt.Fprintln(out, sectionStyle.Render("Atomic side updates"))

	tri, err := geometry.NewTriangle("Mutable", 3, 4, 5, log)
	if err != nil {
		fmt.Fprintf(out, "  unexpected construction failure: %v\n", err)
		return
	}
	if err := tri.UpdateSides(1, 2, 20); err != nil {
		fmt.Fprintf(out, "  update (1, 2, 20) rejected: %v\n", err)
	}
	fmt.Fprintf(out, "  sides intact: a=%.2f b=%.2f c=%.2f\n\n", tri.SideA(), tri.SideB(), tri.SideC())
}

// demoValidationFailures shows that every invalid construction is rejected
// and reported without crashing the process.
func demoValidationFailures(out io.Writer, log logging.Logger) {
	fmt.Fprintln(out, sectionStyle.Render("Rejected constructions"))

	attempts := []struct {
		label string
		build func() error
	}{
		{"Triangle(1, 2, 10)", func() error {
			_, err := geometry.NewTriangle("", 1, 2, 10, log)
			return err
		}},
		{"Triangle(-3, 4, 5)", func() error {
			_, err := geometry.NewTriangle("", -3, 4, 5, log)
			return err
		}},
		{"RightTriangleFromSides(3, 4, 6)", func() error {
			_, err := geometry.NewRightTriangleFromSides("", 3, 4, 6, log)
			return err
		}},
		{"Circle(0)", func() error {
			_, err := geometry.NewCircle("", 0, log)
			return err
		}},
	}
	for _, a := range attempts {
		if err := a.build(); err != nil {
			fmt.Fprintf(out, "  %s -> %s\n", a.label, errorStyle.Render(err.Error()))
		} else {
			fmt.Fprintf(out, "  %s -> unexpectedly accepted\n", a.label)
		}
	}
}
