package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"geomkit/internal/config"
	"geomkit/internal/geometry"
	"geomkit/internal/logging"
)

// measureCmd builds a single shape from command-line values and prints its
// report. Construction failures surface as command errors; the shape kinds
// map one-to-one onto the explicit constructors, so there is no argument
// count ambiguity between the two right-triangle forms.
var measureCmd = &cobra.Command{
	Use:   "measure <kind> <values...>",
	Short: "Describe a single shape built from the given values",
	Long: `Build one shape and print its describe() report.

Kinds:
  triangle a b c      triangle from three sides
  right-legs c1 c2    right triangle from two legs
  right-sides a b c   right triangle from three raw sides
  circle r            circle from its radius`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		shapeLog, closeLog, err := config.NewShapeLogger(cfg.Logging)
		if err != nil {
			return err
		}
		if closeLog != nil {
			defer closeLog()
		}

		shape, err := buildShape(args[0], args[1:], shapeLog)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), shape.Describe())
		return nil
	},
}

func buildShape(kind string, rawValues []string, log logging.Logger) (geometry.Shape, error) {
	values := make([]float64, len(rawValues))
	for i, raw := range rawValues {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a number", raw)
		}
		values[i] = v
	}

	switch kind {
	case "triangle":
		if len(values) != 3 {
			return nil, fmt.Errorf("triangle requires 3 sides, got %d values", len(values))
		}
		return geometry.NewTriangle("", values[0], values[1], values[2], log)
	case "right-legs":
		if len(values) != 2 {
			return nil, fmt.Errorf("right-legs requires 2 legs, got %d values", len(values))
		}
		return geometry.NewRightTriangleFromLegs("", values[0], values[1], log)
	case "right-sides":
		if len(values) != 3 {
			return nil, fmt.Errorf("right-sides requires 3 sides, got %d values", len(values))
		}
		return geometry.NewRightTriangleFromSides("", values[0], values[1], values[2], log)
	case "circle":
		if len(values) != 1 {
			return nil, fmt.Errorf("circle requires 1 radius, got %d values", len(values))
		}
		return geometry.NewCircle("", values[0], log)
	default:
		return nil, fmt.Errorf("unknown shape kind %q", kind)
	}
}
