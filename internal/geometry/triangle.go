package geometry

import (
	"fmt"
	"math"
	"strings"

	"geomkit/internal/logging"
)

// TriangleType classifies a triangle by its sides.
type TriangleType int

const (
	TriangleInvalid TriangleType = iota
	TriangleEquilateral
	TriangleIsosceles
	TriangleScalene
	TriangleRight
)

// String returns the display form used in reports.
func (t TriangleType) String() string {
	switch t {
	case TriangleEquilateral:
		return "Equilateral"
	case TriangleIsosceles:
		return "Isosceles"
	case TriangleScalene:
		return "Scalene"
	case TriangleRight:
		return "Right triangle"
	default:
		return "Invalid"
	}
}

// Triangle is a validated three-side polygon. The sides always satisfy the
// strict triangle inequality; construction and UpdateSides both reject any
// triple that does not, so no partially valid triangle is observable.
type Triangle struct {
	shapeBase
	sideA, sideB, sideC float64
}

// NewTriangle validates the sides and constructs a triangle. A nil logger
// defaults to the console sink. Validation runs in two stages: positivity
// first (OutOfRangeError naming the first offending side), then the strict
// triangle inequality (InvalidArgumentError citing all three values).
func NewTriangle(name string, a, b, c float64, log logging.Logger) (*Triangle, error) {
	if err := validateSides(a, b, c); err != nil {
		return nil, err
	}
	t := &Triangle{
		shapeBase: newShapeBase(name, "Triangle", log),
		sideA:     a,
		sideB:     b,
		sideC:     c,
	}
	t.logf("Triangle %q created with sides %.2f, %.2f, %.2f", t.name, a, b, c)
	return t, nil
}

func validateSides(a, b, c float64) error {
	sides := [...]struct {
		field string
		value float64
	}{
		{"sideA", a},
		{"sideB", b},
		{"sideC", c},
	}
	for _, s := range sides {
		if s.value <= 0 {
			return &OutOfRangeError{Field: s.field, Value: s.value}
		}
	}
	if !satisfiesTriangleInequality(a, b, c) {
		return &InvalidArgumentError{
			Reason: "sides do not satisfy the triangle inequality",
			Values: []float64{a, b, c},
		}
	}
	return nil
}

// satisfiesTriangleInequality checks all three permutations strictly.
func satisfiesTriangleInequality(a, b, c float64) bool {
	return a+b > c && a+c > b && b+c > a
}

// SideA returns the first side.
func (t *Triangle) SideA() float64 { return t.sideA }

// SideB returns the second side.
func (t *Triangle) SideB() float64 { return t.sideB }

// SideC returns the third side.
func (t *Triangle) SideC() float64 { return t.sideC }

// IsValid re-checks the triangle inequality against the stored sides.
// Always true after validated construction; exposed for external inspection.
func (t *Triangle) IsValid() bool {
	return satisfiesTriangleInequality(t.sideA, t.sideB, t.sideC)
}

// UpdateSides atomically replaces all three sides. The same two-stage
// validation as construction runs first; on any failure the existing sides
// remain completely unchanged.
func (t *Triangle) UpdateSides(a, b, c float64) error {
	if err := validateSides(a, b, c); err != nil {
		return err
	}
	t.sideA, t.sideB, t.sideC = a, b, c
	t.logf("Triangle %q sides updated to %.2f, %.2f, %.2f", t.name, a, b, c)
	return nil
}

// Perimeter returns the sum of the sides and logs the computed value.
func (t *Triangle) Perimeter() float64 {
	p := t.sideA + t.sideB + t.sideC
	t.logf("Triangle %q perimeter calculated: %.2f", t.name, p)
	return p
}

// Area computes the area via Heron's formula and logs the computed value.
// Returns ErrInvalidState if the stored sides no longer satisfy the triangle
// inequality, which can only happen if invariants were bypassed.
func (t *Triangle) Area() (float64, error) {
	if !t.IsValid() {
		return 0, fmt.Errorf("triangle %q: %w", t.name, ErrInvalidState)
	}
	s := (t.sideA + t.sideB + t.sideC) / 2
	area := math.Sqrt(s * (s - t.sideA) * (s - t.sideB) * (s - t.sideC))
	t.logf("Triangle %q area calculated: %.2f", t.name, area)
	return area, nil
}

// TriangleType classifies the triangle. Equilateral is checked before
// isosceles; all side comparisons use tolerance equality.
func (t *Triangle) TriangleType() TriangleType {
	if !t.IsValid() {
		return TriangleInvalid
	}
	ab := EqualWithin(t.sideA, t.sideB)
	bc := EqualWithin(t.sideB, t.sideC)
	ac := EqualWithin(t.sideA, t.sideC)
	switch {
	case ab && bc && ac:
		return TriangleEquilateral
	case ab || bc || ac:
		return TriangleIsosceles
	default:
		return TriangleScalene
	}
}

// Describe renders the multi-line report: name, sides, perimeter, area, type.
func (t *Triangle) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shape: %s\n", t.name)
	fmt.Fprintf(&sb, "Sides: a=%.2f b=%.2f c=%.2f\n", t.sideA, t.sideB, t.sideC)
	fmt.Fprintf(&sb, "Perimeter: %.2f\n", t.Perimeter())
	if area, err := t.Area(); err != nil {
		fmt.Fprintf(&sb, "Area: undefined (%v)\n", err)
	} else {
		fmt.Fprintf(&sb, "Area: %.2f\n", area)
	}
	fmt.Fprintf(&sb, "Type: %s", t.TriangleType())
	return sb.String()
}
