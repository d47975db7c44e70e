// Package geometry provides the validated 2D shape data model: triangles,
// right triangles, circles, and simple polygons. Shapes are constructed
// through validating constructors and report computed values through an
// injected logging.Logger. Invalid shapes are never observable: every
// validation failure happens before construction or before an update commits.
package geometry

import "math"

// Epsilon is the fixed tolerance for derived geometric relations.
// Classification and right-angle checks must never use exact floating
// comparison.
const Epsilon = 1e-4

// EqualWithin reports whether two reals are equal within Epsilon.
func EqualWithin(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Measurable is the capability of shapes with a perimeter and an area.
// Area carries an error return because a shape whose invariants were somehow
// bypassed has no meaningful area (see ErrInvalidState).
type Measurable interface {
	Perimeter() float64
	Area() (float64, error)
}

// Classifiable is the capability of shapes with a triangle classification.
type Classifiable interface {
	TriangleType() TriangleType
}

// Describable is the capability of shapes that render a human-readable
// multi-line report of themselves.
type Describable interface {
	Describe() string
}

// Shape is the contract every concrete shape satisfies.
type Shape interface {
	Measurable
	Describable

	Name() string
	SetName(name string) error
}

var (
	_ Shape = (*Triangle)(nil)
	_ Shape = (*RightTriangle)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Polygon)(nil)

	_ Classifiable = (*Triangle)(nil)
	_ Classifiable = (*RightTriangle)(nil)
)
