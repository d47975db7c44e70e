package geometry

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"geomkit/internal/logging"
)

// RightTriangle is a triangle whose largest side is the hypotenuse of a
// right angle: cathetus1² + cathetus2² ≈ hypotenuse² within Epsilon. The
// legs and hypotenuse are derived from the stored sides, never stored
// separately, so they cannot drift from the base triangle.
//
// The two constructors are deliberately distinct: FromLegs derives the
// hypotenuse and cannot fail the right-angle check, FromSides validates raw
// sides. There is no overload on argument count to confuse the two.
type RightTriangle struct {
	Triangle
}

// NewRightTriangleFromLegs constructs a right triangle from its two legs.
// The hypotenuse is derived as sqrt(c1²+c2²), so the right-angle relation
// holds by construction; only positivity can reject.
func NewRightTriangleFromLegs(name string, c1, c2 float64, log logging.Logger) (*RightTriangle, error) {
	if c1 <= 0 {
		return nil, &OutOfRangeError{Field: "cathetus1", Value: c1}
	}
	if c2 <= 0 {
		return nil, &OutOfRangeError{Field: "cathetus2", Value: c2}
	}
	hyp := math.Hypot(c1, c2)
	t, err := NewTriangle(defaultName(name, "Right triangle"), c1, c2, hyp, log)
	if err != nil {
		return nil, err
	}
	rt := &RightTriangle{Triangle: *t}
	rt.logf("Right triangle %q derived hypotenuse: %.2f", rt.name, hyp)
	return rt, nil
}

// NewRightTriangleFromSides constructs a right triangle from three raw
// sides. Base triangle validation applies first; then the sides are sorted
// ascending, classified as two legs plus hypotenuse, and the right-angle
// relation is checked within Epsilon.
func NewRightTriangleFromSides(name string, a, b, c float64, log logging.Logger) (*RightTriangle, error) {
	t, err := NewTriangle(defaultName(name, "Right triangle"), a, b, c, log)
	if err != nil {
		return nil, err
	}
	if !satisfiesRightRelation(a, b, c) {
		return nil, &InvalidArgumentError{
			Reason: "sides do not satisfy the right-angle relation",
			Values: []float64{a, b, c},
		}
	}
	return &RightTriangle{Triangle: *t}, nil
}

func defaultName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// satisfiesRightRelation sorts the sides ascending and checks the
// Pythagorean relation on the sorted triple within Epsilon.
func satisfiesRightRelation(a, b, c float64) bool {
	s := []float64{a, b, c}
	sort.Float64s(s)
	return EqualWithin(s[0]*s[0]+s[1]*s[1], s[2]*s[2])
}

func (t *RightTriangle) sorted() [3]float64 {
	s := []float64{t.sideA, t.sideB, t.sideC}
	sort.Float64s(s)
	return [3]float64{s[0], s[1], s[2]}
}

// Cathetus1 returns the shorter leg.
func (t *RightTriangle) Cathetus1() float64 {
	return t.sorted()[0]
}

// Cathetus2 returns the longer leg.
func (t *RightTriangle) Cathetus2() float64 {
	return t.sorted()[1]
}

// Hypotenuse returns the largest side.
func (t *RightTriangle) Hypotenuse() float64 {
	return t.sorted()[2]
}

// IsRightTriangle re-sorts the current sides and re-checks the relation.
func (t *RightTriangle) IsRightTriangle() bool {
	return satisfiesRightRelation(t.sideA, t.sideB, t.sideC)
}

// UpdateSides atomically replaces the sides, re-validating both the base
// triangle invariants and the right-angle relation before committing. The
// leg-product area path below is only correct while the relation holds.
func (t *RightTriangle) UpdateSides(a, b, c float64) error {
	if err := validateSides(a, b, c); err != nil {
		return err
	}
	if !satisfiesRightRelation(a, b, c) {
		return &InvalidArgumentError{
			Reason: "sides do not satisfy the right-angle relation",
			Values: []float64{a, b, c},
		}
	}
	return t.Triangle.UpdateSides(a, b, c)
}

// Area computes the area as cathetus1 * cathetus2 / 2, bypassing the general
// Heron path. Returns ErrInvalidState if the right-angle invariant no longer
// holds, since the leg product would then be wrong for the stored sides.
func (t *RightTriangle) Area() (float64, error) {
	if !t.IsRightTriangle() {
		return 0, fmt.Errorf("right triangle %q: %w", t.name, ErrInvalidState)
	}
	s := t.sorted()
	area := s[0] * s[1] / 2
	t.logf("Right triangle %q area calculated: %.2f", t.name, area)
	return area, nil
}

// TriangleType always reports a right triangle, regardless of the general
// side classification.
func (t *RightTriangle) TriangleType() TriangleType {
	return TriangleRight
}

// Describe extends the triangle report with the legs and hypotenuse.
func (t *RightTriangle) Describe() string {
	s := t.sorted()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shape: %s\n", t.name)
	fmt.Fprintf(&sb, "Legs: %.2f, %.2f\n", s[0], s[1])
	fmt.Fprintf(&sb, "Hypotenuse: %.2f\n", s[2])
	fmt.Fprintf(&sb, "Perimeter: %.2f\n", t.Perimeter())
	if area, err := t.Area(); err != nil {
		fmt.Fprintf(&sb, "Area: undefined (%v)\n", err)
	} else {
		fmt.Fprintf(&sb, "Area: %.2f\n", area)
	}
	fmt.Fprintf(&sb, "Type: %s", t.TriangleType())
	return sb.String()
}
