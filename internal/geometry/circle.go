package geometry

import (
	"fmt"
	"math"
	"strings"

	"geomkit/internal/logging"
)

// Circle is a shape defined by a positive radius.
type Circle struct {
	shapeBase
	radius float64
}

// NewCircle validates the radius and constructs a circle. A nil logger
// defaults to the console sink.
func NewCircle(name string, radius float64, log logging.Logger) (*Circle, error) {
	if radius <= 0 {
		return nil, &OutOfRangeError{Field: "radius", Value: radius}
	}
	c := &Circle{
		shapeBase: newShapeBase(name, "Circle", log),
		radius:    radius,
	}
	c.logf("Circle %q created with radius %.2f", c.name, radius)
	return c, nil
}

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// Perimeter returns the circumference 2·π·r and logs the computed value.
func (c *Circle) Perimeter() float64 {
	p := 2 * math.Pi * c.radius
	c.logf("Circle %q perimeter calculated: %.2f", c.name, p)
	return p
}

// Area returns π·r² and logs the computed value. A circle constructed
// through NewCircle cannot reach an invalid state, so the error is always nil.
func (c *Circle) Area() (float64, error) {
	area := math.Pi * c.radius * c.radius
	c.logf("Circle %q area calculated: %.2f", c.name, area)
	return area, nil
}

// Describe renders the multi-line report: name, radius, perimeter, area.
func (c *Circle) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shape: %s\n", c.name)
	fmt.Fprintf(&sb, "Radius: %.2f\n", c.radius)
	fmt.Fprintf(&sb, "Perimeter: %.2f\n", c.Perimeter())
	area, _ := c.Area()
	fmt.Fprintf(&sb, "Area: %.2f", area)
	return sb.String()
}
