package geometry

import (
	"fmt"
	"math"
	"strings"

	"geomkit/internal/logging"
)

// Point is a vertex in the 2D plane.
type Point struct {
	X, Y float64
}

// Polygon is a simple polygon given by its vertices in order. It supports
// the vertex-count and convexity extensions on top of the usual perimeter
// and area measurements.
type Polygon struct {
	shapeBase
	vertices []Point
}

// NewPolygon validates the vertex ring and constructs a polygon. At least
// three vertices are required, no two consecutive vertices may coincide
// within Epsilon, and the ring must enclose a non-zero area (rejecting fully
// collinear rings).
func NewPolygon(name string, vertices []Point, log logging.Logger) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, &InvalidArgumentError{
			Reason: fmt.Sprintf("polygon requires at least 3 vertices, got %d", len(vertices)),
		}
	}
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		if EqualWithin(v.X, next.X) && EqualWithin(v.Y, next.Y) {
			return nil, &InvalidArgumentError{
				Reason: fmt.Sprintf("consecutive vertices %d and %d coincide", i, (i+1)%len(vertices)),
			}
		}
	}
	if math.Abs(signedArea(vertices)) < Epsilon {
		return nil, &InvalidArgumentError{Reason: "vertices are collinear, polygon encloses no area"}
	}
	p := &Polygon{
		shapeBase: newShapeBase(name, "Polygon", log),
		vertices:  append([]Point(nil), vertices...),
	}
	p.logf("Polygon %q created with %d vertices", p.name, len(vertices))
	return p, nil
}

// signedArea is the shoelace sum; positive for counter-clockwise rings.
func signedArea(vs []Point) float64 {
	var sum float64
	for i, v := range vs {
		next := vs[(i+1)%len(vs)]
		sum += v.X*next.Y - next.X*v.Y
	}
	return sum / 2
}

// VertexCount returns the number of vertices.
func (p *Polygon) VertexCount() int {
	return len(p.vertices)
}

// Vertices returns a copy of the vertex ring.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

// IsConvex reports whether every interior angle turns the same way. Cross
// products within Epsilon of zero (collinear runs) do not break convexity.
func (p *Polygon) IsConvex() bool {
	sign := 0
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a := p.vertices[i]
		b := p.vertices[(i+1)%n]
		c := p.vertices[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if math.Abs(cross) < Epsilon {
			continue
		}
		cur := 1
		if cross < 0 {
			cur = -1
		}
		if sign == 0 {
			sign = cur
		} else if sign != cur {
			return false
		}
	}
	return true
}

// Perimeter returns the sum of the edge lengths and logs the computed value.
func (p *Polygon) Perimeter() float64 {
	var sum float64
	for i, v := range p.vertices {
		next := p.vertices[(i+1)%len(p.vertices)]
		sum += math.Hypot(next.X-v.X, next.Y-v.Y)
	}
	p.logf("Polygon %q perimeter calculated: %.2f", p.name, sum)
	return sum
}

// Area returns the absolute shoelace area and logs the computed value.
func (p *Polygon) Area() (float64, error) {
	area := math.Abs(signedArea(p.vertices))
	p.logf("Polygon %q area calculated: %.2f", p.name, area)
	return area, nil
}

// Describe renders the multi-line report: name, vertex count, convexity,
// perimeter, area.
func (p *Polygon) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shape: %s\n", p.name)
	fmt.Fprintf(&sb, "Vertices: %d\n", p.VertexCount())
	fmt.Fprintf(&sb, "Convex: %v\n", p.IsConvex())
	fmt.Fprintf(&sb, "Perimeter: %.2f\n", p.Perimeter())
	area, _ := p.Area()
	fmt.Fprintf(&sb, "Area: %.2f", area)
	return sb.String()
}
