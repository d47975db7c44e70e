package geometry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidState signals that an operation found a shape whose invariants
// no longer hold despite validated construction. This indicates a
// programming defect, not a user error; callers should treat it as an
// assertion failure rather than retry.
var ErrInvalidState = errors.New("shape invariants violated")

// OutOfRangeError reports a supplied numeric attribute that is not strictly
// positive. Field names the offending parameter (sideA, sideB, sideC, radius).
type OutOfRangeError struct {
	Field string
	Value float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be positive, got %s", e.Field, formatValue(e.Value))
}

// InvalidArgumentError reports supplied values that fail a geometric
// relation required by the requested shape type, such as the triangle
// inequality or the right-angle relation.
type InvalidArgumentError struct {
	Reason string
	Values []float64
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Values) == 0 {
		return e.Reason
	}
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = formatValue(v)
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(parts, ", "))
}

// IsOutOfRange reports whether err is (or wraps) an OutOfRangeError.
func IsOutOfRange(err error) bool {
	var e *OutOfRangeError
	return errors.As(err, &e)
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
