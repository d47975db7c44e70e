package geometry

import (
	"fmt"

	"geomkit/internal/logging"
)

// shapeBase carries the identity and logger shared by every concrete shape.
// The logger is injected at construction and shared, never owned: the base
// only calls LogInfo and never closes the sink.
type shapeBase struct {
	name string
	log  logging.Logger
}

func newShapeBase(name, fallback string, log logging.Logger) shapeBase {
	if name == "" {
		name = fallback
	}
	if log == nil {
		log = logging.NewConsoleLogger()
	}
	return shapeBase{name: name, log: log}
}

// Name returns the shape's display name.
func (b *shapeBase) Name() string {
	return b.name
}

// SetName renames the shape. The name must stay non-empty.
func (b *shapeBase) SetName(name string) error {
	if name == "" {
		return &InvalidArgumentError{Reason: "shape name must not be empty"}
	}
	b.name = name
	return nil
}

// logf formats and emits one informational event. Sink failures are the
// sink's concern; this never fails the caller.
func (b *shapeBase) logf(format string, args ...interface{}) {
	b.log.LogInfo(fmt.Sprintf(format, args...))
}
