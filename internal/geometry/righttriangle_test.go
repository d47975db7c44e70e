package geometry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRightTriangleFromLegs(t *testing.T) {
	rt, err := NewRightTriangleFromLegs("rt", 3, 4, &recordingLogger{})
	require.NoError(t, err)

	assert.Equal(t, 3.0, rt.Cathetus1())
	assert.Equal(t, 4.0, rt.Cathetus2())
	assert.InDelta(t, 5.0, rt.Hypotenuse(), 1e-9)
	assert.InDelta(t, 12.0, rt.Perimeter(), 1e-9)
	assert.True(t, rt.IsRightTriangle())

	area, err := rt.Area()
	require.NoError(t, err)
	assert.InDelta(t, 6.0, area, 1e-9)
}

func TestNewRightTriangleFromLegs_RejectsNonPositiveLegs(t *testing.T) {
	tests := []struct {
		name      string
		c1, c2    float64
		wantField string
	}{
		{"zero first leg", 0, 4, "cathetus1"},
		{"negative second leg", 3, -4, "cathetus2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := NewRightTriangleFromLegs("rt", tt.c1, tt.c2, &recordingLogger{})
			require.Error(t, err)
			assert.Nil(t, rt)

			var oor *OutOfRangeError
			require.ErrorAs(t, err, &oor)
			assert.Equal(t, tt.wantField, oor.Field)
		})
	}
}

// Constructing from legs must satisfy the right-angle relation for any
// positive pair; the hypotenuse is derived, so there is no rejection path.
func TestNewRightTriangleFromLegs_RelationHoldsByConstruction(t *testing.T) {
	legs := [][2]float64{
		{3, 4}, {1, 1}, {0.05, 0.12}, {7, 24}, {123.4, 987.6}, {1e-3, 1e-3},
	}
	for _, pair := range legs {
		rt, err := NewRightTriangleFromLegs("rt", pair[0], pair[1], &recordingLogger{})
		require.NoError(t, err)
		assert.True(t, rt.IsRightTriangle(), "legs %v", pair)
	}
}

func TestNewRightTriangleFromSides(t *testing.T) {
	t.Run("5-12-13 classifies legs and hypotenuse", func(t *testing.T) {
		rt, err := NewRightTriangleFromSides("rt", 13, 5, 12, &recordingLogger{})
		require.NoError(t, err)

		assert.Equal(t, 5.0, rt.Cathetus1())
		assert.Equal(t, 12.0, rt.Cathetus2())
		assert.Equal(t, 13.0, rt.Hypotenuse())

		area, err := rt.Area()
		require.NoError(t, err)
		assert.InDelta(t, 30.0, area, 1e-9)
	})

	t.Run("non-right sides rejected", func(t *testing.T) {
		rt, err := NewRightTriangleFromSides("rt", 3, 4, 6, &recordingLogger{})
		require.Error(t, err)
		assert.Nil(t, rt)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("base validation runs first", func(t *testing.T) {
		rt, err := NewRightTriangleFromSides("rt", 1, 2, 10, &recordingLogger{})
		require.Error(t, err)
		assert.Nil(t, rt)
		assert.True(t, IsInvalidArgument(err))

		rt, err = NewRightTriangleFromSides("rt", -3, 4, 5, &recordingLogger{})
		require.Error(t, err)
		assert.Nil(t, rt)
		assert.True(t, IsOutOfRange(err))
	})
}

func TestRightTriangle_UpdateSides(t *testing.T) {
	rt, err := NewRightTriangleFromSides("rt", 3, 4, 5, &recordingLogger{})
	require.NoError(t, err)

	t.Run("right triple commits", func(t *testing.T) {
		require.NoError(t, rt.UpdateSides(5, 12, 13))
		assert.Equal(t, 13.0, rt.Hypotenuse())
	})

	t.Run("non-right triple leaves sides untouched", func(t *testing.T) {
		err := rt.UpdateSides(5, 6, 7)
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
		assert.Equal(t, 5.0, rt.Cathetus1())
		assert.Equal(t, 12.0, rt.Cathetus2())
		assert.Equal(t, 13.0, rt.Hypotenuse())
	})
}

func TestRightTriangle_TriangleType(t *testing.T) {
	rt, err := NewRightTriangleFromLegs("rt", 1, 1, &recordingLogger{})
	require.NoError(t, err)
	// Side classification would say isosceles; the override wins.
	assert.Equal(t, TriangleRight, rt.TriangleType())
	assert.Equal(t, "Right triangle", rt.TriangleType().String())
}

func TestRightTriangle_Describe(t *testing.T) {
	rt, err := NewRightTriangleFromLegs("Ramp", 3, 4, &recordingLogger{})
	require.NoError(t, err)

	got := rt.Describe()
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Shape: Ramp", lines[0])
	assert.Equal(t, "Legs: 3.00, 4.00", lines[1])
	assert.Equal(t, "Hypotenuse: 5.00", lines[2])
	assert.Equal(t, "Perimeter: 12.00", lines[3])
	assert.Equal(t, "Area: 6.00", lines[4])
	assert.Equal(t, "Type: Right triangle", lines[5])
}
