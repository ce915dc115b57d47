// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
)

func bufferArea(t *testing.T, g *geo.Geometry) float64 {
	t.Helper()
	area, err := Area(g)
	require.NoError(t, err)
	return area
}

func TestBufferPoint(t *testing.T) {
	got, err := Buffer(centerPoint, 2)
	require.NoError(t, err)
	require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
	// A 32-gon slightly undershoots the disk area.
	require.InDelta(t, 4*math.Pi, bufferArea(t, got), 0.1)

	contains, err := Contains(got, centerPoint)
	require.NoError(t, err)
	require.True(t, contains)
}

func TestBufferLineEndCaps(t *testing.T) {
	t.Run("round caps add a full disk", func(t *testing.T) {
		got, err := Buffer(horizontalLine, 1)
		require.NoError(t, err)
		require.InDelta(t, 20+math.Pi, bufferArea(t, got), 0.05)
	})

	t.Run("butt caps stop at the endpoints", func(t *testing.T) {
		got, err := BufferWithParams(horizontalLine, 1, BufferParams{EndCapStyle: EndCapButt})
		require.NoError(t, err)
		require.InDelta(t, 20.0, bufferArea(t, got), 1e-9)
	})

	t.Run("square caps extend past the endpoints", func(t *testing.T) {
		got, err := BufferWithParams(horizontalLine, 1, BufferParams{EndCapStyle: EndCapSquare})
		require.NoError(t, err)
		require.InDelta(t, 24.0, bufferArea(t, got), 1e-9)
	})

	t.Run("bent line with flat caps keeps the joint filled", func(t *testing.T) {
		bent := line(testFactory, geom.Coord{0, 0}, geom.Coord{10, 0}, geom.Coord{10, 10})
		got, err := BufferWithParams(bent, 1, BufferParams{EndCapStyle: EndCapButt})
		require.NoError(t, err)
		require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
		// Two 10x2 capsules overlapping in a unit square at the bend, plus
		// the outside quarter-disk wedge at the joint.
		require.InDelta(t, 39+math.Pi/4, bufferArea(t, got), 0.1)
	})
}

func TestBufferPolygon(t *testing.T) {
	t.Run("positive distance dilates", func(t *testing.T) {
		got, err := Buffer(bigSquare, 1)
		require.NoError(t, err)
		require.InDelta(t, 140+math.Pi, bufferArea(t, got), 0.05)
	})

	t.Run("negative distance erodes", func(t *testing.T) {
		got, err := Buffer(bigSquare, -2)
		require.NoError(t, err)
		require.InDelta(t, 36.0, bufferArea(t, got), 1e-9)

		eq, err := Equals(got, innerSquare)
		require.NoError(t, err)
		require.True(t, eq)
	})

	t.Run("zero distance keeps the body", func(t *testing.T) {
		got, err := Buffer(bigSquare, 0)
		require.NoError(t, err)
		require.InDelta(t, 100.0, bufferArea(t, got), 1e-9)
	})

	t.Run("erosion past collapse is empty", func(t *testing.T) {
		got, err := Buffer(bigSquare, -10)
		require.NoError(t, err)
		require.True(t, got.IsEmpty())
		require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
	})
}

func TestBufferDegenerate(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got, err := Buffer(testFactory.NewEmpty(geo.ShapeTypeLineString), 1)
		require.NoError(t, err)
		require.True(t, got.IsEmpty())
		require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
	})

	t.Run("non-areal input with non-positive distance", func(t *testing.T) {
		for _, d := range []float64{0, -1} {
			got, err := Buffer(horizontalLine, d)
			require.NoError(t, err)
			require.True(t, got.IsEmpty())
			require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
		}
	})
}

func TestBufferQuadrantSegments(t *testing.T) {
	// More quadrant segments tighten the disk approximation.
	coarse, err := BufferWithParams(centerPoint, 2, BufferParams{QuadrantSegments: 2})
	require.NoError(t, err)
	fine, err := BufferWithParams(centerPoint, 2, BufferParams{QuadrantSegments: 32})
	require.NoError(t, err)

	coarseErr := 4*math.Pi - bufferArea(t, coarse)
	fineErr := 4*math.Pi - bufferArea(t, fine)
	require.Greater(t, coarseErr, fineErr)
	require.Greater(t, fineErr, 0.0)
}
