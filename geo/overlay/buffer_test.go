// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package overlay

import (
	"math"
	"testing"

	polyclip "github.com/ctessum/polyclip-go"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/relate"
)

func pcSquare(minX, minY, maxX, maxY float64) polyclip.Polygon {
	return polyclip.Polygon{{
		{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY},
	}}
}

func TestAccumulatePolyclipContainment(t *testing.T) {
	big := pcSquare(0, 0, 10, 10)
	small := pcSquare(2, 2, 4, 4)

	t.Run("contained operand keeps the accumulation", func(t *testing.T) {
		got := accumulatePolyclip(big, small)
		require.InDelta(t, 100.0, relate.PolyclipArea(got), 1e-9)
	})

	t.Run("containing operand replaces the accumulation", func(t *testing.T) {
		got := accumulatePolyclip(small, big)
		require.InDelta(t, 100.0, relate.PolyclipArea(got), 1e-9)
	})

	t.Run("overlapping operands union normally", func(t *testing.T) {
		got := accumulatePolyclip(pcSquare(0, 0, 2, 2), pcSquare(1, 1, 3, 3))
		require.InDelta(t, 7.0, relate.PolyclipArea(got), 1e-9)
	})
}

func TestBufferBentLineFlatCaps(t *testing.T) {
	// The vertex disk filling the joint is wholly covered by the two
	// capsules, so the accumulation must not collapse when it is added.
	bent := mustGeom(testFactory.NewLineString([]geom.Coord{{0, 0}, {10, 0}, {10, 10}}))
	got, err := Buffer(bent, 2, BufferParams{EndCapStyle: EndCapButt})
	require.NoError(t, err)
	require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
	require.False(t, got.IsEmpty())
	poly, ok := got.AsGeomT().(*geom.Polygon)
	require.True(t, ok)
	require.InDelta(t, 76+math.Pi, poly.Area(), 0.5)
}
