// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
)

func TestConvexHull(t *testing.T) {
	t.Run("interior points are shed", func(t *testing.T) {
		mp := mustGeom(testFactory.NewMultiPoint([]geom.Coord{
			{5, 5}, {0, 0}, {10, 0}, {10, 10}, {0, 10}, {3, 7},
		}))
		got, err := ConvexHull(mp)
		require.NoError(t, err)
		require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
		require.Equal(t, []geom.Coord{
			{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
		}, got.Coordinates())
	})

	t.Run("concave polygon is filled in", func(t *testing.T) {
		lShape := mustGeom(testFactory.NewPolygon([]geom.Coord{
			{0, 0}, {10, 0}, {10, 4}, {4, 4}, {4, 10}, {0, 10}, {0, 0},
		}))
		got, err := ConvexHull(lShape)
		require.NoError(t, err)
		require.Equal(t, []geom.Coord{
			{0, 0}, {10, 0}, {10, 4}, {4, 10}, {0, 10}, {0, 0},
		}, got.Coordinates())
	})

	t.Run("collinear input degrades to a line", func(t *testing.T) {
		mp := mustGeom(testFactory.NewMultiPoint([]geom.Coord{
			{0, 0}, {3, 0}, {7, 0}, {10, 0},
		}))
		got, err := ConvexHull(mp)
		require.NoError(t, err)
		require.Equal(t, "LINESTRING (0 0, 10 0)", got.String())
	})

	t.Run("two points give a line", func(t *testing.T) {
		mp := mustGeom(testFactory.NewMultiPoint([]geom.Coord{{0, 0}, {3, 4}}))
		got, err := ConvexHull(mp)
		require.NoError(t, err)
		require.Equal(t, "LINESTRING (0 0, 3 4)", got.String())
	})

	t.Run("single point", func(t *testing.T) {
		got, err := ConvexHull(centerPoint)
		require.NoError(t, err)
		require.Equal(t, "POINT (5 5)", got.String())
	})

	t.Run("duplicate points collapse", func(t *testing.T) {
		mp := mustGeom(testFactory.NewMultiPoint([]geom.Coord{{1, 1}, {1, 1}, {1, 1}}))
		got, err := ConvexHull(mp)
		require.NoError(t, err)
		require.Equal(t, "POINT (1 1)", got.String())
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := ConvexHull(emptyCollection)
		require.NoError(t, err)
		require.True(t, got.IsEmpty())
		require.Equal(t, geo.ShapeTypeGeometryCollection, got.ShapeType())
	})

	t.Run("collections are flattened", func(t *testing.T) {
		gc := mustGeom(testFactory.NewGeometryCollection(
			testFactory.NewPointXY(-5, 5),
			bigSquare,
		))
		got, err := ConvexHull(gc)
		require.NoError(t, err)
		require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
		covers, err := Covers(got, testFactory.NewPointXY(-5, 5))
		require.NoError(t, err)
		require.True(t, covers)
	})
}
