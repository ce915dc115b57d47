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

func TestMakePolygon(t *testing.T) {
	shellRing := line(testFactory,
		geom.Coord{40, 80}, geom.Coord{80, 80}, geom.Coord{80, 40}, geom.Coord{40, 40}, geom.Coord{40, 80},
	)
	holeRing := line(testFactory,
		geom.Coord{50, 70}, geom.Coord{70, 70}, geom.Coord{70, 50}, geom.Coord{50, 50}, geom.Coord{50, 70},
	)

	t.Run("shell only", func(t *testing.T) {
		got, err := MakePolygon(shellRing)
		require.NoError(t, err)
		require.Equal(t, geo.ShapeTypePolygon, got.ShapeType())
		poly := got.AsGeomT().(*geom.Polygon)
		require.Equal(t, 1, poly.NumLinearRings())
		require.Equal(t, shellRing.Coordinates(), poly.LinearRing(0).Coords())
	})

	t.Run("shell with a hole", func(t *testing.T) {
		got, err := MakePolygon(shellRing, holeRing)
		require.NoError(t, err)
		poly := got.AsGeomT().(*geom.Polygon)
		require.Equal(t, 2, poly.NumLinearRings())
		require.Equal(t, holeRing.Coordinates(), poly.LinearRing(1).Coords())
		area, err := Area(got)
		require.NoError(t, err)
		require.Equal(t, 1200.0, area)
	})

	t.Run("SRID carries over", func(t *testing.T) {
		ring := mustGeom(srid4326Factory.NewLineString(
			[]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
		))
		got, err := MakePolygon(ring)
		require.NoError(t, err)
		require.Equal(t, 4326, got.SRID())
	})

	t.Run("unclosed shell rejected", func(t *testing.T) {
		open := line(testFactory, geom.Coord{0, 0}, geom.Coord{1, 0}, geom.Coord{1, 1}, geom.Coord{0, 1})
		_, err := MakePolygon(open)
		require.Error(t, err)
	})

	t.Run("non-LineString arguments rejected", func(t *testing.T) {
		_, err := MakePolygon(centerPoint)
		require.ErrorContains(t, err, "must be LINESTRING")
		_, err = MakePolygon(shellRing, centerPoint)
		require.ErrorContains(t, err, "must be LINESTRING")
	})

	t.Run("mismatching SRIDs rejected", func(t *testing.T) {
		ring := mustGeom(srid4326Factory.NewLineString(
			[]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 0}},
		))
		_, err := MakePolygon(shellRing, ring)
		requireMismatchingSRIDError(t, err)
	})
}
