// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func TestFactoryStampsContext(t *testing.T) {
	pm := NewFixedPrecisionModel(100)
	f := NewGeometryFactory(pm, 4326)
	g := f.NewPointXY(1, 2)
	require.Equal(t, 4326, g.SRID())
	require.Equal(t, 4326, g.AsGeomT().SRID())
	require.Same(t, pm, g.PrecisionModel())
	require.Same(t, f, g.Factory())
}

func TestFactoryNilPrecisionModel(t *testing.T) {
	f := NewGeometryFactory(nil, 0)
	require.True(t, f.PrecisionModel().IsFloating())
}

func TestNewPoint(t *testing.T) {
	f := NewGeometryFactory(nil, 0)
	require.True(t, f.NewPoint(nil).IsEmpty())
	require.Equal(t, geom.Coord{1, 2}, f.NewPoint(geom.Coord{1, 2}).Coordinate())
}

func TestNewLineStringErrors(t *testing.T) {
	f := NewGeometryFactory(nil, 0)

	empty, err := f.NewLineString(nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = f.NewLineString([]geom.Coord{{0, 0}})
	require.EqualError(t, err, "LineString must have 0 or >= 2 points, got 1")
}

func TestNewPolygonErrors(t *testing.T) {
	f := NewGeometryFactory(nil, 0)

	_, err := f.NewPolygon([]geom.Coord{{0, 0}, {1, 0}, {1, 1}})
	require.EqualError(t, err, "ring must have 0 or >= 4 points, got 3")

	_, err = f.NewPolygon([]geom.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.EqualError(t, err, "ring must be closed: first point != last point")

	empty, err := f.NewPolygon()
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
	require.Equal(t, ShapeTypePolygon, empty.ShapeType())
}

func TestNewGeometryCollection(t *testing.T) {
	f := NewGeometryFactory(nil, 0)

	t.Run("members are deep copied", func(t *testing.T) {
		member := f.NewPointXY(1, 1)
		gc, err := f.NewGeometryCollection(member)
		require.NoError(t, err)
		member.AsGeomT().FlatCoords()[0] = 99
		require.Equal(t, geom.Coord{1, 1}, gc.GeometryN(0).Coordinate())
	})

	t.Run("mixed SRID members rejected", func(t *testing.T) {
		other := NewGeometryFactory(nil, 4326)
		_, err := f.NewGeometryCollection(other.NewPointXY(0, 0))
		require.EqualError(t, err, "GeometryCollection member SRID 4326 does not match factory SRID 0")
	})

	t.Run("nil member rejected", func(t *testing.T) {
		_, err := f.NewGeometryCollection(nil)
		require.Error(t, err)
	})
}

func TestNewEmptyShapes(t *testing.T) {
	f := NewGeometryFactory(nil, 0)
	for _, shape := range []ShapeType{
		ShapeTypePoint,
		ShapeTypeMultiPoint,
		ShapeTypeLineString,
		ShapeTypeLinearRing,
		ShapeTypeMultiLineString,
		ShapeTypePolygon,
		ShapeTypeMultiPolygon,
		ShapeTypeGeometryCollection,
	} {
		t.Run(shape.String(), func(t *testing.T) {
			g := f.NewEmpty(shape)
			require.Equal(t, shape, g.ShapeType())
			require.True(t, g.IsEmpty())
		})
	}
}

func TestFromGeomT(t *testing.T) {
	f := NewGeometryFactory(nil, 4326)

	t.Run("wraps and stamps SRID", func(t *testing.T) {
		g, err := f.FromGeomT(geom.NewPointFlat(geom.XY, []float64{1, 2}))
		require.NoError(t, err)
		require.Equal(t, 4326, g.SRID())
		require.Equal(t, 4326, g.AsGeomT().SRID())
	})

	t.Run("rejects non-XY layouts", func(t *testing.T) {
		_, err := f.FromGeomT(geom.NewPointFlat(geom.XYZ, []float64{1, 2, 3}))
		require.EqualError(t, err, "unsupported layout XYZ: only XY is supported")
	})
}
