// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

var testFactory = NewGeometryFactory(nil, 0)

func mustGeometry(g *Geometry, err error) *Geometry {
	if err != nil {
		panic(err)
	}
	return g
}

func squareGeom(minX, minY, maxX, maxY float64) *Geometry {
	return mustGeometry(testFactory.NewPolygon([]geom.Coord{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}))
}

func TestGeometryDimensions(t *testing.T) {
	openLine := mustGeometry(testFactory.NewLineString([]geom.Coord{{0, 0}, {1, 1}}))
	closedLine := mustGeometry(testFactory.NewLineString([]geom.Coord{
		{0, 0}, {1, 0}, {1, 1}, {0, 0},
	}))
	collection := mustGeometry(testFactory.NewGeometryCollection(
		testFactory.NewPointXY(0, 0), squareGeom(0, 0, 1, 1),
	))

	testCases := []struct {
		g                *Geometry
		dim, boundaryDim Dimension
	}{
		{testFactory.NewPointXY(1, 2), DimPoint, DimFalse},
		{openLine, DimCurve, DimPoint},
		{closedLine, DimCurve, DimFalse},
		{squareGeom(0, 0, 1, 1), DimSurface, DimCurve},
		{collection, DimSurface, DimCurve},
		{testFactory.NewEmpty(ShapeTypeGeometryCollection), DimFalse, DimFalse},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("tc:%d", i), func(t *testing.T) {
			require.Equal(t, tc.dim, tc.g.Dimension())
			require.Equal(t, tc.boundaryDim, tc.g.BoundaryDimension())
		})
	}
}

func TestGeometryIsEmpty(t *testing.T) {
	require.True(t, testFactory.NewEmpty(ShapeTypePoint).IsEmpty())
	require.True(t, testFactory.NewEmpty(ShapeTypePolygon).IsEmpty())
	require.False(t, testFactory.NewPointXY(0, 0).IsEmpty())

	emptyMembers := mustGeometry(testFactory.NewGeometryCollection(
		testFactory.NewEmpty(ShapeTypePoint),
		testFactory.NewEmpty(ShapeTypeLineString),
	))
	require.True(t, emptyMembers.IsEmpty())

	mixed := mustGeometry(testFactory.NewGeometryCollection(
		testFactory.NewEmpty(ShapeTypePoint),
		testFactory.NewPointXY(1, 1),
	))
	require.False(t, mixed.IsEmpty())
}

func TestGeometryN(t *testing.T) {
	mp := mustGeometry(testFactory.NewMultiPoint([]geom.Coord{{0, 0}, {1, 1}, {2, 2}}))
	require.Equal(t, 3, mp.NumGeometries())
	require.Equal(t, ShapeTypePoint, mp.GeometryN(1).ShapeType())
	require.Equal(t, geom.Coord{1, 1}, mp.GeometryN(1).Coordinate())

	pt := testFactory.NewPointXY(3, 4)
	require.Equal(t, 1, pt.NumGeometries())
	require.Equal(t, pt, pt.GeometryN(0))
	require.Panics(t, func() { pt.GeometryN(1) })
}

func TestEnvelopeCache(t *testing.T) {
	g := squareGeom(0, 0, 10, 10)
	env := g.EnvelopeInternal()
	require.Equal(t, NewEnvelope(0, 0, 10, 10), env)
	// The memoized slot is returned on every access.
	require.Same(t, env, g.EnvelopeInternal())

	// Edits are invisible until GeometryChanged drops the cache.
	flat := g.AsGeomT().FlatCoords()
	flat[2] = 20
	require.Same(t, env, g.EnvelopeInternal())
	g.GeometryChanged()
	require.Equal(t, NewEnvelope(0, 0, 20, 10), g.EnvelopeInternal())
}

func TestEnvelopeGeometry(t *testing.T) {
	t.Run("empty geometry gives empty point", func(t *testing.T) {
		env := testFactory.NewEmpty(ShapeTypeLineString).Envelope()
		require.Equal(t, ShapeTypePoint, env.ShapeType())
		require.True(t, env.IsEmpty())
	})

	t.Run("single location gives point", func(t *testing.T) {
		env := testFactory.NewPointXY(3, 4).Envelope()
		require.Equal(t, ShapeTypePoint, env.ShapeType())
		require.Equal(t, geom.Coord{3, 4}, env.Coordinate())
	})

	t.Run("extended geometry gives rectangle", func(t *testing.T) {
		g := mustGeometry(testFactory.NewLineString([]geom.Coord{{0, 5}, {10, 0}}))
		env := g.Envelope()
		require.Equal(t, ShapeTypePolygon, env.ShapeType())
		require.True(t, env.IsRectangle())
		require.Equal(t, []geom.Coord{
			{0, 0}, {10, 0}, {10, 5}, {0, 5}, {0, 0},
		}, env.Coordinates())
	})
}

func TestIsRectangle(t *testing.T) {
	testCases := []struct {
		name     string
		g        *Geometry
		expected bool
	}{
		{"axis-aligned square", squareGeom(0, 0, 10, 10), true},
		{"point", testFactory.NewPointXY(0, 0), false},
		{"empty polygon", testFactory.NewEmpty(ShapeTypePolygon), false},
		{
			"diamond",
			mustGeometry(testFactory.NewPolygon([]geom.Coord{
				{5, 0}, {10, 5}, {5, 10}, {0, 5}, {5, 0},
			})),
			false,
		},
		{
			"extra collinear vertex",
			mustGeometry(testFactory.NewPolygon([]geom.Coord{
				{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
			})),
			false,
		},
		{
			"polygon with hole",
			mustGeometry(testFactory.NewPolygon(
				[]geom.Coord{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				[]geom.Coord{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
			)),
			false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.g.IsRectangle())
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := squareGeom(0, 0, 1, 1)
	c := g.Clone()
	require.True(t, g.EqualsExact(c, 0))

	c.AsGeomT().FlatCoords()[0] = 99
	require.False(t, g.EqualsExact(c, 0))
	require.Equal(t, 0.0, g.AsGeomT().FlatCoords()[0])
}

func TestEqualsExact(t *testing.T) {
	a := mustGeometry(testFactory.NewLineString([]geom.Coord{{0, 0}, {1, 1}}))
	b := mustGeometry(testFactory.NewLineString([]geom.Coord{{0, 0}, {1, 1.05}}))
	reversed := mustGeometry(testFactory.NewLineString([]geom.Coord{{1, 1}, {0, 0}}))

	require.True(t, a.EqualsExact(a.Clone(), 0))
	require.False(t, a.EqualsExact(b, 0))
	require.True(t, a.EqualsExact(b, 0.1))
	// Vertex order matters; EqualsExact is structural.
	require.False(t, a.EqualsExact(reversed, 0))
	require.False(t, a.EqualsExact(nil, 0))
	require.False(t, a.EqualsExact(testFactory.NewPointXY(0, 0), 0))
}

func TestGeometryString(t *testing.T) {
	require.Equal(t, "POINT (5 5)", testFactory.NewPointXY(5, 5).String())
	require.Equal(
		t,
		"LINESTRING (0 0, 10 0)",
		mustGeometry(testFactory.NewLineString([]geom.Coord{{0, 0}, {10, 0}})).String(),
	)
}

func TestUserData(t *testing.T) {
	g := testFactory.NewPointXY(0, 0)
	require.Nil(t, g.UserData())
	g.SetUserData("tag")
	require.Equal(t, "tag", g.UserData())
}
