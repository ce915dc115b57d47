// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
)

var testFactory = geo.NewGeometryFactory(nil, 0)

func mustGeom(g *geo.Geometry, err error) *geo.Geometry {
	if err != nil {
		panic(err)
	}
	return g
}

// rect builds the closed axis-aligned rectangle [(minX,minY), (maxX,maxY)].
func rect(f *geo.GeometryFactory, minX, minY, maxX, maxY float64) *geo.Geometry {
	return mustGeom(f.NewPolygon([]geom.Coord{
		{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}, {minX, minY},
	}))
}

func line(f *geo.GeometryFactory, coords ...geom.Coord) *geo.Geometry {
	return mustGeom(f.NewLineString(coords))
}

var (
	// leftRect and rightRect share the edge x=1.
	leftRect  = rect(testFactory, 0, 0, 1, 1)
	rightRect = rect(testFactory, 1, 0, 2, 1)

	bigSquare   = rect(testFactory, 0, 0, 10, 10)
	innerSquare = rect(testFactory, 2, 2, 8, 8)
	farSquare   = rect(testFactory, 20, 20, 30, 30)

	centerPoint = testFactory.NewPointXY(5, 5)

	horizontalLine = line(testFactory, geom.Coord{0, 0}, geom.Coord{10, 0})
	verticalLine   = line(testFactory, geom.Coord{5, -5}, geom.Coord{5, 5})

	emptyCollection = testFactory.NewEmpty(geo.ShapeTypeGeometryCollection)

	srid4326Factory          = geo.NewGeometryFactory(nil, 4326)
	mismatchingSRIDGeometryA = rect(srid4326Factory, 0, 0, 1, 1)
	mismatchingSRIDGeometryB = rect(testFactory, 0, 0, 1, 1)
)

func requireMismatchingSRIDError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, geo.ErrMismatchingSRIDs))
}

func requireCollectionUnsupportedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, geo.ErrGeometryCollectionNotSupported))
}
