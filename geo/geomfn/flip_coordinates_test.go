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

func TestFlipCoordinates(t *testing.T) {
	testCases := []struct {
		desc     string
		input    *geo.Geometry
		expected *geo.Geometry
	}{
		{
			"point",
			testFactory.NewPointXY(1, 2),
			testFactory.NewPointXY(2, 1),
		},
		{
			"point on the diagonal",
			testFactory.NewPointXY(10.1, 10.1),
			testFactory.NewPointXY(10.1, 10.1),
		},
		{
			"line string",
			line(testFactory, geom.Coord{1, 2}, geom.Coord{3, 4}),
			line(testFactory, geom.Coord{2, 1}, geom.Coord{4, 3}),
		},
		{
			"polygon",
			mustGeom(testFactory.NewPolygon([]geom.Coord{
				{0, 0}, {5.55, 5.55}, {0, 10}, {0, 0},
			})),
			mustGeom(testFactory.NewPolygon([]geom.Coord{
				{0, 0}, {5.55, 5.55}, {10, 0}, {0, 0},
			})),
		},
		{
			"multipoint",
			mustGeom(testFactory.NewMultiPoint([]geom.Coord{{5, 10}, {-30.5, 40.2}, {1, 1}})),
			mustGeom(testFactory.NewMultiPoint([]geom.Coord{{10, 5}, {40.2, -30.5}, {1, 1}})),
		},
		{
			"collection",
			mustGeom(testFactory.NewGeometryCollection(
				testFactory.NewPointXY(1.1, 2),
				line(testFactory, geom.Coord{3, 4}, geom.Coord{5, 6}),
			)),
			mustGeom(testFactory.NewGeometryCollection(
				testFactory.NewPointXY(2, 1.1),
				line(testFactory, geom.Coord{4, 3}, geom.Coord{6, 5}),
			)),
		},
		{
			"empty line string",
			testFactory.NewEmpty(geo.ShapeTypeLineString),
			testFactory.NewEmpty(geo.ShapeTypeLineString),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := FlipCoordinates(tc.input)
			require.NoError(t, err)
			require.True(t, tc.expected.EqualsExact(got, 0))
			require.Equal(t, tc.input.SRID(), got.SRID())
		})
	}

	t.Run("input is untouched", func(t *testing.T) {
		input := testFactory.NewPointXY(1, 2)
		_, err := FlipCoordinates(input)
		require.NoError(t, err)
		require.Equal(t, geom.Coord{1, 2}, input.Coordinate())
	})

	t.Run("flip is an involution", func(t *testing.T) {
		input := line(testFactory, geom.Coord{1, 2}, geom.Coord{3, 4}, geom.Coord{-5, 6})
		once, err := FlipCoordinates(input)
		require.NoError(t, err)
		twice, err := FlipCoordinates(once)
		require.NoError(t, err)
		require.True(t, input.EqualsExact(twice, 0))
	})
}
