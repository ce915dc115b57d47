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

func TestSegmentize(t *testing.T) {
	testCases := []struct {
		desc      string
		input     *geo.Geometry
		maxLength float64
		expected  []geom.Coord
	}{
		{
			"segment split into equal thirds",
			line(testFactory, geom.Coord{0, 0}, geom.Coord{9, 0}),
			3,
			[]geom.Coord{{0, 0}, {3, 0}, {6, 0}, {9, 0}},
		},
		{
			"short segments untouched",
			line(testFactory, geom.Coord{0, 0}, geom.Coord{1, 0}, geom.Coord{2, 0}),
			5,
			[]geom.Coord{{0, 0}, {1, 0}, {2, 0}},
		},
		{
			"length just over the bound splits in two",
			line(testFactory, geom.Coord{0, 0}, geom.Coord{0, 5}),
			4,
			[]geom.Coord{{0, 0}, {0, 2.5}, {0, 5}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := Segmentize(tc.input, tc.maxLength)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got.Coordinates())
		})
	}

	t.Run("polygon rings are densified", func(t *testing.T) {
		got, err := Segmentize(leftRect, 0.5)
		require.NoError(t, err)
		require.Equal(t, []geom.Coord{
			{0, 0}, {0.5, 0}, {1, 0}, {1, 0.5}, {1, 1}, {0.5, 1}, {0, 1}, {0, 0.5}, {0, 0},
		}, got.Coordinates())

		// Densification never changes the region.
		eq, err := Equals(leftRect, got)
		require.NoError(t, err)
		require.True(t, eq)
	})

	t.Run("points pass through", func(t *testing.T) {
		got, err := Segmentize(centerPoint, 0.1)
		require.NoError(t, err)
		require.Same(t, centerPoint, got)
	})

	t.Run("infinite max length passes through", func(t *testing.T) {
		got, err := Segmentize(horizontalLine, math.Inf(1))
		require.NoError(t, err)
		require.Same(t, horizontalLine, got)
	})

	t.Run("non-positive max length rejected", func(t *testing.T) {
		_, err := Segmentize(horizontalLine, 0)
		require.ErrorContains(t, err, "maximum segment length must be positive")
		_, err = Segmentize(horizontalLine, -1)
		require.Error(t, err)
	})
}
