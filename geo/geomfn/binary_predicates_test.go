// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
)

func TestIntersects(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     *geo.Geometry
		expected bool
	}{
		{"point in square", centerPoint, bigSquare, true},
		{"point outside square", testFactory.NewPointXY(50, 50), bigSquare, false},
		{"crossing lines", horizontalLine, verticalLine, true},
		{"edge-sharing squares", leftRect, rightRect, true},
		{"disjoint squares", leftRect, farSquare, false},
		{"nested squares", innerSquare, bigSquare, true},
		{"line through square", line(testFactory, geom.Coord{-5, 5}, geom.Coord{15, 5}), bigSquare, true},
		{"empty operand", testFactory.NewEmpty(geo.ShapeTypePoint), bigSquare, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Intersects(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			converse, err := Intersects(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, converse)

			disjoint, err := Disjoint(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, !got, disjoint)
		})
	}

	t.Run("mismatching SRIDs", func(t *testing.T) {
		_, err := Intersects(mismatchingSRIDGeometryA, mismatchingSRIDGeometryB)
		requireMismatchingSRIDError(t, err)
	})
}

func TestContainsAndWithin(t *testing.T) {
	boundaryPoint := testFactory.NewPointXY(0, 5)

	testCases := []struct {
		name     string
		a, b     *geo.Geometry
		expected bool
	}{
		{"square contains center point", bigSquare, centerPoint, true},
		{"square does not contain boundary point", bigSquare, boundaryPoint, false},
		{"square contains nested square", bigSquare, innerSquare, true},
		{"nested square does not contain square", innerSquare, bigSquare, false},
		{"square contains interior line", bigSquare, line(testFactory, geom.Coord{2, 5}, geom.Coord{8, 5}), true},
		{"square does not contain boundary edge", bigSquare, line(testFactory, geom.Coord{0, 0}, geom.Coord{10, 0}), false},
		{"disjoint squares", leftRect, farSquare, false},
		{"square contains itself", bigSquare, bigSquare.Clone(), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Contains(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			within, err := Within(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, within)
		})
	}
}

func TestCoversAndCoveredBy(t *testing.T) {
	boundaryPoint := testFactory.NewPointXY(0, 5)
	boundaryEdge := line(testFactory, geom.Coord{0, 0}, geom.Coord{10, 0})

	testCases := []struct {
		name     string
		a, b     *geo.Geometry
		expected bool
	}{
		// Boundary contact counts for Covers but not for Contains.
		{"square covers boundary point", bigSquare, boundaryPoint, true},
		{"square covers boundary edge", bigSquare, boundaryEdge, true},
		{"square covers center point", bigSquare, centerPoint, true},
		{"square covers nested square", bigSquare, innerSquare, true},
		{"square does not cover escaping line", bigSquare, line(testFactory, geom.Coord{5, 5}, geom.Coord{15, 5}), false},
		{"nothing covers the empty geometry", bigSquare, testFactory.NewEmpty(geo.ShapeTypePoint), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Covers(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			coveredBy, err := CoveredBy(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, coveredBy)
		})
	}

	t.Run("contains implies covers", func(t *testing.T) {
		contains, err := Contains(bigSquare, boundaryPoint)
		require.NoError(t, err)
		covers, err := Covers(bigSquare, boundaryPoint)
		require.NoError(t, err)
		require.False(t, contains)
		require.True(t, covers)
	})
}

func TestTouches(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     *geo.Geometry
		expected bool
	}{
		{"edge-sharing squares", leftRect, rightRect, true},
		{"corner-touching squares", leftRect, rect(testFactory, 1, 1, 2, 2), true},
		{"overlapping squares", rect(testFactory, 0, 0, 2, 2), rect(testFactory, 1, 1, 3, 3), false},
		{"disjoint squares", leftRect, farSquare, false},
		{"point on square boundary", testFactory.NewPointXY(0, 5), bigSquare, true},
		{"point in square interior", centerPoint, bigSquare, false},
		{"line ending on line interior", line(testFactory, geom.Coord{5, 0}, geom.Coord{5, 5}), horizontalLine, true},
		{"crossing lines", horizontalLine, verticalLine, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Touches(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			converse, err := Touches(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, converse)
		})
	}
}

func TestCrosses(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     *geo.Geometry
		expected bool
	}{
		{"crossing lines", horizontalLine, verticalLine, true},
		{"touching lines", line(testFactory, geom.Coord{5, 0}, geom.Coord{5, 5}), horizontalLine, false},
		{"line through square", line(testFactory, geom.Coord{-5, 5}, geom.Coord{15, 5}), bigSquare, true},
		{"line inside square", line(testFactory, geom.Coord{2, 5}, geom.Coord{8, 5}), bigSquare, false},
		{"multipoint split by square", mustGeom(testFactory.NewMultiPoint([]geom.Coord{{5, 5}, {50, 50}})), bigSquare, true},
		{"overlapping squares", rect(testFactory, 0, 0, 2, 2), rect(testFactory, 1, 1, 3, 3), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Crosses(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			converse, err := Crosses(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, converse)
		})
	}
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     *geo.Geometry
		expected bool
	}{
		{"partially overlapping squares", rect(testFactory, 0, 0, 2, 2), rect(testFactory, 1, 1, 3, 3), true},
		{"edge-sharing squares", leftRect, rightRect, false},
		{"nested squares", innerSquare, bigSquare, false},
		{"equal squares", leftRect, leftRect.Clone(), false},
		{
			"partially overlapping lines",
			horizontalLine,
			line(testFactory, geom.Coord{5, 0}, geom.Coord{15, 0}),
			true,
		},
		{"crossing lines", horizontalLine, verticalLine, false},
		{
			"partially overlapping multipoints",
			mustGeom(testFactory.NewMultiPoint([]geom.Coord{{0, 0}, {1, 1}})),
			mustGeom(testFactory.NewMultiPoint([]geom.Coord{{1, 1}, {2, 2}})),
			true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Overlaps(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			converse, err := Overlaps(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, converse)
		})
	}
}

func TestEquals(t *testing.T) {
	rewoundSquare := mustGeom(testFactory.NewPolygon([]geom.Coord{
		{10, 10}, {0, 10}, {0, 0}, {10, 0}, {10, 10},
	}))
	collinearSquare := mustGeom(testFactory.NewPolygon([]geom.Coord{
		{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}))

	testCases := []struct {
		name     string
		a, b     *geo.Geometry
		expected bool
	}{
		{"identical squares", bigSquare, bigSquare.Clone(), true},
		// Topological equality ignores storage differences.
		{"rewound square", bigSquare, rewoundSquare, true},
		{"extra collinear vertex", bigSquare, collinearSquare, true},
		{"different squares", bigSquare, innerSquare, false},
		{"point vs square", centerPoint, bigSquare, false},
		{
			"line vs its reversal",
			horizontalLine,
			line(testFactory, geom.Coord{10, 0}, geom.Coord{0, 0}),
			true,
		},
		{
			"both empty",
			testFactory.NewEmpty(geo.ShapeTypePoint),
			testFactory.NewEmpty(geo.ShapeTypePolygon),
			true,
		},
		{"empty vs non-empty", testFactory.NewEmpty(geo.ShapeTypePolygon), bigSquare, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Equals(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			converse, err := Equals(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, converse)
		})
	}
}

func TestRectangleFastPathMatchesGeneralPath(t *testing.T) {
	// The same square entered with an extra collinear vertex is not
	// recognized as a rectangle, so predicates against it take the general
	// path. Both routes must agree.
	rectSquare := bigSquare
	slowSquare := mustGeom(testFactory.NewPolygon([]geom.Coord{
		{0, 0}, {5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0},
	}))
	require.True(t, rectSquare.IsRectangle())
	require.False(t, slowSquare.IsRectangle())

	others := []*geo.Geometry{
		centerPoint,
		testFactory.NewPointXY(0, 5),
		testFactory.NewPointXY(50, 50),
		horizontalLine,
		line(testFactory, geom.Coord{-5, 5}, geom.Coord{15, 5}),
		line(testFactory, geom.Coord{2, 5}, geom.Coord{8, 5}),
		innerSquare,
		farSquare,
		rect(testFactory, 5, 5, 15, 15),
		rect(testFactory, 10, 0, 20, 10),
	}
	for i, other := range others {
		t.Run(fmt.Sprintf("tc:%d", i), func(t *testing.T) {
			fastIntersects, err := Intersects(rectSquare, other)
			require.NoError(t, err)
			slowIntersects, err := Intersects(slowSquare, other)
			require.NoError(t, err)
			require.Equal(t, slowIntersects, fastIntersects)

			fastContains, err := Contains(rectSquare, other)
			require.NoError(t, err)
			slowContains, err := Contains(slowSquare, other)
			require.NoError(t, err)
			require.Equal(t, slowContains, fastContains)
		})
	}
}

func TestRelateAndRelatePattern(t *testing.T) {
	im, err := Relate(leftRect, rightRect)
	require.NoError(t, err)
	require.Equal(t, "FF2F11212", im.String())

	matches, err := RelatePattern(leftRect, rightRect, "FF2F11212")
	require.NoError(t, err)
	require.True(t, matches)

	matches, err = RelatePattern(leftRect, rightRect, "FF*FT****")
	require.NoError(t, err)
	require.True(t, matches)

	matches, err = RelatePattern(leftRect, rightRect, "T********")
	require.NoError(t, err)
	require.False(t, matches)

	_, err = RelatePattern(leftRect, rightRect, "TT")
	require.Error(t, err)
}

func TestBinaryPredicateErrors(t *testing.T) {
	sq := leftRect

	t.Run("collections rejected", func(t *testing.T) {
		gc := mustGeom(testFactory.NewGeometryCollection(centerPoint))
		for _, fn := range []func(a, b *geo.Geometry) (bool, error){
			Touches, Crosses, Overlaps, Equals,
		} {
			_, err := fn(gc, sq)
			requireCollectionUnsupportedError(t, err)
			_, err = fn(sq, gc)
			requireCollectionUnsupportedError(t, err)
		}
		_, err := Relate(gc, sq)
		requireCollectionUnsupportedError(t, err)
	})

	t.Run("nil operands rejected", func(t *testing.T) {
		_, err := Intersects(nil, sq)
		require.Error(t, err)
		_, err = Contains(sq, nil)
		require.Error(t, err)
	})

	t.Run("mismatching SRIDs rejected", func(t *testing.T) {
		for _, fn := range []func(a, b *geo.Geometry) (bool, error){
			Intersects, Contains, Covers, Touches, Crosses, Overlaps, Equals,
		} {
			_, err := fn(mismatchingSRIDGeometryA, mismatchingSRIDGeometryB)
			requireMismatchingSRIDError(t, err)
		}
	})
}
