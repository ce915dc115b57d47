// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"sort"

	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
)

// ConvexHull returns the smallest convex geometry containing g. The result
// degenerates with the input: an empty GeometryCollection for empty input,
// a Point for a single location, a LineString for collinear input and a
// Polygon otherwise. Collection input is supported.
func ConvexHull(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	f := g.Factory()
	coords := uniqueSortedCoords(g.Coordinates())
	switch len(coords) {
	case 0:
		return f.NewEmpty(geo.ShapeTypeGeometryCollection), nil
	case 1:
		return f.NewPoint(coords[0]), nil
	case 2:
		return f.NewLineString(coords)
	}
	hull := monotoneChainHull(coords)
	if len(hull) == 2 {
		return f.NewLineString(hull)
	}
	ring := append(hull, hull[0])
	return f.NewPolygon(ring)
}

func uniqueSortedCoords(coords []geom.Coord) []geom.Coord {
	sorted := make([]geom.Coord, len(coords))
	copy(sorted, coords)
	sort.Slice(sorted, func(i, j int) bool {
		return geo.CompareCoords(sorted[i], sorted[j]) < 0
	})
	var out []geom.Coord
	for _, c := range sorted {
		if len(out) == 0 || !planar.CoordsEqual(out[len(out)-1], c) {
			out = append(out, geom.Coord{c.X(), c.Y()})
		}
	}
	return out
}

// monotoneChainHull computes the convex hull of x-then-y sorted distinct
// coordinates. The hull is returned counterclockwise without the closing
// duplicate; collinear input collapses to its two extremes.
func monotoneChainHull(coords []geom.Coord) []geom.Coord {
	var lower []geom.Coord
	for _, c := range coords {
		for len(lower) >= 2 && planar.OrientationIndex(lower[len(lower)-2], lower[len(lower)-1], c) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, c)
	}
	var upper []geom.Coord
	for i := len(coords) - 1; i >= 0; i-- {
		c := coords[i]
		for len(upper) >= 2 && planar.OrientationIndex(upper[len(upper)-2], upper[len(upper)-1], c) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, c)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
