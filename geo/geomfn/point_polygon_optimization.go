// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/relate"
)

// Point against polygon predicates reduce to locating each member point,
// which is far cheaper than building a full intersection matrix. The fast
// paths below apply whenever one operand is a Point or MultiPoint and the
// other is a Polygon or MultiPolygon.

func isPointKind(g *geo.Geometry) bool {
	switch g.ShapeType() {
	case geo.ShapeTypePoint, geo.ShapeTypeMultiPoint:
		return true
	}
	return false
}

func isPolygonKind(g *geo.Geometry) bool {
	switch g.ShapeType() {
	case geo.ShapeTypePolygon, geo.ShapeTypeMultiPolygon:
		return true
	}
	return false
}

// pointKindLocations locates every member point of pointKind relative to
// polygonKind. Empty members are dropped by decomposition.
func pointKindLocations(pointKind, polygonKind *geo.Geometry) ([]geo.Location, error) {
	pts, err := relate.Decompose(pointKind)
	if err != nil {
		return nil, err
	}
	areal, err := relate.Decompose(polygonKind)
	if err != nil {
		return nil, err
	}
	locs := make([]geo.Location, len(pts.Points))
	for i, p := range pts.Points {
		locs[i] = areal.Locate(p)
	}
	return locs, nil
}

// PointKindIntersectsPolygonKind returns whether any member point of a
// (Multi)Point lies on a (Multi)Polygon.
func PointKindIntersectsPolygonKind(pointKind, polygonKind *geo.Geometry) (bool, error) {
	locs, err := pointKindLocations(pointKind, polygonKind)
	if err != nil {
		return false, err
	}
	for _, loc := range locs {
		if loc != geo.Exterior {
			return true, nil
		}
	}
	return false, nil
}

// PointKindCoveredByPolygonKind returns whether every member point of a
// (Multi)Point lies on a (Multi)Polygon. Boundary contact counts.
func PointKindCoveredByPolygonKind(pointKind, polygonKind *geo.Geometry) (bool, error) {
	locs, err := pointKindLocations(pointKind, polygonKind)
	if err != nil {
		return false, err
	}
	if len(locs) == 0 {
		return false, nil
	}
	for _, loc := range locs {
		if loc == geo.Exterior {
			return false, nil
		}
	}
	return true, nil
}

// PointKindWithinPolygonKind returns whether every member point of a
// (Multi)Point lies on a (Multi)Polygon with at least one of them in the
// polygon's interior.
func PointKindWithinPolygonKind(pointKind, polygonKind *geo.Geometry) (bool, error) {
	locs, err := pointKindLocations(pointKind, polygonKind)
	if err != nil {
		return false, err
	}
	interior := false
	for _, loc := range locs {
		switch loc {
		case geo.Exterior:
			return false, nil
		case geo.Interior:
			interior = true
		}
	}
	return interior, nil
}
