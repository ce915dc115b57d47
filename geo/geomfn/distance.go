// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"math"

	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// Distance returns the minimum euclidean distance between any point of a
// and any point of b, 0 if they intersect or either is empty. Collection
// operands are supported.
func Distance(a *geo.Geometry, b *geo.Geometry) (float64, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return 0, err
	}
	partsA, err := relate.Decompose(a)
	if err != nil {
		return 0, err
	}
	partsB, err := relate.Decompose(b)
	if err != nil {
		return 0, err
	}
	if partsA.IsEmpty() || partsB.IsEmpty() {
		return 0, nil
	}
	// Containment produces distance 0 without any boundary approach; a
	// representative point test catches it before the segment sweep.
	if anyLocatedInside(partsA, partsB) || anyLocatedInside(partsB, partsA) {
		return 0, nil
	}
	dist := math.Inf(1)
	segsA, segsB := partsA.AllSegments(), partsB.AllSegments()
	for _, sa := range segsA {
		for _, sb := range segsB {
			dist = math.Min(dist, planar.DistanceSegmentSegment(sa[0], sa[1], sb[0], sb[1]))
		}
	}
	for _, p := range partsA.Points {
		for _, sb := range segsB {
			dist = math.Min(dist, planar.DistancePointSegment(p, sb[0], sb[1]))
		}
		for _, q := range partsB.Points {
			dist = math.Min(dist, planar.Dist(p, q))
		}
	}
	for _, q := range partsB.Points {
		for _, sa := range segsA {
			dist = math.Min(dist, planar.DistancePointSegment(q, sa[0], sa[1]))
		}
	}
	return dist, nil
}

// anyLocatedInside reports whether some representative point of src lies
// on dst. One vertex per component suffices: components are connected, so
// if any part of one crossed into dst the segment sweep would already see
// distance 0.
func anyLocatedInside(src, dst *relate.Parts) bool {
	if len(dst.Polygons) == 0 {
		return false
	}
	probe := func(c geom.Coord) bool {
		return dst.Locate(c) != geo.Exterior
	}
	for _, p := range src.Points {
		if probe(p) {
			return true
		}
	}
	for _, line := range src.Lines {
		if probe(geom.Coord(line[0:2])) {
			return true
		}
	}
	for _, poly := range src.Polygons {
		if probe(geom.Coord(poly.Shell[0:2])) {
			return true
		}
	}
	return false
}

// IsWithinDistance returns whether the distance between a and b does not
// exceed d.
func IsWithinDistance(a *geo.Geometry, b *geo.Geometry, d float64) (bool, error) {
	dist, err := Distance(a, b)
	if err != nil {
		return false, err
	}
	return dist <= d, nil
}
