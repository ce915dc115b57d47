// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
)

// Snap returns input with every vertex within tolerance of a target vertex
// moved onto the closest such vertex. Vertices with no target vertex in
// range stay put, so a zero tolerance returns the input unchanged.
func Snap(input, target *geo.Geometry, tolerance float64) (*geo.Geometry, error) {
	if input == nil || target == nil {
		return nil, geo.ErrNilGeometry
	}
	if input.SRID() != target.SRID() {
		return nil, geo.NewMismatchingSRIDsError(input, target)
	}
	if tolerance < 0 {
		return nil, errors.Newf("tolerance must be non-negative, got %v", tolerance)
	}
	anchors := collectVertices(target.AsGeomT(), nil)
	if len(anchors) == 0 || tolerance == 0 {
		return input, nil
	}
	snapped := input.Clone()
	snapGeomT(snapped.AsGeomT(), anchors, tolerance)
	snapped.GeometryChanged()
	return snapped, nil
}

func collectVertices(t geom.T, acc []geom.Coord) []geom.Coord {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			acc = collectVertices(child, acc)
		}
		return acc
	}
	flat := t.FlatCoords()
	for i := 0; i+1 < len(flat); i += 2 {
		acc = append(acc, geom.Coord{flat[i], flat[i+1]})
	}
	return acc
}

func snapGeomT(t geom.T, anchors []geom.Coord, tolerance float64) {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			snapGeomT(child, anchors, tolerance)
		}
		return
	}
	flat := t.FlatCoords()
	for i := 0; i+1 < len(flat); i += 2 {
		v := geom.Coord{flat[i], flat[i+1]}
		bestDist := tolerance
		var best geom.Coord
		for _, a := range anchors {
			if d := planar.Dist(v, a); d <= bestDist {
				bestDist = d
				best = a
			}
		}
		if best != nil {
			flat[i], flat[i+1] = best.X(), best.Y()
		}
	}
}
