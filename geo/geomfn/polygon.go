// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
)

// MakePolygon builds a Polygon from a closed LineString shell and optional
// closed LineString holes. Ring closure is enforced by the factory.
func MakePolygon(outer *geo.Geometry, interior ...*geo.Geometry) (*geo.Geometry, error) {
	if outer == nil {
		return nil, geo.ErrNilGeometry
	}
	rings := make([][]geom.Coord, 0, 1+len(interior))
	for _, g := range append([]*geo.Geometry{outer}, interior...) {
		if g == nil {
			return nil, geo.ErrNilGeometry
		}
		if g.SRID() != outer.SRID() {
			return nil, geo.NewMismatchingSRIDsError(outer, g)
		}
		if g.ShapeType() != geo.ShapeTypeLineString || g.IsEmpty() {
			return nil, errors.Newf("argument must be LINESTRING geometries")
		}
		rings = append(rings, g.Coordinates())
	}
	return outer.Factory().NewPolygon(rings...)
}
