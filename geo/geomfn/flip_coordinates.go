// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
)

// FlipCoordinates returns g with the X and Y ordinate of every vertex
// swapped.
func FlipCoordinates(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	flipped := g.Clone()
	flipGeomT(flipped.AsGeomT())
	flipped.GeometryChanged()
	return flipped, nil
}

func flipGeomT(t geom.T) {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			flipGeomT(child)
		}
		return
	}
	flat := t.FlatCoords()
	for i := 0; i+1 < len(flat); i += 2 {
		flat[i], flat[i+1] = flat[i+1], flat[i]
	}
}
