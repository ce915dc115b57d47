// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"math"

	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
)

// Segmentize returns g with every segment longer than maxLength split into
// the minimum number of equal length pieces not exceeding maxLength.
// Points are returned unchanged, as are all inputs for an infinite
// maxLength.
func Segmentize(g *geo.Geometry, maxLength float64) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	if math.IsNaN(maxLength) || math.IsInf(maxLength, 1) {
		return g, nil
	}
	switch g.ShapeType() {
	case geo.ShapeTypePoint, geo.ShapeTypeMultiPoint:
		return g, nil
	}
	if maxLength <= 0 {
		return nil, errors.Newf("maximum segment length must be positive, got %v", maxLength)
	}
	return g.Factory().FromGeomT(segmentizeGeomT(g.AsGeomT(), maxLength))
}

func segmentizeGeomT(t geom.T, maxLength float64) geom.T {
	switch t := t.(type) {
	case *geom.LineString:
		return geom.NewLineStringFlat(geom.XY, segmentizeFlat(t.FlatCoords(), maxLength)).SetSRID(t.SRID())
	case *geom.Polygon:
		poly := geom.NewPolygon(geom.XY).SetSRID(t.SRID())
		for i := 0; i < t.NumLinearRings(); i++ {
			ring := segmentizeFlat(t.LinearRing(i).FlatCoords(), maxLength)
			poly.Push(geom.NewLinearRingFlat(geom.XY, ring))
		}
		return poly
	case *geom.MultiLineString:
		mls := geom.NewMultiLineString(geom.XY).SetSRID(t.SRID())
		for i := 0; i < t.NumLineStrings(); i++ {
			mls.Push(segmentizeGeomT(t.LineString(i), maxLength).(*geom.LineString))
		}
		return mls
	case *geom.MultiPolygon:
		mp := geom.NewMultiPolygon(geom.XY).SetSRID(t.SRID())
		for i := 0; i < t.NumPolygons(); i++ {
			mp.Push(segmentizeGeomT(t.Polygon(i), maxLength).(*geom.Polygon))
		}
		return mp
	case *geom.GeometryCollection:
		gc := geom.NewGeometryCollection().SetSRID(t.SRID())
		for _, child := range t.Geoms() {
			gc.Push(segmentizeGeomT(child, maxLength))
		}
		return gc
	default:
		return t
	}
}

// segmentizeFlat inserts the minimum number of evenly spaced points into
// each too-long segment of a flat coordinate run.
func segmentizeFlat(flat []float64, maxLength float64) []float64 {
	if len(flat) == 0 {
		return nil
	}
	out := make([]float64, 0, len(flat))
	out = append(out, flat[0], flat[1])
	for i := 0; i+3 < len(flat); i += 2 {
		a := geom.Coord(flat[i : i+2])
		b := geom.Coord(flat[i+2 : i+4])
		pieces := int(math.Ceil(planar.Dist(a, b) / maxLength))
		for p := 1; p < pieces; p++ {
			frac := float64(p) / float64(pieces)
			out = append(out, a.X()*(1-frac)+b.X()*frac, a.Y()*(1-frac)+b.Y()*frac)
		}
		out = append(out, b.X(), b.Y())
	}
	return out
}
