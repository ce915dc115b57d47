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

// LineInterpolatePoints returns the point at the given fraction of a
// LineString's length. With repeat set and a fraction in (0, 0.5], every
// integral multiple of the fraction yields a point and the result is a
// MultiPoint.
func LineInterpolatePoints(g *geo.Geometry, fraction float64, repeat bool) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	if fraction < 0 || fraction > 1 {
		return nil, errors.Newf("fraction %v should be within [0 1] range", fraction)
	}
	if g.ShapeType() != geo.ShapeTypeLineString || g.IsEmpty() {
		return nil, errors.Newf("geometry %s should be a non-empty LineString", g.ShapeType())
	}
	f := g.Factory()
	flat := g.AsGeomT().FlatCoords()
	total := planar.LengthFlat(flat)
	if repeat && fraction > 0 && fraction <= 0.5 {
		n := int(1 / fraction)
		coords := make([]geom.Coord, 0, n)
		for i := 1; i <= n; i++ {
			coords = append(coords, interpolateAlongFlat(flat, float64(i)*fraction*total))
		}
		return f.NewMultiPoint(coords)
	}
	return f.NewPoint(interpolateAlongFlat(flat, fraction*total)), nil
}

// LineLocatePoint returns the fraction of the LineString's length at which
// the point closest to p lies.
func LineLocatePoint(g *geo.Geometry, p *geo.Geometry) (float64, error) {
	if g == nil || p == nil {
		return 0, geo.ErrNilGeometry
	}
	if g.SRID() != p.SRID() {
		return 0, geo.NewMismatchingSRIDsError(g, p)
	}
	if g.ShapeType() != geo.ShapeTypeLineString || g.IsEmpty() {
		return 0, errors.Newf("geometry %s should be a non-empty LineString", g.ShapeType())
	}
	if p.ShapeType() != geo.ShapeTypePoint || p.IsEmpty() {
		return 0, errors.Newf("geometry %s should be a non-empty Point", p.ShapeType())
	}
	flat := g.AsGeomT().FlatCoords()
	target := p.Coordinate()
	total := planar.LengthFlat(flat)
	if total == 0 {
		return 0, nil
	}
	bestDist, bestAt, walked := 0.0, 0.0, 0.0
	for i := 0; i+3 < len(flat); i += 2 {
		a := geom.Coord(flat[i : i+2])
		b := geom.Coord(flat[i+2 : i+4])
		d := planar.DistancePointSegment(target, a, b)
		if i == 0 || d < bestDist {
			bestDist = d
			bestAt = walked + distanceAlongSegment(target, a, b)
		}
		walked += planar.Dist(a, b)
	}
	return bestAt / total, nil
}

// interpolateAlongFlat walks dist along a flat coordinate run and returns
// the reached location, clamped to the run's endpoints.
func interpolateAlongFlat(flat []float64, dist float64) geom.Coord {
	if dist <= 0 {
		return geom.Coord{flat[0], flat[1]}
	}
	for i := 0; i+3 < len(flat); i += 2 {
		a := geom.Coord(flat[i : i+2])
		b := geom.Coord(flat[i+2 : i+4])
		segLen := planar.Dist(a, b)
		if dist <= segLen && segLen > 0 {
			frac := dist / segLen
			return geom.Coord{
				a.X() + frac*(b.X()-a.X()),
				a.Y() + frac*(b.Y()-a.Y()),
			}
		}
		dist -= segLen
	}
	n := len(flat)
	return geom.Coord{flat[n-2], flat[n-1]}
}

// distanceAlongSegment returns the distance from a to the projection of p
// onto the segment a-b, clamped to the segment.
func distanceAlongSegment(p, a, b geom.Coord) float64 {
	segLen := planar.Dist(a, b)
	if segLen == 0 {
		return 0
	}
	av, bv, pv := planar.R2(a), planar.R2(b), planar.R2(p)
	t := pv.Sub(av).Dot(bv.Sub(av)) / (segLen * segLen)
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return segLen
	default:
		return t * segLen
	}
}
