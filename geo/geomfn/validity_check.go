// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	polyclip "github.com/ctessum/polyclip-go"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// IsSimple returns whether g has no anomalous self-intersections: no
// repeated points in a MultiPoint, and line components meeting themselves
// or each other only at their endpoints. Polygonal geometries are simple
// by definition. GeometryCollections are not supported.
func IsSimple(g *geo.Geometry) (bool, error) {
	if g == nil {
		return false, geo.ErrNilGeometry
	}
	if g.ShapeType() == geo.ShapeTypeGeometryCollection {
		return false, geo.NewUnsupportedCollectionError("IsSimple")
	}
	parts, err := relate.Decompose(g)
	if err != nil {
		return false, err
	}
	switch g.Dimension() {
	case geo.DimPoint:
		return noRepeatedPoints(parts.Points), nil
	case geo.DimCurve:
		return linesAreSimple(parts.Lines), nil
	default:
		return true, nil
	}
}

func noRepeatedPoints(pts []geom.Coord) bool {
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if planar.CoordsEqual(pts[i], pts[j]) {
				return false
			}
		}
	}
	return true
}

// linesAreSimple checks every segment pair of the line components. An
// intersection is anomalous unless it is the shared vertex of adjacent
// segments or a point where both participants end.
func linesAreSimple(lines [][]float64) bool {
	type taggedSeg struct {
		line, index int
		a, b        geom.Coord
	}
	var segs []taggedSeg
	for li, line := range lines {
		for i := 0; i+3 < len(line); i += 2 {
			segs = append(segs, taggedSeg{
				line:  li,
				index: i / 2,
				a:     geom.Coord(line[i : i+2]),
				b:     geom.Coord(line[i+2 : i+4]),
			})
		}
	}
	endpointOf := func(li int, c geom.Coord) bool {
		line := lines[li]
		n := len(line)
		return planar.CoordsEqual(c, geom.Coord(line[0:2])) ||
			planar.CoordsEqual(c, geom.Coord(line[n-2:n]))
	}
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			s, t := segs[i], segs[j]
			pts, collinear := planar.SegmentIntersection(s.a, s.b, t.a, t.b)
			if len(pts) == 0 {
				continue
			}
			if collinear {
				return false
			}
			p := pts[0]
			if s.line == t.line && t.index == s.index+1 && planar.CoordsEqual(p, s.b) {
				continue
			}
			// Endpoint contact: a closed ring meeting itself at its start,
			// or two lines touching where both end.
			if endpointOf(s.line, p) && endpointOf(t.line, p) {
				continue
			}
			return false
		}
	}
	return true
}

// IsValid returns whether g satisfies the construction rules of its shape:
// rings closed with enough points, no ring self-intersection or
// cross-ring crossing, holes inside their shells, and MultiPolygon member
// interiors disjoint. Points and lines are always valid; collection
// members are checked independently.
func IsValid(g *geo.Geometry) (bool, error) {
	if g == nil {
		return false, geo.ErrNilGeometry
	}
	return geomTIsValid(g.AsGeomT())
}

func geomTIsValid(t geom.T) (bool, error) {
	switch t := t.(type) {
	case *geom.Polygon:
		return polygonIsValid(t)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			ok, err := polygonIsValid(t.Polygon(i))
			if err != nil || !ok {
				return false, err
			}
		}
		return multiPolygonInteriorsDisjoint(t), nil
	case *geom.GeometryCollection:
		for _, child := range t.Geoms() {
			ok, err := geomTIsValid(child)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	default:
		return true, nil
	}
}

func polygonIsValid(p *geom.Polygon) (bool, error) {
	var rings [][]float64
	for i := 0; i < p.NumLinearRings(); i++ {
		ring := p.LinearRing(i).FlatCoords()
		if len(ring) == 0 {
			continue
		}
		if len(ring) < 8 || !ringIsClosed(ring) {
			return false, nil
		}
		if ringSelfIntersects(ring) {
			return false, nil
		}
		rings = append(rings, ring)
	}
	if len(rings) == 0 {
		return true, nil
	}
	shell := rings[0]
	for _, hole := range rings[1:] {
		if !ringWithinRing(hole, shell) {
			return false, nil
		}
	}
	for i := 1; i < len(rings); i++ {
		for j := i + 1; j < len(rings); j++ {
			if ringsCross(rings[i], rings[j]) {
				return false, nil
			}
		}
	}
	return true, nil
}

func ringIsClosed(ring []float64) bool {
	n := len(ring)
	return ring[0] == ring[n-2] && ring[1] == ring[n-1]
}

// ringSelfIntersects reports whether a ring's segments meet anywhere other
// than consecutive shared vertices.
func ringSelfIntersects(ring []float64) bool {
	n := len(ring)/2 - 1
	segAt := func(i int) (geom.Coord, geom.Coord) {
		return geom.Coord(ring[2*i : 2*i+2]), geom.Coord(ring[2*i+2 : 2*i+4])
	}
	for i := 0; i < n; i++ {
		a1, a2 := segAt(i)
		for j := i + 1; j < n; j++ {
			b1, b2 := segAt(j)
			pts, collinear := planar.SegmentIntersection(a1, a2, b1, b2)
			if len(pts) == 0 {
				continue
			}
			if collinear {
				return true
			}
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent && (planar.CoordsEqual(pts[0], a1) || planar.CoordsEqual(pts[0], a2)) {
				continue
			}
			return true
		}
	}
	return false
}

// ringWithinRing reports whether inner lies inside or on outer.
func ringWithinRing(inner, outer []float64) bool {
	for i := 0; i+1 < len(inner); i += 2 {
		if planar.LocateInRingFlat(geom.Coord(inner[i:i+2]), outer) == planar.RingOutside {
			return false
		}
	}
	return true
}

// ringsCross reports whether two rings share more than isolated touch
// points: a collinear edge stretch, or overlapping interiors.
func ringsCross(a, b []float64) bool {
	for i := 0; i+3 < len(a); i += 2 {
		for j := 0; j+3 < len(b); j += 2 {
			_, collinear := planar.SegmentIntersection(
				geom.Coord(a[i:i+2]), geom.Coord(a[i+2:i+4]),
				geom.Coord(b[j:j+2]), geom.Coord(b[j+2:j+4]),
			)
			if collinear {
				return true
			}
		}
	}
	clipped := ringToPolyclip(a).Construct(polyclip.INTERSECTION, ringToPolyclip(b))
	return relate.PolyclipArea(clipped) > 0
}

func ringToPolyclip(ring []float64) polyclip.Polygon {
	parts := &relate.Parts{Polygons: []relate.PolygonPart{{Shell: ring}}}
	return parts.ToPolyclip()
}

// multiPolygonInteriorsDisjoint checks pairwise that member polygons share
// no interior area.
func multiPolygonInteriorsDisjoint(mp *geom.MultiPolygon) bool {
	toPolyclip := func(p *geom.Polygon) polyclip.Polygon {
		parts := &relate.Parts{}
		var pp relate.PolygonPart
		if p.NumLinearRings() > 0 {
			pp.Shell = p.LinearRing(0).FlatCoords()
			for i := 1; i < p.NumLinearRings(); i++ {
				pp.Holes = append(pp.Holes, p.LinearRing(i).FlatCoords())
			}
		}
		parts.Polygons = []relate.PolygonPart{pp}
		return parts.ToPolyclip()
	}
	for i := 0; i < mp.NumPolygons(); i++ {
		for j := i + 1; j < mp.NumPolygons(); j++ {
			clipped := toPolyclip(mp.Polygon(i)).Construct(polyclip.INTERSECTION, toPolyclip(mp.Polygon(j)))
			if relate.PolyclipArea(clipped) > 0 {
				return false
			}
		}
	}
	return true
}
