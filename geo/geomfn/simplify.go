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
)

// Simplify reduces vertex counts with Douglas-Peucker: an interior vertex
// is dropped when it lies within tolerance of the segment joining its
// anchors. A NaN or negative tolerance is treated as zero. The second
// return is true when the whole geometry degenerates below its dimension;
// with preserveCollapsed such output is instead kept at its minimal vertex
// count. Collapsed members of multi geometries and collections are always
// dropped.
func Simplify(g *geo.Geometry, tolerance float64, preserveCollapsed bool) (*geo.Geometry, bool, error) {
	if g == nil {
		return nil, false, geo.ErrNilGeometry
	}
	if math.IsNaN(tolerance) || tolerance < 0 {
		tolerance = 0
	}
	return simplifyGeom(g, tolerance, preserveCollapsed)
}

func simplifyGeom(g *geo.Geometry, tol float64, preserve bool) (*geo.Geometry, bool, error) {
	if g.IsEmpty() {
		return g, false, nil
	}
	f := g.Factory()
	switch g.ShapeType() {
	case geo.ShapeTypePoint, geo.ShapeTypeMultiPoint:
		return g, false, nil
	case geo.ShapeTypeLineString:
		coords := simplifyChain(g.Coordinates(), tol)
		if chainDegenerate(coords) {
			if !preserve {
				return nil, true, nil
			}
			coords = []geom.Coord{coords[0], coords[len(coords)-1]}
		}
		out, err := f.NewLineString(coords)
		return out, false, err
	case geo.ShapeTypeMultiLineString:
		var lines [][]geom.Coord
		for i := 0; i < g.NumGeometries(); i++ {
			coords := simplifyChain(g.GeometryN(i).Coordinates(), tol)
			if chainDegenerate(coords) {
				continue
			}
			lines = append(lines, coords)
		}
		if len(lines) == 0 {
			if !preserve {
				return nil, true, nil
			}
			return f.NewEmpty(geo.ShapeTypeMultiLineString), false, nil
		}
		out, err := f.NewMultiLineString(lines...)
		return out, false, err
	case geo.ShapeTypePolygon:
		rings, collapsed := simplifyPolygonRings(polygonRingCoords(g.AsGeomT().(*geom.Polygon)), tol, preserve)
		if collapsed {
			return nil, true, nil
		}
		out, err := f.NewPolygon(rings...)
		return out, false, err
	case geo.ShapeTypeMultiPolygon:
		mp := g.AsGeomT().(*geom.MultiPolygon)
		var polys [][][]geom.Coord
		for i := 0; i < mp.NumPolygons(); i++ {
			rings, collapsed := simplifyPolygonRings(polygonRingCoords(mp.Polygon(i)), tol, preserve)
			if collapsed {
				continue
			}
			polys = append(polys, rings)
		}
		if len(polys) == 0 {
			if !preserve {
				return nil, true, nil
			}
			return f.NewEmpty(geo.ShapeTypeMultiPolygon), false, nil
		}
		out, err := f.NewMultiPolygon(polys...)
		return out, false, err
	default:
		var members []*geo.Geometry
		for i := 0; i < g.NumGeometries(); i++ {
			m, collapsed, err := simplifyGeom(g.GeometryN(i), tol, preserve)
			if err != nil {
				return nil, false, err
			}
			if collapsed {
				continue
			}
			members = append(members, m)
		}
		if len(members) == 0 {
			return f.NewEmpty(geo.ShapeTypeGeometryCollection), false, nil
		}
		out, err := f.NewGeometryCollection(members...)
		return out, false, err
	}
}

// simplifyPolygonRings simplifies a shell and its holes. Holes that
// degenerate are dropped; a degenerate shell collapses the polygon unless
// preserve keeps it as the minimal ring over the original's leading
// vertices.
func simplifyPolygonRings(rings [][]geom.Coord, tol float64, preserve bool) ([][]geom.Coord, bool) {
	shell := simplifyChain(rings[0], tol)
	if ringDegenerate(shell) {
		if !preserve {
			return nil, true
		}
		shell = minimalRing(rings[0])
	}
	out := [][]geom.Coord{shell}
	for _, hole := range rings[1:] {
		simplified := simplifyChain(hole, tol)
		if ringDegenerate(simplified) {
			continue
		}
		out = append(out, simplified)
	}
	return out, false
}

func polygonRingCoords(poly *geom.Polygon) [][]geom.Coord {
	rings := make([][]geom.Coord, poly.NumLinearRings())
	for i := range rings {
		rings[i] = poly.LinearRing(i).Coords()
	}
	return rings
}

// simplifyChain keeps the endpoints and recursively keeps the farthest
// interior vertex of any span that strays beyond tolerance.
func simplifyChain(coords []geom.Coord, tol float64) []geom.Coord {
	if len(coords) <= 2 {
		return append([]geom.Coord{}, coords...)
	}
	keep := make([]bool, len(coords))
	keep[0], keep[len(coords)-1] = true, true
	douglasPeucker(coords, keep, 0, len(coords)-1, tol)
	out := make([]geom.Coord, 0, len(coords))
	for i, k := range keep {
		if k {
			out = append(out, coords[i])
		}
	}
	return out
}

func douglasPeucker(coords []geom.Coord, keep []bool, lo, hi int, tol float64) {
	if hi-lo < 2 {
		return
	}
	split, maxDist := -1, 0.0
	for i := lo + 1; i < hi; i++ {
		d := planar.DistancePointSegment(coords[i], coords[lo], coords[hi])
		if d > maxDist {
			maxDist = d
			split = i
		}
	}
	if split < 0 || maxDist <= tol {
		return
	}
	keep[split] = true
	douglasPeucker(coords, keep, lo, split, tol)
	douglasPeucker(coords, keep, split, hi, tol)
}

func chainDegenerate(coords []geom.Coord) bool {
	return len(coords) < 2 ||
		(len(coords) == 2 && planar.CoordsEqual(coords[0], coords[1]))
}

// ringDegenerate reports whether a simplified closed ring no longer bounds
// an area. A valid ring keeps at least three distinct vertices plus the
// closing one.
func ringDegenerate(coords []geom.Coord) bool {
	return len(coords) < 4
}

func minimalRing(orig []geom.Coord) []geom.Coord {
	return []geom.Coord{orig[0], orig[1], orig[2], orig[0]}
}
