// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"sort"

	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo/planar"
)

// CoordinateComparator orders two coordinates, returning a negative,
// zero or positive value. Callers may supply one to Compare for custom
// tolerance or ordinate handling; CompareCoords is the default.
type CoordinateComparator func(a, b geom.Coord) int

// CompareCoords orders coordinates by x, then y.
func CompareCoords(a, b geom.Coord) int {
	switch {
	case a.X() < b.X():
		return -1
	case a.X() > b.X():
		return 1
	case a.Y() < b.Y():
		return -1
	case a.Y() > b.Y():
		return 1
	default:
		return 0
	}
}

// Compare orders geometries by shape kind first (the ShapeType constant
// order), then empty before non-empty, then lexicographic vertex
// comparison per variant. The result is a strict total order suitable for
// sorting and deduplication; it says nothing about topological equality.
func (g *Geometry) Compare(other *Geometry) int {
	return g.CompareUsing(other, CompareCoords)
}

// CompareUsing is Compare with a caller-supplied coordinate comparator.
func (g *Geometry) CompareUsing(other *Geometry, cmp CoordinateComparator) int {
	return compareGeomT(g.t, other.t, cmp)
}

func compareGeomT(a, b geom.T, cmp CoordinateComparator) int {
	if d := int(shapeTypeOf(a)) - int(shapeTypeOf(b)); d != 0 {
		return sign(d)
	}
	aEmpty, bEmpty := geomTIsEmpty(a), geomTIsEmpty(b)
	switch {
	case aEmpty && bEmpty:
		return 0
	case aEmpty:
		return -1
	case bEmpty:
		return 1
	}
	return compareSameClassGeomT(a, b, cmp)
}

func compareSameClassGeomT(a, b geom.T, cmp CoordinateComparator) int {
	switch a := a.(type) {
	case *geom.Point, *geom.LineString, *geom.LinearRing:
		return compareFlatSeqs(a.FlatCoords(), b.FlatCoords(), cmp)
	case *geom.Polygon:
		return comparePolygons(a, b.(*geom.Polygon), cmp)
	default:
		return compareCollections(childGeomTs(a), childGeomTs(b), cmp)
	}
}

func comparePolygons(a, b *geom.Polygon, cmp CoordinateComparator) int {
	if d := compareFlatSeqs(polygonRingFlat(a, 0), polygonRingFlat(b, 0), cmp); d != 0 {
		return d
	}
	if d := a.NumLinearRings() - b.NumLinearRings(); d != 0 {
		return sign(d)
	}
	for i := 1; i < a.NumLinearRings(); i++ {
		if d := compareFlatSeqs(polygonRingFlat(a, i), polygonRingFlat(b, i), cmp); d != 0 {
			return d
		}
	}
	return 0
}

func compareCollections(a, b []geom.T, cmp CoordinateComparator) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if d := compareGeomT(a[i], b[i], cmp); d != 0 {
			return d
		}
	}
	return sign(len(a) - len(b))
}

func compareFlatSeqs(a, b []float64, cmp CoordinateComparator) int {
	na, nb := len(a)/2, len(b)/2
	for i := 0; i < na && i < nb; i++ {
		if d := cmp(geom.Coord(a[2*i:2*i+2]), geom.Coord(b[2*i:2*i+2])); d != 0 {
			return sign(d)
		}
	}
	return sign(na - nb)
}

func childGeomTs(t geom.T) []geom.T {
	switch t := t.(type) {
	case *geom.MultiPoint:
		children := make([]geom.T, t.NumPoints())
		for i := range children {
			children[i] = t.Point(i)
		}
		return children
	case *geom.MultiLineString:
		children := make([]geom.T, t.NumLineStrings())
		for i := range children {
			children[i] = t.LineString(i)
		}
		return children
	case *geom.MultiPolygon:
		children := make([]geom.T, t.NumPolygons())
		for i := range children {
			children[i] = t.Polygon(i)
		}
		return children
	case *geom.GeometryCollection:
		return t.Geoms()
	default:
		return []geom.T{t}
	}
}

func polygonRingFlat(p *geom.Polygon, i int) []float64 {
	return p.LinearRing(i).FlatCoords()
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Normalize converts the geometry to canonical form in place: line
// directions are normalized, ring start points are rotated to the minimum
// vertex, shells wind clockwise and holes counterclockwise, and collection
// members are sorted into Compare order. The point set is unchanged, so
// the envelope cache stays valid.
func (g *Geometry) Normalize() {
	g.t = normalizeGeomT(g.t)
}

// Normalized returns a normalized deep copy, leaving g untouched.
func (g *Geometry) Normalized() *Geometry {
	c := g.Clone()
	c.Normalize()
	return c
}

func normalizeGeomT(t geom.T) geom.T {
	switch t := t.(type) {
	case *geom.Point:
		return t
	case *geom.MultiPoint:
		return normalizeMultiPoint(t)
	case *geom.LineString:
		flat := cloneFloats(t.FlatCoords())
		normalizeLineDirection(flat)
		return geom.NewLineStringFlat(geom.XY, flat).SetSRID(t.SRID())
	case *geom.LinearRing:
		flat := normalizeRing(cloneFloats(t.FlatCoords()), false)
		return geom.NewLinearRingFlat(geom.XY, flat).SetSRID(t.SRID())
	case *geom.Polygon:
		return normalizePolygon(t)
	case *geom.MultiLineString:
		return normalizeMultiLineString(t)
	case *geom.MultiPolygon:
		return normalizeMultiPolygon(t)
	case *geom.GeometryCollection:
		children := make([]geom.T, 0, t.NumGeoms())
		for _, child := range t.Geoms() {
			children = append(children, normalizeGeomT(cloneGeomT(child)))
		}
		sortGeomTs(children)
		gc := geom.NewGeometryCollection()
		for _, child := range children {
			gc.MustPush(child)
		}
		return gc.SetSRID(t.SRID())
	default:
		return t
	}
}

func normalizeMultiPoint(t *geom.MultiPoint) *geom.MultiPoint {
	flat := cloneFloats(t.FlatCoords())
	n := len(flat) / 2
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return CompareCoords(geom.Coord(flat[2*idx[a]:2*idx[a]+2]), geom.Coord(flat[2*idx[b]:2*idx[b]+2])) < 0
	})
	sorted := make([]float64, 0, len(flat))
	for _, i := range idx {
		sorted = append(sorted, flat[2*i], flat[2*i+1])
	}
	return geom.NewMultiPointFlat(geom.XY, sorted).SetSRID(t.SRID())
}

func normalizePolygon(t *geom.Polygon) *geom.Polygon {
	var flat []float64
	var ends []int
	for i := 0; i < t.NumLinearRings(); i++ {
		// Shells wind clockwise, holes counterclockwise.
		ring := normalizeRing(cloneFloats(polygonRingFlat(t, i)), i == 0)
		flat = append(flat, ring...)
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends).SetSRID(t.SRID())
}

func normalizeMultiLineString(t *geom.MultiLineString) *geom.MultiLineString {
	lines := make([][]float64, t.NumLineStrings())
	for i := range lines {
		lines[i] = cloneFloats(t.LineString(i).FlatCoords())
		normalizeLineDirection(lines[i])
	}
	sort.SliceStable(lines, func(a, b int) bool {
		return compareFlatSeqs(lines[a], lines[b], CompareCoords) < 0
	})
	var flat []float64
	var ends []int
	for _, line := range lines {
		flat = append(flat, line...)
		ends = append(ends, len(flat))
	}
	return geom.NewMultiLineStringFlat(geom.XY, flat, ends).SetSRID(t.SRID())
}

func normalizeMultiPolygon(t *geom.MultiPolygon) *geom.MultiPolygon {
	polys := make([]*geom.Polygon, t.NumPolygons())
	for i := range polys {
		polys[i] = normalizePolygon(t.Polygon(i))
	}
	sort.SliceStable(polys, func(a, b int) bool {
		return compareGeomT(polys[a], polys[b], CompareCoords) < 0
	})
	var flat []float64
	var endss [][]int
	for _, p := range polys {
		var ends []int
		for i := 0; i < p.NumLinearRings(); i++ {
			flat = append(flat, polygonRingFlat(p, i)...)
			ends = append(ends, len(flat))
		}
		endss = append(endss, ends)
	}
	return geom.NewMultiPolygonFlat(geom.XY, flat, endss).SetSRID(t.SRID())
}

func sortGeomTs(ts []geom.T) {
	sort.SliceStable(ts, func(a, b int) bool {
		return compareGeomT(ts[a], ts[b], CompareCoords) < 0
	})
}

// normalizeLineDirection reverses a flat coordinate sequence in place if
// its reverse reads lexicographically smaller.
func normalizeLineDirection(flat []float64) {
	n := len(flat) / 2
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		d := CompareCoords(geom.Coord(flat[2*i:2*i+2]), geom.Coord(flat[2*j:2*j+2]))
		if d == 0 {
			continue
		}
		if d > 0 {
			reverseFlat(flat)
		}
		return
	}
}

// normalizeRing rotates a closed ring so its minimum vertex comes first
// and orients it clockwise or counterclockwise as requested. The input is
// returned unchanged if it is empty.
func normalizeRing(flat []float64, clockwise bool) []float64 {
	if len(flat) < 8 {
		return flat
	}
	open := flat[:len(flat)-2]
	if planar.IsCCWFlat(flat) == clockwise {
		reverseFlat(open)
	}
	minIdx := 0
	n := len(open) / 2
	for i := 1; i < n; i++ {
		if CompareCoords(geom.Coord(open[2*i:2*i+2]), geom.Coord(open[2*minIdx:2*minIdx+2])) < 0 {
			minIdx = i
		}
	}
	rotated := make([]float64, 0, len(flat))
	rotated = append(rotated, open[2*minIdx:]...)
	rotated = append(rotated, open[:2*minIdx]...)
	rotated = append(rotated, rotated[0], rotated[1])
	return rotated
}

func reverseFlat(flat []float64) {
	n := len(flat) / 2
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		flat[2*i], flat[2*j] = flat[2*j], flat[2*i]
		flat[2*i+1], flat[2*j+1] = flat[2*j+1], flat[2*i+1]
	}
}
