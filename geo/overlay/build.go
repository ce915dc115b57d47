// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package overlay

import (
	polyclip "github.com/ctessum/polyclip-go"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// builder assembles overlay output pieces into a single geometry, rounding
// constructed coordinates onto the factory's precision grid and reporting
// dimension-losing collapses.
type builder struct {
	f  *geo.GeometryFactory
	pm *geo.PrecisionModel
}

func newBuilder(f *geo.GeometryFactory) *builder {
	return &builder{f: f, pm: f.PrecisionModel()}
}

// buildArea assembles a pure-area result. A nil clip output still yields a
// polygonal-typed empty geometry.
func (bld *builder) buildArea(pc polyclip.Polygon) (*geo.Geometry, error) {
	if pc == nil {
		pc = polyclip.Polygon{}
	}
	return bld.build(nil, nil, pc)
}

// build rounds and assembles the output pieces. A non-nil polys slice,
// even an empty one, marks the result as areal-kinded so an all-empty
// outcome materializes as an empty Polygon rather than an empty
// collection.
func (bld *builder) build(pts []geom.Coord, lines [][]geom.Coord, polys polyclip.Polygon) (*geo.Geometry, error) {
	areal := polys != nil
	roundedPts := bld.roundPoints(pts)
	roundedLines, err := bld.roundLines(lines)
	if err != nil {
		return nil, err
	}
	polygons, err := bld.nestContours(polys)
	if err != nil {
		return nil, err
	}
	return bld.assemble(roundedPts, roundedLines, polygons, areal)
}

// fromParts rebuilds a geometry from its decomposition, used when an
// operand passes through an overlay unchanged.
func (bld *builder) fromParts(p *relate.Parts) (*geo.Geometry, error) {
	lines := make([][]geom.Coord, 0, len(p.Lines))
	for _, flat := range p.Lines {
		lines = append(lines, chainFromFlat(flat))
	}
	polygons := make([][][]geom.Coord, 0, len(p.Polygons))
	for _, poly := range p.Polygons {
		rings := [][]geom.Coord{chainFromFlat(poly.Shell)}
		for _, hole := range poly.Holes {
			rings = append(rings, chainFromFlat(hole))
		}
		polygons = append(polygons, rings)
	}
	return bld.assemble(dedupeCoords(p.Points), lines, polygons, len(p.Polygons) > 0)
}

// buildMixedUnion assembles the union of a higher-dimension operand kept
// whole with the uncovered leftovers of the lower one.
func (bld *builder) buildMixedUnion(high *relate.Parts, pts []geom.Coord, lines [][]geom.Coord) (*geo.Geometry, error) {
	allLines := make([][]geom.Coord, 0, len(high.Lines)+len(lines))
	for _, flat := range high.Lines {
		allLines = append(allLines, chainFromFlat(flat))
	}
	roundedLines, err := bld.roundLines(lines)
	if err != nil {
		return nil, err
	}
	allLines = append(allLines, roundedLines...)
	polygons := make([][][]geom.Coord, 0, len(high.Polygons))
	for _, poly := range high.Polygons {
		rings := [][]geom.Coord{chainFromFlat(poly.Shell)}
		for _, hole := range poly.Holes {
			rings = append(rings, chainFromFlat(hole))
		}
		polygons = append(polygons, rings)
	}
	return bld.assemble(bld.roundPoints(pts), allLines, polygons, len(high.Polygons) > 0)
}

// combine merges two already-built results into one geometry, flattening
// any collection level.
func (bld *builder) combine(parts ...*geo.Geometry) (*geo.Geometry, error) {
	var members []*geo.Geometry
	for _, g := range parts {
		if g == nil || g.IsEmpty() {
			continue
		}
		if g.ShapeType() == geo.ShapeTypeGeometryCollection {
			for i := 0; i < g.NumGeometries(); i++ {
				members = append(members, g.GeometryN(i))
			}
			continue
		}
		members = append(members, g)
	}
	switch len(members) {
	case 0:
		return bld.f.NewEmpty(geo.ShapeTypeGeometryCollection), nil
	case 1:
		return members[0], nil
	default:
		return bld.f.NewGeometryCollection(members...)
	}
}

func (bld *builder) assemble(pts []geom.Coord, lines [][]geom.Coord, polygons [][][]geom.Coord, areal bool) (*geo.Geometry, error) {
	var pieces []*geo.Geometry
	if len(pts) == 1 {
		pieces = append(pieces, bld.f.NewPoint(pts[0]))
	} else if len(pts) > 1 {
		mp, err := bld.f.NewMultiPoint(pts)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, mp)
	}
	if len(lines) == 1 {
		ls, err := bld.f.NewLineString(lines[0])
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, ls)
	} else if len(lines) > 1 {
		mls, err := bld.f.NewMultiLineString(lines...)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, mls)
	}
	if len(polygons) == 1 {
		p, err := bld.f.NewPolygon(polygons[0]...)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, p)
	} else if len(polygons) > 1 {
		mp, err := bld.f.NewMultiPolygon(polygons...)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, mp)
	}
	switch len(pieces) {
	case 0:
		if areal {
			return bld.f.NewEmpty(geo.ShapeTypePolygon), nil
		}
		return bld.f.NewEmpty(geo.ShapeTypeGeometryCollection), nil
	case 1:
		return pieces[0], nil
	default:
		return bld.f.NewGeometryCollection(pieces...)
	}
}

func (bld *builder) roundCoord(c geom.Coord) geom.Coord {
	return geom.Coord{bld.pm.MakePrecise(c.X()), bld.pm.MakePrecise(c.Y())}
}

func (bld *builder) roundPoints(pts []geom.Coord) []geom.Coord {
	if len(pts) == 0 {
		return nil
	}
	rounded := make([]geom.Coord, 0, len(pts))
	for _, p := range pts {
		rounded = append(rounded, bld.roundCoord(p))
	}
	return dedupeCoords(rounded)
}

// roundLines rounds each chain onto the precision grid. A chain whose
// distinct vertex count drops below two has lost its dimension; that is a
// topology collapse.
func (bld *builder) roundLines(lines [][]geom.Coord) ([][]geom.Coord, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	out := make([][]geom.Coord, 0, len(lines))
	for _, chain := range lines {
		rounded := make([]geom.Coord, 0, len(chain))
		for _, c := range chain {
			rc := bld.roundCoord(c)
			if len(rounded) > 0 && planar.CoordsEqual(rounded[len(rounded)-1], rc) {
				continue
			}
			rounded = append(rounded, rc)
		}
		if len(rounded) < 2 {
			if len(chain) < 2 {
				continue
			}
			return nil, geo.NewTopologyError(
				"line segment collapsed to a point during precision reduction", rounded[0],
			)
		}
		out = append(out, rounded)
	}
	return out, nil
}

// nestContours turns a clip output into polygons: rounded rings are
// classified by containment parity, even-depth rings become shells and
// odd-depth rings become holes of their smallest enclosing shell. Shells
// wind clockwise and holes counterclockwise, matching normalized form.
func (bld *builder) nestContours(pc polyclip.Polygon) ([][][]geom.Coord, error) {
	type ring struct {
		coords []geom.Coord
		flat   []float64
		area   float64
		depth  int
		holes  [][]geom.Coord
	}
	var rings []*ring
	for _, contour := range pc {
		if len(contour) < 3 {
			continue
		}
		coords := make([]geom.Coord, 0, len(contour)+1)
		for _, pt := range contour {
			rc := bld.roundCoord(geom.Coord{pt.X, pt.Y})
			if len(coords) > 0 && planar.CoordsEqual(coords[len(coords)-1], rc) {
				continue
			}
			coords = append(coords, rc)
		}
		if len(coords) > 1 && planar.CoordsEqual(coords[0], coords[len(coords)-1]) {
			coords = coords[:len(coords)-1]
		}
		if len(coords) < 3 {
			if bld.pm.IsFloating() {
				continue
			}
			return nil, geo.NewTopologyError(
				"ring collapsed during precision reduction", coords[0],
			)
		}
		coords = append(coords, coords[0])
		flat := flatFromChain(coords)
		area := planar.SignedAreaFlat(flat)
		if area < 0 {
			area = -area
		}
		if area == 0 {
			if bld.pm.IsFloating() {
				continue
			}
			return nil, geo.NewTopologyError(
				"ring collapsed during precision reduction", coords[0],
			)
		}
		rings = append(rings, &ring{coords: coords, flat: flat, area: area})
	}
	for _, r := range rings {
		for _, other := range rings {
			if other == r {
				continue
			}
			if ringInsideRing(r.flat, other.flat) {
				r.depth++
			}
		}
	}
	for _, r := range rings {
		if r.depth%2 == 0 {
			continue
		}
		// A hole belongs to the smallest shell enclosing it.
		var owner *ring
		for _, shell := range rings {
			if shell.depth%2 != 0 || !ringInsideRing(r.flat, shell.flat) {
				continue
			}
			if owner == nil || shell.area < owner.area {
				owner = shell
			}
		}
		if owner == nil {
			return nil, geo.NewRobustnessError(
				"clip output hole at (%v, %v) has no enclosing shell", r.coords[0].X(), r.coords[0].Y(),
			)
		}
		owner.holes = append(owner.holes, orientRing(r.coords, false))
	}
	var polygons [][][]geom.Coord
	for _, r := range rings {
		if r.depth%2 != 0 {
			continue
		}
		rings := [][]geom.Coord{orientRing(r.coords, true)}
		rings = append(rings, r.holes...)
		polygons = append(polygons, rings)
	}
	return polygons, nil
}

// ringInsideRing reports whether ring a nests inside ring b: some vertex
// of a is strictly inside b and none is strictly outside.
func ringInsideRing(a, b []float64) bool {
	strictlyInside := false
	for i := 0; i+1 < len(a); i += 2 {
		switch planar.LocateInRingFlat(geom.Coord(a[i:i+2]), b) {
		case planar.RingOutside:
			return false
		case planar.RingInside:
			strictlyInside = true
		}
	}
	return strictlyInside
}

// orientRing returns the closed ring wound clockwise or counterclockwise
// as requested.
func orientRing(coords []geom.Coord, clockwise bool) []geom.Coord {
	flat := flatFromChain(coords)
	if planar.IsCCWFlat(flat) == clockwise {
		return reverseChain(coords)
	}
	return coords
}

func chainFromFlat(flat []float64) []geom.Coord {
	coords := make([]geom.Coord, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		coords = append(coords, geom.Coord{flat[i], flat[i+1]})
	}
	return coords
}

func flatFromChain(coords []geom.Coord) []float64 {
	flat := make([]float64, 0, 2*len(coords))
	for _, c := range coords {
		flat = append(flat, c.X(), c.Y())
	}
	return flat
}
