// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package overlay computes the set-theoretic combination of two
// geometries. Areal parts go through polygon clipping; lower-dimension
// parts are noded and classified by location. Constructed coordinates are
// truncated to the precision model of the left operand's factory, and a
// dimension-losing degeneracy caused by that truncation is reported as a
// geo.TopologyError.
package overlay

import (
	polyclip "github.com/ctessum/polyclip-go"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// Op tags the set-theoretic operation to perform.
type Op int

const (
	// OpIntersection computes a AND b.
	OpIntersection Op = iota
	// OpUnion computes a OR b.
	OpUnion
	// OpDifference computes a AND NOT b.
	OpDifference
	// OpSymDifference computes a XOR b.
	OpSymDifference
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case OpIntersection:
		return "Intersection"
	case OpUnion:
		return "Union"
	case OpDifference:
		return "Difference"
	case OpSymDifference:
		return "SymDifference"
	default:
		return "Unknown"
	}
}

// Overlay combines two non-empty, non-collection geometries. Empty and
// collection operand policy is the dispatcher's business (geomfn); Overlay
// fails on collections.
func Overlay(a *geo.Geometry, b *geo.Geometry, op Op) (*geo.Geometry, error) {
	if a == nil || b == nil {
		return nil, geo.ErrNilGeometry
	}
	if a.ShapeType() == geo.ShapeTypeGeometryCollection ||
		b.ShapeType() == geo.ShapeTypeGeometryCollection {
		return nil, geo.NewUnsupportedCollectionError(op.String())
	}
	partsA, err := relate.Decompose(a)
	if err != nil {
		return nil, err
	}
	partsB, err := relate.Decompose(b)
	if err != nil {
		return nil, err
	}
	bld := newBuilder(a.Factory())
	switch op {
	case OpIntersection:
		return intersection(bld, partsA, partsB)
	case OpUnion:
		return union(bld, partsA, partsB)
	case OpDifference:
		return difference(bld, partsA, partsB)
	default:
		return symDifference(bld, partsA, partsB)
	}
}

func intersection(bld *builder, a, b *relate.Parts) (*geo.Geometry, error) {
	dimA, dimB := a.Dimension(), b.Dimension()
	if dimA > dimB {
		a, b = b, a
		dimA, dimB = dimB, dimA
	}
	// a now has the lower dimension; the result has dimension at most dimA.
	switch dimA {
	case geo.DimPoint:
		var pts []geom.Coord
		for _, p := range a.Points {
			if b.Locate(p) != geo.Exterior {
				pts = append(pts, p)
			}
		}
		return bld.build(pts, nil, nil)
	case geo.DimCurve:
		pts, lines := lineOnIntersection(a, b)
		return bld.build(pts, lines, nil)
	default:
		clipped := a.ToPolyclip().Construct(polyclip.INTERSECTION, b.ToPolyclip())
		if relate.PolyclipArea(clipped) > 0 {
			return bld.build(nil, nil, clipped)
		}
		// Areas that only touch intersect in their boundaries.
		pts, lines := lineOnIntersection(ringParts(a), b)
		if len(pts) == 0 && len(lines) == 0 {
			return bld.build(nil, nil, clipped)
		}
		return bld.build(pts, lines, nil)
	}
}

func union(bld *builder, a, b *relate.Parts) (*geo.Geometry, error) {
	dimA, dimB := a.Dimension(), b.Dimension()
	if dimA == dimB {
		switch dimA {
		case geo.DimPoint:
			return bld.build(dedupeCoords(append(append([]geom.Coord{}, a.Points...), b.Points...)), nil, nil)
		case geo.DimCurve:
			lines := allLineChains(a, b)
			lines = append(lines, lineClearDifference(b, a)...)
			return bld.build(nil, lines, nil)
		default:
			return bld.build(nil, nil, a.ToPolyclip().Construct(polyclip.UNION, b.ToPolyclip()))
		}
	}
	// Mixed dimensions: the higher-dimension operand absorbs the covered
	// part of the lower one; what remains rides along in a collection.
	if dimA < dimB {
		a, b = b, a
	}
	leftoverPts, leftoverLines := lowerMinusHigher(b, a)
	return bld.buildMixedUnion(a, leftoverPts, leftoverLines)
}

func difference(bld *builder, a, b *relate.Parts) (*geo.Geometry, error) {
	dimA, dimB := a.Dimension(), b.Dimension()
	if dimB < dimA {
		// Subtracting a lower-dimension geometry leaves a unchanged.
		return bld.fromParts(a)
	}
	switch dimA {
	case geo.DimPoint:
		var pts []geom.Coord
		for _, p := range a.Points {
			if b.Locate(p) == geo.Exterior {
				pts = append(pts, p)
			}
		}
		return bld.build(pts, nil, nil)
	case geo.DimCurve:
		return bld.build(nil, lineClearDifference(a, b), nil)
	default:
		return bld.build(nil, nil, a.ToPolyclip().Construct(polyclip.DIFFERENCE, b.ToPolyclip()))
	}
}

func symDifference(bld *builder, a, b *relate.Parts) (*geo.Geometry, error) {
	dimA, dimB := a.Dimension(), b.Dimension()
	if dimA == dimB {
		switch dimA {
		case geo.DimPoint:
			var pts []geom.Coord
			for _, p := range a.Points {
				if b.Locate(p) == geo.Exterior {
					pts = append(pts, p)
				}
			}
			for _, p := range b.Points {
				if a.Locate(p) == geo.Exterior {
					pts = append(pts, p)
				}
			}
			return bld.build(dedupeCoords(pts), nil, nil)
		case geo.DimCurve:
			lines := lineClearDifference(a, b)
			lines = append(lines, lineClearDifference(b, a)...)
			return bld.build(nil, lines, nil)
		default:
			return bld.build(nil, nil, a.ToPolyclip().Construct(polyclip.XOR, b.ToPolyclip()))
		}
	}
	// Mixed dimensions: (a - b) plus (b - a), collected together.
	da, err := difference(bld, a, b)
	if err != nil {
		return nil, err
	}
	db, err := difference(bld, b, a)
	if err != nil {
		return nil, err
	}
	return bld.combine(da, db)
}

// UnaryUnion dissolves and nodes the components of a single geometry,
// heterogeneous collections included. Polygonal input always yields a
// polygonal result.
func UnaryUnion(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	parts, err := relate.Decompose(g)
	if err != nil {
		return nil, err
	}
	bld := newBuilder(g.Factory())
	if parts.IsEmpty() {
		if parts.Polygons != nil || g.Dimension() == geo.DimSurface {
			return bld.build(nil, nil, polyclip.Polygon{})
		}
		return bld.build(nil, nil, nil)
	}

	var dissolved polyclip.Polygon
	for i, poly := range parts.Polygons {
		pc := (&relate.Parts{Polygons: []relate.PolygonPart{poly}}).ToPolyclip()
		if i == 0 {
			dissolved = pc
			continue
		}
		dissolved = dissolved.Construct(polyclip.UNION, pc)
	}
	areal := &relate.Parts{Polygons: parts.Polygons}

	var lines [][]geom.Coord
	if len(parts.Lines) > 0 {
		lineParts := &relate.Parts{Lines: parts.Lines}
		cutter := &relate.Parts{Lines: parts.Lines, Polygons: parts.Polygons}
		for _, chain := range nodedChains(lineParts, cutter) {
			for i := 0; i+1 < len(chain); i++ {
				mid := planar.Midpoint(chain[i], chain[i+1])
				if areal.Locate(mid) != geo.Exterior {
					continue
				}
				seg := []geom.Coord{chain[i], chain[i+1]}
				if !containsSegment(lines, seg) {
					lines = append(lines, seg)
				}
			}
		}
		lines = stitchChains(lines)
	}

	var pts []geom.Coord
	if len(parts.Points) > 0 {
		covering := &relate.Parts{Lines: parts.Lines, Polygons: parts.Polygons}
		for _, p := range dedupeCoords(parts.Points) {
			if covering.Locate(p) == geo.Exterior {
				pts = append(pts, p)
			}
		}
	}

	if len(parts.Polygons) > 0 && len(lines) == 0 && len(pts) == 0 {
		return bld.build(nil, nil, dissolved)
	}
	if len(parts.Polygons) == 0 {
		return bld.build(pts, lines, nil)
	}
	return bld.build(pts, lines, dissolved)
}

// lowerMinusHigher returns the points and lines of low not covered by
// high.
func lowerMinusHigher(low, high *relate.Parts) ([]geom.Coord, [][]geom.Coord) {
	switch low.Dimension() {
	case geo.DimPoint:
		var pts []geom.Coord
		for _, p := range low.Points {
			if high.Locate(p) == geo.Exterior {
				pts = append(pts, p)
			}
		}
		return pts, nil
	case geo.DimCurve:
		return nil, lineClearDifference(low, high)
	default:
		return nil, nil
	}
}

// ringParts reinterprets the polygon rings of p as plain lines.
func ringParts(p *relate.Parts) *relate.Parts {
	rings := &relate.Parts{}
	for _, poly := range p.Polygons {
		rings.Lines = append(rings.Lines, poly.Shell)
		rings.Lines = append(rings.Lines, poly.Holes...)
	}
	return rings
}

func dedupeCoords(coords []geom.Coord) []geom.Coord {
	var out []geom.Coord
	for _, c := range coords {
		dup := false
		for _, kept := range out {
			if planar.CoordsEqual(kept, c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}
