// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package relate computes DE-9IM intersection matrices for pairs of
// geometries. Operands are decomposed into point, line and ring parts;
// segments are noded against the other operand and the resulting
// sub-segments and vertices are classified by location.
package relate

import (
	polyclip "github.com/ctessum/polyclip-go"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
)

// Relate computes the DE-9IM matrix of two geometries. Neither operand may
// be a GeometryCollection.
func Relate(a *geo.Geometry, b *geo.Geometry) (*geo.IntersectionMatrix, error) {
	if a == nil || b == nil {
		return nil, geo.ErrNilGeometry
	}
	if a.ShapeType() == geo.ShapeTypeGeometryCollection ||
		b.ShapeType() == geo.ShapeTypeGeometryCollection {
		return nil, geo.NewUnsupportedCollectionError("Relate")
	}
	partsA, err := Decompose(a)
	if err != nil {
		return nil, err
	}
	partsB, err := Decompose(b)
	if err != nil {
		return nil, err
	}
	if partsA.IsEmpty() || partsB.IsEmpty() {
		return relateEmpty(a, b, partsA, partsB), nil
	}
	dimA, dimB := partsA.Dimension(), partsB.Dimension()
	switch {
	case dimA == geo.DimPoint && dimB == geo.DimPoint:
		return relatePointPoint(partsA, partsB), nil
	case dimA == geo.DimPoint && dimB == geo.DimCurve:
		return relatePointLine(partsA, partsB), nil
	case dimA == geo.DimCurve && dimB == geo.DimPoint:
		return relatePointLine(partsB, partsA).Transpose(), nil
	case dimA == geo.DimPoint && dimB == geo.DimSurface:
		return relatePointArea(partsA, partsB), nil
	case dimA == geo.DimSurface && dimB == geo.DimPoint:
		return relatePointArea(partsB, partsA).Transpose(), nil
	case dimA == geo.DimCurve && dimB == geo.DimCurve:
		return relateLineLine(partsA, partsB), nil
	case dimA == geo.DimCurve && dimB == geo.DimSurface:
		return relateLineArea(partsA, partsB), nil
	case dimA == geo.DimSurface && dimB == geo.DimCurve:
		return relateLineArea(partsB, partsA).Transpose(), nil
	default:
		return relateAreaArea(partsA, partsB), nil
	}
}

// relateEmpty handles matrices with at least one empty operand: only the
// exterior cells can be occupied.
func relateEmpty(a, b *geo.Geometry, partsA, partsB *Parts) *geo.IntersectionMatrix {
	im := geo.NewIntersectionMatrix()
	im.Set(geo.Exterior, geo.Exterior, geo.DimSurface)
	if !partsA.IsEmpty() {
		im.Set(geo.Interior, geo.Exterior, a.Dimension())
		im.Set(geo.Boundary, geo.Exterior, a.BoundaryDimension())
	}
	if !partsB.IsEmpty() {
		im.Set(geo.Exterior, geo.Interior, b.Dimension())
		im.Set(geo.Exterior, geo.Boundary, b.BoundaryDimension())
	}
	return im
}

func newMatrix() *geo.IntersectionMatrix {
	im := geo.NewIntersectionMatrix()
	im.Set(geo.Exterior, geo.Exterior, geo.DimSurface)
	return im
}

func relatePointPoint(a, b *Parts) *geo.IntersectionMatrix {
	im := newMatrix()
	for _, p := range a.Points {
		if b.Locate(p) == geo.Interior {
			im.SetAtLeast(geo.Interior, geo.Interior, geo.DimPoint)
		} else {
			im.SetAtLeast(geo.Interior, geo.Exterior, geo.DimPoint)
		}
	}
	for _, p := range b.Points {
		if a.Locate(p) != geo.Interior {
			im.SetAtLeast(geo.Exterior, geo.Interior, geo.DimPoint)
		}
	}
	return im
}

// relatePointLine relates points a against lines b.
func relatePointLine(a, b *Parts) *geo.IntersectionMatrix {
	im := newMatrix()
	for _, p := range a.Points {
		im.SetAtLeast(geo.Interior, b.Locate(p), geo.DimPoint)
	}
	// Finitely many points never cover a curve.
	im.Set(geo.Exterior, geo.Interior, geo.DimCurve)
	for _, bp := range b.BoundaryPoints() {
		if a.Locate(bp) == geo.Exterior {
			im.SetAtLeast(geo.Exterior, geo.Boundary, geo.DimPoint)
		}
	}
	return im
}

// relatePointArea relates points a against polygons b.
func relatePointArea(a, b *Parts) *geo.IntersectionMatrix {
	im := newMatrix()
	for _, p := range a.Points {
		im.SetAtLeast(geo.Interior, b.Locate(p), geo.DimPoint)
	}
	im.Set(geo.Exterior, geo.Interior, geo.DimSurface)
	im.Set(geo.Exterior, geo.Boundary, geo.DimCurve)
	return im
}

func relateLineLine(a, b *Parts) *geo.IntersectionMatrix {
	im := newMatrix()
	// Sub-segments of a on or off b.
	for _, chain := range nodeAgainst(a.LineSegments(), b.LineSegments()) {
		for i := 0; i+1 < len(chain); i++ {
			mid := planar.Midpoint(chain[i], chain[i+1])
			if b.Locate(mid) == geo.Exterior {
				im.SetAtLeast(geo.Interior, geo.Exterior, geo.DimCurve)
			} else {
				im.SetAtLeast(geo.Interior, geo.Interior, geo.DimCurve)
			}
		}
		// Isolated contacts at noding vertices.
		for _, v := range chain {
			locA, locB := a.Locate(v), b.Locate(v)
			if locA != geo.Exterior && locB != geo.Exterior {
				im.SetAtLeast(locA, locB, geo.DimPoint)
			}
		}
	}
	for _, chain := range nodeAgainst(b.LineSegments(), a.LineSegments()) {
		for i := 0; i+1 < len(chain); i++ {
			mid := planar.Midpoint(chain[i], chain[i+1])
			if a.Locate(mid) == geo.Exterior {
				im.SetAtLeast(geo.Exterior, geo.Interior, geo.DimCurve)
			}
		}
	}
	for _, bp := range a.BoundaryPoints() {
		im.SetAtLeast(geo.Boundary, b.Locate(bp), geo.DimPoint)
	}
	for _, bp := range b.BoundaryPoints() {
		im.SetAtLeast(a.Locate(bp), geo.Boundary, geo.DimPoint)
	}
	return im
}

// relateLineArea relates lines a against polygons b.
func relateLineArea(a, b *Parts) *geo.IntersectionMatrix {
	im := newMatrix()
	// A curve never covers a surface interior.
	im.Set(geo.Exterior, geo.Interior, geo.DimSurface)
	aBoundary := a.BoundaryPoints()
	for _, chain := range nodeAgainst(a.LineSegments(), b.RingSegments()) {
		for i := 0; i+1 < len(chain); i++ {
			mid := planar.Midpoint(chain[i], chain[i+1])
			switch b.Locate(mid) {
			case geo.Interior:
				im.SetAtLeast(geo.Interior, geo.Interior, geo.DimCurve)
			case geo.Boundary:
				im.SetAtLeast(geo.Interior, geo.Boundary, geo.DimCurve)
			default:
				im.SetAtLeast(geo.Interior, geo.Exterior, geo.DimCurve)
			}
		}
		// A touch at a single vertex contributes a 0-dimensional
		// interior/boundary intersection.
		for _, v := range chain {
			if b.Locate(v) != geo.Boundary {
				continue
			}
			if containsCoord(aBoundary, v) {
				continue
			}
			im.SetAtLeast(geo.Interior, geo.Boundary, geo.DimPoint)
		}
	}
	for _, bp := range aBoundary {
		im.SetAtLeast(geo.Boundary, b.Locate(bp), geo.DimPoint)
	}
	// Is any stretch of b's boundary clear of a?
	for _, chain := range nodeAgainst(b.RingSegments(), a.LineSegments()) {
		for i := 0; i+1 < len(chain); i++ {
			mid := planar.Midpoint(chain[i], chain[i+1])
			if a.Locate(mid) == geo.Exterior {
				im.SetAtLeast(geo.Exterior, geo.Boundary, geo.DimCurve)
			}
		}
	}
	return im
}

func relateAreaArea(a, b *Parts) *geo.IntersectionMatrix {
	im := newMatrix()
	pcA, pcB := a.ToPolyclip(), b.ToPolyclip()
	if PolyclipArea(pcA.Construct(polyclip.INTERSECTION, pcB)) > 0 {
		im.Set(geo.Interior, geo.Interior, geo.DimSurface)
	}
	if PolyclipArea(pcA.Construct(polyclip.DIFFERENCE, pcB)) > 0 {
		im.Set(geo.Interior, geo.Exterior, geo.DimSurface)
	}
	if PolyclipArea(pcB.Construct(polyclip.DIFFERENCE, pcA)) > 0 {
		im.Set(geo.Exterior, geo.Interior, geo.DimSurface)
	}
	for _, chain := range nodeAgainst(a.RingSegments(), b.RingSegments()) {
		for i := 0; i+1 < len(chain); i++ {
			mid := planar.Midpoint(chain[i], chain[i+1])
			switch b.Locate(mid) {
			case geo.Interior:
				im.SetAtLeast(geo.Boundary, geo.Interior, geo.DimCurve)
			case geo.Boundary:
				im.SetAtLeast(geo.Boundary, geo.Boundary, geo.DimCurve)
			default:
				im.SetAtLeast(geo.Boundary, geo.Exterior, geo.DimCurve)
			}
		}
		for _, v := range chain {
			if b.Locate(v) == geo.Boundary {
				im.SetAtLeast(geo.Boundary, geo.Boundary, geo.DimPoint)
			}
		}
	}
	for _, chain := range nodeAgainst(b.RingSegments(), a.RingSegments()) {
		for i := 0; i+1 < len(chain); i++ {
			mid := planar.Midpoint(chain[i], chain[i+1])
			switch a.Locate(mid) {
			case geo.Interior:
				im.SetAtLeast(geo.Interior, geo.Boundary, geo.DimCurve)
			case geo.Exterior:
				im.SetAtLeast(geo.Exterior, geo.Boundary, geo.DimCurve)
			}
		}
	}
	return im
}

// nodeAgainst splits each segment at its intersections with the cutter
// segments, returning one chain of points per input segment.
func nodeAgainst(segs, cutters [][2]geom.Coord) [][]geom.Coord {
	chains := make([][]geom.Coord, 0, len(segs))
	for _, seg := range segs {
		var cuts []geom.Coord
		for _, cutter := range cutters {
			pts, _ := planar.SegmentIntersection(seg[0], seg[1], cutter[0], cutter[1])
			cuts = append(cuts, pts...)
		}
		chains = append(chains, planar.SplitSegment(seg[0], seg[1], cuts))
	}
	return chains
}

func containsCoord(coords []geom.Coord, c geom.Coord) bool {
	for _, candidate := range coords {
		if planar.CoordsEqual(candidate, c) {
			return true
		}
	}
	return false
}
