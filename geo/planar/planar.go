// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package planar holds the low-level primitives the relate and overlay
// engines are built from: orientation tests, segment intersection,
// point-in-ring location and distance kernels. Everything operates on
// XY coordinates; vector arithmetic uses golang/geo r2 points.
package planar

import (
	"math"

	"github.com/golang/geo/r2"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// R2 converts a coordinate to an r2 vector.
func R2(c geom.Coord) r2.Point {
	return r2.Point{X: c.X(), Y: c.Y()}
}

// CoordsEqual reports whether two coordinates are the same location.
func CoordsEqual(a, b geom.Coord) bool {
	return a.X() == b.X() && a.Y() == b.Y()
}

// Dist returns the euclidean distance between two coordinates.
func Dist(a, b geom.Coord) float64 {
	return math.Hypot(b.X()-a.X(), b.Y()-a.Y())
}

// Midpoint returns the midpoint of the segment a-b.
func Midpoint(a, b geom.Coord) geom.Coord {
	return geom.Coord{(a.X() + b.X()) / 2, (a.Y() + b.Y()) / 2}
}

// OrientationIndex returns +1 if the walk a->b->c turns counterclockwise,
// -1 if it turns clockwise and 0 if the three points are collinear.
func OrientationIndex(a, b, c geom.Coord) int {
	cross := R2(b).Sub(R2(a)).Cross(R2(c).Sub(R2(a)))
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	default:
		return 0
	}
}

// PointOnSegment reports whether p lies on the closed segment a-b.
func PointOnSegment(p, a, b geom.Coord) bool {
	return xy.IsOnLine(geom.XY, p, []float64{a.X(), a.Y(), b.X(), b.Y()})
}

// SegmentIntersection intersects the closed segments a1-a2 and b1-b2. It
// returns the 0, 1 or 2 points bounding the intersection; collinear is
// true when the segments overlap along a positive-length stretch, in
// which case the two points bound the shared stretch.
func SegmentIntersection(a1, a2, b1, b2 geom.Coord) (pts []geom.Coord, collinear bool) {
	res := lineintersector.LineIntersectsLine(lineintersector.RobustLineIntersector{}, a1, a2, b1, b2)
	if !res.HasIntersection() {
		return nil, false
	}
	pts = res.Intersection()
	if len(pts) == 2 && CoordsEqual(pts[0], pts[1]) {
		pts = pts[:1]
	}
	return pts, len(pts) == 2
}

// RingPosition locates a point relative to a ring.
type RingPosition int

const (
	// RingOutside means the point is outside the ring.
	RingOutside RingPosition = -1
	// RingBoundary means the point lies on the ring itself.
	RingBoundary RingPosition = 0
	// RingInside means the point is enclosed by the ring.
	RingInside RingPosition = 1
)

// LocateInRingFlat locates p relative to a closed ring given as flat XY
// coordinates. Ring orientation does not matter.
func LocateInRingFlat(p geom.Coord, ring []float64) RingPosition {
	n := len(ring) / 2
	if n < 3 {
		return RingOutside
	}
	px, py := p.X(), p.Y()
	inside := false
	for i := 0; i < n-1; i++ {
		x1, y1 := ring[2*i], ring[2*i+1]
		x2, y2 := ring[2*i+2], ring[2*i+3]
		if PointOnSegment(p, geom.Coord{x1, y1}, geom.Coord{x2, y2}) {
			return RingBoundary
		}
		if (y1 > py) != (y2 > py) {
			xCross := x1 + (py-y1)*(x2-x1)/(y2-y1)
			if px < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return RingInside
	}
	return RingOutside
}

// SignedAreaFlat returns the shoelace area of a closed flat ring:
// positive for counterclockwise winding.
func SignedAreaFlat(ring []float64) float64 {
	n := len(ring) / 2
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n-1; i++ {
		x1, y1 := ring[2*i], ring[2*i+1]
		x2, y2 := ring[2*i+2], ring[2*i+3]
		area += x1*y2 - x2*y1
	}
	return area / 2
}

// IsCCWFlat reports whether a closed flat ring winds counterclockwise.
func IsCCWFlat(ring []float64) bool {
	return SignedAreaFlat(ring) > 0
}

// LengthFlat returns the total segment length of a flat coordinate
// sequence.
func LengthFlat(flat []float64) float64 {
	length := 0.0
	for i := 0; i+3 < len(flat); i += 2 {
		length += math.Hypot(flat[i+2]-flat[i], flat[i+3]-flat[i+1])
	}
	return length
}

// DistancePointSegment returns the distance from p to the closed segment
// a-b.
func DistancePointSegment(p, a, b geom.Coord) float64 {
	pv, av, bv := R2(p), R2(a), R2(b)
	ab := bv.Sub(av)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return Dist(p, a)
	}
	t := pv.Sub(av).Dot(ab) / lenSq
	switch {
	case t <= 0:
		return Dist(p, a)
	case t >= 1:
		return Dist(p, b)
	default:
		proj := av.Add(ab.Mul(t))
		return math.Hypot(pv.X-proj.X, pv.Y-proj.Y)
	}
}

// DistanceSegmentSegment returns the distance between the closed segments
// a1-a2 and b1-b2, 0 if they intersect.
func DistanceSegmentSegment(a1, a2, b1, b2 geom.Coord) float64 {
	if pts, _ := SegmentIntersection(a1, a2, b1, b2); len(pts) > 0 {
		return 0
	}
	return math.Min(
		math.Min(DistancePointSegment(a1, b1, b2), DistancePointSegment(a2, b1, b2)),
		math.Min(DistancePointSegment(b1, a1, a2), DistancePointSegment(b2, a1, a2)),
	)
}

// SplitSegment returns the chain of points along the segment a-b: a, the
// cut points ordered by distance from a, then b. Duplicate and
// out-of-segment cuts are dropped.
func SplitSegment(a, b geom.Coord, cuts []geom.Coord) []geom.Coord {
	type cut struct {
		c geom.Coord
		t float64
	}
	ab := R2(b).Sub(R2(a))
	lenSq := ab.Dot(ab)
	ordered := make([]cut, 0, len(cuts))
	for _, c := range cuts {
		if CoordsEqual(c, a) || CoordsEqual(c, b) {
			continue
		}
		if lenSq == 0 || !PointOnSegment(c, a, b) {
			continue
		}
		t := R2(c).Sub(R2(a)).Dot(ab) / lenSq
		ordered = append(ordered, cut{c: c, t: t})
	}
	chain := make([]geom.Coord, 0, len(ordered)+2)
	chain = append(chain, a)
	for len(ordered) > 0 {
		minIdx := 0
		for i := 1; i < len(ordered); i++ {
			if ordered[i].t < ordered[minIdx].t {
				minIdx = i
			}
		}
		next := ordered[minIdx].c
		ordered = append(ordered[:minIdx], ordered[minIdx+1:]...)
		if !CoordsEqual(next, chain[len(chain)-1]) {
			chain = append(chain, next)
		}
	}
	if !CoordsEqual(b, chain[len(chain)-1]) {
		chain = append(chain, b)
	}
	return chain
}
