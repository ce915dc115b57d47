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

// LineCrossingDirectionValue encodes how one LineString crosses another,
// matching the PostGIS ST_LineCrossingDirection value set.
type LineCrossingDirectionValue int

const (
	// LineMultiCrossToSameFirstLeft is an even number of crossings whose
	// first crossing goes left.
	LineMultiCrossToSameFirstLeft LineCrossingDirectionValue = -3
	// LineMultiCrossToLeft is multiple crossings ending on the left side.
	LineMultiCrossToLeft LineCrossingDirectionValue = -2
	// LineCrossLeft is a single crossing to the left.
	LineCrossLeft LineCrossingDirectionValue = -1
	// LineNoCross means the lines do not cross.
	LineNoCross LineCrossingDirectionValue = 0
	// LineCrossRight is a single crossing to the right.
	LineCrossRight LineCrossingDirectionValue = 1
	// LineMultiCrossToRight is multiple crossings ending on the right side.
	LineMultiCrossToRight LineCrossingDirectionValue = 2
	// LineMultiCrossToSameFirstRight is an even number of crossings whose
	// first crossing goes right.
	LineMultiCrossToSameFirstRight LineCrossingDirectionValue = 3
)

type segmentCrossing int

const (
	segmentNoCrossing segmentCrossing = iota
	segmentCrossingLeft
	segmentCrossingRight
)

// LineCrossingDirection reports whether and how b crosses a, seen from a's
// direction of travel. Touches that do not carry b to the other side do
// not count as crossings.
func LineCrossingDirection(a *geo.Geometry, b *geo.Geometry) (LineCrossingDirectionValue, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return LineNoCross, err
	}
	if a.ShapeType() != geo.ShapeTypeLineString || b.ShapeType() != geo.ShapeTypeLineString {
		return LineNoCross, errors.Newf("arguments must be LINESTRING")
	}
	p := a.Coordinates()
	q := b.Coordinates()
	if len(p) < 2 || len(q) < 2 {
		return LineNoCross, nil
	}

	crossLeft, crossRight := 0, 0
	first := segmentNoCrossing
	for j := 1; j < len(q); j++ {
		for i := 1; i < len(p); i++ {
			switch crossingOfSegments(p[i-1], p[i], q[j-1], q[j]) {
			case segmentCrossingLeft:
				crossLeft++
				if first == segmentNoCrossing {
					first = segmentCrossingLeft
				}
			case segmentCrossingRight:
				crossRight++
				if first == segmentNoCrossing {
					first = segmentCrossingRight
				}
			}
		}
	}

	switch {
	case crossLeft == 0 && crossRight == 0:
		return LineNoCross, nil
	case crossLeft == 0 && crossRight == 1:
		return LineCrossRight, nil
	case crossRight == 0 && crossLeft == 1:
		return LineCrossLeft, nil
	case crossLeft-crossRight == 1:
		return LineMultiCrossToLeft, nil
	case crossLeft-crossRight == -1:
		return LineMultiCrossToRight, nil
	case first == segmentCrossingLeft:
		return LineMultiCrossToSameFirstLeft, nil
	default:
		return LineMultiCrossToSameFirstRight, nil
	}
}

// side returns positive when q lies to the right of the directed segment
// p1-p2, negative on the left and zero on the line.
func side(p1, p2, q geom.Coord) int {
	return -planar.OrientationIndex(p1, p2, q)
}

// crossingOfSegments classifies the interaction of segment q1-q2 with
// segment p1-p2. A crossing is counted on the vertex starting a segment
// but not on the vertex ending one, so a polyline touching through shared
// vertices is counted exactly once.
func crossingOfSegments(p1, p2, q1, q2 geom.Coord) segmentCrossing {
	pq1 := side(p1, p2, q1)
	pq2 := side(p1, p2, q2)
	qp1 := side(q1, q2, p1)
	qp2 := side(q1, q2, p2)

	if (pq1 > 0 && pq2 > 0) || (pq1 < 0 && pq2 < 0) ||
		(qp1 > 0 && qp2 > 0) || (qp1 < 0 && qp2 < 0) {
		return segmentNoCrossing
	}
	if pq1 == 0 && pq2 == 0 && qp1 == 0 && qp2 == 0 {
		// Collinear overlap carries no side change.
		return segmentNoCrossing
	}
	if pq2 == 0 || qp2 == 0 {
		return segmentNoCrossing
	}
	if pq1 == 0 {
		if pq2 > 0 {
			return segmentCrossingRight
		}
		return segmentCrossingLeft
	}
	if pq1 < pq2 {
		return segmentCrossingRight
	}
	return segmentCrossingLeft
}
