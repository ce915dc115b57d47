// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package overlay

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
	"github.com/golang/geo/r2"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// EndCapStyle selects the shape a buffered line ends with.
type EndCapStyle int

const (
	// EndCapRound closes line ends with a semicircle of radius distance.
	EndCapRound EndCapStyle = iota + 1
	// EndCapButt cuts line ends off flat at the endpoint.
	EndCapButt
	// EndCapSquare extends line ends by distance and cuts them off flat.
	EndCapSquare
)

// BufferParams tunes the buffer construction.
type BufferParams struct {
	// QuadrantSegments is the number of segments a quarter circle is
	// approximated with. Values < 1 fall back to the default of 8.
	QuadrantSegments int
	// EndCapStyle selects the line end treatment; the zero value means
	// round.
	EndCapStyle EndCapStyle
}

// DefaultBufferParams returns round end caps with 8 segments per quadrant.
func DefaultBufferParams() BufferParams {
	return BufferParams{QuadrantSegments: 8, EndCapStyle: EndCapRound}
}

func (p BufferParams) normalized() BufferParams {
	if p.QuadrantSegments < 1 {
		p.QuadrantSegments = 8
	}
	if p.EndCapStyle == 0 {
		p.EndCapStyle = EndCapRound
	}
	return p
}

// Buffer returns the region within distance of g as an areal geometry.
// Collection input is buffered memberwise and dissolved. A non-positive
// distance erodes areal input and empties everything else.
func Buffer(g *geo.Geometry, distance float64, params BufferParams) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	params = params.normalized()
	parts, err := relate.Decompose(g)
	if err != nil {
		return nil, err
	}
	bld := newBuilder(g.Factory())
	if parts.IsEmpty() {
		return bld.buildArea(nil)
	}
	if distance <= 0 {
		return negativeBuffer(bld, parts, distance)
	}

	var acc polyclip.Polygon
	for _, p := range parts.Points {
		acc = accumulate(acc, circleContour(p, distance, params.QuadrantSegments))
	}
	for _, line := range parts.Lines {
		acc = accumulateLine(acc, line, distance, params)
	}
	for _, poly := range parts.Polygons {
		body := (&relate.Parts{Polygons: []relate.PolygonPart{poly}}).ToPolyclip()
		acc = accumulatePolyclip(acc, body)
		acc = accumulatePolyclip(acc, ringCapsules(poly, distance, params.QuadrantSegments))
	}
	return bld.buildArea(acc)
}

// negativeBuffer erodes the areal components by |distance|; lower
// dimension components vanish.
func negativeBuffer(bld *builder, parts *relate.Parts, distance float64) (*geo.Geometry, error) {
	if len(parts.Polygons) == 0 {
		return bld.buildArea(nil)
	}
	body := (&relate.Parts{Polygons: parts.Polygons}).ToPolyclip()
	if distance == 0 {
		return bld.buildArea(body)
	}
	var trim polyclip.Polygon
	for _, poly := range parts.Polygons {
		trim = accumulatePolyclip(trim, ringCapsules(poly, -distance, 8))
	}
	return bld.buildArea(body.Construct(polyclip.DIFFERENCE, trim))
}

func accumulate(acc polyclip.Polygon, contour polyclip.Contour) polyclip.Polygon {
	return accumulatePolyclip(acc, polyclip.Polygon{contour})
}

func accumulatePolyclip(acc, p polyclip.Polygon) polyclip.Polygon {
	if len(p) == 0 {
		return acc
	}
	if len(acc) == 0 {
		return p
	}
	out := acc.Construct(polyclip.UNION, p)
	// polyclip returns no contours when one operand lies wholly inside
	// the other. The union is then the containing operand.
	if len(out) == 0 {
		if relate.PolyclipArea(p) > relate.PolyclipArea(acc) {
			return p
		}
		return acc
	}
	return out
}

// accumulateLine unions the capsules of one line's segments into acc,
// applying the end cap style at the chain's true ends. Interior bends are
// always joined round.
func accumulateLine(acc polyclip.Polygon, flat []float64, distance float64, params BufferParams) polyclip.Polygon {
	n := len(flat) / 2
	closed := lineFlatClosed(flat)
	for i := 0; i+1 < n; i++ {
		a := geom.Coord(flat[2*i : 2*i+2])
		b := geom.Coord(flat[2*i+2 : 2*i+4])
		if planar.CoordsEqual(a, b) {
			continue
		}
		roundStart := params.EndCapStyle == EndCapRound || closed || i > 0
		roundEnd := params.EndCapStyle == EndCapRound || closed || i+2 < n
		acc = accumulate(acc, capsuleContour(a, b, distance, params, roundStart, roundEnd))
		// A flat-capped segment leaves a wedge open on the outside of a
		// bend; a vertex disk closes it.
		if params.EndCapStyle != EndCapRound && (i > 0 || closed) {
			acc = accumulate(acc, circleContour(a, distance, params.QuadrantSegments))
		}
	}
	return acc
}

// ringCapsules returns the union of round capsules along every ring of a
// polygon part.
func ringCapsules(poly relate.PolygonPart, distance float64, quadrantSegments int) polyclip.Polygon {
	params := BufferParams{QuadrantSegments: quadrantSegments, EndCapStyle: EndCapRound}
	var acc polyclip.Polygon
	acc = accumulateLine(acc, poly.Shell, distance, params)
	for _, hole := range poly.Holes {
		acc = accumulateLine(acc, hole, distance, params)
	}
	return acc
}

// circleContour approximates a circle with 4*quadrantSegments vertices.
func circleContour(center geom.Coord, radius float64, quadrantSegments int) polyclip.Contour {
	n := 4 * quadrantSegments
	contour := make(polyclip.Contour, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		contour = append(contour, polyclip.Point{
			X: center.X() + radius*math.Cos(angle),
			Y: center.Y() + radius*math.Sin(angle),
		})
	}
	return contour
}

// capsuleContour traces the offset outline of the segment a-b: two sides
// at distance, with each end either a semicircular arc, a flat cut, or a
// flat cut pushed out by distance.
func capsuleContour(a, b geom.Coord, distance float64, params BufferParams, roundStart, roundEnd bool) polyclip.Contour {
	av, bv := planar.R2(a), planar.R2(b)
	dir := bv.Sub(av).Normalize()
	perp := r2.Point{X: -dir.Y, Y: dir.X}.Mul(distance)
	startCut, endCut := av, bv
	if !roundStart && params.EndCapStyle == EndCapSquare {
		startCut = av.Sub(dir.Mul(distance))
	}
	if !roundEnd && params.EndCapStyle == EndCapSquare {
		endCut = bv.Add(dir.Mul(distance))
	}

	var contour polyclip.Contour
	push := func(p r2.Point) {
		contour = append(contour, polyclip.Point{X: p.X, Y: p.Y})
	}
	push(startCut.Add(perp))
	push(endCut.Add(perp))
	if roundEnd {
		appendArc(&contour, bv, perp, dir.Mul(distance), params.QuadrantSegments)
	}
	push(endCut.Sub(perp))
	push(startCut.Sub(perp))
	if roundStart {
		appendArc(&contour, av, perp.Mul(-1), dir.Mul(-distance), params.QuadrantSegments)
	}
	return contour
}

// appendArc traces a semicircle around center from the +from offset
// through the mid offset to -from, exclusive of both endpoints.
func appendArc(contour *polyclip.Contour, center, from, mid r2.Point, quadrantSegments int) {
	steps := 2 * quadrantSegments
	startAngle := math.Atan2(from.Y, from.X)
	midAngle := math.Atan2(mid.Y, mid.X)
	// Sweep through mid: pick the signed half-turn direction that passes
	// the mid offset after a quarter turn.
	sweep := math.Pi
	if normalizeAngle(midAngle-startAngle) > math.Pi {
		sweep = -math.Pi
	}
	radius := from.Norm()
	for i := 1; i < steps; i++ {
		angle := startAngle + sweep*float64(i)/float64(steps)
		*contour = append(*contour, polyclip.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
}

// normalizeAngle maps an angle into [0, 2*pi).
func normalizeAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func lineFlatClosed(flat []float64) bool {
	n := len(flat)
	return n >= 4 && flat[0] == flat[n-2] && flat[1] == flat[n-1]
}
