// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"math"
	"sort"

	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// Centroid returns the center of mass of g as a Point. Only the highest
// dimension components contribute: areal mass dominates linear mass
// dominates point mass. An empty geometry yields an empty Point.
func Centroid(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	f := g.Factory()
	parts, err := relate.Decompose(g)
	if err != nil {
		return nil, err
	}
	c, ok := centroidCoord(parts)
	if !ok {
		return f.NewEmpty(geo.ShapeTypePoint), nil
	}
	return f.NewPoint(c), nil
}

func centroidCoord(parts *relate.Parts) (geom.Coord, bool) {
	switch parts.Dimension() {
	case geo.DimSurface:
		return arealCentroid(parts)
	case geo.DimCurve:
		return linearCentroid(parts)
	case geo.DimPoint:
		return pointCentroid(parts)
	default:
		return nil, false
	}
}

func arealCentroid(parts *relate.Parts) (geom.Coord, bool) {
	totalArea, sumX, sumY := 0.0, 0.0, 0.0
	accumulate := func(ring []float64, weight float64) {
		area := absArea(ring)
		if area == 0 {
			return
		}
		cx, cy := ringCentroid(ring)
		totalArea += weight * area
		sumX += weight * area * cx
		sumY += weight * area * cy
	}
	for _, poly := range parts.Polygons {
		accumulate(poly.Shell, 1)
		for _, hole := range poly.Holes {
			accumulate(hole, -1)
		}
	}
	if totalArea == 0 {
		return linearCentroid(&relate.Parts{Lines: ringFlats(parts)})
	}
	return geom.Coord{sumX / totalArea, sumY / totalArea}, true
}

// ringCentroid returns the area centroid of one closed flat ring,
// independent of winding.
func ringCentroid(ring []float64) (float64, float64) {
	n := len(ring) / 2
	a, cx, cy := 0.0, 0.0, 0.0
	for i := 0; i < n-1; i++ {
		x1, y1 := ring[2*i], ring[2*i+1]
		x2, y2 := ring[2*i+2], ring[2*i+3]
		cross := x1*y2 - x2*y1
		a += cross
		cx += (x1 + x2) * cross
		cy += (y1 + y2) * cross
	}
	if a == 0 {
		return ring[0], ring[1]
	}
	return cx / (3 * a), cy / (3 * a)
}

func linearCentroid(parts *relate.Parts) (geom.Coord, bool) {
	totalLength, sumX, sumY := 0.0, 0.0, 0.0
	for _, line := range parts.Lines {
		for i := 0; i+3 < len(line); i += 2 {
			a := geom.Coord(line[i : i+2])
			b := geom.Coord(line[i+2 : i+4])
			length := planar.Dist(a, b)
			mid := planar.Midpoint(a, b)
			totalLength += length
			sumX += length * mid.X()
			sumY += length * mid.Y()
		}
	}
	if totalLength == 0 {
		return pointCentroid(&relate.Parts{Points: lineVertices(parts)})
	}
	return geom.Coord{sumX / totalLength, sumY / totalLength}, true
}

func pointCentroid(parts *relate.Parts) (geom.Coord, bool) {
	if len(parts.Points) == 0 {
		return nil, false
	}
	sumX, sumY := 0.0, 0.0
	for _, p := range parts.Points {
		sumX += p.X()
		sumY += p.Y()
	}
	n := float64(len(parts.Points))
	return geom.Coord{sumX / n, sumY / n}, true
}

// InteriorPoint returns a Point guaranteed to lie on g: for areal input an
// interior point on the horizontal bisector's widest stretch, for linear
// input the vertex closest to the centroid, for point input the member
// closest to the centroid. An empty geometry yields an empty Point.
func InteriorPoint(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	f := g.Factory()
	parts, err := relate.Decompose(g)
	if err != nil {
		return nil, err
	}
	centroid, ok := centroidCoord(parts)
	if !ok {
		return f.NewEmpty(geo.ShapeTypePoint), nil
	}
	switch parts.Dimension() {
	case geo.DimSurface:
		return f.NewPoint(arealInteriorPoint(parts, g.EnvelopeInternal())), nil
	case geo.DimCurve:
		return f.NewPoint(closestCoord(lineVertices(parts), centroid)), nil
	default:
		return f.NewPoint(closestCoord(parts.Points, centroid)), nil
	}
}

// arealInteriorPoint scans the horizontal bisector of the envelope for the
// widest interval interior to the areal components and returns its
// midpoint.
func arealInteriorPoint(parts *relate.Parts, env *geo.Envelope) geom.Coord {
	y := (env.MinY + env.MaxY) / 2
	xs := []float64{env.MinX, env.MaxX}
	bisector := [2]geom.Coord{{env.MinX - 1, y}, {env.MaxX + 1, y}}
	for _, seg := range parts.RingSegments() {
		pts, _ := planar.SegmentIntersection(bisector[0], bisector[1], seg[0], seg[1])
		for _, p := range pts {
			xs = append(xs, p.X())
		}
	}
	sort.Float64s(xs)
	bestWidth := -1.0
	var best geom.Coord
	for i := 0; i+1 < len(xs); i++ {
		width := xs[i+1] - xs[i]
		if width <= 0 || width <= bestWidth {
			continue
		}
		mid := geom.Coord{(xs[i] + xs[i+1]) / 2, y}
		if parts.Locate(mid) == geo.Interior {
			bestWidth = width
			best = mid
		}
	}
	if best != nil {
		return best
	}
	// The bisector grazed only boundaries; any ring vertex serves as a
	// fallback on-the-geometry point.
	return geom.Coord{parts.Polygons[0].Shell[0], parts.Polygons[0].Shell[1]}
}

func closestCoord(coords []geom.Coord, target geom.Coord) geom.Coord {
	best := coords[0]
	bestDist := math.Inf(1)
	for _, c := range coords {
		if d := planar.Dist(c, target); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func ringFlats(parts *relate.Parts) [][]float64 {
	var flats [][]float64
	for _, poly := range parts.Polygons {
		flats = append(flats, poly.Shell)
		flats = append(flats, poly.Holes...)
	}
	return flats
}

func lineVertices(parts *relate.Parts) []geom.Coord {
	var coords []geom.Coord
	for _, line := range parts.Lines {
		for i := 0; i+1 < len(line); i += 2 {
			coords = append(coords, geom.Coord(line[i:i+2]))
		}
	}
	return coords
}
