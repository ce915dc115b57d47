// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package relate

import (
	"github.com/cockroachdb/errors"
	polyclip "github.com/ctessum/polyclip-go"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
)

// Parts is a geometry decomposed into its point, line and ring components,
// the form the relate and overlay engines work on. Rings are closed flat
// XY sequences.
type Parts struct {
	Points   []geom.Coord
	Lines    [][]float64
	Polygons []PolygonPart
}

// PolygonPart is one polygon: a shell ring and its holes.
type PolygonPart struct {
	Shell []float64
	Holes [][]float64
}

// Decompose flattens a geometry into Parts, skipping empty components.
// GeometryCollections are descended into; callers that forbid them must
// reject them before decomposing.
func Decompose(g *geo.Geometry) (*Parts, error) {
	p := &Parts{}
	if err := p.add(g.AsGeomT()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parts) add(t geom.T) error {
	switch t := t.(type) {
	case *geom.Point:
		if flat := t.FlatCoords(); len(flat) >= 2 {
			p.Points = append(p.Points, geom.Coord{flat[0], flat[1]})
		}
	case *geom.MultiPoint:
		flat := t.FlatCoords()
		for i := 0; i+1 < len(flat); i += 2 {
			p.Points = append(p.Points, geom.Coord{flat[i], flat[i+1]})
		}
	case *geom.LineString:
		p.addLine(t.FlatCoords())
	case *geom.LinearRing:
		p.addLine(t.FlatCoords())
	case *geom.MultiLineString:
		for i := 0; i < t.NumLineStrings(); i++ {
			p.addLine(t.LineString(i).FlatCoords())
		}
	case *geom.Polygon:
		p.addPolygon(t)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			p.addPolygon(t.Polygon(i))
		}
	case *geom.GeometryCollection:
		for _, child := range t.Geoms() {
			if err := p.add(child); err != nil {
				return err
			}
		}
	default:
		return errors.Newf("unsupported geometry type %T", t)
	}
	return nil
}

func (p *Parts) addLine(flat []float64) {
	if len(flat) >= 4 {
		p.Lines = append(p.Lines, flat)
	}
}

func (p *Parts) addPolygon(poly *geom.Polygon) {
	if poly.NumLinearRings() == 0 || len(poly.FlatCoords()) == 0 {
		return
	}
	part := PolygonPart{Shell: poly.LinearRing(0).FlatCoords()}
	for i := 1; i < poly.NumLinearRings(); i++ {
		part.Holes = append(part.Holes, poly.LinearRing(i).FlatCoords())
	}
	p.Polygons = append(p.Polygons, part)
}

// IsEmpty reports whether no components were collected.
func (p *Parts) IsEmpty() bool {
	return len(p.Points) == 0 && len(p.Lines) == 0 && len(p.Polygons) == 0
}

// Dimension returns the highest dimension present.
func (p *Parts) Dimension() geo.Dimension {
	switch {
	case len(p.Polygons) > 0:
		return geo.DimSurface
	case len(p.Lines) > 0:
		return geo.DimCurve
	case len(p.Points) > 0:
		return geo.DimPoint
	default:
		return geo.DimFalse
	}
}

// BoundaryPoints returns the boundary of the line components under the
// mod-2 rule: endpoints occurring an odd number of times.
func (p *Parts) BoundaryPoints() []geom.Coord {
	counts := make(map[[2]float64]int)
	for _, line := range p.Lines {
		n := len(line)
		counts[[2]float64{line[0], line[1]}]++
		counts[[2]float64{line[n-2], line[n-1]}]++
	}
	var boundary []geom.Coord
	for _, line := range p.Lines {
		n := len(line)
		for _, c := range [][2]float64{{line[0], line[1]}, {line[n-2], line[n-1]}} {
			if counts[c]%2 == 1 {
				boundary = append(boundary, geom.Coord{c[0], c[1]})
				counts[c] = 0 // emit once
			}
		}
	}
	return boundary
}

// hasBoundaryPoint reports whether c is one of the mod-2 boundary points.
func (p *Parts) hasBoundaryPoint(c geom.Coord) bool {
	for _, b := range p.BoundaryPoints() {
		if planar.CoordsEqual(b, c) {
			return true
		}
	}
	return false
}

// Locate classifies a point against the decomposed geometry: Boundary for
// polygon rings and mod-2 line endpoints, Interior for polygon insides,
// line segments and isolated points, Exterior otherwise. Higher-dimension
// components win.
func (p *Parts) Locate(c geom.Coord) geo.Location {
	for _, poly := range p.Polygons {
		switch planar.LocateInRingFlat(c, poly.Shell) {
		case planar.RingBoundary:
			return geo.Boundary
		case planar.RingInside:
			inHole := false
			for _, hole := range poly.Holes {
				switch planar.LocateInRingFlat(c, hole) {
				case planar.RingBoundary:
					return geo.Boundary
				case planar.RingInside:
					inHole = true
				}
			}
			if !inHole {
				return geo.Interior
			}
		}
	}
	if p.onLine(c) {
		if p.hasBoundaryPoint(c) {
			return geo.Boundary
		}
		return geo.Interior
	}
	for _, pt := range p.Points {
		if planar.CoordsEqual(pt, c) {
			return geo.Interior
		}
	}
	return geo.Exterior
}

func (p *Parts) onLine(c geom.Coord) bool {
	for _, line := range p.Lines {
		for i := 0; i+3 < len(line); i += 2 {
			if planar.PointOnSegment(c, geom.Coord(line[i:i+2]), geom.Coord(line[i+2:i+4])) {
				return true
			}
		}
	}
	return false
}

// LineSegments returns every segment of the line components.
func (p *Parts) LineSegments() [][2]geom.Coord {
	var segs [][2]geom.Coord
	for _, line := range p.Lines {
		segs = appendFlatSegments(segs, line)
	}
	return segs
}

// RingSegments returns every segment of the polygon rings.
func (p *Parts) RingSegments() [][2]geom.Coord {
	var segs [][2]geom.Coord
	for _, poly := range p.Polygons {
		segs = appendFlatSegments(segs, poly.Shell)
		for _, hole := range poly.Holes {
			segs = appendFlatSegments(segs, hole)
		}
	}
	return segs
}

// AllSegments returns the line and ring segments together.
func (p *Parts) AllSegments() [][2]geom.Coord {
	return append(p.LineSegments(), p.RingSegments()...)
}

func appendFlatSegments(dst [][2]geom.Coord, flat []float64) [][2]geom.Coord {
	for i := 0; i+3 < len(flat); i += 2 {
		dst = append(dst, [2]geom.Coord{
			geom.Coord(flat[i : i+2]),
			geom.Coord(flat[i+2 : i+4]),
		})
	}
	return dst
}

// ToPolyclip converts the polygon components to a polyclip polygon for
// boolean area operations.
func (p *Parts) ToPolyclip() polyclip.Polygon {
	var out polyclip.Polygon
	for _, poly := range p.Polygons {
		out = append(out, contourFromFlat(poly.Shell))
		for _, hole := range poly.Holes {
			out = append(out, contourFromFlat(hole))
		}
	}
	return out
}

func contourFromFlat(ring []float64) polyclip.Contour {
	n := len(ring) / 2
	if n > 1 {
		n-- // polyclip contours are stored unclosed
	}
	contour := make(polyclip.Contour, 0, n)
	for i := 0; i < n; i++ {
		contour = append(contour, polyclip.Point{X: ring[2*i], Y: ring[2*i+1]})
	}
	return contour
}

// PolyclipArea returns the total area of a polyclip result, counting
// oppositely wound holes negatively.
func PolyclipArea(p polyclip.Polygon) float64 {
	area := 0.0
	for _, contour := range p {
		area += contourSignedArea(contour)
	}
	if area < 0 {
		return -area
	}
	return area
}

func contourSignedArea(c polyclip.Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	area := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		area += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return area / 2
}
