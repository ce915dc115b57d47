// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// Area returns the total area of the areal components of g: shells count
// positively, holes negatively. Lower dimension components contribute
// nothing.
func Area(g *geo.Geometry) (float64, error) {
	if g == nil {
		return 0, geo.ErrNilGeometry
	}
	parts, err := relate.Decompose(g)
	if err != nil {
		return 0, err
	}
	area := 0.0
	for _, poly := range parts.Polygons {
		area += absArea(poly.Shell)
		for _, hole := range poly.Holes {
			area -= absArea(hole)
		}
	}
	return area, nil
}

// Length returns the total length of the linear components of g,
// including polygon ring perimeters.
func Length(g *geo.Geometry) (float64, error) {
	if g == nil {
		return 0, geo.ErrNilGeometry
	}
	parts, err := relate.Decompose(g)
	if err != nil {
		return 0, err
	}
	length := 0.0
	for _, line := range parts.Lines {
		length += planar.LengthFlat(line)
	}
	for _, poly := range parts.Polygons {
		length += planar.LengthFlat(poly.Shell)
		for _, hole := range poly.Holes {
			length += planar.LengthFlat(hole)
		}
	}
	return length, nil
}

// Perimeter returns the total ring length of the areal components of g.
// Non-areal components contribute nothing.
func Perimeter(g *geo.Geometry) (float64, error) {
	if g == nil {
		return 0, geo.ErrNilGeometry
	}
	parts, err := relate.Decompose(g)
	if err != nil {
		return 0, err
	}
	perimeter := 0.0
	for _, poly := range parts.Polygons {
		perimeter += planar.LengthFlat(poly.Shell)
		for _, hole := range poly.Holes {
			perimeter += planar.LengthFlat(hole)
		}
	}
	return perimeter, nil
}

func absArea(ring []float64) float64 {
	area := planar.SignedAreaFlat(ring)
	if area < 0 {
		return -area
	}
	return area
}
