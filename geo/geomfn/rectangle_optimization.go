// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	polyclip "github.com/ctessum/polyclip-go"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// RectangleIntersects returns whether other intersects the rectangle rect.
// A rectangle's point set equals its envelope region, so the test reduces
// to vertex containment, segment-vs-edge intersection and the rectangle
// corner falling inside an areal operand. No intersection matrix is
// computed, and collection operands on the non-rectangle side are
// supported.
func RectangleIntersects(rect *geo.Geometry, other *geo.Geometry) (bool, error) {
	if !rect.IsRectangle() {
		return false, geo.NewRobustnessError("rectangle operand is not a rectangle")
	}
	env := rect.EnvelopeInternal()
	parts, err := relate.Decompose(other)
	if err != nil {
		return false, err
	}
	for _, p := range parts.Points {
		if env.ContainsXY(p.X(), p.Y()) {
			return true, nil
		}
	}
	for _, seg := range parts.AllSegments() {
		if segmentIntersectsEnvelope(seg[0], seg[1], env) {
			return true, nil
		}
	}
	// A polygon with no vertex or edge inside the envelope can still
	// swallow the rectangle whole.
	if len(parts.Polygons) > 0 && parts.Locate(geom.Coord{env.MinX, env.MinY}) != geo.Exterior {
		return true, nil
	}
	return false, nil
}

// RectangleContains returns whether the rectangle rect contains other:
// every point of other inside the envelope, with at least one point off
// the envelope's boundary.
func RectangleContains(rect *geo.Geometry, other *geo.Geometry) (bool, error) {
	if !rect.IsRectangle() {
		return false, geo.NewRobustnessError("rectangle operand is not a rectangle")
	}
	if other.IsEmpty() {
		return false, nil
	}
	env := rect.EnvelopeInternal()
	for _, c := range other.Coordinates() {
		if !env.ContainsXY(c.X(), c.Y()) {
			return false, nil
		}
	}
	for _, c := range other.Coordinates() {
		if envelopeInterior(env, c) {
			return true, nil
		}
	}
	parts, err := relate.Decompose(other)
	if err != nil {
		return false, err
	}
	// All vertices sit on the boundary; a segment can still cut across the
	// interior.
	for _, seg := range parts.AllSegments() {
		if envelopeInterior(env, planar.Midpoint(seg[0], seg[1])) {
			return true, nil
		}
	}
	// An areal operand whose rings trace the boundary (the rectangle
	// itself, for instance) overlaps the interior iff the clipped area is
	// positive.
	if len(parts.Polygons) > 0 {
		rectParts, err := relate.Decompose(rect)
		if err != nil {
			return false, err
		}
		clipped := rectParts.ToPolyclip().Construct(polyclip.INTERSECTION, parts.ToPolyclip())
		if relate.PolyclipArea(clipped) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// segmentIntersectsEnvelope reports whether the segment a-b meets the
// closed envelope region.
func segmentIntersectsEnvelope(a, b geom.Coord, env *geo.Envelope) bool {
	if env.ContainsXY(a.X(), a.Y()) || env.ContainsXY(b.X(), b.Y()) {
		return true
	}
	corners := [4]geom.Coord{
		{env.MinX, env.MinY},
		{env.MaxX, env.MinY},
		{env.MaxX, env.MaxY},
		{env.MinX, env.MaxY},
	}
	for i := 0; i < 4; i++ {
		if pts, _ := planar.SegmentIntersection(a, b, corners[i], corners[(i+1)%4]); len(pts) > 0 {
			return true
		}
	}
	return false
}

// envelopeInterior reports whether c lies strictly inside env.
func envelopeInterior(env *geo.Envelope, c geom.Coord) bool {
	return c.X() > env.MinX && c.X() < env.MaxX && c.Y() > env.MinY && c.Y() < env.MaxY
}
