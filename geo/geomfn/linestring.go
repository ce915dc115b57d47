// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/overlay"
)

// LineStringFromMultiPoint builds a LineString visiting the members of a
// MultiPoint in order.
func LineStringFromMultiPoint(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	if g.ShapeType() != geo.ShapeTypeMultiPoint {
		return nil, errors.Newf("geometry %s should be a MultiPoint", g.ShapeType())
	}
	f := g.Factory()
	if g.IsEmpty() {
		return f.NewEmpty(geo.ShapeTypeLineString), nil
	}
	coords := g.Coordinates()
	if len(coords) < 2 {
		return nil, errors.Newf("a LineString requires at least 2 points")
	}
	return f.NewLineString(append([]geom.Coord{}, coords...))
}

// LineMerge stitches the members of linear input into maximal LineStrings
// joined at shared endpoints. Lines are not noded; crossings without a
// shared endpoint pass through unsplit. Non-linear non-empty input yields
// an empty GeometryCollection, matching PostGIS.
func LineMerge(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	if g.IsEmpty() {
		return g, nil
	}
	switch g.ShapeType() {
	case geo.ShapeTypeLineString, geo.ShapeTypeMultiLineString:
		return overlay.MergeLines(g)
	default:
		return g.Factory().NewEmpty(geo.ShapeTypeGeometryCollection), nil
	}
}

// AddPoint returns the LineString with p's coordinate inserted before
// vertex index. An index of -1 or one past the last vertex appends. An
// empty point inserts the origin.
func AddPoint(g *geo.Geometry, index int, p *geo.Geometry) (*geo.Geometry, error) {
	coords, err := lineStringCoords(g)
	if err != nil {
		return nil, err
	}
	c, err := pointCoordOrOrigin(g, p)
	if err != nil {
		return nil, err
	}
	if index == -1 {
		index = len(coords)
	}
	if index < 0 || index > len(coords) {
		return nil, errors.Newf("index %d out of range of LineString with %d coordinates", index, len(coords))
	}
	out := make([]geom.Coord, 0, len(coords)+1)
	out = append(out, coords[:index]...)
	out = append(out, c)
	out = append(out, coords[index:]...)
	return g.Factory().NewLineString(out)
}

// SetPoint returns the LineString with vertex index replaced by p's
// coordinate. Negative indexes count back from the end.
func SetPoint(g *geo.Geometry, index int, p *geo.Geometry) (*geo.Geometry, error) {
	coords, err := lineStringCoords(g)
	if err != nil {
		return nil, err
	}
	c, err := pointCoordOrOrigin(g, p)
	if err != nil {
		return nil, err
	}
	at := index
	if at < 0 {
		at += len(coords)
	}
	if at < 0 || at >= len(coords) {
		return nil, errors.Newf("index %d out of range of LineString with %d coordinates", index, len(coords))
	}
	out := append([]geom.Coord{}, coords...)
	out[at] = c
	return g.Factory().NewLineString(out)
}

// RemovePoint returns the LineString with vertex index removed. The result
// must still be a valid LineString, so two-vertex input is rejected.
func RemovePoint(g *geo.Geometry, index int) (*geo.Geometry, error) {
	coords, err := lineStringCoords(g)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(coords) {
		return nil, errors.Newf("index %d out of range of LineString with %d coordinates", index, len(coords))
	}
	if len(coords) == 2 {
		return nil, errors.Newf("cannot remove a point from a LineString with only two Points")
	}
	out := make([]geom.Coord, 0, len(coords)-1)
	out = append(out, coords[:index]...)
	out = append(out, coords[index+1:]...)
	return g.Factory().NewLineString(out)
}

func lineStringCoords(g *geo.Geometry) ([]geom.Coord, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	if g.ShapeType() != geo.ShapeTypeLineString || g.IsEmpty() {
		return nil, errors.Newf("geometry %s should be a non-empty LineString", g.ShapeType())
	}
	return g.Coordinates(), nil
}

func pointCoordOrOrigin(g *geo.Geometry, p *geo.Geometry) (geom.Coord, error) {
	if p == nil {
		return nil, geo.ErrNilGeometry
	}
	if g.SRID() != p.SRID() {
		return nil, geo.NewMismatchingSRIDsError(g, p)
	}
	if p.ShapeType() != geo.ShapeTypePoint {
		return nil, errors.Newf("geometry %s should be a Point", p.ShapeType())
	}
	if p.IsEmpty() {
		return geom.Coord{0, 0}, nil
	}
	return p.Coordinate(), nil
}
