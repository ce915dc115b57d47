// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package geo contains the planar geometry model: the Geometry value type
// and its concrete shape variants, axis-aligned envelopes, the DE-9IM
// intersection matrix, precision models and the geometry factory.
//
// Subpackages build on these types:
//   - geo/geomfn implements the predicate and set-theoretic operations over
//     Geometry values, including envelope short-circuiting and the rectangle
//     fast path.
//   - geo/relate computes DE-9IM matrices for pairs of geometries.
//   - geo/overlay computes intersection/union/difference/symmetric
//     difference results.
//   - geo/planar holds the shared low-level planar primitives.
package geo

import (
	geom "github.com/twpayne/go-geom"
)

// ShapeType identifies the concrete variant of a Geometry. The numeric
// order of the constants is the canonical sort order used by
// Geometry.Compare: Point < MultiPoint < LineString < LinearRing <
// MultiLineString < Polygon < MultiPolygon < GeometryCollection.
type ShapeType int

const (
	// ShapeTypeUnset is an invalid shape type.
	ShapeTypeUnset ShapeType = iota
	// ShapeTypePoint is a single location.
	ShapeTypePoint
	// ShapeTypeMultiPoint is a collection of Points.
	ShapeTypeMultiPoint
	// ShapeTypeLineString is a connected sequence of line segments.
	ShapeTypeLineString
	// ShapeTypeLinearRing is a closed, non-self-intersecting LineString.
	ShapeTypeLinearRing
	// ShapeTypeMultiLineString is a collection of LineStrings.
	ShapeTypeMultiLineString
	// ShapeTypePolygon is an areal shape with a shell and optional holes.
	ShapeTypePolygon
	// ShapeTypeMultiPolygon is a collection of Polygons.
	ShapeTypeMultiPolygon
	// ShapeTypeGeometryCollection is a heterogeneous collection of
	// geometries.
	ShapeTypeGeometryCollection
)

// String implements fmt.Stringer.
func (s ShapeType) String() string {
	switch s {
	case ShapeTypePoint:
		return "Point"
	case ShapeTypeMultiPoint:
		return "MultiPoint"
	case ShapeTypeLineString:
		return "LineString"
	case ShapeTypeLinearRing:
		return "LinearRing"
	case ShapeTypeMultiLineString:
		return "MultiLineString"
	case ShapeTypePolygon:
		return "Polygon"
	case ShapeTypeMultiPolygon:
		return "MultiPolygon"
	case ShapeTypeGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unset"
	}
}

// shapeTypeOf classifies an underlying geom.T. LinearRing is reported
// distinctly from LineString.
func shapeTypeOf(t geom.T) ShapeType {
	switch t.(type) {
	case *geom.Point:
		return ShapeTypePoint
	case *geom.MultiPoint:
		return ShapeTypeMultiPoint
	case *geom.LinearRing:
		return ShapeTypeLinearRing
	case *geom.LineString:
		return ShapeTypeLineString
	case *geom.MultiLineString:
		return ShapeTypeMultiLineString
	case *geom.Polygon:
		return ShapeTypePolygon
	case *geom.MultiPolygon:
		return ShapeTypeMultiPolygon
	case *geom.GeometryCollection:
		return ShapeTypeGeometryCollection
	default:
		return ShapeTypeUnset
	}
}

// Dimension is the topological dimension of a point set. DimFalse marks an
// empty point set; it doubles as the "no intersection" cell value in an
// IntersectionMatrix.
type Dimension int

const (
	// DimFalse is the dimension of an empty point set.
	DimFalse Dimension = -1
	// DimPoint is the dimension of a point.
	DimPoint Dimension = 0
	// DimCurve is the dimension of a curve.
	DimCurve Dimension = 1
	// DimSurface is the dimension of a surface.
	DimSurface Dimension = 2
)

// Location distinguishes the interior, boundary and exterior point sets of
// a geometry. The values are the row/column indexes of an
// IntersectionMatrix.
type Location int

const (
	// Interior indexes the interior point set.
	Interior Location = 0
	// Boundary indexes the boundary point set.
	Boundary Location = 1
	// Exterior indexes the exterior point set.
	Exterior Location = 2
)
