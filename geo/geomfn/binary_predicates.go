// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

// Package geomfn is the operation surface of the library: named
// predicates, overlay operations, measures and constructions over
// geo.Geometry operands. Functions validate operands, take the cheap exits
// (envelope tests, rectangle fast paths) and delegate the full work to the
// relate and overlay engines.
package geomfn

import (
	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/relate"
)

// checkBinaryOperands rejects nil operands and mixed-SRID pairs, the
// preconditions shared by every binary operation.
func checkBinaryOperands(a *geo.Geometry, b *geo.Geometry) error {
	if a == nil || b == nil {
		return geo.ErrNilGeometry
	}
	if a.SRID() != b.SRID() {
		return geo.NewMismatchingSRIDsError(a, b)
	}
	return nil
}

// checkNonCollection rejects GeometryCollection operands for operations
// whose semantics are undefined on them.
func checkNonCollection(op string, gs ...*geo.Geometry) error {
	for _, g := range gs {
		if g.ShapeType() == geo.ShapeTypeGeometryCollection {
			return geo.NewUnsupportedCollectionError(op)
		}
	}
	return nil
}

// Intersects returns whether a and b share at least one point. The
// envelope test and the rectangle fast path make this the cheapest of the
// predicates; only geometries with overlapping envelopes and no rectangle
// operand pay for a full relate.
func Intersects(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return false, err
	}
	if !a.EnvelopeInternal().Intersects(b.EnvelopeInternal()) {
		return false, nil
	}
	if a.IsRectangle() {
		return RectangleIntersects(a, b)
	}
	if b.IsRectangle() {
		return RectangleIntersects(b, a)
	}
	if isPointKind(a) && isPolygonKind(b) {
		return PointKindIntersectsPolygonKind(a, b)
	}
	if isPointKind(b) && isPolygonKind(a) {
		return PointKindIntersectsPolygonKind(b, a)
	}
	im, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsIntersects(), nil
}

// Disjoint returns whether a and b share no point. It is exactly the
// negation of Intersects.
func Disjoint(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	intersects, err := Intersects(a, b)
	if err != nil {
		return false, err
	}
	return !intersects, nil
}

// Contains returns whether b lies in a's interior-plus-boundary with at
// least one point of b in a's interior. Nothing contains an empty
// geometry, and a geometry whose points all fall on a's boundary is
// covered but not contained.
func Contains(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return false, err
	}
	if !a.EnvelopeInternal().Covers(b.EnvelopeInternal()) {
		return false, nil
	}
	if a.IsRectangle() {
		return RectangleContains(a, b)
	}
	if isPolygonKind(a) && isPointKind(b) {
		return PointKindWithinPolygonKind(b, a)
	}
	im, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsContains(), nil
}

// Within returns whether a is contained in b. Within is the converse of
// Contains.
func Within(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	return Contains(b, a)
}

// Covers returns whether no point of b lies in a's exterior. Unlike
// Contains it is satisfied by boundary-only contact, so for a rectangle
// operand the envelope test is the whole answer.
func Covers(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return false, err
	}
	if b.IsEmpty() {
		return false, nil
	}
	if !a.EnvelopeInternal().Covers(b.EnvelopeInternal()) {
		return false, nil
	}
	if a.IsRectangle() {
		return true, nil
	}
	if isPolygonKind(a) && isPointKind(b) {
		return PointKindCoveredByPolygonKind(b, a)
	}
	im, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsCovers(), nil
}

// CoveredBy returns whether no point of a lies in b's exterior. CoveredBy
// is the converse of Covers.
func CoveredBy(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	return Covers(b, a)
}

// Touches returns whether a and b intersect only in their boundaries.
func Touches(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return false, err
	}
	if err := checkNonCollection("Touches", a, b); err != nil {
		return false, err
	}
	if !a.EnvelopeInternal().Intersects(b.EnvelopeInternal()) {
		return false, nil
	}
	im, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsTouches(a.Dimension(), b.Dimension()), nil
}

// Crosses returns whether a and b intersect in a geometry of dimension
// lower than the maximum operand dimension, with neither containing the
// other.
func Crosses(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return false, err
	}
	if err := checkNonCollection("Crosses", a, b); err != nil {
		return false, err
	}
	if !a.EnvelopeInternal().Intersects(b.EnvelopeInternal()) {
		return false, nil
	}
	im, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsCrosses(a.Dimension(), b.Dimension()), nil
}

// Overlaps returns whether a and b partially cover each other with an
// intersection of their common dimension.
func Overlaps(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return false, err
	}
	if err := checkNonCollection("Overlaps", a, b); err != nil {
		return false, err
	}
	if !a.EnvelopeInternal().Intersects(b.EnvelopeInternal()) {
		return false, nil
	}
	im, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsOverlaps(a.Dimension(), b.Dimension()), nil
}

// Equals returns whether a and b denote the same point set. This is
// topological equality, indifferent to vertex order and representation;
// see Geometry.EqualsExact for the structural notion and Geometry.Compare
// for the ordering notion.
func Equals(a *geo.Geometry, b *geo.Geometry) (bool, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return false, err
	}
	if err := checkNonCollection("Equals", a, b); err != nil {
		return false, err
	}
	if a.IsEmpty() && b.IsEmpty() {
		return true, nil
	}
	if !a.EnvelopeInternal().Equals(b.EnvelopeInternal()) {
		return false, nil
	}
	im, err := relate.Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.IsEquals(a.Dimension(), b.Dimension()), nil
}

// Relate computes the full DE-9IM intersection matrix of a and b.
func Relate(a *geo.Geometry, b *geo.Geometry) (*geo.IntersectionMatrix, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return nil, err
	}
	return relate.Relate(a, b)
}

// RelatePattern computes the DE-9IM matrix of a and b and matches it
// against the given 9-character pattern.
func RelatePattern(a *geo.Geometry, b *geo.Geometry, pattern string) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.Matches(pattern)
}
