// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/overlay"
)

// The binary overlays share one policy skeleton: nil and SRID checks,
// then the empty-operand short-circuits, then rejection of collection
// operands, then the overlay engine. Empty operands are handled before
// the collection check, so an empty GeometryCollection operand
// short-circuits instead of erroring.

// emptyOverlayResult materializes the empty result of an overlay whose
// operand handling short-circuited: always an empty GeometryCollection,
// carrying the left operand's factory.
func emptyOverlayResult(f *geo.GeometryFactory) *geo.Geometry {
	return f.NewEmpty(geo.ShapeTypeGeometryCollection)
}

// Intersection returns the point set common to a and b. An empty operand
// makes the result an empty GeometryCollection.
func Intersection(a *geo.Geometry, b *geo.Geometry) (*geo.Geometry, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return nil, err
	}
	if a.IsEmpty() || b.IsEmpty() {
		return emptyOverlayResult(a.Factory()), nil
	}
	if err := checkNonCollection("Intersection", a, b); err != nil {
		return nil, err
	}
	return overlay.Overlay(a, b, overlay.OpIntersection)
}

// Union returns the point set of a and b together. An empty operand makes
// the union a copy of the other operand.
func Union(a *geo.Geometry, b *geo.Geometry) (*geo.Geometry, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return nil, err
	}
	if a.IsEmpty() {
		return b.Clone(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if err := checkNonCollection("Union", a, b); err != nil {
		return nil, err
	}
	return overlay.Overlay(a, b, overlay.OpUnion)
}

// Difference returns the point set of a not in b. An empty a makes the
// result an empty GeometryCollection; an empty b makes it a copy of a.
func Difference(a *geo.Geometry, b *geo.Geometry) (*geo.Geometry, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return nil, err
	}
	if a.IsEmpty() {
		return emptyOverlayResult(a.Factory()), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if err := checkNonCollection("Difference", a, b); err != nil {
		return nil, err
	}
	return overlay.Overlay(a, b, overlay.OpDifference)
}

// SymDifference returns the point set in exactly one of a and b. An empty
// operand makes the result a copy of the other operand.
func SymDifference(a *geo.Geometry, b *geo.Geometry) (*geo.Geometry, error) {
	if err := checkBinaryOperands(a, b); err != nil {
		return nil, err
	}
	if a.IsEmpty() {
		return b.Clone(), nil
	}
	if b.IsEmpty() {
		return a.Clone(), nil
	}
	if err := checkNonCollection("SymDifference", a, b); err != nil {
		return nil, err
	}
	return overlay.Overlay(a, b, overlay.OpSymDifference)
}

// UnaryUnion dissolves the components of a single geometry. Unlike the
// binary overlays it accepts GeometryCollections; polygonal input always
// yields a polygonal result.
func UnaryUnion(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	return overlay.UnaryUnion(g)
}
