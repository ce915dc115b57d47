// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"fmt"

	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Geometry is a planar geometric object: one of the eight concrete shape
// variants together with its construction context. The coordinate store is
// an XY-layout geom.T; the variant set is closed and matched exhaustively
// wherever behavior differs per shape.
//
// A Geometry is value-like: after construction by a GeometryFactory the
// only supported mutation is editing owned coordinates followed by an
// explicit GeometryChanged call. The envelope cache is populated lazily on
// first access and is not synchronized; concurrent first access on a
// shared instance must be prevented by the caller, for example by calling
// EnvelopeInternal once before sharing.
type Geometry struct {
	t       geom.T
	srid    int
	factory *GeometryFactory

	// bbox is the memoized envelope; nil until the first EnvelopeInternal
	// call. It goes stale only if coordinates are edited without a
	// GeometryChanged call, which is a caller obligation.
	bbox *Envelope

	// userData is an opaque slot carried along with the geometry. The core
	// imposes no semantics on it.
	userData interface{}
}

// AsGeomT returns the underlying coordinate store. The returned value
// shares storage with g; editing it requires a GeometryChanged call.
func (g *Geometry) AsGeomT() geom.T {
	return g.t
}

// ShapeType returns the concrete variant of the geometry.
func (g *Geometry) ShapeType() ShapeType {
	return shapeTypeOf(g.t)
}

// SRID returns the spatial reference identifier, copied from the factory
// at construction.
func (g *Geometry) SRID() int {
	return g.srid
}

// Factory returns the factory the geometry was built by. Factories are
// shared, not exclusively owned.
func (g *Geometry) Factory() *GeometryFactory {
	return g.factory
}

// PrecisionModel returns the precision model of the geometry's factory.
func (g *Geometry) PrecisionModel() *PrecisionModel {
	return g.factory.PrecisionModel()
}

// UserData returns the opaque user-data slot.
func (g *Geometry) UserData() interface{} {
	return g.userData
}

// SetUserData stores an opaque value on the geometry.
func (g *Geometry) SetUserData(v interface{}) {
	g.userData = v
}

// IsEmpty reports whether the geometry contains no points.
func (g *Geometry) IsEmpty() bool {
	return geomTIsEmpty(g.t)
}

func geomTIsEmpty(t geom.T) bool {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			if !geomTIsEmpty(child) {
				return false
			}
		}
		return true
	}
	return len(t.FlatCoords()) == 0
}

// Dimension returns the topological dimension of the geometry. A
// collection reports the maximum dimension of its members; an empty
// collection reports DimFalse.
func (g *Geometry) Dimension() Dimension {
	return geomTDimension(g.t)
}

func geomTDimension(t geom.T) Dimension {
	switch t := t.(type) {
	case *geom.Point, *geom.MultiPoint:
		return DimPoint
	case *geom.LineString, *geom.LinearRing, *geom.MultiLineString:
		return DimCurve
	case *geom.Polygon, *geom.MultiPolygon:
		return DimSurface
	case *geom.GeometryCollection:
		dim := DimFalse
		for _, child := range t.Geoms() {
			if d := geomTDimension(child); d > dim {
				dim = d
			}
		}
		return dim
	default:
		return DimFalse
	}
}

// BoundaryDimension returns the dimension of the geometry's boundary:
// DimFalse for points and closed curves, DimPoint for open curves,
// DimCurve for surfaces, and the maximum over members for collections.
func (g *Geometry) BoundaryDimension() Dimension {
	return geomTBoundaryDimension(g.t)
}

func geomTBoundaryDimension(t geom.T) Dimension {
	switch t := t.(type) {
	case *geom.Point, *geom.MultiPoint:
		return DimFalse
	case *geom.LinearRing:
		return DimFalse
	case *geom.LineString:
		if lineIsClosed(t.FlatCoords()) {
			return DimFalse
		}
		return DimPoint
	case *geom.MultiLineString:
		dim := DimFalse
		for i := 0; i < t.NumLineStrings(); i++ {
			if !lineIsClosed(t.LineString(i).FlatCoords()) {
				dim = DimPoint
			}
		}
		return dim
	case *geom.Polygon, *geom.MultiPolygon:
		return DimCurve
	case *geom.GeometryCollection:
		dim := DimFalse
		for _, child := range t.Geoms() {
			if d := geomTBoundaryDimension(child); d > dim {
				dim = d
			}
		}
		return dim
	default:
		return DimFalse
	}
}

// lineIsClosed reports whether a flat XY coordinate sequence starts and
// ends at the same location. An empty sequence is not closed.
func lineIsClosed(flat []float64) bool {
	if len(flat) < 4 {
		return false
	}
	n := len(flat)
	return flat[0] == flat[n-2] && flat[1] == flat[n-1]
}

// NumPoints returns the total vertex count of the geometry.
func (g *Geometry) NumPoints() int {
	return geomTNumPoints(g.t)
}

func geomTNumPoints(t geom.T) int {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		n := 0
		for _, child := range gc.Geoms() {
			n += geomTNumPoints(child)
		}
		return n
	}
	return len(t.FlatCoords()) / 2
}

// NumGeometries returns the member count of a collection variant and 1 for
// an atomic geometry.
func (g *Geometry) NumGeometries() int {
	switch t := g.t.(type) {
	case *geom.MultiPoint:
		return t.NumPoints()
	case *geom.MultiLineString:
		return t.NumLineStrings()
	case *geom.MultiPolygon:
		return t.NumPolygons()
	case *geom.GeometryCollection:
		return t.NumGeoms()
	default:
		return 1
	}
}

// GeometryN returns the i'th member of a collection variant, or the
// geometry itself for an atomic geometry (with i = 0). The member is a
// view: it shares coordinate storage with its parent and carries the
// parent's factory.
func (g *Geometry) GeometryN(i int) *Geometry {
	switch t := g.t.(type) {
	case *geom.MultiPoint:
		return g.factory.wrap(t.Point(i))
	case *geom.MultiLineString:
		return g.factory.wrap(t.LineString(i))
	case *geom.MultiPolygon:
		return g.factory.wrap(t.Polygon(i))
	case *geom.GeometryCollection:
		return g.factory.wrap(t.Geom(i))
	default:
		if i != 0 {
			panic(fmt.Sprintf("geometry index %d out of range for atomic geometry", i))
		}
		return g
	}
}

// Coordinate returns the first vertex of the geometry, or nil if it is
// empty.
func (g *Geometry) Coordinate() geom.Coord {
	coords := g.Coordinates()
	if len(coords) == 0 {
		return nil
	}
	return coords[0]
}

// Coordinates returns every vertex of the geometry in storage order. The
// coordinates share storage with the geometry.
func (g *Geometry) Coordinates() []geom.Coord {
	return appendGeomTCoords(nil, g.t)
}

func appendGeomTCoords(dst []geom.Coord, t geom.T) []geom.Coord {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			dst = appendGeomTCoords(dst, child)
		}
		return dst
	}
	flat := t.FlatCoords()
	for i := 0; i+1 < len(flat); i += 2 {
		dst = append(dst, geom.Coord(flat[i:i+2]))
	}
	return dst
}

// EnvelopeInternal returns the envelope of the geometry, computing and
// memoizing it on first access. The returned envelope is the cache slot;
// callers must not modify it. An empty geometry yields a null envelope.
func (g *Geometry) EnvelopeInternal() *Envelope {
	if g.bbox == nil {
		g.bbox = g.computeEnvelopeInternal()
	}
	return g.bbox
}

func (g *Geometry) computeEnvelopeInternal() *Envelope {
	env := NewNullEnvelope()
	expandEnvelope(env, g.t)
	return env
}

func expandEnvelope(env *Envelope, t geom.T) {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			expandEnvelope(env, child)
		}
		return
	}
	flat := t.FlatCoords()
	for i := 0; i+1 < len(flat); i += 2 {
		env.ExpandToIncludeXY(flat[i], flat[i+1])
	}
}

// Envelope returns the envelope materialized as a geometry: an empty Point
// for an empty geometry, a Point for a single-location box, otherwise a
// closed 5-point Polygon ordered (minx,miny), (maxx,miny), (maxx,maxy),
// (minx,maxy), (minx,miny).
func (g *Geometry) Envelope() *Geometry {
	return g.factory.ToGeometry(g.EnvelopeInternal())
}

// GeometryChanged must be called after coordinates have been edited
// through AsGeomT or Coordinates. It drops the memoized envelope so the
// next access recomputes it; nothing tracks the edit automatically.
func (g *Geometry) GeometryChanged() {
	g.bbox = nil
}

// IsRectangle reports whether the geometry is a single-ring polygon whose
// vertices trace exactly its envelope, axis-parallel side by side. The
// rectangle fast path in geomfn keys off this.
func (g *Geometry) IsRectangle() bool {
	p, ok := g.t.(*geom.Polygon)
	if !ok || g.IsEmpty() || p.NumLinearRings() != 1 {
		return false
	}
	flat := p.FlatCoords()
	if len(flat) != 10 {
		return false
	}
	if !lineIsClosed(flat) {
		return false
	}
	env := g.EnvelopeInternal()
	for i := 0; i < 5; i++ {
		x, y := flat[2*i], flat[2*i+1]
		if x != env.MinX && x != env.MaxX {
			return false
		}
		if y != env.MinY && y != env.MaxY {
			return false
		}
	}
	for i := 0; i < 4; i++ {
		xChanged := flat[2*i] != flat[2*i+2]
		yChanged := flat[2*i+1] != flat[2*i+3]
		if xChanged == yChanged {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the geometry. The copy shares the factory
// but no coordinate storage, and starts with a cold envelope cache.
func (g *Geometry) Clone() *Geometry {
	return g.factory.wrap(cloneGeomT(g.t))
}

func cloneGeomT(t geom.T) geom.T {
	switch t := t.(type) {
	case *geom.Point:
		if len(t.FlatCoords()) == 0 {
			return geom.NewPointEmpty(geom.XY).SetSRID(t.SRID())
		}
		return geom.NewPointFlat(geom.XY, cloneFloats(t.FlatCoords())).SetSRID(t.SRID())
	case *geom.LineString:
		return geom.NewLineStringFlat(geom.XY, cloneFloats(t.FlatCoords())).SetSRID(t.SRID())
	case *geom.LinearRing:
		return geom.NewLinearRingFlat(geom.XY, cloneFloats(t.FlatCoords())).SetSRID(t.SRID())
	case *geom.Polygon:
		return geom.NewPolygonFlat(geom.XY, cloneFloats(t.FlatCoords()), cloneInts(t.Ends())).SetSRID(t.SRID())
	case *geom.MultiPoint:
		return geom.NewMultiPointFlat(geom.XY, cloneFloats(t.FlatCoords())).SetSRID(t.SRID())
	case *geom.MultiLineString:
		return geom.NewMultiLineStringFlat(geom.XY, cloneFloats(t.FlatCoords()), cloneInts(t.Ends())).SetSRID(t.SRID())
	case *geom.MultiPolygon:
		return geom.NewMultiPolygonFlat(geom.XY, cloneFloats(t.FlatCoords()), cloneIntss(t.Endss())).SetSRID(t.SRID())
	case *geom.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for _, child := range t.Geoms() {
			gc.MustPush(cloneGeomT(child))
		}
		return gc.SetSRID(t.SRID())
	default:
		panic(fmt.Sprintf("unsupported geometry type %T", t))
	}
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	c := make([]float64, len(s))
	copy(c, s)
	return c
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}

func cloneIntss(s [][]int) [][]int {
	if s == nil {
		return nil
	}
	c := make([][]int, len(s))
	for i := range s {
		c[i] = cloneInts(s[i])
	}
	return c
}

// EqualsExact reports structural equality: the same shape variant, the
// same vertex order, and every ordinate within tolerance of its
// counterpart. It is unrelated to topological equality and to Go value
// identity; see geomfn.Equals for the former.
func (g *Geometry) EqualsExact(other *Geometry, tolerance float64) bool {
	if other == nil {
		return false
	}
	if g.ShapeType() != other.ShapeType() {
		return false
	}
	return equalsExactGeomT(g.t, other.t, tolerance)
}

func equalsExactGeomT(a, b geom.T, tolerance float64) bool {
	if shapeTypeOf(a) != shapeTypeOf(b) {
		return false
	}
	gcA, okA := a.(*geom.GeometryCollection)
	gcB, okB := b.(*geom.GeometryCollection)
	if okA && okB {
		if gcA.NumGeoms() != gcB.NumGeoms() {
			return false
		}
		for i := 0; i < gcA.NumGeoms(); i++ {
			if !equalsExactGeomT(gcA.Geom(i), gcB.Geom(i), tolerance) {
				return false
			}
		}
		return true
	}
	if !equalInts(a.Ends(), b.Ends()) || !equalIntss(a.Endss(), b.Endss()) {
		return false
	}
	return equalFlatWithTolerance(a.FlatCoords(), b.FlatCoords(), tolerance)
}

func equalFlatWithTolerance(a, b []float64, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d < -tolerance || d > tolerance {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalIntss(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalInts(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String renders the geometry as WKT.
func (g *Geometry) String() string {
	s, err := wkt.Marshal(g.t)
	if err != nil {
		return fmt.Sprintf("%v", g.t)
	}
	return s
}
