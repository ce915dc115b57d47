// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"
)

// GeometryFactory constructs geometries sharing one precision model and
// SRID. A factory is read-only after construction and may be shared by any
// number of geometries and goroutines.
type GeometryFactory struct {
	pm   *PrecisionModel
	srid int
}

// NewGeometryFactory returns a factory stamping geometries with the given
// precision model and SRID. A nil precision model means the floating
// model.
func NewGeometryFactory(pm *PrecisionModel, srid int) *GeometryFactory {
	if pm == nil {
		pm = NewPrecisionModel()
	}
	return &GeometryFactory{pm: pm, srid: srid}
}

// PrecisionModel returns the factory's precision model.
func (f *GeometryFactory) PrecisionModel() *PrecisionModel {
	return f.pm
}

// SRID returns the spatial reference identifier stamped onto constructed
// geometries.
func (f *GeometryFactory) SRID() int {
	return f.srid
}

// wrap attaches the factory context to an underlying coordinate store.
func (f *GeometryFactory) wrap(t geom.T) *Geometry {
	return &Geometry{t: t, srid: f.srid, factory: f}
}

// NewPoint returns a Point at the given coordinate, or an empty Point for
// a nil coordinate.
func (f *GeometryFactory) NewPoint(c geom.Coord) *Geometry {
	if len(c) < 2 {
		return f.wrap(geom.NewPointEmpty(geom.XY).SetSRID(f.srid))
	}
	return f.wrap(geom.NewPointFlat(geom.XY, []float64{c.X(), c.Y()}).SetSRID(f.srid))
}

// NewPointXY returns a Point at (x, y).
func (f *GeometryFactory) NewPointXY(x, y float64) *Geometry {
	return f.NewPoint(geom.Coord{x, y})
}

// NewLineString returns a LineString through the given coordinates. Zero
// coordinates build an empty LineString; a single coordinate is invalid.
func (f *GeometryFactory) NewLineString(coords []geom.Coord) (*Geometry, error) {
	if len(coords) == 1 {
		return nil, errors.Newf("LineString must have 0 or >= 2 points, got 1")
	}
	flat, err := flattenCoords(coords)
	if err != nil {
		return nil, err
	}
	return f.wrap(geom.NewLineStringFlat(geom.XY, flat).SetSRID(f.srid)), nil
}

// NewLinearRing returns a closed LinearRing through the given coordinates.
// A non-empty ring needs at least 4 coordinates with the first equal to
// the last.
func (f *GeometryFactory) NewLinearRing(coords []geom.Coord) (*Geometry, error) {
	flat, err := f.ringFlatCoords(coords)
	if err != nil {
		return nil, err
	}
	return f.wrap(geom.NewLinearRingFlat(geom.XY, flat).SetSRID(f.srid)), nil
}

func (f *GeometryFactory) ringFlatCoords(coords []geom.Coord) ([]float64, error) {
	if len(coords) == 0 {
		return nil, nil
	}
	if len(coords) < 4 {
		return nil, errors.Newf("ring must have 0 or >= 4 points, got %d", len(coords))
	}
	flat, err := flattenCoords(coords)
	if err != nil {
		return nil, err
	}
	if !lineIsClosed(flat) {
		return nil, errors.Newf("ring must be closed: first point != last point")
	}
	return flat, nil
}

// NewPolygon returns a Polygon from a shell ring followed by any hole
// rings. No rings build an empty Polygon.
func (f *GeometryFactory) NewPolygon(rings ...[]geom.Coord) (*Geometry, error) {
	var flat []float64
	var ends []int
	for _, ring := range rings {
		ringFlat, err := f.ringFlatCoords(ring)
		if err != nil {
			return nil, err
		}
		flat = append(flat, ringFlat...)
		ends = append(ends, len(flat))
	}
	return f.wrap(geom.NewPolygonFlat(geom.XY, flat, ends).SetSRID(f.srid)), nil
}

// NewMultiPoint returns a MultiPoint over the given coordinates.
func (f *GeometryFactory) NewMultiPoint(coords []geom.Coord) (*Geometry, error) {
	flat, err := flattenCoords(coords)
	if err != nil {
		return nil, err
	}
	return f.wrap(geom.NewMultiPointFlat(geom.XY, flat).SetSRID(f.srid)), nil
}

// NewMultiLineString returns a MultiLineString over the given lines.
func (f *GeometryFactory) NewMultiLineString(lines ...[]geom.Coord) (*Geometry, error) {
	var flat []float64
	var ends []int
	for _, line := range lines {
		if len(line) == 1 {
			return nil, errors.Newf("LineString must have 0 or >= 2 points, got 1")
		}
		lineFlat, err := flattenCoords(line)
		if err != nil {
			return nil, err
		}
		flat = append(flat, lineFlat...)
		ends = append(ends, len(flat))
	}
	return f.wrap(geom.NewMultiLineStringFlat(geom.XY, flat, ends).SetSRID(f.srid)), nil
}

// NewMultiPolygon returns a MultiPolygon over the given polygons, each
// given as a shell ring followed by hole rings.
func (f *GeometryFactory) NewMultiPolygon(polygons ...[][]geom.Coord) (*Geometry, error) {
	var flat []float64
	var endss [][]int
	for _, rings := range polygons {
		var ends []int
		for _, ring := range rings {
			ringFlat, err := f.ringFlatCoords(ring)
			if err != nil {
				return nil, err
			}
			flat = append(flat, ringFlat...)
			ends = append(ends, len(flat))
		}
		endss = append(endss, ends)
	}
	return f.wrap(geom.NewMultiPolygonFlat(geom.XY, flat, endss).SetSRID(f.srid)), nil
}

// NewGeometryCollection returns a GeometryCollection aggregating deep
// copies of the given geometries. Members must carry the factory's SRID.
func (f *GeometryFactory) NewGeometryCollection(geoms ...*Geometry) (*Geometry, error) {
	gc := geom.NewGeometryCollection()
	for _, g := range geoms {
		if g == nil {
			return nil, errors.Wrap(ErrNilGeometry, "GeometryCollection member")
		}
		if g.SRID() != f.srid {
			return nil, errors.Newf(
				"GeometryCollection member SRID %d does not match factory SRID %d",
				g.SRID(), f.srid,
			)
		}
		gc.MustPush(cloneGeomT(g.AsGeomT()))
	}
	return f.wrap(gc.SetSRID(f.srid)), nil
}

// NewEmpty returns an empty geometry of the given shape.
func (f *GeometryFactory) NewEmpty(shape ShapeType) *Geometry {
	switch shape {
	case ShapeTypePoint:
		return f.wrap(geom.NewPointEmpty(geom.XY).SetSRID(f.srid))
	case ShapeTypeMultiPoint:
		return f.wrap(geom.NewMultiPointFlat(geom.XY, nil).SetSRID(f.srid))
	case ShapeTypeLineString:
		return f.wrap(geom.NewLineStringFlat(geom.XY, nil).SetSRID(f.srid))
	case ShapeTypeLinearRing:
		return f.wrap(geom.NewLinearRingFlat(geom.XY, nil).SetSRID(f.srid))
	case ShapeTypeMultiLineString:
		return f.wrap(geom.NewMultiLineStringFlat(geom.XY, nil, nil).SetSRID(f.srid))
	case ShapeTypePolygon:
		return f.wrap(geom.NewPolygonFlat(geom.XY, nil, nil).SetSRID(f.srid))
	case ShapeTypeMultiPolygon:
		return f.wrap(geom.NewMultiPolygonFlat(geom.XY, nil, nil).SetSRID(f.srid))
	default:
		return f.wrap(geom.NewGeometryCollection().SetSRID(f.srid))
	}
}

// ToGeometry materializes an envelope: an empty Point for a null envelope,
// a Point for a single-location box, otherwise the closed 5-point Polygon
// (minx,miny), (maxx,miny), (maxx,maxy), (minx,maxy), (minx,miny).
func (f *GeometryFactory) ToGeometry(env *Envelope) *Geometry {
	switch {
	case env.IsNull():
		return f.NewEmpty(ShapeTypePoint)
	case env.IsPoint():
		return f.NewPointXY(env.MinX, env.MinY)
	default:
		flat := []float64{
			env.MinX, env.MinY,
			env.MaxX, env.MinY,
			env.MaxX, env.MaxY,
			env.MinX, env.MaxY,
			env.MinX, env.MinY,
		}
		return f.wrap(geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(f.srid))
	}
}

// FromGeomT wraps an existing XY-layout coordinate store in a Geometry
// carrying the factory's context. The store is not copied.
func (f *GeometryFactory) FromGeomT(t geom.T) (*Geometry, error) {
	if err := validateGeomT(t); err != nil {
		return nil, err
	}
	setGeomTSRID(t, f.srid)
	return f.wrap(t), nil
}

func validateGeomT(t geom.T) error {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, child := range gc.Geoms() {
			if err := validateGeomT(child); err != nil {
				return err
			}
		}
		return nil
	}
	if shapeTypeOf(t) == ShapeTypeUnset {
		return errors.Newf("unsupported geometry type %T", t)
	}
	if t.Layout() != geom.XY && len(t.FlatCoords()) > 0 {
		return errors.Newf("unsupported layout %s: only XY is supported", t.Layout())
	}
	return nil
}

func setGeomTSRID(t geom.T, srid int) {
	switch t := t.(type) {
	case *geom.Point:
		t.SetSRID(srid)
	case *geom.LineString:
		t.SetSRID(srid)
	case *geom.LinearRing:
		t.SetSRID(srid)
	case *geom.Polygon:
		t.SetSRID(srid)
	case *geom.MultiPoint:
		t.SetSRID(srid)
	case *geom.MultiLineString:
		t.SetSRID(srid)
	case *geom.MultiPolygon:
		t.SetSRID(srid)
	case *geom.GeometryCollection:
		for _, child := range t.Geoms() {
			setGeomTSRID(child, srid)
		}
		t.SetSRID(srid)
	}
}

func flattenCoords(coords []geom.Coord) ([]float64, error) {
	if len(coords) == 0 {
		return nil, nil
	}
	flat := make([]float64, 0, 2*len(coords))
	for i, c := range coords {
		if len(c) < 2 {
			return nil, errors.Newf("coordinate %d has %d ordinates, need 2", i, len(c))
		}
		flat = append(flat, c.X(), c.Y())
	}
	return flat, nil
}
