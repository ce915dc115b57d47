// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"fmt"
	"math"

	geom "github.com/twpayne/go-geom"
)

// PrecisionModel specifies the grid constructed coordinates are rounded
// onto. The zero value and the nil pointer are both the floating model, in
// which ordinates keep full float64 precision. A fixed model rounds every
// ordinate to the nearest 1/scale.
//
// A PrecisionModel is read-only after construction and may be shared
// freely.
type PrecisionModel struct {
	// scale is the number of grid cells per unit, or 0 for the floating
	// model.
	scale float64
}

// NewPrecisionModel returns the floating precision model.
func NewPrecisionModel() *PrecisionModel {
	return &PrecisionModel{}
}

// NewFixedPrecisionModel returns a fixed precision model with the given
// scale. Scales <= 0 degrade to the floating model.
func NewFixedPrecisionModel(scale float64) *PrecisionModel {
	if scale <= 0 {
		scale = 0
	}
	return &PrecisionModel{scale: scale}
}

// IsFloating reports whether ordinates keep full precision.
func (pm *PrecisionModel) IsFloating() bool {
	return pm == nil || pm.scale == 0
}

// Scale returns the grid scale, or 0 for the floating model.
func (pm *PrecisionModel) Scale() float64 {
	if pm == nil {
		return 0
	}
	return pm.scale
}

// MakePrecise rounds an ordinate onto the precision grid.
func (pm *PrecisionModel) MakePrecise(v float64) float64 {
	if pm.IsFloating() {
		return v
	}
	return math.Round(v*pm.scale) / pm.scale
}

// MakePreciseCoord rounds a coordinate in place and returns it.
func (pm *PrecisionModel) MakePreciseCoord(c geom.Coord) geom.Coord {
	if pm.IsFloating() {
		return c
	}
	c[0] = pm.MakePrecise(c[0])
	c[1] = pm.MakePrecise(c[1])
	return c
}

// String implements fmt.Stringer.
func (pm *PrecisionModel) String() string {
	if pm.IsFloating() {
		return "Floating"
	}
	return fmt.Sprintf("Fixed[scale=%v]", pm.scale)
}
