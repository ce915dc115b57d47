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

// Envelope is an axis-aligned bounding box. The zero value is not valid;
// use NewEnvelope or NewNullEnvelope. A "null" envelope is the bounding box
// of an empty point set: all containment and intersection queries on it
// return false.
type Envelope struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewNullEnvelope returns the envelope of the empty point set.
func NewNullEnvelope() *Envelope {
	e := &Envelope{}
	e.SetToNull()
	return e
}

// NewEnvelope returns the envelope spanning the two corner ordinate pairs.
// The ordinates may be given in any order.
func NewEnvelope(x1, y1, x2, y2 float64) *Envelope {
	return &Envelope{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// NewEnvelopeFromCoords returns the envelope of the given coordinates, or a
// null envelope if none are given.
func NewEnvelopeFromCoords(coords ...geom.Coord) *Envelope {
	e := NewNullEnvelope()
	for _, c := range coords {
		e.ExpandToIncludeXY(c.X(), c.Y())
	}
	return e
}

// IsNull reports whether e is the envelope of the empty point set.
func (e *Envelope) IsNull() bool {
	return e.MaxX < e.MinX
}

// SetToNull makes e the envelope of the empty point set.
func (e *Envelope) SetToNull() {
	e.MinX = 0
	e.MaxX = -1
	e.MinY = 0
	e.MaxY = -1
}

// Width returns the extent along the x axis, or 0 for a null envelope.
func (e *Envelope) Width() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxX - e.MinX
}

// Height returns the extent along the y axis, or 0 for a null envelope.
func (e *Envelope) Height() float64 {
	if e.IsNull() {
		return 0
	}
	return e.MaxY - e.MinY
}

// Area returns the area of the envelope, or 0 for a null envelope.
func (e *Envelope) Area() float64 {
	return e.Width() * e.Height()
}

// IsPoint reports whether the envelope spans a single location.
func (e *Envelope) IsPoint() bool {
	return !e.IsNull() && e.MinX == e.MaxX && e.MinY == e.MaxY
}

// Center returns the center of the envelope. ok is false for a null
// envelope.
func (e *Envelope) Center() (x, y float64, ok bool) {
	if e.IsNull() {
		return 0, 0, false
	}
	return (e.MinX + e.MaxX) / 2, (e.MinY + e.MaxY) / 2, true
}

// ExpandToIncludeXY grows the envelope to include the given location.
func (e *Envelope) ExpandToIncludeXY(x, y float64) {
	if e.IsNull() {
		e.MinX, e.MaxX = x, x
		e.MinY, e.MaxY = y, y
		return
	}
	e.MinX = math.Min(e.MinX, x)
	e.MaxX = math.Max(e.MaxX, x)
	e.MinY = math.Min(e.MinY, y)
	e.MaxY = math.Max(e.MaxY, y)
}

// ExpandToInclude grows the envelope to include other.
func (e *Envelope) ExpandToInclude(other *Envelope) {
	if other.IsNull() {
		return
	}
	e.ExpandToIncludeXY(other.MinX, other.MinY)
	e.ExpandToIncludeXY(other.MaxX, other.MaxY)
}

// ExpandedBy returns a copy of the envelope grown by distance on every
// side. A null envelope stays null.
func (e *Envelope) ExpandedBy(distance float64) *Envelope {
	if e.IsNull() {
		return NewNullEnvelope()
	}
	return &Envelope{
		MinX: e.MinX - distance,
		MinY: e.MinY - distance,
		MaxX: e.MaxX + distance,
		MaxY: e.MaxY + distance,
	}
}

// ContainsXY reports whether the location lies inside or on the border of
// the envelope.
func (e *Envelope) ContainsXY(x, y float64) bool {
	if e.IsNull() {
		return false
	}
	return x >= e.MinX && x <= e.MaxX && y >= e.MinY && y <= e.MaxY
}

// Covers reports whether other lies wholly inside or on the border of e.
// This is a necessary condition for topological covering, never a
// sufficient one.
func (e *Envelope) Covers(other *Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return false
	}
	return other.MinX >= e.MinX && other.MaxX <= e.MaxX &&
		other.MinY >= e.MinY && other.MaxY <= e.MaxY
}

// Contains is a synonym of Covers, matching the envelope semantics where
// border containment counts.
func (e *Envelope) Contains(other *Envelope) bool {
	return e.Covers(other)
}

// Intersects reports whether the two envelopes have any point in common.
func (e *Envelope) Intersects(other *Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return false
	}
	return other.MinX <= e.MaxX && other.MaxX >= e.MinX &&
		other.MinY <= e.MaxY && other.MaxY >= e.MinY
}

// Distance returns the distance between the closest points of the two
// envelopes, 0 if they intersect. The distance to a null envelope is NaN.
func (e *Envelope) Distance(other *Envelope) float64 {
	if e.IsNull() || other.IsNull() {
		return math.NaN()
	}
	if e.Intersects(other) {
		return 0
	}
	var dx, dy float64
	switch {
	case e.MaxX < other.MinX:
		dx = other.MinX - e.MaxX
	case e.MinX > other.MaxX:
		dx = e.MinX - other.MaxX
	}
	switch {
	case e.MaxY < other.MinY:
		dy = other.MinY - e.MaxY
	case e.MinY > other.MaxY:
		dy = e.MinY - other.MaxY
	}
	return math.Hypot(dx, dy)
}

// Equals reports whether the two envelopes span the same box. Two null
// envelopes are equal.
func (e *Envelope) Equals(other *Envelope) bool {
	if e.IsNull() || other.IsNull() {
		return e.IsNull() == other.IsNull()
	}
	return e.MinX == other.MinX && e.MaxX == other.MaxX &&
		e.MinY == other.MinY && e.MaxY == other.MaxY
}

// Clone returns a copy of the envelope.
func (e *Envelope) Clone() *Envelope {
	c := *e
	return &c
}

// String implements fmt.Stringer.
func (e *Envelope) String() string {
	if e.IsNull() {
		return "Env[null]"
	}
	return fmt.Sprintf("Env[%v:%v,%v:%v]", e.MinX, e.MaxX, e.MinY, e.MaxY)
}
