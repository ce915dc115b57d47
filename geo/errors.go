// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"fmt"

	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"
)

// The error taxonomy is three-way and callers are expected to branch on it:
//
//   - precondition violations (nil operands, GeometryCollection passed to an
//     operation that forbids it, mixed SRIDs) are reported before any
//     computation starts and are detectable with errors.Is against the
//     sentinels below;
//   - topology collapses are reported by the overlay/buffer path as a
//     *TopologyError carrying a best-effort location;
//   - robustness failures internal to a delegated algorithm are reported as
//     a *RobustnessError.
//
// No operation retries or masks any of these.
var (
	// ErrGeometryCollectionNotSupported is returned when a
	// GeometryCollection is passed to an operation that forbids it.
	ErrGeometryCollectionNotSupported = errors.New("operation is unsupported for GeometryCollection")

	// ErrMismatchingSRIDs is returned when a binary operation is given
	// operands from different coordinate spaces.
	ErrMismatchingSRIDs = errors.New("operation on mixed SRIDs forbidden")

	// ErrNilGeometry is returned when a nil geometry operand is given.
	ErrNilGeometry = errors.New("nil geometry operand")
)

// NewMismatchingSRIDsError returns a precondition error describing the two
// mismatched operands. errors.Is(err, ErrMismatchingSRIDs) holds.
func NewMismatchingSRIDsError(a *Geometry, b *Geometry) error {
	return errors.Mark(
		errors.Newf(
			"operation on mixed SRIDs forbidden: (%s, %d) != (%s, %d)",
			a.ShapeType(), a.SRID(), b.ShapeType(), b.SRID(),
		),
		ErrMismatchingSRIDs,
	)
}

// NewUnsupportedCollectionError returns a precondition error for a
// GeometryCollection operand. errors.Is(err,
// ErrGeometryCollectionNotSupported) holds.
func NewUnsupportedCollectionError(op string) error {
	return errors.Mark(
		errors.Newf("%s is unsupported for GeometryCollection operands", op),
		ErrGeometryCollectionNotSupported,
	)
}

// TopologyError reports that precision truncation of a constructed point
// degenerated the dimension of a result. The offending location is carried
// when it is computable.
type TopologyError struct {
	msg string
	loc geom.Coord
}

// NewTopologyError returns a TopologyError. loc may be nil when no
// location is known.
func NewTopologyError(msg string, loc geom.Coord) *TopologyError {
	return &TopologyError{msg: msg, loc: loc}
}

// Error implements error.
func (e *TopologyError) Error() string {
	if e.loc == nil {
		return fmt.Sprintf("topology error: %s", e.msg)
	}
	return fmt.Sprintf("topology error: %s [ (%v, %v) ]", e.msg, e.loc.X(), e.loc.Y())
}

// Location returns the offending location, or nil if none was computed.
func (e *TopologyError) Location() geom.Coord {
	return e.loc
}

// RobustnessError reports a numerical failure internal to a delegated
// algorithm. It is never folded into a false predicate result.
type RobustnessError struct {
	msg string
}

// NewRobustnessError returns a RobustnessError.
func NewRobustnessError(format string, args ...interface{}) *RobustnessError {
	return &RobustnessError{msg: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e *RobustnessError) Error() string {
	return fmt.Sprintf("robustness failure: %s", e.msg)
}
