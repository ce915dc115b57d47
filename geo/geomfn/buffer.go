// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/overlay"
)

// BufferParams tunes buffer construction; see overlay.BufferParams.
type BufferParams = overlay.BufferParams

// End cap styles for buffered lines.
const (
	EndCapRound  = overlay.EndCapRound
	EndCapButt   = overlay.EndCapButt
	EndCapSquare = overlay.EndCapSquare
)

// Buffer returns the region within distance of g using round end caps and
// 8 segments per quadrant.
func Buffer(g *geo.Geometry, distance float64) (*geo.Geometry, error) {
	return overlay.Buffer(g, distance, overlay.DefaultBufferParams())
}

// BufferWithParams is Buffer with explicit construction parameters.
func BufferWithParams(g *geo.Geometry, distance float64, params BufferParams) (*geo.Geometry, error) {
	return overlay.Buffer(g, distance, params)
}
