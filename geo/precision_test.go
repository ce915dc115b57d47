// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
)

func TestPrecisionModel(t *testing.T) {
	t.Run("floating model keeps ordinates", func(t *testing.T) {
		var pm *PrecisionModel
		require.True(t, pm.IsFloating())
		require.Equal(t, 1.23456789, pm.MakePrecise(1.23456789))
		require.True(t, NewPrecisionModel().IsFloating())
		require.Equal(t, "Floating", NewPrecisionModel().String())
	})

	t.Run("non-positive scale degrades to floating", func(t *testing.T) {
		require.True(t, NewFixedPrecisionModel(0).IsFloating())
		require.True(t, NewFixedPrecisionModel(-10).IsFloating())
	})

	t.Run("fixed model rounds to grid", func(t *testing.T) {
		pm := NewFixedPrecisionModel(100)
		require.False(t, pm.IsFloating())
		require.Equal(t, 100.0, pm.Scale())
		require.Equal(t, "Fixed[scale=100]", pm.String())

		testCases := []struct {
			in, expected float64
		}{
			{1.234, 1.23},
			{1.238, 1.24},
			{-1.234, -1.23},
			{5, 5},
		}
		for i, tc := range testCases {
			t.Run(fmt.Sprintf("tc:%d", i), func(t *testing.T) {
				require.Equal(t, tc.expected, pm.MakePrecise(tc.in))
			})
		}
	})

	t.Run("coord rounding mutates in place", func(t *testing.T) {
		pm := NewFixedPrecisionModel(10)
		c := geom.Coord{1.26, 3.44}
		pm.MakePreciseCoord(c)
		require.Equal(t, geom.Coord{1.3, 3.4}, c)
	})
}
