// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"fmt"

	"github.com/cockroachdb/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// Node returns the fully noded form of linear input: every line is split
// where it meets itself or another line, duplicate stretches are dissolved,
// and the pieces are returned as a MultiLineString. Input endpoints are
// preserved as nodes.
func Node(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	switch g.ShapeType() {
	case geo.ShapeTypeLineString, geo.ShapeTypeMultiLineString:
	default:
		return nil, errors.Newf("Node requires a LineString or MultiLineString, got %s", g.ShapeType())
	}
	f := g.Factory()
	if g.IsEmpty() {
		return f.NewEmpty(geo.ShapeTypeGeometryCollection), nil
	}
	parts, err := relate.Decompose(g)
	if err != nil {
		return nil, err
	}

	chains := make([][]geom.Coord, len(parts.Lines))
	for i, flat := range parts.Lines {
		chains[i] = chainOfFlat(flat)
	}
	nodes := nodePoints(chains)

	var pieces [][]geom.Coord
	seen := map[string]bool{}
	for i, chain := range chains {
		noded := nodeChain(i, chain, chains)
		for _, piece := range splitChainAtNodes(noded, nodes) {
			key := pieceKey(piece)
			if seen[key] {
				continue
			}
			seen[key] = true
			pieces = append(pieces, piece)
		}
	}
	return f.NewMultiLineString(pieces...)
}

func chainOfFlat(flat []float64) []geom.Coord {
	chain := make([]geom.Coord, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		chain = append(chain, geom.Coord{flat[i], flat[i+1]})
	}
	return chain
}

// nodePoints gathers every point where the linework must break: chain
// endpoints and all intersections between non-adjacent segments.
func nodePoints(chains [][]geom.Coord) map[[2]float64]bool {
	nodes := map[[2]float64]bool{}
	mark := func(c geom.Coord) {
		nodes[[2]float64{c.X(), c.Y()}] = true
	}
	for _, chain := range chains {
		mark(chain[0])
		mark(chain[len(chain)-1])
	}
	for li := range chains {
		for lj := li; lj < len(chains); lj++ {
			for si := 0; si+1 < len(chains[li]); si++ {
				sjStart := 0
				if li == lj {
					sjStart = si + 1
				}
				for sj := sjStart; sj+1 < len(chains[lj]); sj++ {
					if li == lj && sj == si+1 {
						continue
					}
					pts, _ := planar.SegmentIntersection(
						chains[li][si], chains[li][si+1],
						chains[lj][sj], chains[lj][sj+1],
					)
					for _, p := range pts {
						mark(p)
					}
				}
			}
		}
	}
	return nodes
}

// nodeChain splits every segment of chain at its intersections with the
// rest of the linework and splices the cuts back into one vertex run.
func nodeChain(self int, chain []geom.Coord, chains [][]geom.Coord) []geom.Coord {
	var out []geom.Coord
	for si := 0; si+1 < len(chain); si++ {
		a, b := chain[si], chain[si+1]
		var cuts []geom.Coord
		for lj, other := range chains {
			for sj := 0; sj+1 < len(other); sj++ {
				if lj == self && (sj == si || sj == si-1 || sj == si+1) {
					continue
				}
				pts, _ := planar.SegmentIntersection(a, b, other[sj], other[sj+1])
				cuts = append(cuts, pts...)
			}
		}
		sub := planar.SplitSegment(a, b, cuts)
		if len(out) == 0 {
			out = append(out, sub...)
		} else {
			out = append(out, sub[1:]...)
		}
	}
	return out
}

func splitChainAtNodes(chain []geom.Coord, nodes map[[2]float64]bool) [][]geom.Coord {
	var pieces [][]geom.Coord
	start := 0
	for i := 1; i < len(chain); i++ {
		atNode := nodes[[2]float64{chain[i].X(), chain[i].Y()}]
		if i == len(chain)-1 || atNode {
			piece := make([]geom.Coord, 0, i-start+1)
			piece = append(piece, chain[start:i+1]...)
			pieces = append(pieces, piece)
			start = i
		}
	}
	return pieces
}

// pieceKey canonicalizes a piece for duplicate dissolution; a piece and
// its reversal share a key.
func pieceKey(piece []geom.Coord) string {
	first, last := piece[0], piece[len(piece)-1]
	reversed := geo.CompareCoords(last, first) < 0
	key := ""
	for i := range piece {
		c := piece[i]
		if reversed {
			c = piece[len(piece)-1-i]
		}
		key += fmt.Sprintf("%v,%v;", c.X(), c.Y())
	}
	return key
}
