// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package overlay

import (
	geom "github.com/twpayne/go-geom"

	"github.com/matsjg/jsts/geo"
	"github.com/matsjg/jsts/geo/planar"
	"github.com/matsjg/jsts/geo/relate"
)

// nodedChains splits each line component of a at its intersections with
// the segments of b, returning one vertex chain per line.
func nodedChains(a, b *relate.Parts) [][]geom.Coord {
	cutters := b.AllSegments()
	chains := make([][]geom.Coord, 0, len(a.Lines))
	for _, line := range a.Lines {
		var chain []geom.Coord
		for i := 0; i+3 < len(line); i += 2 {
			s, e := geom.Coord(line[i:i+2]), geom.Coord(line[i+2:i+4])
			var cuts []geom.Coord
			for _, cutter := range cutters {
				pts, _ := planar.SegmentIntersection(s, e, cutter[0], cutter[1])
				cuts = append(cuts, pts...)
			}
			sub := planar.SplitSegment(s, e, cuts)
			if len(chain) == 0 {
				chain = append(chain, sub...)
			} else {
				chain = append(chain, sub[1:]...)
			}
		}
		if len(chain) >= 2 {
			chains = append(chains, chain)
		}
	}
	return chains
}

// lineOnIntersection intersects the line components of a with b. Noded
// sub-segments whose midpoint lies on b are kept as lines; noding vertices
// on b with no kept incident sub-segment become isolated points.
func lineOnIntersection(a, b *relate.Parts) (pts []geom.Coord, lines [][]geom.Coord) {
	for _, chain := range nodedChains(a, b) {
		kept := make([]bool, len(chain)-1)
		for i := range kept {
			kept[i] = b.Locate(planar.Midpoint(chain[i], chain[i+1])) != geo.Exterior
		}
		lines = append(lines, keptRuns(chain, kept)...)
		for i, v := range chain {
			keptBefore := i > 0 && kept[i-1]
			keptAfter := i < len(kept) && kept[i]
			if keptBefore || keptAfter {
				continue
			}
			if b.Locate(v) != geo.Exterior {
				pts = append(pts, v)
			}
		}
	}
	pts = dedupeCoords(pts)
	// A vertex touch on one component may still be covered by a kept line
	// of another.
	var isolated []geom.Coord
	for _, p := range pts {
		if !coordOnChains(p, lines) {
			isolated = append(isolated, p)
		}
	}
	return isolated, lines
}

// lineClearDifference returns the parts of a's line components clear of b:
// the noded sub-segments whose midpoint is exterior to b.
func lineClearDifference(a, b *relate.Parts) [][]geom.Coord {
	var lines [][]geom.Coord
	for _, chain := range nodedChains(a, b) {
		kept := make([]bool, len(chain)-1)
		for i := range kept {
			kept[i] = b.Locate(planar.Midpoint(chain[i], chain[i+1])) == geo.Exterior
		}
		lines = append(lines, keptRuns(chain, kept)...)
	}
	return lines
}

// allLineChains returns every line of a, noded at its intersections with
// b so shared vertices materialize in both union operands.
func allLineChains(a, b *relate.Parts) [][]geom.Coord {
	return nodedChains(a, b)
}

// keptRuns slices a chain into the maximal runs of kept sub-segments.
func keptRuns(chain []geom.Coord, kept []bool) [][]geom.Coord {
	var runs [][]geom.Coord
	start := -1
	for i := 0; i <= len(kept); i++ {
		if i < len(kept) && kept[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			run := make([]geom.Coord, 0, i-start+1)
			run = append(run, chain[start:i+1]...)
			runs = append(runs, run)
			start = -1
		}
	}
	return runs
}

func coordOnChains(c geom.Coord, chains [][]geom.Coord) bool {
	for _, chain := range chains {
		for i := 0; i+1 < len(chain); i++ {
			if planar.PointOnSegment(c, chain[i], chain[i+1]) {
				return true
			}
		}
	}
	return false
}

// containsSegment reports whether segs already holds the two-point segment
// seg in either direction.
func containsSegment(segs [][]geom.Coord, seg []geom.Coord) bool {
	for _, s := range segs {
		if len(s) != 2 {
			continue
		}
		if planar.CoordsEqual(s[0], seg[0]) && planar.CoordsEqual(s[1], seg[1]) {
			return true
		}
		if planar.CoordsEqual(s[0], seg[1]) && planar.CoordsEqual(s[1], seg[0]) {
			return true
		}
	}
	return false
}

// MergeLines stitches the line components of g into maximal chains joined
// where exactly two endpoints meet. Unlike UnaryUnion it does not node
// crossings and does not dissolve duplicate segments.
func MergeLines(g *geo.Geometry) (*geo.Geometry, error) {
	if g == nil {
		return nil, geo.ErrNilGeometry
	}
	parts, err := relate.Decompose(g)
	if err != nil {
		return nil, err
	}
	bld := newBuilder(g.Factory())
	chains := make([][]geom.Coord, 0, len(parts.Lines))
	for _, flat := range parts.Lines {
		chains = append(chains, chainFromFlat(flat))
	}
	return bld.build(nil, stitchChains(chains), nil)
}

// stitchChains greedily merges chains sharing endpoints into longer
// chains. Junction vertices of degree three or more end a chain.
func stitchChains(chains [][]geom.Coord) [][]geom.Coord {
	degree := make(map[[2]float64]int)
	key := func(c geom.Coord) [2]float64 { return [2]float64{c.X(), c.Y()} }
	for _, chain := range chains {
		degree[key(chain[0])]++
		degree[key(chain[len(chain)-1])]++
	}
	used := make([]bool, len(chains))
	var out [][]geom.Coord
	for i := range chains {
		if used[i] {
			continue
		}
		used[i] = true
		merged := append([]geom.Coord{}, chains[i]...)
		for {
			extended := false
			for j := range chains {
				if used[j] {
					continue
				}
				next := chains[j]
				head, tail := merged[0], merged[len(merged)-1]
				switch {
				case degree[key(tail)] == 2 && planar.CoordsEqual(next[0], tail):
					merged = append(merged, next[1:]...)
				case degree[key(tail)] == 2 && planar.CoordsEqual(next[len(next)-1], tail):
					merged = append(merged, reverseChain(next)[1:]...)
				case degree[key(head)] == 2 && planar.CoordsEqual(next[len(next)-1], head):
					merged = append(append([]geom.Coord{}, next...), merged[1:]...)
				case degree[key(head)] == 2 && planar.CoordsEqual(next[0], head):
					merged = append(reverseChain(next), merged[1:]...)
				default:
					continue
				}
				used[j] = true
				extended = true
				break
			}
			if !extended {
				break
			}
		}
		out = append(out, merged)
	}
	return out
}

func reverseChain(chain []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(chain))
	for i, c := range chain {
		out[len(chain)-1-i] = c
	}
	return out
}
