// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geo

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// IntersectionMatrix is a DE-9IM matrix: a 3x3 table holding the dimension
// of the intersection between the interior, boundary and exterior point
// sets of two geometries. Cells hold DimFalse, DimPoint, DimCurve or
// DimSurface. A matrix is immutable once handed out by the relate engine.
type IntersectionMatrix struct {
	m [3][3]Dimension
}

// NewIntersectionMatrix returns a matrix with every cell set to DimFalse.
func NewIntersectionMatrix() *IntersectionMatrix {
	im := &IntersectionMatrix{}
	for i := range im.m {
		for j := range im.m[i] {
			im.m[i][j] = DimFalse
		}
	}
	return im
}

// IntersectionMatrixFromString parses a 9-character DE-9IM relation such as
// "FF2F11212". Characters 0, 1, 2 and F (case-insensitive) are accepted.
func IntersectionMatrixFromString(relation string) (*IntersectionMatrix, error) {
	if len(relation) != 9 {
		return nil, errors.Newf("relation %q should be of length 9", relation)
	}
	im := NewIntersectionMatrix()
	for i, r := range relation {
		d, err := dimensionFromRune(r)
		if err != nil {
			return nil, err
		}
		im.m[i/3][i%3] = d
	}
	return im, nil
}

func dimensionFromRune(r rune) (Dimension, error) {
	switch unicode.ToUpper(r) {
	case 'F':
		return DimFalse, nil
	case '0':
		return DimPoint, nil
	case '1':
		return DimCurve, nil
	case '2':
		return DimSurface, nil
	default:
		return DimFalse, errors.Newf("unrecognized relation character: %c", r)
	}
}

// Get returns the dimension of the intersection of the given point sets of
// the two geometries.
func (im *IntersectionMatrix) Get(a, b Location) Dimension {
	return im.m[a][b]
}

// Set assigns a cell of the matrix.
func (im *IntersectionMatrix) Set(a, b Location, dim Dimension) {
	im.m[a][b] = dim
}

// SetAtLeast raises a cell to dim if its current value is lower.
func (im *IntersectionMatrix) SetAtLeast(a, b Location, dim Dimension) {
	if im.m[a][b] < dim {
		im.m[a][b] = dim
	}
}

// Transpose flips the matrix in place across its main diagonal, swapping
// the roles of the two geometries, and returns it.
func (im *IntersectionMatrix) Transpose() *IntersectionMatrix {
	im.m[0][1], im.m[1][0] = im.m[1][0], im.m[0][1]
	im.m[0][2], im.m[2][0] = im.m[2][0], im.m[0][2]
	im.m[1][2], im.m[2][1] = im.m[2][1], im.m[1][2]
	return im
}

// String returns the 9-character DE-9IM relation, row-major.
func (im *IntersectionMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			switch im.m[i][j] {
			case DimPoint:
				sb.WriteByte('0')
			case DimCurve:
				sb.WriteByte('1')
			case DimSurface:
				sb.WriteByte('2')
			default:
				sb.WriteByte('F')
			}
		}
	}
	return sb.String()
}

// Matches reports whether the matrix matches a 9-character DE-9IM pattern.
// Pattern characters: 0, 1 and 2 match that exact dimension, T matches any
// non-empty intersection, F matches only an empty one and * matches
// anything.
func (im *IntersectionMatrix) Matches(pattern string) (bool, error) {
	return MatchesDE9IM(im.String(), pattern)
}

// MatchesDE9IM reports whether a 9-character DE-9IM relation matches a
// 9-character pattern. See IntersectionMatrix.Matches for the pattern
// alphabet.
func MatchesDE9IM(relation string, pattern string) (bool, error) {
	if len(relation) != 9 {
		return false, errors.Newf("relation %q should be of length 9", relation)
	}
	if len(pattern) != 9 {
		return false, errors.Newf("pattern %q should be of length 9", pattern)
	}
	for i, p := range pattern {
		matches, err := relationByteMatchesPatternByte(relation[i], p)
		if err != nil {
			return false, err
		}
		if !matches {
			return false, nil
		}
	}
	return true, nil
}

func relationByteMatchesPatternByte(r byte, p rune) (bool, error) {
	switch unicode.ToLower(p) {
	case '*':
		return true, nil
	case 't':
		return r >= '0' && r <= '2', nil
	case 'f':
		return unicode.ToLower(rune(r)) == 'f', nil
	case '0', '1', '2':
		return rune(r) == p, nil
	default:
		return false, errors.Newf("unrecognized pattern character: %c", p)
	}
}

func isTrue(d Dimension) bool {
	return d > DimFalse
}

// IsDisjoint reports whether the matrix says the two geometries share no
// point, i.e. matches FF*FF****.
func (im *IntersectionMatrix) IsDisjoint() bool {
	return !im.IsIntersects()
}

// IsIntersects reports whether the matrix says the two geometries share at
// least one point.
func (im *IntersectionMatrix) IsIntersects() bool {
	return isTrue(im.m[Interior][Interior]) ||
		isTrue(im.m[Interior][Boundary]) ||
		isTrue(im.m[Boundary][Interior]) ||
		isTrue(im.m[Boundary][Boundary])
}

// IsTouches reports whether the matrix matches one of FT*******, F**T*****
// or F***T****. Touches is never true for two points.
func (im *IntersectionMatrix) IsTouches(dimA, dimB Dimension) bool {
	if dimA == DimPoint && dimB == DimPoint {
		return false
	}
	return im.m[Interior][Interior] == DimFalse &&
		(isTrue(im.m[Interior][Boundary]) ||
			isTrue(im.m[Boundary][Interior]) ||
			isTrue(im.m[Boundary][Boundary]))
}

// IsCrosses selects the crossing pattern by operand dimensions:
// T*T****** for dimA < dimB, T*****T** for dimA > dimB and 0******** for
// two curves. Any other dimension pair yields false.
func (im *IntersectionMatrix) IsCrosses(dimA, dimB Dimension) bool {
	switch {
	case dimA < dimB:
		return isTrue(im.m[Interior][Interior]) && isTrue(im.m[Interior][Exterior])
	case dimA > dimB:
		return isTrue(im.m[Interior][Interior]) && isTrue(im.m[Exterior][Interior])
	case dimA == DimCurve && dimB == DimCurve:
		return im.m[Interior][Interior] == DimPoint
	default:
		return false
	}
}

// IsWithin reports whether the matrix matches T*F**F***.
func (im *IntersectionMatrix) IsWithin() bool {
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse
}

// IsContains reports whether the matrix matches T*****FF*.
func (im *IntersectionMatrix) IsContains() bool {
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsCovers reports whether the matrix matches one of T*****FF*, *T****FF*,
// ***T**FF* or ****T*FF*.
func (im *IntersectionMatrix) IsCovers() bool {
	hasPointInCommon := isTrue(im.m[Interior][Interior]) ||
		isTrue(im.m[Interior][Boundary]) ||
		isTrue(im.m[Boundary][Interior]) ||
		isTrue(im.m[Boundary][Boundary])
	return hasPointInCommon &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsCoveredBy reports whether the matrix matches one of T*F**F***,
// *TF**F***, **FT*F*** or **F*TF***.
func (im *IntersectionMatrix) IsCoveredBy() bool {
	hasPointInCommon := isTrue(im.m[Interior][Interior]) ||
		isTrue(im.m[Interior][Boundary]) ||
		isTrue(im.m[Boundary][Interior]) ||
		isTrue(im.m[Boundary][Boundary])
	return hasPointInCommon &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse
}

// IsEquals reports topological equality: equal operand dimensions and a
// matrix matching T*F**FFF*.
func (im *IntersectionMatrix) IsEquals(dimA, dimB Dimension) bool {
	if dimA != dimB {
		return false
	}
	return isTrue(im.m[Interior][Interior]) &&
		im.m[Interior][Exterior] == DimFalse &&
		im.m[Boundary][Exterior] == DimFalse &&
		im.m[Exterior][Interior] == DimFalse &&
		im.m[Exterior][Boundary] == DimFalse
}

// IsOverlaps selects the overlap pattern by operand dimensions:
// T*T***T** for two points or two surfaces, 1*T***T** for two curves. Any
// other dimension pair yields false.
func (im *IntersectionMatrix) IsOverlaps(dimA, dimB Dimension) bool {
	switch {
	case dimA == DimPoint && dimB == DimPoint,
		dimA == DimSurface && dimB == DimSurface:
		return isTrue(im.m[Interior][Interior]) &&
			isTrue(im.m[Interior][Exterior]) &&
			isTrue(im.m[Exterior][Interior])
	case dimA == DimCurve && dimB == DimCurve:
		return im.m[Interior][Interior] == DimCurve &&
			isTrue(im.m[Interior][Exterior]) &&
			isTrue(im.m[Exterior][Interior])
	default:
		return false
	}
}
