// Copyright 2024 The JSTS-Go Authors.
//
// Use of this software is governed by the Apache License, Version 2.0,
// included in the LICENSE file.

package geomfn

import (
	"github.com/matsjg/jsts/geo"
)

// MatchesDE9IM matches an already-computed DE-9IM relation string against
// a 9-character pattern. Pattern cells accept T (any intersection), F (no
// intersection), an exact dimension 0, 1 or 2, or * for anything; T and F
// are case insensitive.
func MatchesDE9IM(relation string, pattern string) (bool, error) {
	return geo.MatchesDE9IM(relation, pattern)
}
