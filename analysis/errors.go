package analysis

import "errors"

// errNoTrailFound is returned by SearchDifferentialTrail when the search
// records no complete trail. Every accepted branchLimit keeps at least one
// transition per nonzero byte difference, so this is a defensive guard.
var errNoTrailFound = errors.New("analysis: no differential trail found with the given parameters")
