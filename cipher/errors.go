package cipher

import "errors"

// ErrFastImplDisabled reports a Fast dispatch request against a build
// compiled with cube96_disable_fast. New coerces such requests to Hardened
// instead of failing, keeping SetKey and the block operations total;
// callers that must not silently lose the Fast path check HasFastImpl and
// surface this error at their own boundary.
var ErrFastImplDisabled = errors.New("cipher: fast implementation disabled in this build")
