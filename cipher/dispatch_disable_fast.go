//go:build cube96_disable_fast && !cube96_force_ct

package cipher

// HasFastImpl reports whether this build supports the Fast dispatch. This
// build was compiled with cube96_disable_fast, so Fast is unavailable.
func HasFastImpl() bool { return false }

// HasHardenedImpl reports whether this build supports the Hardened
// dispatch. Hardened is always available.
func HasHardenedImpl() bool { return true }

func defaultImpl() Mode { return Hardened }

// resolveMode silently coerces a Fast request to Hardened:
// cube96_disable_fast removes the Fast dispatch from the build entirely, and
// coercion keeps SetKey/EncryptBlock/DecryptBlock infallible, at the cost of
// silently ignoring the caller's stated preference.
func resolveMode(requested Mode) Mode { return Hardened }
