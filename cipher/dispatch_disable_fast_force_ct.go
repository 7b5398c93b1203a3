//go:build cube96_disable_fast && cube96_force_ct

package cipher

// HasFastImpl reports whether this build supports the Fast dispatch. This
// build was compiled with cube96_disable_fast, so Fast is unavailable
// regardless of cube96_force_ct.
func HasFastImpl() bool { return false }

// HasHardenedImpl reports whether this build supports the Hardened
// dispatch. Hardened is always available.
func HasHardenedImpl() bool { return true }

func defaultImpl() Mode { return Hardened }

// resolveMode silently coerces every request to Hardened.
func resolveMode(requested Mode) Mode { return Hardened }
