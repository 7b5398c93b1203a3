//go:build cube96_force_ct && !cube96_disable_fast

package cipher

// HasFastImpl reports whether this build supports the Fast dispatch. The
// Fast tables are still compiled in under cube96_force_ct, but resolveMode
// never honors a Fast request.
func HasFastImpl() bool { return true }

// HasHardenedImpl reports whether this build supports the Hardened
// dispatch. Hardened is always available.
func HasHardenedImpl() bool { return true }

func defaultImpl() Mode { return Hardened }

// resolveMode silently coerces every request to Hardened: cube96_force_ct
// pins the implementation dispatch regardless of caller preference.
func resolveMode(requested Mode) Mode { return Hardened }
