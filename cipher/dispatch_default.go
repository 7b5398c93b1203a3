//go:build !cube96_disable_fast && !cube96_force_ct

package cipher

// HasFastImpl reports whether this build supports the Fast dispatch.
func HasFastImpl() bool { return true }

// HasHardenedImpl reports whether this build supports the Hardened
// dispatch. Hardened is always available.
func HasHardenedImpl() bool { return true }

func defaultImpl() Mode { return Fast }

// resolveMode is the identity in the default build: both Fast and Hardened
// are honored as requested.
func resolveMode(requested Mode) Mode { return requested }
