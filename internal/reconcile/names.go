package reconcile

import "strconv"

// DeriveName returns the display name for the dynamic socket at the given
// 1-based ordinal among non-control sockets. The ordinal is capped at
// nonSeedCount so the trailing placeholder never displays a name implying
// more slots than currently exist excluding seed.
func DeriveName(prefix string, ordinal, nonSeedCount int) string {
	if ordinal < 1 {
		ordinal = 1
	}
	if nonSeedCount > 0 && ordinal > nonSeedCount {
		ordinal = nonSeedCount
	}
	return prefix + strconv.Itoa(ordinal)
}
