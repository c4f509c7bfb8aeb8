package core

import "sync"

// NextIdentity returns the next identity number for the category, starting at
// 1. Numbers are monotonically increasing per category and never reused for
// the lifetime of the process.
func NextIdentity(category string) int {
	identityMu.Lock()
	defer identityMu.Unlock()

	identityCounts[category]++

	return identityCounts[category]
}

// ResetIdentityCounters clears every per-category identity counter.
//
// Counters are process-wide and persist across tests in the same run; tests
// that depend on stable generated ids must call this in their own setup.
func ResetIdentityCounters() {
	identityMu.Lock()
	defer identityMu.Unlock()

	clear(identityCounts)
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Process-wide counters keep generated ids unique across every builder call
	identityCounts = make(map[string]int)
	//nolint:gochecknoglobals // Mutex for identityCounts
	identityMu sync.Mutex
)
