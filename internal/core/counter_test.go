package core

import (
	"sync"
	"testing"
)

func TestNextIdentity_StartsAtOneAndIncrements(t *testing.T) {
	t.Parallel()

	// Counters are process-wide; a dedicated category keeps this test
	// independent of every other test in the package.
	const category = "counter-test-tower"

	if got := NextIdentity(category); got != 1 {
		t.Errorf("expected first identity 1, got %d", got)
	}

	if got := NextIdentity(category); got != 2 {
		t.Errorf("expected second identity 2, got %d", got)
	}
}

func TestNextIdentity_CategoriesAreIndependent(t *testing.T) {
	t.Parallel()

	first := NextIdentity("counter-test-extension")
	NextIdentity("counter-test-link")

	if got := NextIdentity("counter-test-extension"); got != first+1 {
		t.Errorf("expected %d, got %d", first+1, got)
	}
}

func TestNextIdentity_Concurrent(t *testing.T) {
	t.Parallel()

	const (
		category   = "counter-test-concurrent"
		goroutines = 32
	)

	var wg sync.WaitGroup

	seen := make(chan int, goroutines)

	for range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()
			seen <- NextIdentity(category)
		}()
	}

	wg.Wait()
	close(seen)

	unique := make(map[int]bool)
	for id := range seen {
		if unique[id] {
			t.Errorf("identity %d handed out twice", id)
		}

		unique[id] = true
	}
}

// Not parallel: resetting wipes every category, so this must not interleave
// with tests that watch counter progressions.
func TestResetIdentityCounters(t *testing.T) { //nolint:paralleltest
	const category = "counter-test-reset"

	NextIdentity(category)
	NextIdentity(category)

	ResetIdentityCounters()

	if got := NextIdentity(category); got != 1 {
		t.Errorf("expected counter to restart at 1 after reset, got %d", got)
	}
}
