//go:build mutation

package main

import (
	"testing"

	"github.com/gtramontina/ooze"
)

func TestMutation(t *testing.T) {
	ooze.Release(
		t,
		ooze.WithTestCommand("targ test-for-fail"),
		ooze.Parallel(),
		ooze.IgnoreSourceFiles("^dev/.*|.*_mock.go|.*_test.go"),
		ooze.WithMinimumThreshold(1.00),
		ooze.WithRepositoryRoot("."),
		ooze.ForceColors(),
	)
}
