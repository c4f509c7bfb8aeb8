package core

import "fmt"

// UnmockedAccessError reports a read of a property that was never mocked.
// It carries the full diagnostic path to the offending property, so a failing
// test points straight at the missing override.
type UnmockedAccessError struct {
	Path string
}

// Error returns the diagnostic message with remediation guidance.
func (e *UnmockedAccessError) Error() string {
	return fmt.Sprintf(
		"unexpected access to unmocked property %q. "+
			"Did you forget to mock it? "+
			"If you intended it to be undefined, set it explicitly to nil, "+
			"or build the mock with allowUndefinedAccess.",
		e.Path,
	)
}
