package core

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// introspectionKeys are property names that formatting and assertion tooling
// probes reflectively during comparisons and failure reporting. The guard
// resolves these to nil instead of failing, even in strict mode, so that a
// deep-equality mismatch report never turns into an unmocked-access failure.
//
//nolint:gochecknoglobals // fixed allow-list shared by every guarded mock
var introspectionKeys = map[string]struct{}{
	"String":       {},
	"GoString":     {},
	"GomegaString": {},
	"Error":        {},
	"Format":       {},
}

// Mock is a guarded, read-only view over a backing map built from an override
// tree. Go has no transparent property interception, so reads go through an
// explicit accessor: Get serves mocked keys, resolves introspection probes
// and (when allowed) absent keys to nil, and otherwise panics with an
// *UnmockedAccessError naming the full path to the offending property.
//
// Two mocks are deeply equal exactly when their backing contents, paths, and
// access policies are equal, which is what lets assertion engines compare
// them directly.
type Mock struct {
	backing        map[string]any
	allowUndefined bool
	path           string
}

// newMock wraps an already-built backing map. The backing map is owned by the
// mock from this point on and is never exposed to callers.
func newMock(backing map[string]any, allowUndefined bool, path string) *Mock {
	return &Mock{
		backing:        backing,
		allowUndefined: allowUndefined,
		path:           path,
	}
}

// Call fetches the spy mocked under key and invokes it with args.
// Panics with *UnmockedAccessError if the key is unmocked, or with a
// descriptive message if the mocked value is not callable.
func (m *Mock) Call(key string, args ...any) []any {
	value := m.Get(key)

	spy, ok := value.(*Spy)
	if !ok {
		panic(fmt.Sprintf("strictmock: property %q is not callable (%T)", childPath(m.path, key), value))
	}

	return spy.Call(args...)
}

// Get returns the value mocked under key, applying the strict-access policy.
// A key explicitly mocked as nil is served as nil; an unmocked key panics
// with *UnmockedAccessError unless the mock allows undefined access or the
// key is an introspection probe.
func (m *Mock) Get(key string) any {
	value, err := m.Lookup(key)
	if err != nil {
		panic(err)
	}

	return value
}

// GetMock returns the nested mock under key.
// Panics if the key is unmocked or does not hold a nested mock.
func (m *Mock) GetMock(key string) *Mock {
	value := m.Get(key)

	nested, ok := value.(*Mock)
	if !ok {
		panic(fmt.Sprintf("strictmock: property %q is not a nested mock (%T)", childPath(m.path, key), value))
	}

	return nested
}

// GetSlice returns the realized element slice under key.
// Panics if the key is unmocked or does not hold a sequence.
func (m *Mock) GetSlice(key string) []any {
	value := m.Get(key)

	elements, ok := value.([]any)
	if !ok {
		panic(fmt.Sprintf("strictmock: property %q is not a sequence (%T)", childPath(m.path, key), value))
	}

	return elements
}

// GetSpy returns the spy under key.
// Panics if the key is unmocked or does not hold a spy.
func (m *Mock) GetSpy(key string) *Spy {
	value := m.Get(key)

	spy, ok := value.(*Spy)
	if !ok {
		panic(fmt.Sprintf("strictmock: property %q is not a spy (%T)", childPath(m.path, key), value))
	}

	return spy
}

// GoString implements fmt.GoStringer so %#v formatting never trips the guard.
func (m *Mock) GoString() string {
	return m.String()
}

// GomegaString keeps gomega failure output readable: without it, gomega's
// formatter would dump the backing map through reflection.
func (m *Mock) GomegaString() string {
	return m.String()
}

// Has reports whether key was mocked, without applying the access policy.
func (m *Mock) Has(key string) bool {
	_, present := m.backing[key]

	return present
}

// Keys returns the mocked property names in sorted order.
func (m *Mock) Keys() []string {
	return slices.Sorted(maps.Keys(m.backing))
}

// Lookup is the non-panicking form of Get: it applies the same three-tier
// policy and reports a strict-mode violation as an *UnmockedAccessError.
func (m *Mock) Lookup(key string) (any, error) {
	if value, present := m.backing[key]; present {
		return value, nil
	}

	if _, probe := introspectionKeys[key]; probe {
		return nil, nil
	}

	if m.allowUndefined {
		return nil, nil
	}

	return nil, &UnmockedAccessError{Path: childPath(m.path, key)}
}

// Path returns the diagnostic path this mock was built at. Empty for a
// top-level mock.
func (m *Mock) Path() string {
	return m.path
}

// String implements fmt.Stringer.
func (m *Mock) String() string {
	label := m.path
	if label == "" {
		label = "mock"
	}

	return fmt.Sprintf("%s{%s}", label, strings.Join(m.Keys(), ", "))
}
