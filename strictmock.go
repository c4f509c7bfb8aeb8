// Package strictmock builds strict, introspectable test doubles for
// deeply-nested simulated-environment objects. Tests supply only the
// properties they care about; any accidental read of an unmocked property
// fails immediately with the full path to the offender instead of silently
// producing a zero value.
//
// This is the public API entry point. Implementation lives in internal/core.
package strictmock

import (
	"github.com/toejough/strictmock/internal/core"
)

// Env is an explicit test-environment namespace for global mocks and
// constructor spies.
type Env = core.Env

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return core.NewEnv()
}

// Mock is a guarded, read-only view over the properties built from an
// override tree. Reads go through Get/Lookup, which enforce the strict-access
// policy.
type Mock = core.Mock

// Spy wraps a function so calls are recorded and a stub return value can be
// supplied, defaulting to the wrapped function's own logic.
type Spy = core.Spy

// NewSpy wraps fn as a Spy. A nil fn yields a pure no-op recorder.
func NewSpy(fn any) *Spy {
	return core.NewSpy(fn)
}

// Tree is a sparse override tree describing which properties to mock.
type Tree = core.Tree

// UnmockedAccessError reports a strict-mode read of a property that was never
// mocked. It carries the full dotted/bracketed path to the property.
type UnmockedAccessError = core.UnmockedAccessError

// RoomPositionSlot is the constructor slot MockRoomPositionConstructor uses.
const RoomPositionSlot = core.RoomPositionSlot

// Functions re-exported from internal/core.

// MockInstanceOf builds a guarded mock from a sparse override tree. With
// allowUndefined false, reading any property absent from the tree panics with
// *UnmockedAccessError naming the property's full path.
func MockInstanceOf(overrides Tree, allowUndefined bool) *Mock {
	return core.MockInstanceOf(overrides, allowUndefined)
}

// MockStructure builds an entity mock for the category with a synthesized
// unique id, a structureType tag, and a toJSON spy; overrides merge on top of
// that baseline.
func MockStructure(category string, overrides Tree) *Mock {
	return core.MockStructure(category, overrides)
}

// NextIdentity returns the next per-category identity number. Exposed for
// tests that need to predict or pin generated ids.
func NextIdentity(category string) int {
	return core.NextIdentity(category)
}

// ResetIdentityCounters clears the process-wide per-category identity
// counters. Call from test setup when id stability matters.
func ResetIdentityCounters() {
	core.ResetIdentityCounters()
}
