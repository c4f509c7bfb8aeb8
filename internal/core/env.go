package core

import "sync"

// RoomPositionSlot is the constructor slot MockRoomPositionConstructor binds.
const RoomPositionSlot = "RoomPosition"

// Env is an explicit test-environment namespace holding global mocks and
// constructor spies. Code under test receives an Env instead of reaching into
// process globals, which keeps cross-test coupling visible: bindings persist
// until overwritten or Reset, and nothing cleans them up automatically.
type Env struct {
	mu           sync.Mutex
	globals      map[string]*Mock
	constructors map[string]*Spy
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{
		globals:      make(map[string]*Mock),
		constructors: make(map[string]*Spy),
	}
}

// Constructor returns the constructor spy bound under name, or nil if none
// was installed.
func (e *Env) Constructor(name string) *Spy {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.constructors[name]
}

// Global returns the global mock bound under name, or nil if none was
// installed.
func (e *Env) Global(name string) *Mock {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.globals[name]
}

// MockGlobal builds a guarded mock from overrides and binds it under name.
// A no-op "mockClear" spy is always injected beneath the overrides, so
// teardown conventions that call a reset hook on every global never trip the
// strict-access guard. Installing under an existing name overwrites the
// previous binding.
func (e *Env) MockGlobal(name string, overrides Tree, allowUndefined bool) *Mock {
	merged := Tree{"mockClear": NewSpy(nil)}
	for key, value := range overrides {
		merged[key] = value
	}

	mock := newMock(buildBacking(merged, allowUndefined, name), allowUndefined, name)

	e.mu.Lock()
	e.globals[name] = mock
	e.mu.Unlock()

	return mock
}

// MockRoomPositionConstructor binds a constructor spy under the RoomPosition
// slot. Each invocation builds an independent strict mock exposing exactly
// x, y, and roomName plus a toJSON spy returning the same triple; nothing is
// shared or cached between invocations.
func (e *Env) MockRoomPositionConstructor() *Spy {
	ctor := NewSpy(func(x, y int, roomName string) *Mock {
		tree := Tree{
			"x":        x,
			"y":        y,
			"roomName": roomName,
			"toJSON": func() Tree {
				return Tree{"x": x, "y": y, "roomName": roomName}
			},
		}

		return newMock(buildBacking(tree, false, RoomPositionSlot), false, RoomPositionSlot)
	})

	e.mu.Lock()
	e.constructors[RoomPositionSlot] = ctor
	e.mu.Unlock()

	return ctor
}

// Reset removes every global and constructor binding.
func (e *Env) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	clear(e.globals)
	clear(e.constructors)
}
