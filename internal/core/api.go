// Package core implements strictmock's mock-construction engine: the
// recursive partial-mock builder, the strict access guard, the spy primitive,
// and the entity and environment builders layered on top.
package core

// MockInstanceOf builds a guarded mock from a sparse override tree. Functions
// in the tree are wrapped as spies, nested trees become nested guarded mocks,
// and slices are element-wise recursed. When allowUndefined is false, reading
// any property absent from the tree panics with *UnmockedAccessError.
//
// Override trees must be acyclic; the builder has no cycle detection.
func MockInstanceOf(overrides Tree, allowUndefined bool) *Mock {
	return newMock(buildBacking(overrides, allowUndefined, ""), allowUndefined, "")
}
