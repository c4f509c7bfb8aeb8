package core

import "reflect"

// buildBacking walks a sparse override tree and produces the fully-realized
// backing map for a guarded mock. Exactly the caller's keys appear in the
// result; nothing is defaulted or invented.
func buildBacking(tree Tree, allowUndefined bool, path string) map[string]any {
	backing := make(map[string]any, len(tree))

	for key, value := range tree {
		backing[key] = buildValue(value, allowUndefined, childPath(path, key))
	}

	return backing
}

// buildValue realizes a single override value at the given diagnostic path:
// functions become spies, trees become nested guarded mocks, sequences are
// element-wise recursed, and everything else (primitives, pre-built mocks,
// pre-wrapped spies, struct instances) copies through unchanged.
func buildValue(value any, allowUndefined bool, path string) any {
	switch {
	case shouldExpand(value):
		tree := asTree(value)

		return newMock(buildBacking(tree, allowUndefined, path), allowUndefined, path)
	case isSequence(value):
		return buildSequence(value, allowUndefined, path)
	case isFunction(value):
		return NewSpy(value)
	default:
		return value
	}
}

// buildSequence produces a []any of equal length where each element has been
// realized at path[i].
func buildSequence(value any, allowUndefined bool, path string) []any {
	seq := reflect.ValueOf(value)
	elements := make([]any, seq.Len())

	for i := range seq.Len() {
		elements[i] = buildValue(seq.Index(i).Interface(), allowUndefined, indexPath(path, i))
	}

	return elements
}
