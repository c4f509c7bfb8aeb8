package core

import "reflect"

// Tree is a sparse override tree: a recursively-partial description of the
// properties a mock should expose. Nested values may themselves be Trees,
// slices of Trees, functions (wrapped as spies), pre-built mocks or spies, or
// terminal values copied through unchanged.
type Tree map[string]any

// shouldExpand reports whether value is a plain override tree that must be
// recursively built into its own guarded mock. Pre-built mocks and spies are
// never re-expanded (re-wrapping an already guarded mock would break identity
// and double-intercept reads). Slices, functions, struct instances, and
// primitives are handled by other builder branches or copied as-is.
func shouldExpand(value any) bool {
	switch value.(type) {
	case nil, *Mock, *Spy:
		return false
	case Tree, map[string]any:
		return true
	default:
		return false
	}
}

// asTree normalizes the two accepted tree representations. Returns nil for
// anything that is not a tree.
func asTree(value any) Tree {
	switch v := value.(type) {
	case Tree:
		return v
	case map[string]any:
		return Tree(v)
	default:
		return nil
	}
}

// isFunction reports whether value is a callable function.
func isFunction(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}

// isSequence reports whether value is a slice or array that should be
// element-wise recursed. Byte slices are terminal data, not sequences of
// overrides.
func isSequence(value any) bool {
	if _, ok := value.([]byte); ok {
		return false
	}

	if value == nil {
		return false
	}

	kind := reflect.TypeOf(value).Kind()

	return kind == reflect.Slice || kind == reflect.Array
}
