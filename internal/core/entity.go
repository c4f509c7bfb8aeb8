package core

import "strconv"

// MockStructure builds a guarded entity mock for the given category with a
// synthesized unique identity. The baseline shape is computed first: an "id"
// of category plus the next identity number, a "structureType" tag, and a
// "toJSON" spy serializing both. Overrides merge on top and may replace any
// baseline key, including the id.
//
// The synthesized id is what keeps two otherwise-identical mocks of the same
// category from comparing deep-equal.
func MockStructure(category string, overrides Tree) *Mock {
	id := category + strconv.Itoa(NextIdentity(category))

	baseline := Tree{
		"id":            id,
		"structureType": category,
		"toJSON": func() Tree {
			return Tree{"id": id, "structureType": category}
		},
	}

	for key, value := range overrides {
		baseline[key] = value
	}

	return MockInstanceOf(baseline, false)
}
