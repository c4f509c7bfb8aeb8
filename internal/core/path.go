package core

import "strconv"

// childPath appends a property name to a diagnostic path using dot notation.
func childPath(base, key string) string {
	if base == "" {
		return key
	}

	return base + "." + key
}

// indexPath appends an array index to a diagnostic path using bracket notation.
func indexPath(base string, index int) string {
	return base + "[" + strconv.Itoa(index) + "]"
}
