// strictmock/strictgen generates typed accessor surfaces over strict mocks.
// Go has no transparent property interception, so mocks are read through an
// explicit Get(key) accessor; strictgen recovers field syntax by generating a
// thin typed wrapper for a named struct type. To use it, add a
// `//go:generate strictgen <source.go> <TypeName>` comment next to the type;
// the wrapper is written to <typename>_mock.go in the same package.
package main

import (
	"fmt"
	"os"

	"github.com/toejough/strictmock/strictgen/run"
)

// main is the entry point of the strictgen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, &realFileSystem{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements run.FileSystem using the os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}
