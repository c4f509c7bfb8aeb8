package run_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/toejough/strictmock/strictgen/run"
)

// fakeFileSystem implements run.FileSystem over an in-memory map.
type fakeFileSystem struct {
	files   map[string][]byte
	written map[string][]byte
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{
		files:   make(map[string][]byte),
		written: make(map[string][]byte),
	}
}

func (fs *fakeFileSystem) ReadFile(name string) ([]byte, error) {
	data, ok := fs.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}

	return data, nil
}

func (fs *fakeFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	fs.written[name] = data

	return nil
}

const creepSource = `package colony

// Creep is a worker unit.
type Creep struct {
	Name    string
	Hits    int
	Spawning bool
	Store   Store
	Say     func(message string)
	Body    []BodyPart
	memory  map[string]any
}
`

func TestRun_GeneratesTypedAccessors(t *testing.T) {
	t.Parallel()

	fileSys := newFakeFileSystem()
	fileSys.files["colony/creep.go"] = []byte(creepSource)

	var out bytes.Buffer

	err := run.Run([]string{"strictgen", "colony/creep.go", "Creep"}, fileSys, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	generated, ok := fileSys.written["colony/creep_mock.go"]
	if !ok {
		t.Fatalf("expected creep_mock.go to be written, got %v", fileSys.written)
	}

	code := string(generated)

	for _, want := range []string{
		"package colony",
		"type CreepMock struct",
		"func WrapCreepMock(mock *strictmock.Mock) CreepMock",
		"func (w CreepMock) Unwrap() *strictmock.Mock",
		// Basic fields assert to their declared type.
		`return w.mock.Get("name").(string)`,
		`return w.mock.Get("hits").(int)`,
		`return w.mock.Get("spawning").(bool)`,
		// Struct-typed fields are served as nested mocks.
		`return w.mock.GetMock("store")`,
		// Function fields are served as spies.
		`return w.mock.GetSpy("say")`,
		// Slice fields are served as realized elements.
		`return w.mock.GetSlice("body")`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("expected generated code to contain %q\n%s", want, code)
		}
	}

	// Unexported fields get no accessor.
	if strings.Contains(code, "memory") {
		t.Errorf("expected unexported field to be skipped\n%s", code)
	}

	if !strings.Contains(out.String(), "creep_mock.go") {
		t.Errorf("expected output path to be reported, got %q", out.String())
	}
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	err := run.Run([]string{"strictgen"}, newFakeFileSystem(), &bytes.Buffer{})
	if !errors.Is(err, run.ErrUsage) {
		t.Errorf("expected usage error, got %v", err)
	}
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	err := run.Run([]string{"strictgen", "nope.go", "Creep"}, newFakeFileSystem(), &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for missing source file")
	}
}

func TestRun_TypeNotFound(t *testing.T) {
	t.Parallel()

	fileSys := newFakeFileSystem()
	fileSys.files["colony/creep.go"] = []byte(creepSource)

	err := run.Run([]string{"strictgen", "colony/creep.go", "Tower"}, fileSys, &bytes.Buffer{})
	if !errors.Is(err, run.ErrTypeNotFound) {
		t.Errorf("expected type-not-found error, got %v", err)
	}
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	fileSys := newFakeFileSystem()
	fileSys.files["broken.go"] = []byte("not go source")

	err := run.Run([]string{"strictgen", "broken.go", "Creep"}, fileSys, &bytes.Buffer{})
	if err == nil {
		t.Error("expected parse error")
	}
}
