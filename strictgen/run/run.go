// Package run implements the main logic of the strictgen tool in a testable
// way: callers inject the argument list, the filesystem, and the output
// stream.
package run

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// FileSystem is the file access strictgen needs, injectable for testing.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// Sentinel errors.
var (
	ErrUsage        = errors.New("usage: strictgen <source.go> <TypeName>")
	ErrTypeNotFound = errors.New("struct type not found")
)

// Run executes strictgen: it parses the named source file, finds the named
// struct type, and writes a typed accessor wrapper over *strictmock.Mock to
// <typename>_mock.go in the same directory.
func Run(args []string, fileSys FileSystem, out io.Writer) error {
	const expectedArgs = 3
	if len(args) != expectedArgs {
		return ErrUsage
	}

	sourcePath, typeName := args[1], args[2]

	source, err := fileSys.ReadFile(sourcePath)
	if err != nil {
		return err
	}

	file, err := decorator.Parse(source)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", sourcePath, err)
	}

	structType := findStruct(file, typeName)
	if structType == nil {
		return fmt.Errorf("%w: %q in %s", ErrTypeNotFound, typeName, sourcePath)
	}

	code := generate(file.Name.Name, typeName, structType)

	outPath := filepath.Join(filepath.Dir(sourcePath), strings.ToLower(typeName)+"_mock.go")

	const regularFilePerms = 0o644

	err = fileSys.WriteFile(outPath, []byte(code), regularFilePerms)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %s\n", outPath)

	return nil
}

// accessor describes one generated accessor method.
type accessor struct {
	fieldName string // exported Go method name
	key       string // property key on the mock
	kind      accessorKind
	basicType string // set for kindTyped
}

type accessorKind int

const (
	kindTyped accessorKind = iota // basic type, direct assertion
	kindMock                      // nested struct, served as *strictmock.Mock
	kindSpy                       // function field, served as *strictmock.Spy
	kindSlice                     // slice or array, served as []any
)

// basicTypes are the identifiers generated accessors assert to directly.
//
//nolint:gochecknoglobals // fixed lookup table
var basicTypes = map[string]struct{}{
	"any": {}, "bool": {}, "byte": {}, "complex64": {}, "complex128": {},
	"error": {}, "float32": {}, "float64": {}, "int": {}, "int8": {},
	"int16": {}, "int32": {}, "int64": {}, "rune": {}, "string": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {},
	"uintptr": {},
}

// classify maps a struct field's type expression to the accessor shape
// strictgen generates for it. Without type checking available, the rules are
// syntactic: functions become spies, sequences become element slices, basic
// identifiers assert directly, and everything else is served as a nested
// mock.
func classify(expr dst.Expr) (accessorKind, string) {
	switch typed := expr.(type) {
	case *dst.FuncType:
		return kindSpy, ""
	case *dst.ArrayType:
		return kindSlice, ""
	case *dst.StarExpr:
		return classify(typed.X)
	case *dst.Ident:
		if _, basic := basicTypes[typed.Name]; basic {
			return kindTyped, typed.Name
		}

		return kindMock, ""
	default:
		return kindMock, ""
	}
}

// findStruct returns the struct type declared under name, or nil.
func findStruct(file *dst.File, name string) *dst.StructType {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*dst.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*dst.TypeSpec)
			if !ok || typeSpec.Name.Name != name {
				continue
			}

			if structType, ok := typeSpec.Type.(*dst.StructType); ok {
				return structType
			}
		}
	}

	return nil
}

// generate renders the wrapper source for the struct's accessors.
func generate(pkgName, typeName string, structType *dst.StructType) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "// Code generated by strictgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&builder, "package %s\n\n", pkgName)
	fmt.Fprintf(&builder, "import \"github.com/toejough/strictmock\"\n\n")
	fmt.Fprintf(&builder, "// %sMock is a typed accessor surface over a strict mock of %s.\n", typeName, typeName)
	fmt.Fprintf(&builder, "// Reads of unmocked properties keep the strict fail-loud behavior.\n")
	fmt.Fprintf(&builder, "type %sMock struct {\n\tmock *strictmock.Mock\n}\n\n", typeName)
	fmt.Fprintf(&builder, "// Wrap%sMock wraps an existing strict mock in the typed surface.\n", typeName)
	fmt.Fprintf(&builder, "func Wrap%sMock(mock *strictmock.Mock) %sMock {\n", typeName, typeName)
	fmt.Fprintf(&builder, "\treturn %sMock{mock: mock}\n}\n\n", typeName)
	fmt.Fprintf(&builder, "// Unwrap returns the underlying strict mock.\n")
	fmt.Fprintf(&builder, "func (w %sMock) Unwrap() *strictmock.Mock {\n\treturn w.mock\n}\n", typeName)

	for _, acc := range structAccessors(structType) {
		builder.WriteString("\n")
		writeAccessor(&builder, typeName, acc)
	}

	return builder.String()
}

// propertyKey converts an exported Go field name to its lower-camel property
// key on the mock.
func propertyKey(fieldName string) string {
	runes := []rune(fieldName)
	runes[0] = unicode.ToLower(runes[0])

	return string(runes)
}

// structAccessors collects one accessor per named exported field.
func structAccessors(structType *dst.StructType) []accessor {
	var accessors []accessor

	for _, field := range structType.Fields.List {
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}

			kind, basicType := classify(field.Type)

			accessors = append(accessors, accessor{
				fieldName: name.Name,
				key:       propertyKey(name.Name),
				kind:      kind,
				basicType: basicType,
			})
		}
	}

	return accessors
}

// writeAccessor renders one accessor method.
func writeAccessor(builder *strings.Builder, typeName string, acc accessor) {
	switch acc.kind {
	case kindTyped:
		fmt.Fprintf(builder, "// %s returns the mocked %q property.\n", acc.fieldName, acc.key)
		fmt.Fprintf(builder, "func (w %sMock) %s() %s {\n", typeName, acc.fieldName, acc.basicType)
		fmt.Fprintf(builder, "\treturn w.mock.Get(%q).(%s)\n}\n", acc.key, acc.basicType)
	case kindMock:
		fmt.Fprintf(builder, "// %s returns the nested mock under %q.\n", acc.fieldName, acc.key)
		fmt.Fprintf(builder, "func (w %sMock) %s() *strictmock.Mock {\n", typeName, acc.fieldName)
		fmt.Fprintf(builder, "\treturn w.mock.GetMock(%q)\n}\n", acc.key)
	case kindSpy:
		fmt.Fprintf(builder, "// %s returns the spy mocked under %q.\n", acc.fieldName, acc.key)
		fmt.Fprintf(builder, "func (w %sMock) %s() *strictmock.Spy {\n", typeName, acc.fieldName)
		fmt.Fprintf(builder, "\treturn w.mock.GetSpy(%q)\n}\n", acc.key)
	case kindSlice:
		fmt.Fprintf(builder, "// %s returns the realized elements mocked under %q.\n", acc.fieldName, acc.key)
		fmt.Fprintf(builder, "func (w %sMock) %s() []any {\n", typeName, acc.fieldName)
		fmt.Fprintf(builder, "\treturn w.mock.GetSlice(%q)\n}\n", acc.key)
	}
}
