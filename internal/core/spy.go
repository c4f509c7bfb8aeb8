package core

import (
	"fmt"
	"reflect"
	"sync"
)

// Spy wraps a function so that every invocation is recorded and a stub return
// value can be supplied. Without a stub, a call falls through to the wrapped
// function, so the override's own logic is the default behavior. A Spy built
// from a nil function is a pure no-op recorder.
type Spy struct {
	mu      sync.Mutex
	fn      reflect.Value // invalid when the spy has no underlying function
	calls   [][]any       // recorded argument lists, oldest first
	stub    []any
	stubbed bool
}

// NewSpy wraps fn. Panics if fn is neither nil nor a function.
func NewSpy(fn any) *Spy {
	spy := &Spy{}

	if fn != nil {
		val := reflect.ValueOf(fn)
		if val.Kind() != reflect.Func {
			panic(fmt.Sprintf("strictmock: NewSpy requires a function, got %T", fn))
		}

		spy.fn = val
	}

	return spy
}

// Call records the invocation, then returns the configured stub values if any,
// otherwise calls through to the wrapped function. A spy with no function and
// no stub returns nil.
func (s *Spy) Call(args ...any) []any {
	s.mu.Lock()

	recorded := make([]any, len(args))
	copy(recorded, args)
	s.calls = append(s.calls, recorded)

	stubbed := s.stubbed
	stub := s.stub
	fn := s.fn

	s.mu.Unlock()

	if stubbed {
		return stub
	}

	if !fn.IsValid() {
		return nil
	}

	return callFunc(fn, args)
}

// CallCount returns the number of recorded invocations.
func (s *Spy) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.calls)
}

// Calls returns a copy of the recorded argument lists, oldest first.
func (s *Spy) Calls() [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	calls := make([][]any, len(s.calls))
	copy(calls, s.calls)

	return calls
}

// Reset clears the recorded calls and any configured stub. The wrapped
// function is kept, so the spy's default behavior survives a reset.
func (s *Spy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = nil
	s.stub = nil
	s.stubbed = false
}

// SetReturn configures stub values returned by every subsequent Call instead
// of invoking the wrapped function.
func (s *Spy) SetReturn(values ...any) *Spy {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stub = values
	s.stubbed = true

	return s
}

// callFunc invokes fn with args via reflection, converting nil args to the
// zero value of the corresponding parameter type.
func callFunc(fn reflect.Value, args []any) []any {
	fnType := fn.Type()
	in := make([]reflect.Value, len(args))

	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(paramType(fnType, i))
		} else {
			in[i] = reflect.ValueOf(arg)
		}
	}

	out := fn.Call(in)

	results := make([]any, len(out))
	for i, val := range out {
		results[i] = val.Interface()
	}

	return results
}

// paramType returns the declared type of parameter i, unrolling the final
// variadic parameter to its element type.
func paramType(fnType reflect.Type, i int) reflect.Type {
	lastParam := fnType.NumIn() - 1
	if fnType.IsVariadic() && i >= lastParam {
		return fnType.In(lastParam).Elem()
	}

	return fnType.In(i)
}
