package member

import (
	"fmt"
	"reflect"
)

type (
	// Static represents a package level variable exposed as a static member of owner type
	Static struct {
		Name     string
		Owner    reflect.Type
		Show     bool
		ReadOnly bool
		ptr      reflect.Value
	}

	// StaticOption represents static option
	StaticOption func(s *Static)
)

// WithShow opts static member in regardless of owner type options
func WithShow() StaticOption {
	return func(s *Static) {
		s.Show = true
	}
}

// WithReadOnly marks static member non mutating
func WithReadOnly() StaticOption {
	return func(s *Static) {
		s.ReadOnly = true
	}
}

// WithDisplayName sets static display name
func WithDisplayName(name string) StaticOption {
	return func(s *Static) {
		s.Name = name
	}
}

// Type returns variable type
func (s *Static) Type() reflect.Type {
	return s.ptr.Type().Elem()
}

// Value returns variable value
func (s *Static) Value() interface{} {
	return s.ptr.Elem().Interface()
}

// Addr returns variable pointer
func (s *Static) Addr() reflect.Value {
	return s.ptr
}

// Set sets variable value
func (s *Static) Set(value reflect.Value) error {
	if s.ReadOnly {
		return fmt.Errorf("static %v is read-only", s.Name)
	}
	if !value.Type().AssignableTo(s.Type()) {
		return fmt.Errorf("cannot assign %v to static %v of type %v", value.Type(), s.Name, s.Type())
	}
	s.ptr.Elem().Set(value)
	return nil
}

// NewStatic creates static for supplied variable pointer
func NewStatic(owner reflect.Type, name string, ptr interface{}, opts ...StaticOption) (*Static, error) {
	rPtr := reflect.ValueOf(ptr)
	if rPtr.Kind() != reflect.Ptr || rPtr.IsNil() {
		return nil, fmt.Errorf("static %v: expected non nil pointer, but had %T", name, ptr)
	}
	ret := &Static{Name: name, Owner: owner, ptr: rPtr}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}
