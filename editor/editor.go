package editor

import (
	"fmt"
	"reflect"

	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/member"
	"github.com/viant/inspector/variant"
)

type (
	// Editor represents a stateful member value editor
	Editor interface {
		SetMemberInfo(name string, rType reflect.Type, value interface{}, class member.Class)
		Name() string
		Type() reflect.Type
		Class() member.Class
		GetValue() interface{}
		//SetValue coerces value to member type, listeners are notified on change
		SetValue(value interface{}) error
		//Submit coerces user text input, on failure error is kept and value reverts
		Submit(text string) error
		Text() string
		SetEditable(editable bool)
		Editable() bool
		OnValueChanged(listener func(value interface{}))
		//Reject keeps an error raised by the value owner while applying a change
		Reject(err error)
		Err() error
	}

	// Expander is implemented by editors requesting a nested panel
	Expander interface {
		Expand() bool
		OnExpand(listener func(value interface{}))
	}

	base struct {
		name      string
		rType     reflect.Type
		class     member.Class
		value     interface{}
		editable  bool
		err       error
		listeners []func(value interface{})
		converter *coerce.Converter
	}
)

func (b *base) SetMemberInfo(name string, rType reflect.Type, value interface{}, class member.Class) {
	b.name = name
	b.rType = rType
	if b.rType == nil && value != nil {
		b.rType = reflect.TypeOf(value)
	}
	b.class = class
	b.value = value
	b.err = nil
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Type() reflect.Type {
	return b.rType
}

func (b *base) Class() member.Class {
	return b.class
}

func (b *base) GetValue() interface{} {
	return b.value
}

func (b *base) Text() string {
	return b.converter.Format(b.value)
}

func (b *base) SetEditable(editable bool) {
	b.editable = editable
}

func (b *base) Editable() bool {
	return b.editable
}

func (b *base) OnValueChanged(listener func(value interface{})) {
	b.listeners = append(b.listeners, listener)
}

func (b *base) Err() error {
	return b.err
}

func (b *base) Reject(err error) {
	b.err = err
}

// fail keeps error and reverts to last known good value
func (b *base) fail(err error) error {
	b.err = err
	return err
}

func (b *base) ensureEditable() error {
	if !b.editable {
		return b.fail(fmt.Errorf("%v is read-only", b.name))
	}
	return nil
}

// commit stores value and notifies listeners when value changed, it returns error rejected by a listener
func (b *base) commit(value interface{}) error {
	b.err = nil
	if equal(b.value, value) {
		return nil
	}
	b.value = value
	for _, listener := range b.listeners {
		listener(value)
	}
	return b.err
}

func (b *base) coerce(value interface{}) (interface{}, error) {
	if b.rType == nil {
		return value, nil
	}
	ret, err := b.converter.To(value, b.rType)
	if err != nil {
		return nil, err
	}
	return ret.Interface(), nil
}

func (b *base) SetValue(value interface{}) error {
	if err := b.ensureEditable(); err != nil {
		return err
	}
	coerced, err := b.coerce(value)
	if err != nil {
		return b.fail(err)
	}
	return b.commit(coerced)
}

func (b *base) Submit(text string) error {
	return b.SetValue(text)
}

func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	aType, bType := reflect.TypeOf(a), reflect.TypeOf(b)
	if aType != bType {
		return false
	}
	if aVariant, ok := a.(variant.Variant); ok {
		return aVariant.Equal(b.(variant.Variant))
	}
	if aType.Comparable() {
		return a == b
	}
	aValue, bValue := reflect.ValueOf(a), reflect.ValueOf(b)
	switch aValue.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return aValue.Pointer() == bValue.Pointer() && (aValue.Kind() != reflect.Slice || aValue.Len() == bValue.Len())
	}
	return false
}
