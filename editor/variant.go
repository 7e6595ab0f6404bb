package editor

import (
	"reflect"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/variant"
)

// Variant represents a dynamic value editor delegating to the editor of the boxed value
type Variant struct {
	base
	factory *Factory
	origin  *member.Origin
	inner   Editor
}

// Inner returns delegate editor
func (e *Variant) Inner() Editor {
	return e.inner
}

func (e *Variant) SetMemberInfo(name string, rType reflect.Type, value interface{}, class member.Class) {
	boxed := variant.Of(value)
	e.base.SetMemberInfo(name, rType, boxed, class)
	e.rebuild(boxed)
}

func (e *Variant) rebuild(boxed variant.Variant) {
	unwrapped := boxed.Unwrap()
	innerClass := member.Classify(unwrapped, e.factory.Enums, e.origin)
	if innerClass == member.Variant {
		innerClass = member.Null
	}
	e.inner = e.factory.create(boxed.Type(), innerClass, e.origin)
	e.inner.SetMemberInfo(e.name, boxed.Type(), unwrapped, innerClass)
	e.inner.SetEditable(e.editable)
	e.inner.OnValueChanged(func(value interface{}) {
		_ = e.commit(variant.Of(value))
	})
}

func (e *Variant) SetEditable(editable bool) {
	e.base.SetEditable(editable)
	if e.inner != nil {
		e.inner.SetEditable(editable)
	}
}

func (e *Variant) Text() string {
	return e.inner.Text()
}

func (e *Variant) Err() error {
	if e.err != nil {
		return e.err
	}
	return e.inner.Err()
}

// Submit delegates text to boxed value editor, null variant parses literal
func (e *Variant) Submit(text string) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	if e.inner.Type() == nil {
		return e.SetValue(variant.Parse(text))
	}
	if err := e.inner.Submit(text); err != nil {
		return err
	}
	return e.err
}

// SetValue replaces boxed value, delegate is rebuilt when boxed type changes
func (e *Variant) SetValue(value interface{}) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	boxed := variant.Of(value)
	if boxed.Type() != e.inner.Type() {
		e.rebuild(boxed)
	}
	return e.commit(boxed)
}

// Expand forwards expansion request to delegate
func (e *Variant) Expand() bool {
	if expander, ok := e.inner.(Expander); ok {
		return expander.Expand()
	}
	return false
}
