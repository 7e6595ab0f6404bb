package editor

import (
	"reflect"

	"github.com/viant/inspector/coerce"
)

var boolType = reflect.TypeOf(true)

// Bool represents boolean editor
type Bool struct {
	base
}

// Toggle flips the value
func (e *Bool) Toggle() error {
	value := false
	if e.value != nil {
		if coerced, err := e.converter.To(e.value, boolType); err == nil {
			value = coerced.Bool()
		}
	}
	return e.SetValue(!value)
}

// NewBool creates boolean editor
func NewBool(converter *coerce.Converter) *Bool {
	return &Bool{base: base{converter: converter}}
}
