package member

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Property represents a getter X() with optional setter SetX(T)
type Property struct {
	Name   string
	GoName string
	Type   reflect.Type
	getter reflect.Method
	setter *reflect.Method
}

// CanWrite returns true if property has setter
func (p *Property) CanWrite() bool {
	return p.setter != nil
}

// Get calls getter, panics and returned errors are reported as error
func (p *Property) Get(receiver reflect.Value) (ret interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to get %v: %v", p.GoName, r)
		}
	}()
	out := p.getter.Func.Call([]reflect.Value{receiver})
	if len(out) == 2 && !out[1].IsNil() {
		return nil, fmt.Errorf("failed to get %v: %w", p.GoName, out[1].Interface().(error))
	}
	return out[0].Interface(), nil
}

// Set calls setter
func (p *Property) Set(receiver reflect.Value, value reflect.Value) (err error) {
	if p.setter == nil {
		return fmt.Errorf("property %v is read-only", p.GoName)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to set %v: %v", p.GoName, r)
		}
	}()
	out := p.setter.Func.Call([]reflect.Value{receiver, value})
	if len(out) == 1 && !out[0].IsNil() {
		return fmt.Errorf("failed to set %v: %w", p.GoName, out[0].Interface().(error))
	}
	return nil
}

func isGetter(method reflect.Method) bool {
	fn := method.Type
	switch fn.NumOut() {
	case 1:
	case 2:
		if fn.Out(1) != errorType {
			return false
		}
	default:
		return false
	}
	return fn.NumIn() == 1
}

func setterOf(receiverType reflect.Type, getter reflect.Method) *reflect.Method {
	setter, ok := receiverType.MethodByName("Set" + getter.Name)
	if !ok {
		return nil
	}
	fn := setter.Type
	if fn.NumIn() != 2 || fn.In(1) != getter.Type.Out(0) {
		return nil
	}
	if fn.NumOut() > 1 || (fn.NumOut() == 1 && fn.Out(0) != errorType) {
		return nil
	}
	return &setter
}
