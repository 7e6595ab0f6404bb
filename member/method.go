package member

import (
	"fmt"
	"reflect"
	"strings"
)

// Method represents an invocable exported method
type Method struct {
	Name   string
	In     []reflect.Type
	Out    []reflect.Type
	method reflect.Method
}

// Signature returns method signature, i.e. Move(float64, float64) error
func (m *Method) Signature() string {
	builder := strings.Builder{}
	builder.WriteString(m.Name)
	builder.WriteByte('(')
	for i, in := range m.In {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(in.String())
	}
	builder.WriteByte(')')
	switch len(m.Out) {
	case 0:
	case 1:
		builder.WriteByte(' ')
		builder.WriteString(m.Out[0].String())
	default:
		builder.WriteString(" (")
		for i, out := range m.Out {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(out.String())
		}
		builder.WriteByte(')')
	}
	return builder.String()
}

// Call invokes method on receiver, panics are returned as error
func (m *Method) Call(receiver reflect.Value, args []reflect.Value) (ret []interface{}, err error) {
	if len(args) != len(m.In) {
		return nil, fmt.Errorf("%v expects %v arguments, but had %v", m.Name, len(m.In), len(args))
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to call %v: %v", m.Name, r)
		}
	}()
	callArgs := make([]reflect.Value, 0, len(args)+1)
	callArgs = append(callArgs, receiver)
	callArgs = append(callArgs, args...)
	out := m.method.Func.Call(callArgs)
	for _, item := range out {
		ret = append(ret, item.Interface())
	}
	if n := len(m.Out); n > 0 && m.Out[n-1] == errorType {
		if last := out[n-1]; !last.IsNil() {
			return ret, last.Interface().(error)
		}
	}
	return ret, nil
}

func newMethod(method reflect.Method) *Method {
	ret := &Method{Name: method.Name, method: method}
	fn := method.Type
	for i := 1; i < fn.NumIn(); i++ {
		ret.In = append(ret.In, fn.In(i))
	}
	for i := 0; i < fn.NumOut(); i++ {
		ret.Out = append(ret.Out, fn.Out(i))
	}
	return ret
}
