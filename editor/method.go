package editor

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/inspector/coerce"
)

// InvokeFunc invokes bound method with coerced arguments
type InvokeFunc func(args []reflect.Value) ([]interface{}, error)

// Method represents a method invocation editor
type Method struct {
	Name      string
	Signature string
	In        []reflect.Type
	//PinReturnValue pins the first non error result to the clipboard
	PinReturnValue bool
	invoke         InvokeFunc
	converter      *coerce.Converter
	clipboard      *Clipboard
	listeners      []func(result []interface{}, err error)
	err            error
}

// ArgCount returns expected arguments count
func (m *Method) ArgCount() int {
	return len(m.In)
}

// Err returns last invocation error
func (m *Method) Err() error {
	return m.err
}

// OnInvoked registers invocation listener
func (m *Method) OnInvoked(listener func(result []interface{}, err error)) {
	m.listeners = append(m.listeners, listener)
}

// Args coerces textual arguments, #<index> refers to a pinned clipboard value of matching type
func (m *Method) Args(args ...string) ([]reflect.Value, error) {
	if len(args) != len(m.In) {
		return nil, fmt.Errorf("%v expects %v arguments, but had %v", m.Name, len(m.In), len(args))
	}
	var result = make([]reflect.Value, len(args))
	for i, arg := range args {
		if value, ok := m.pinned(arg, m.In[i]); ok {
			result[i] = value
			continue
		}
		value, err := m.converter.To(arg, m.In[i])
		if err != nil {
			return nil, fmt.Errorf("invalid %v argument #%v: %w", m.Name, i, err)
		}
		result[i] = value
	}
	return result, nil
}

func (m *Method) pinned(arg string, rType reflect.Type) (reflect.Value, bool) {
	if !strings.HasPrefix(arg, "#") {
		return reflect.Value{}, false
	}
	index, err := strconv.Atoi(arg[1:])
	if err != nil {
		return reflect.Value{}, false
	}
	return m.clipboard.lookup(index, rType)
}

// Invoke coerces arguments and calls the method
func (m *Method) Invoke(args ...string) ([]interface{}, error) {
	values, err := m.Args(args...)
	if err != nil {
		m.err = err
		m.notify(nil, err)
		return nil, err
	}
	result, err := m.invoke(values)
	m.err = err
	if err == nil && m.PinReturnValue && m.clipboard != nil {
		for _, item := range result {
			if _, ok := item.(error); ok {
				continue
			}
			m.clipboard.Pin(item)
			break
		}
	}
	m.notify(result, err)
	return result, err
}

func (m *Method) notify(result []interface{}, err error) {
	for _, listener := range m.listeners {
		listener(result, err)
	}
}

// NewMethod creates method editor
func NewMethod(name, signature string, in []reflect.Type, invoke InvokeFunc, converter *coerce.Converter, clipboard *Clipboard) *Method {
	return &Method{Name: name, Signature: signature, In: in, invoke: invoke, converter: converter, clipboard: clipboard}
}
