package js

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dop251/goja"
	"github.com/viant/inspector/hint"
	"github.com/viant/inspector/script"
	"github.com/viant/inspector/variant"
)

// HintsKey names an optional object holding hint strings per property
const HintsKey = "__hints"

// SourceKey names an optional string property holding the object source
const SourceKey = "__source"

// Object adapts a goja object to script.Object
type Object struct {
	vm       *goja.Runtime
	object   *goja.Object
	class    string
	wrappers *sync.Map
}

// ClassName returns class name, "__class" property takes precedence
func (o *Object) ClassName() string {
	if class := o.object.Get("__class"); class != nil && !goja.IsUndefined(class) {
		return class.String()
	}
	if o.class != "" {
		return o.class
	}
	return o.object.ClassName()
}

// Source returns "__source" property text
func (o *Object) Source() string {
	source := o.object.Get(SourceKey)
	if source == nil || goja.IsUndefined(source) || goja.IsNull(source) {
		return ""
	}
	return source.String()
}

// Properties returns non function keys as script variables
func (o *Object) Properties() []script.Property {
	hints := o.hints()
	var result []script.Property
	for _, key := range o.keys() {
		value := o.object.Get(key)
		if _, ok := goja.AssertFunction(value); ok {
			continue
		}
		property := script.Property{Name: key, Usage: script.UsageVariable}
		property.Type = script.TypeOf(o.export(value).Unwrap())
		if text, ok := hints[key]; ok {
			property.HintString = text
			if spec, ok := hint.Parse(text); ok && spec.HasHeader {
				property.Type, property.Hint = spec.Type, spec.Hint
			} else if property.Type == script.TypeInt {
				property.Hint = hint.HintEnum
			}
		}
		result = append(result, property)
	}
	return result
}

// Get returns property value
func (o *Object) Get(name string) (variant.Variant, error) {
	value := o.object.Get(name)
	if value == nil {
		return variant.Variant{}, fmt.Errorf("%v has no property %v", o.ClassName(), name)
	}
	return o.export(value), nil
}

// Set sets property value
func (o *Object) Set(name string, value variant.Variant) error {
	return o.object.Set(name, o.toValue(value))
}

// Methods returns function keys as methods
func (o *Object) Methods() []script.Method {
	var result []script.Method
	for _, key := range o.keys() {
		value := o.object.Get(key)
		if _, ok := goja.AssertFunction(value); !ok {
			continue
		}
		method := script.Method{Name: key}
		count := value.ToObject(o.vm).Get("length").ToInteger()
		for i := int64(0); i < count; i++ {
			method.Args = append(method.Args, fmt.Sprintf("arg%v", i))
		}
		result = append(result, method)
	}
	return result
}

// Call calls a function property with object as this
func (o *Object) Call(name string, args ...variant.Variant) (ret variant.Variant, err error) {
	fn, ok := goja.AssertFunction(o.object.Get(name))
	if !ok {
		return ret, fmt.Errorf("%v has no method %v", o.ClassName(), name)
	}
	values := make([]goja.Value, 0, len(args))
	for _, arg := range args {
		values = append(values, o.toValue(arg))
	}
	result, err := fn(o.object, values...)
	if err != nil {
		return ret, fmt.Errorf("failed to call %v: %w", name, err)
	}
	return o.export(result), nil
}

func (o *Object) keys() []string {
	var result []string
	for _, key := range o.object.Keys() {
		switch key {
		case HintsKey, SourceKey, "__class":
			continue
		}
		result = append(result, key)
	}
	sort.Strings(result)
	return result
}

func (o *Object) hints() map[string]string {
	value := o.object.Get(HintsKey)
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil
	}
	hints := value.ToObject(o.vm)
	var result = map[string]string{}
	for _, key := range hints.Keys() {
		result[key] = hints.Get(key).String()
	}
	return result
}

// export converts goja value, plain nested objects are wrapped as script objects
func (o *Object) export(value goja.Value) variant.Variant {
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return variant.Variant{}
	}
	if object, ok := value.(*goja.Object); ok && object.ClassName() == "Object" {
		return variant.FromRef(o.wrap(object))
	}
	return variant.Of(value.Export())
}

func (o *Object) toValue(value variant.Variant) goja.Value {
	unwrapped := value.Unwrap()
	if object, ok := unwrapped.(*Object); ok {
		return object.object
	}
	return o.vm.ToValue(unwrapped)
}

// wrap returns the same adapter for the same nested object
func (o *Object) wrap(object *goja.Object) *Object {
	if object == o.object {
		return o
	}
	wrapper, _ := o.wrappers.LoadOrStore(object, &Object{vm: o.vm, object: object, wrappers: o.wrappers})
	return wrapper.(*Object)
}

// New creates an adapter
func New(vm *goja.Runtime, object *goja.Object, class string) *Object {
	ret := &Object{vm: vm, object: object, class: class, wrappers: &sync.Map{}}
	ret.wrappers.Store(object, ret)
	return ret
}

// Eval runs source and adapts the resulting object
func Eval(vm *goja.Runtime, source, class string) (*Object, error) {
	value, err := vm.RunString(source)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %v: %w", class, err)
	}
	object, ok := value.(*goja.Object)
	if !ok {
		return nil, fmt.Errorf("failed to evaluate %v: expected object, but had %v", class, value)
	}
	return New(vm, object, class), nil
}
