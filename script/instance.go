package script

import (
	"fmt"
	"sync"

	"github.com/viant/inspector/variant"
)

// Func represents an instance method implementation
type Func func(instance *Instance, args ...variant.Variant) (variant.Variant, error)

// Instance represents a map backed script object
type Instance struct {
	class      string
	source     string
	mux        sync.RWMutex
	properties []Property
	values     map[string]variant.Variant
	methods    []Method
	funcs      map[string]Func
}

// ClassName returns script class name
func (i *Instance) ClassName() string {
	return i.class
}

// Source returns script source
func (i *Instance) Source() string {
	return i.source
}

// Properties returns declared properties
func (i *Instance) Properties() []Property {
	i.mux.RLock()
	defer i.mux.RUnlock()
	return append([]Property{}, i.properties...)
}

// Get returns property value
func (i *Instance) Get(name string) (variant.Variant, error) {
	i.mux.RLock()
	defer i.mux.RUnlock()
	value, ok := i.values[name]
	if !ok {
		return variant.Variant{}, fmt.Errorf("%v has no property %v", i.class, name)
	}
	return value, nil
}

// Set sets property value
func (i *Instance) Set(name string, value variant.Variant) error {
	i.mux.Lock()
	defer i.mux.Unlock()
	if _, ok := i.values[name]; !ok {
		return fmt.Errorf("%v has no property %v", i.class, name)
	}
	i.values[name] = value
	return nil
}

// Methods returns declared methods
func (i *Instance) Methods() []Method {
	i.mux.RLock()
	defer i.mux.RUnlock()
	return append([]Method{}, i.methods...)
}

// Call calls a method
func (i *Instance) Call(name string, args ...variant.Variant) (variant.Variant, error) {
	i.mux.RLock()
	fn, ok := i.funcs[name]
	i.mux.RUnlock()
	if !ok {
		return variant.Variant{}, fmt.Errorf("%v has no method %v", i.class, name)
	}
	return fn(i, args...)
}

// Define declares a property with initial value
func (i *Instance) Define(property Property, value interface{}) *Instance {
	i.mux.Lock()
	defer i.mux.Unlock()
	i.properties = append(i.properties, property)
	if property.Usage.IsSection() {
		return i
	}
	i.values[property.Name] = variant.Of(value)
	return i
}

// Var declares a script variable typed by its initial value
func (i *Instance) Var(name string, value interface{}) *Instance {
	return i.Define(Property{Name: name, Type: TypeOf(value), Usage: UsageVariable}, value)
}

// Section declares a category, group or subgroup entry
func (i *Instance) Section(name string, usage Usage) *Instance {
	return i.Define(Property{Name: name, Usage: usage}, nil)
}

// Method declares a method
func (i *Instance) Method(name string, args []string, fn Func) *Instance {
	i.mux.Lock()
	defer i.mux.Unlock()
	i.methods = append(i.methods, Method{Name: name, Args: args})
	i.funcs[name] = fn
	return i
}

// WithSource sets script source
func (i *Instance) WithSource(source string) *Instance {
	i.source = source
	return i
}

// NewInstance creates a script instance
func NewInstance(class string) *Instance {
	return &Instance{class: class, values: map[string]variant.Variant{}, funcs: map[string]Func{}}
}
