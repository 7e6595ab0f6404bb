package editor

import (
	"reflect"
	"sync"
)

// Clipboard holds pinned values referenced by method arguments as #<index>
type Clipboard struct {
	mux    sync.RWMutex
	values []interface{}
}

// Pin appends value and returns its index
func (c *Clipboard) Pin(value interface{}) int {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.values = append(c.values, value)
	return len(c.values) - 1
}

// Get returns pinned value
func (c *Clipboard) Get(index int) (interface{}, bool) {
	if c == nil {
		return nil, false
	}
	c.mux.RLock()
	defer c.mux.RUnlock()
	if index < 0 || index >= len(c.values) {
		return nil, false
	}
	return c.values[index], true
}

// Values returns a snapshot of pinned values
func (c *Clipboard) Values() []interface{} {
	if c == nil {
		return nil
	}
	c.mux.RLock()
	defer c.mux.RUnlock()
	return append([]interface{}{}, c.values...)
}

// Len returns pinned values count
func (c *Clipboard) Len() int {
	if c == nil {
		return 0
	}
	c.mux.RLock()
	defer c.mux.RUnlock()
	return len(c.values)
}

// Clear removes all pinned values
func (c *Clipboard) Clear() {
	c.mux.Lock()
	c.values = nil
	c.mux.Unlock()
}

// lookup returns pinned value assignable to rType
func (c *Clipboard) lookup(index int, rType reflect.Type) (reflect.Value, bool) {
	value, ok := c.Get(index)
	if !ok {
		return reflect.Value{}, false
	}
	if value == nil {
		switch rType.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(rType), true
		}
		return reflect.Value{}, false
	}
	rValue := reflect.ValueOf(value)
	if !rValue.Type().AssignableTo(rType) {
		return reflect.Value{}, false
	}
	ret := reflect.New(rType).Elem()
	ret.Set(rValue)
	return ret, true
}
