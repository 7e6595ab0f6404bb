package enum

import (
	"reflect"
	"sync"
)

type (
	// Enumerator is implemented by integer types that describe their own constants
	Enumerator interface {
		EnumEntries() []Entry
	}

	// Flagger is implemented by integer bit-set types that describe their own bits
	Flagger interface {
		FlagEntries() []Entry
	}

	// Integer represents types usable as enum constants
	Integer interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}

	// Definition represents a native enum definition
	Definition struct {
		Name  string
		Type  reflect.Type
		Table *Table
		Flags bool
	}

	// Registry holds native enum definitions
	Registry struct {
		mux   sync.RWMutex
		types map[reflect.Type]*Definition
		names map[string]*Definition
	}
)

var (
	enumeratorType = reflect.TypeOf((*Enumerator)(nil)).Elem()
	flaggerType    = reflect.TypeOf((*Flagger)(nil)).Elem()
)

// NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{types: map[reflect.Type]*Definition{}, names: map[string]*Definition{}}
}

// Register registers enum type with supplied table
func (r *Registry) Register(rType reflect.Type, table *Table, flags bool) *Definition {
	ret := &Definition{Name: rType.Name(), Type: rType, Table: table, Flags: flags}
	r.mux.Lock()
	defer r.mux.Unlock()
	r.types[rType] = ret
	r.names[rType.Name()] = ret
	r.names[rType.String()] = ret
	return ret
}

// Lookup returns enum definition for supplied type
func (r *Registry) Lookup(rType reflect.Type) (*Definition, bool) {
	if rType == nil || !isInteger(rType.Kind()) {
		return nil, false
	}
	r.mux.RLock()
	ret, ok := r.types[rType]
	r.mux.RUnlock()
	if ok {
		return ret, true
	}
	switch {
	case rType.Implements(flaggerType):
		entries := reflect.Zero(rType).Interface().(Flagger).FlagEntries()
		return r.Register(rType, NewTable(entries...), true), true
	case rType.Implements(enumeratorType):
		entries := reflect.Zero(rType).Interface().(Enumerator).EnumEntries()
		return r.Register(rType, NewTable(entries...), false), true
	}
	return nil, false
}

// LookupName returns enum definition for supplied type name, either "Type" or "pkg.Type"
func (r *Registry) LookupName(name string) (*Definition, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret, ok := r.names[name]
	return ret, ok
}

// Register registers T as an enum with supplied constants
func Register[T Integer](r *Registry, entries ...Entry) *Definition {
	return r.Register(reflect.TypeOf(T(0)), NewTable(entries...), false)
}

// RegisterFlags registers T as a bit-set with supplied bits
func RegisterFlags[T Integer](r *Registry, entries ...Entry) *Definition {
	return r.Register(reflect.TypeOf(T(0)), NewTable(entries...), true)
}

// Of creates an entry for typed constant
func Of[T Integer](label string, value T) Entry {
	return Entry{Label: label, Value: int64(value)}
}

func isInteger(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
