package member

import (
	"reflect"
	"time"

	"github.com/viant/inspector/visitor"
)

var timeType = reflect.TypeOf(time.Time{})

type (
	// Enumerable represents a non indexable collection, rendered read-only
	Enumerable interface {
		Enumerate() visitor.Visitor[int, interface{}]
	}

	// TreeHider is implemented by types omitted from the object tree
	TreeHider interface {
		HideInTree() bool
	}
)

// IsTimeType returns true for time.Time and *time.Time
func IsTimeType(candidate reflect.Type) bool {
	return EnsureStructType(candidate) == timeType
}

// EnsureStructType returns struct type for struct or pointer to struct
func EnsureStructType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return EnsureStructType(t.Elem())
	}
	return nil
}

// IsSet returns true for map[K]struct{}
func IsSet(t reflect.Type) bool {
	if t.Kind() != reflect.Map {
		return false
	}
	elem := t.Elem()
	return elem.Kind() == reflect.Struct && elem.NumField() == 0
}

// IsGrid returns true for array of arrays
func IsGrid(t reflect.Type) bool {
	return t.Kind() == reflect.Array && t.Elem().Kind() == reflect.Array
}

// TypeName returns display type name
func TypeName(value interface{}) string {
	if IsNil(value) {
		return "null"
	}
	return reflect.TypeOf(value).String()
}
