package member

import (
	"container/list"
	"reflect"

	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/variant"
)

// Class represents value classification computed once per value
type Class int

const (
	Null Class = iota
	Bool
	Number
	Text
	Handle
	Enum
	Flags
	Variant
	Collection
	Dictionary
	Composite
)

var (
	variantType    = reflect.TypeOf(variant.Variant{})
	handleType     = reflect.TypeOf((*variant.Handle)(nil)).Elem()
	listType       = reflect.TypeOf(list.List{})
	enumerableType = reflect.TypeOf((*Enumerable)(nil)).Elem()
)

// String returns class name
func (c Class) String() string {
	switch c {
	case Bool:
		return "Bool"
	case Number:
		return "Number"
	case Text:
		return "Text"
	case Handle:
		return "Handle"
	case Enum:
		return "Enum"
	case Flags:
		return "Flags"
	case Variant:
		return "Variant"
	case Collection:
		return "Collection"
	case Dictionary:
		return "Dictionary"
	case Composite:
		return "Composite"
	}
	return "Null"
}

// IsExpandable returns true for classes opening a nested panel
func (c Class) IsExpandable() bool {
	switch c {
	case Collection, Dictionary, Composite, Null:
		return true
	}
	return false
}

// IsScalar returns true for classes edited in place
func (c Class) IsScalar() bool {
	switch c {
	case Bool, Number, Text, Handle, Enum, Flags:
		return true
	}
	return false
}

// Classify classifies supplied value, origin table takes precedence over native enum registry
func Classify(value interface{}, enums *enum.Registry, origin *Origin) Class {
	if IsNil(value) {
		return Null
	}
	return ClassifyType(reflect.TypeOf(value), enums, origin)
}

// ClassifyType classifies supplied type
func ClassifyType(rType reflect.Type, enums *enum.Registry, origin *Origin) Class {
	if rType == nil {
		return Null
	}
	switch {
	case rType == variantType:
		return Variant
	case rType.Implements(handleType):
		return Handle
	case IsTimeType(rType):
		return Text
	case rType.Implements(enumerableType):
		return Collection
	case rType == listType || (rType.Kind() == reflect.Ptr && rType.Elem() == listType):
		return Collection
	}
	switch rType.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if origin.HasTable() {
			if origin.Flags {
				return Flags
			}
			return Enum
		}
		if enums != nil {
			if definition, ok := enums.Lookup(rType); ok {
				if definition.Flags {
					return Flags
				}
				return Enum
			}
		}
		return Number
	case reflect.Uintptr, reflect.Float32, reflect.Float64:
		return Number
	case reflect.String, reflect.Complex64, reflect.Complex128:
		return Text
	case reflect.Slice, reflect.Array:
		return Collection
	case reflect.Map:
		return Dictionary
	case reflect.Interface:
		return Null
	}
	return Composite
}

// IsNil returns true for nil or nil reference value
func IsNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
}

// IsReference returns true for kinds carrying identity
func IsReference(rValue reflect.Value) bool {
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return !rValue.IsNil()
	case reflect.Slice:
		return !rValue.IsNil() && rValue.Cap() > 0
	}
	return false
}
