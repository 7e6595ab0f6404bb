package member

import (
	"reflect"

	"github.com/viant/inspector/enum"
)

// Category represents member origin
type Category int

const (
	CategoryProperty Category = iota
	CategoryField
	CategoryStatic
	CategoryMethod
	CategoryScriptProperty
	CategoryScriptMethod
	CategoryElement
)

// Categories lists categories in panel order
var Categories = []Category{CategoryElement, CategoryScriptProperty, CategoryProperty, CategoryField, CategoryStatic, CategoryScriptMethod, CategoryMethod}

// String returns category title
func (c Category) String() string {
	switch c {
	case CategoryProperty:
		return "Properties"
	case CategoryField:
		return "Fields"
	case CategoryStatic:
		return "Statics"
	case CategoryMethod:
		return "Methods"
	case CategoryScriptProperty:
		return "Script properties"
	case CategoryScriptMethod:
		return "Script methods"
	}
	return "Elements"
}

// IsInvocable returns true for method categories
func (c Category) IsInvocable() bool {
	return c == CategoryMethod || c == CategoryScriptMethod
}

// Descriptor describes a member
type Descriptor struct {
	Name     string
	Type     reflect.Type
	Category Category
	CanRead  bool
	CanWrite bool
	Class    Class
	Table    *enum.Table
	Origin   *Origin
}
