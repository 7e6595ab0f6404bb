package script

import (
	"strings"

	"github.com/viant/inspector/variant"
)

// Usage represents script property usage flags
type Usage uint32

const (
	UsageGroup        Usage = 64
	UsageCategory     Usage = 128
	UsageSubgroup     Usage = 256
	UsageVariable     Usage = 4096
	UsageClassIsEnum  Usage = 65536
	UsageNilIsVariant Usage = 131072
)

// Has returns true if all supplied flags are set
func (u Usage) Has(flags Usage) bool {
	return u&flags == flags
}

// IsSection returns true for category, group and subgroup entries
func (u Usage) IsSection() bool {
	return u&(UsageGroup|UsageCategory|UsageSubgroup) != 0
}

// Script value type codes
const (
	TypeNil        = 0
	TypeBool       = 1
	TypeInt        = 2
	TypeFloat      = 3
	TypeString     = 4
	TypeObject     = 24
	TypeDictionary = 27
	TypeArray      = 28
)

// HideInTreeDirective hides script objects from the object tree when it is the first source line
const HideInTreeDirective = "# @hide_in_object_tree"

type (
	// Property describes a script property
	Property struct {
		Name       string
		Type       int
		Hint       int
		HintString string
		//ClassName is an enum class name when usage has UsageClassIsEnum, object class otherwise
		ClassName string
		Usage     Usage
	}

	// Method describes a script method
	Method struct {
		Name string
		Args []string
	}

	// Object represents a dynamically scripted object
	Object interface {
		ClassName() string
		Properties() []Property
		Get(name string) (variant.Variant, error)
		Set(name string, value variant.Variant) error
		Methods() []Method
		Call(name string, args ...variant.Variant) (variant.Variant, error)
	}

	// Sourcer is implemented by script objects exposing their source
	Sourcer interface {
		Source() string
	}
)

// Signature returns method signature, i.e. jump(height, speed)
func (m *Method) Signature() string {
	return m.Name + "(" + strings.Join(m.Args, ", ") + ")"
}

// IsVariable returns true if property is a script variable
func (p *Property) IsVariable() bool {
	return p.Usage.Has(UsageVariable)
}

// IsHidden returns true if object source starts with the hide directive
func IsHidden(object Object) bool {
	sourcer, ok := object.(Sourcer)
	if !ok {
		return false
	}
	for _, line := range strings.Split(sourcer.Source(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return line == HideInTreeDirective
	}
	return false
}

// TypeOf returns script type code of a go value
func TypeOf(value interface{}) int {
	switch variant.Of(value).Kind() {
	case variant.KindBool:
		return TypeBool
	case variant.KindInt:
		return TypeInt
	case variant.KindFloat:
		return TypeFloat
	case variant.KindText:
		return TypeString
	case variant.KindNull:
		return TypeNil
	}
	switch value.(type) {
	case []interface{}:
		return TypeArray
	case map[string]interface{}, map[interface{}]interface{}:
		return TypeDictionary
	}
	return TypeObject
}
