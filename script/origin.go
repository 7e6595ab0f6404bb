package script

import (
	"strings"

	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/hint"
	"github.com/viant/inspector/member"
)

// Origin returns typing hints of a script property value, enum class names are resolved
// through the native registry when resolveEnumName is set
func Origin(property *Property, enums *enum.Registry, resolveEnumName bool) *member.Origin {
	ret := &member.Origin{ClassName: property.ClassName}
	switch property.Type {
	case TypeInt:
		switch property.Hint {
		case hint.HintEnum:
			ret.Table = hint.ParseEnum(property.HintString)
		case hint.HintFlags:
			ret.Table, ret.Flags = hint.ParseFlags(property.HintString), true
		}
	case TypeArray, TypeDictionary:
		if spec, ok := hint.Parse(property.HintString); ok && spec.Type == hint.TypeInt {
			ret.ElementTable, ret.ElementFlags = spec.Table(), spec.IsFlags()
		}
	}
	if property.Usage.Has(UsageClassIsEnum) {
		ret.EnumName = property.ClassName
		ret.ClassName = ""
		if resolveEnumName && enums != nil && !ret.HasTable() {
			if definition, ok := lookupEnum(enums, property.ClassName); ok {
				ret.Table, ret.Flags = definition.Table, definition.Flags
			}
		}
	}
	return ret
}

// lookupEnum resolves "Class.Enum" or "Enum" names
func lookupEnum(enums *enum.Registry, name string) (*enum.Definition, bool) {
	if definition, ok := enums.LookupName(name); ok {
		return definition, true
	}
	if index := strings.LastIndexByte(name, '.'); index != -1 {
		return enums.LookupName(name[index+1:])
	}
	return nil, false
}
