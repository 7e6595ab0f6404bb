package editor

import (
	"reflect"

	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/member"
)

// Factory creates editors by value class
type Factory struct {
	Enums     *enum.Registry
	Converter *coerce.Converter
}

// Create creates an editor for supplied member and seeds it with value
func (f *Factory) Create(descriptor *member.Descriptor, value interface{}) Editor {
	origin := descriptor.Origin
	if descriptor.Table != nil && !origin.HasTable() {
		copied := member.Origin{}
		if origin != nil {
			copied = *origin
		}
		copied.Table = descriptor.Table
		origin = &copied
	}
	ret := f.create(descriptor.Type, descriptor.Class, origin)
	ret.SetMemberInfo(descriptor.Name, descriptor.Type, value, descriptor.Class)
	ret.SetEditable(descriptor.CanWrite && !origin.IsReadOnly())
	return ret
}

func (f *Factory) create(rType reflect.Type, class member.Class, origin *member.Origin) Editor {
	converter := f.Converter.WithTimeLayout(origin.Layout())
	switch class {
	case member.Bool:
		return NewBool(converter)
	case member.Number:
		return NewNumber(converter)
	case member.Text, member.Handle:
		return NewText(converter)
	case member.Enum, member.Flags:
		table, native, flags := f.tables(rType, origin)
		if table.IsEmpty() {
			return NewNumber(converter)
		}
		if flags || class == member.Flags {
			return NewFlags(converter, table)
		}
		return NewEnum(converter, table, native)
	case member.Variant:
		return &Variant{base: base{converter: converter}, factory: f, origin: origin}
	case member.Collection, member.Dictionary:
		return NewCollection(converter)
	}
	return NewObject(converter)
}

// tables returns origin table when defined, native table otherwise
func (f *Factory) tables(rType reflect.Type, origin *member.Origin) (*enum.Table, *enum.Table, bool) {
	var native *enum.Table
	nativeFlags := false
	if f.Enums != nil {
		if definition, ok := f.Enums.Lookup(rType); ok {
			native, nativeFlags = definition.Table, definition.Flags
		}
	}
	if origin.HasTable() {
		return origin.Table, native, origin.Flags
	}
	return native, native, nativeFlags
}

// NewFactory creates editor factory
func NewFactory(enums *enum.Registry, converter *coerce.Converter) *Factory {
	if converter == nil {
		converter = coerce.NewConverter(coerce.DefaultOptions())
	}
	return &Factory{Enums: enums, Converter: converter}
}
