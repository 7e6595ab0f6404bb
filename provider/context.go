package provider

import (
	"fmt"
	"reflect"

	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/editor"
	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/member"
	"github.com/viant/inspector/variant"
)

// Context carries inspector collaborators shared by providers
type Context struct {
	Members   *member.Registry
	Editors   *editor.Factory
	Converter *coerce.Converter
	Clipboard *editor.Clipboard
	Reporter  member.Reporter
	//ShowScriptProperties lists script object properties
	ShowScriptProperties bool
	//ShowScriptEnumName resolves script enum labels through the native enum registry
	ShowScriptEnumName bool
	//PinReturnValue pins method return values to the clipboard
	PinReturnValue bool
}

// Enums returns native enum registry
func (c *Context) Enums() *enum.Registry {
	return c.Members.Enums
}

// Report reports an error, nil reporter discards
func (c *Context) Report(err error) {
	member.Report(c.Reporter, err)
}

func (c *Context) describe(name string, declared reflect.Type, value interface{}, category member.Category, canWrite bool, origin *member.Origin) *member.Descriptor {
	rType := declared
	if value != nil && (rType == nil || rType.Kind() == reflect.Interface) {
		rType = reflect.TypeOf(value)
	}
	class := member.ClassifyType(rType, c.Enums(), origin)
	if declared != nil && declared.Kind() == reflect.Interface && value == nil {
		class = member.Null
	}
	ret := &member.Descriptor{Name: name, Type: rType, Category: category, CanRead: true, CanWrite: canWrite && !origin.IsReadOnly(), Class: class, Origin: origin}
	if origin.HasTable() {
		ret.Table = origin.Table
	} else if definition, ok := c.Enums().Lookup(rType); ok {
		ret.Table = definition.Table
	}
	return ret
}

// bind creates a binding, edits are written back with write and failures are reported
func (c *Context) bind(descriptor *member.Descriptor, value interface{}, write func(value interface{}) error) *Binding {
	ret := &Binding{Descriptor: descriptor, Value: value, Target: value}
	ret.Editor = c.Editors.Create(descriptor, value)
	if write == nil {
		ret.Editor.SetEditable(false)
		return ret
	}
	ret.Editor.OnValueChanged(func(value interface{}) {
		if err := safeWrite(write, value); err != nil {
			c.Report(err)
			ret.Editor.SetMemberInfo(descriptor.Name, descriptor.Type, ret.Value, descriptor.Class)
			ret.Editor.Reject(err)
			return
		}
		ret.Value, ret.Target = value, value
	})
	return ret
}

func (c *Context) method(descriptor *member.Descriptor, signature string, in []reflect.Type, invoke editor.InvokeFunc) *Binding {
	method := editor.NewMethod(descriptor.Name, signature, in, invoke, c.Converter, c.Clipboard)
	method.PinReturnValue = c.PinReturnValue
	method.OnInvoked(func(result []interface{}, err error) {
		if err != nil {
			c.Report(err)
		}
	})
	return &Binding{Descriptor: descriptor, Method: method}
}

func safeWrite(write func(value interface{}) error, value interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to write %v: %v", value, r)
		}
	}()
	return write(value)
}

// valueOf returns value assignable to rType, nil becomes zero value
func valueOf(value interface{}, rType reflect.Type) reflect.Value {
	if value == nil {
		return reflect.Zero(rType)
	}
	return reflect.ValueOf(value)
}

// NewContext creates a context
func NewContext(members *member.Registry, converter *coerce.Converter, reporter member.Reporter) *Context {
	if members == nil {
		members = member.NewRegistry(nil)
	}
	if converter == nil {
		converter = coerce.NewConverter(coerce.DefaultOptions())
	}
	return &Context{
		Members:   members,
		Editors:   editor.NewFactory(members.Enums, converter),
		Converter: converter,
		Clipboard: &editor.Clipboard{},
		Reporter:  reporter,

		ShowScriptProperties: true,
	}
}

var variantType = reflect.TypeOf(variant.Variant{})
