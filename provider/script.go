package provider

import (
	"reflect"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/script"
	"github.com/viant/inspector/variant"
)

// ScriptProperties provides script variables of a script object
type ScriptProperties struct {
	ctx *Context
}

func (p *ScriptProperties) Category() member.Category {
	return member.CategoryScriptProperty
}

func (p *ScriptProperties) Populate(target interface{}, origin *member.Origin) []*Binding {
	if !p.ctx.ShowScriptProperties {
		return nil
	}
	object, ok := scriptObject(target)
	if !ok {
		return nil
	}
	var result []*Binding
	for _, property := range object.Properties() {
		property := property
		if property.Usage.IsSection() && !property.IsVariable() {
			continue
		}
		value, err := object.Get(property.Name)
		if err != nil {
			continue
		}
		propertyOrigin := script.Origin(&property, p.ctx.Enums(), p.ctx.ShowScriptEnumName)
		propertyOrigin.ReadOnly = origin.IsReadOnly()
		descriptor := p.ctx.describe(property.Name, variantType, value, member.CategoryScriptProperty, true, propertyOrigin)
		result = append(result, p.ctx.bind(descriptor, value, func(value interface{}) error {
			return object.Set(property.Name, variant.Of(value))
		}))
	}
	return result
}

// ScriptMethods provides script methods, arguments are passed as loosely typed variants
type ScriptMethods struct {
	ctx *Context
}

func (p *ScriptMethods) Category() member.Category {
	return member.CategoryScriptMethod
}

func (p *ScriptMethods) Populate(target interface{}, origin *member.Origin) []*Binding {
	object, ok := scriptObject(target)
	if !ok {
		return nil
	}
	var result []*Binding
	for _, method := range object.Methods() {
		method := method
		in := make([]reflect.Type, len(method.Args))
		for i := range in {
			in[i] = variantType
		}
		descriptor := &member.Descriptor{Name: method.Name, Category: member.CategoryScriptMethod, CanRead: true, Class: member.Null}
		result = append(result, p.ctx.method(descriptor, method.Signature(), in, func(args []reflect.Value) ([]interface{}, error) {
			values := make([]variant.Variant, len(args))
			for i, arg := range args {
				values[i] = arg.Interface().(variant.Variant)
			}
			ret, err := object.Call(method.Name, values...)
			if err != nil {
				return nil, err
			}
			return []interface{}{ret}, nil
		}))
	}
	return result
}
