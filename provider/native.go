package provider

import (
	"fmt"
	"reflect"

	"github.com/viant/inspector/member"
)

// Fields provides struct fields, unexported fields are accessed through field pointers
type Fields struct {
	ctx *Context
}

func (p *Fields) Category() member.Category {
	return member.CategoryField
}

func (p *Fields) Populate(target interface{}, origin *member.Origin) []*Binding {
	aType, receiver, ok := nativeType(p.ctx, target)
	if !ok || aType.Type.Kind() != reflect.Struct {
		return nil
	}
	shared := isShared(target)
	structPtr := member.Pointer(receiver)
	var result []*Binding
	for _, field := range aType.Fields {
		field := field
		value := field.Value(structPtr)
		fieldOrigin := &member.Origin{ReadOnly: origin.IsReadOnly() || !shared, TimeLayout: field.TimeLayout}
		descriptor := p.ctx.describe(field.Name, field.Type, value, member.CategoryField, !field.ReadOnly, fieldOrigin)
		binding := p.ctx.bind(descriptor, value, func(value interface{}) error {
			field.Set(structPtr, valueOf(value, field.Type))
			return nil
		})
		if shared && (field.Type.Kind() == reflect.Struct || field.Type.Kind() == reflect.Array) {
			binding.Target = field.Addr(structPtr)
		}
		result = append(result, binding)
	}
	return result
}

// Properties provides getter/setter method pairs
type Properties struct {
	ctx *Context
}

func (p *Properties) Category() member.Category {
	return member.CategoryProperty
}

func (p *Properties) Populate(target interface{}, origin *member.Origin) []*Binding {
	aType, receiver, ok := nativeType(p.ctx, target)
	if !ok {
		return nil
	}
	shared := isShared(target)
	var result []*Binding
	for _, property := range aType.Properties {
		property := property
		value, err := property.Get(receiver)
		if err != nil {
			continue
		}
		propertyOrigin := &member.Origin{ReadOnly: origin.IsReadOnly() || !shared}
		descriptor := p.ctx.describe(property.Name, property.Type, value, member.CategoryProperty, property.CanWrite(), propertyOrigin)
		var write func(value interface{}) error
		if property.CanWrite() {
			write = func(value interface{}) error {
				return property.Set(receiver, valueOf(value, property.Type))
			}
		}
		result = append(result, p.ctx.bind(descriptor, value, write))
	}
	return result
}

// Statics provides package level variables registered with the owner type
type Statics struct {
	ctx *Context
}

func (p *Statics) Category() member.Category {
	return member.CategoryStatic
}

func (p *Statics) Populate(target interface{}, origin *member.Origin) []*Binding {
	aType, _, ok := nativeType(p.ctx, target)
	if !ok {
		return nil
	}
	var result []*Binding
	for _, static := range aType.Statics {
		static := static
		value := static.Value()
		descriptor := p.ctx.describe(static.Name, static.Type(), value, member.CategoryStatic, !static.ReadOnly, &member.Origin{})
		result = append(result, p.ctx.bind(descriptor, value, func(value interface{}) error {
			return static.Set(valueOf(value, static.Type()))
		}))
	}
	return result
}

// Methods provides exported methods other than property accessors
type Methods struct {
	ctx *Context
}

func (p *Methods) Category() member.Category {
	return member.CategoryMethod
}

func (p *Methods) Populate(target interface{}, origin *member.Origin) []*Binding {
	aType, receiver, ok := nativeType(p.ctx, target)
	if !ok {
		return nil
	}
	accessors := map[string]bool{}
	for _, property := range aType.Properties {
		accessors[property.GoName] = true
		if property.CanWrite() {
			accessors["Set"+property.GoName] = true
		}
	}
	var result []*Binding
	for _, method := range aType.Methods {
		method := method
		if accessors[method.Name] {
			continue
		}
		descriptor := &member.Descriptor{Name: method.Name, Category: member.CategoryMethod, CanRead: true, Class: member.Null}
		result = append(result, p.ctx.method(descriptor, method.Signature(), method.In, func(args []reflect.Value) ([]interface{}, error) {
			ret, err := method.Call(receiver, args)
			if err != nil {
				return ret, fmt.Errorf("%v: %w", aType.Type.Name(), err)
			}
			return ret, nil
		}))
	}
	return result
}
