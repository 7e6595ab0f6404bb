package provider

import (
	"reflect"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/script"
	"github.com/viant/inspector/variant"
)

// Provider populates member bindings of a target
type Provider interface {
	Category() member.Category
	//Populate returns bindings, targets the provider does not apply to yield nil
	Populate(target interface{}, origin *member.Origin) []*Binding
}

// Providers returns all providers in panel order
func Providers(ctx *Context) []Provider {
	return []Provider{
		&Elements{ctx: ctx},
		&ScriptProperties{ctx: ctx},
		&Properties{ctx: ctx},
		&Fields{ctx: ctx},
		&Statics{ctx: ctx},
		&ScriptMethods{ctx: ctx},
		&Methods{ctx: ctx},
	}
}

// Populate returns bindings of all providers
func Populate(ctx *Context, target interface{}, origin *member.Origin) []*Binding {
	var result []*Binding
	for _, provider := range Providers(ctx) {
		result = append(result, provider.Populate(target, origin)...)
	}
	return result
}

// unwrap returns variant payload
func unwrap(target interface{}) interface{} {
	if boxed, ok := target.(variant.Variant); ok {
		return boxed.Unwrap()
	}
	return target
}

// scriptObject returns target script object
func scriptObject(target interface{}) (script.Object, bool) {
	object, ok := unwrap(target).(script.Object)
	if !ok || member.IsNil(object) {
		return nil, false
	}
	return object, true
}

// nativeType returns members of native composite target and a method receiver
func nativeType(ctx *Context, target interface{}) (*member.Type, reflect.Value, bool) {
	target = unwrap(target)
	if member.IsNil(target) {
		return nil, reflect.Value{}, false
	}
	if _, ok := target.(script.Object); ok {
		return nil, reflect.Value{}, false
	}
	rValue := reflect.ValueOf(target)
	if member.ClassifyType(rValue.Type(), ctx.Enums(), nil) != member.Composite {
		return nil, reflect.Value{}, false
	}
	aType := ctx.Members.TypeOf(rValue.Type())
	receiver, ok := aType.Receiver(rValue)
	return aType, receiver, ok
}

// isShared returns true when writes through receiver reach the target
func isShared(target interface{}) bool {
	return reflect.ValueOf(unwrap(target)).Kind() == reflect.Ptr
}
