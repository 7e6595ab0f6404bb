package panel

import (
	"fmt"
	"reflect"

	"github.com/viant/inspector"
	"github.com/viant/inspector/member"
	"github.com/viant/inspector/provider"
)

type (
	// Group represents bindings of a single category
	Group struct {
		Category member.Category
		Bindings []*provider.Binding
	}

	// Panel represents members of a target grouped by category
	Panel struct {
		Label  string
		Title  string
		Target interface{}
		Origin *member.Origin
		Groups []*Group
	}
)

// Bindings returns all bindings in panel order
func (p *Panel) Bindings() []*provider.Binding {
	var result []*provider.Binding
	for _, group := range p.Groups {
		result = append(result, group.Bindings...)
	}
	return result
}

// Group returns group of supplied category or nil
func (p *Panel) Group(category member.Category) *Group {
	for _, group := range p.Groups {
		if group.Category == category {
			return group
		}
	}
	return nil
}

// Lookup returns binding with supplied name, the first category in panel order wins
func (p *Panel) Lookup(name string) *provider.Binding {
	return lookup(p.Bindings(), name)
}

func (p *Panel) populate(ctx *provider.Context) {
	p.Groups = group(provider.Populate(ctx, p.Target, p.Origin))
}

func group(bindings []*provider.Binding) []*Group {
	byCategory := map[member.Category]*Group{}
	for _, binding := range bindings {
		aGroup, ok := byCategory[binding.Category]
		if !ok {
			aGroup = &Group{Category: binding.Category}
			byCategory[binding.Category] = aGroup
		}
		aGroup.Bindings = append(aGroup.Bindings, binding)
	}
	var result []*Group
	for _, category := range member.Categories {
		if aGroup, ok := byCategory[category]; ok {
			result = append(result, aGroup)
		}
	}
	return result
}

func lookup(bindings []*provider.Binding, name string) *provider.Binding {
	for _, binding := range bindings {
		if binding.Name == name {
			return binding
		}
	}
	return nil
}

// Title returns "<type> : <string>", scene nodes are identified by name
func Title(value interface{}) string {
	if member.IsNil(value) {
		return "null"
	}
	name := typeName(value)
	switch actual := value.(type) {
	case inspector.SceneNode:
		return name + " : " + actual.Name()
	case fmt.Stringer:
		return name + " : " + actual.String()
	}
	return name + " : <" + name + ">"
}

func typeName(value interface{}) string {
	rType := reflect.TypeOf(value)
	for rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Name() == "" {
		return rType.String()
	}
	return rType.Name()
}
