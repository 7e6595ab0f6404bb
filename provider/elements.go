package provider

import (
	"container/list"
	"reflect"
	"sort"
	"strconv"

	"github.com/viant/inspector/member"
)

// Elements provides collection and dictionary elements
type Elements struct {
	ctx *Context
}

func (p *Elements) Category() member.Category {
	return member.CategoryElement
}

func (p *Elements) Populate(target interface{}, origin *member.Origin) []*Binding {
	target = unwrap(target)
	if member.IsNil(target) {
		return nil
	}
	switch actual := target.(type) {
	case member.Enumerable:
		return p.enumerable(actual, origin)
	case *list.List:
		return p.list(actual, origin)
	}
	rValue := reflect.ValueOf(target)
	if rValue.Kind() == reflect.Ptr {
		switch rValue.Elem().Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			rValue = rValue.Elem()
		}
	}
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		if member.IsGrid(rValue.Type()) {
			return p.grid(rValue, origin)
		}
		return p.indexed(rValue, origin)
	case reflect.Map:
		if member.IsSet(rValue.Type()) {
			return p.set(rValue, origin)
		}
		return p.dictionary(rValue, origin)
	}
	return nil
}

func (p *Elements) indexed(rValue reflect.Value, origin *member.Origin) []*Binding {
	settable := rValue.Kind() == reflect.Slice || rValue.CanSet()
	elementOrigin := origin.Element(!settable)
	var result = make([]*Binding, 0, rValue.Len())
	for i := 0; i < rValue.Len(); i++ {
		result = append(result, p.element(elementLabel(i), rValue.Index(i), elementOrigin))
	}
	return result
}

func (p *Elements) grid(rValue reflect.Value, origin *member.Origin) []*Binding {
	elementOrigin := origin.Element(!rValue.CanSet())
	var result []*Binding
	for i := 0; i < rValue.Len(); i++ {
		row := rValue.Index(i)
		for j := 0; j < row.Len(); j++ {
			result = append(result, p.element("["+strconv.Itoa(i)+","+strconv.Itoa(j)+"]", row.Index(j), elementOrigin))
		}
	}
	return result
}

func (p *Elements) element(label string, item reflect.Value, origin *member.Origin) *Binding {
	value := item.Interface()
	descriptor := p.ctx.describe(label, item.Type(), value, member.CategoryElement, item.CanSet(), origin)
	declared := item.Type()
	binding := p.ctx.bind(descriptor, value, func(value interface{}) error {
		item.Set(valueOf(value, declared))
		return nil
	})
	if item.CanAddr() && declared.Kind() == reflect.Struct {
		binding.Target = item.Addr().Interface()
	}
	return binding
}

func (p *Elements) dictionary(rValue reflect.Value, origin *member.Origin) []*Binding {
	elementOrigin := origin.Element(false)
	keys := p.sortedKeys(rValue)
	valueType := rValue.Type().Elem()
	var result = make([]*Binding, 0, len(keys))
	for _, key := range keys {
		key := key
		value := rValue.MapIndex(key).Interface()
		descriptor := p.ctx.describe(elementLabel(p.ctx.Converter.Format(key.Interface())), valueType, value, member.CategoryElement, true, elementOrigin)
		result = append(result, p.ctx.bind(descriptor, value, func(value interface{}) error {
			rValue.SetMapIndex(key, valueOf(value, valueType))
			return nil
		}))
	}
	return result
}

func (p *Elements) set(rValue reflect.Value, origin *member.Origin) []*Binding {
	elementOrigin := origin.Element(true)
	keys := p.sortedKeys(rValue)
	var result = make([]*Binding, 0, len(keys))
	for i, key := range keys {
		result = append(result, p.readOnly(elementLabel(i), key.Interface(), elementOrigin))
	}
	return result
}

func (p *Elements) list(aList *list.List, origin *member.Origin) []*Binding {
	elementOrigin := origin.Element(true)
	var result = make([]*Binding, 0, aList.Len())
	i := 0
	for item := aList.Front(); item != nil; item = item.Next() {
		result = append(result, p.readOnly(elementLabel(i), item.Value, elementOrigin))
		i++
	}
	return result
}

func (p *Elements) enumerable(enumerable member.Enumerable, origin *member.Origin) []*Binding {
	elementOrigin := origin.Element(true)
	var result []*Binding
	err := enumerable.Enumerate()(func(index int, value interface{}) (bool, error) {
		result = append(result, p.readOnly(elementLabel(index), value, elementOrigin))
		return true, nil
	})
	if err != nil {
		p.ctx.Report(err)
	}
	return result
}

func (p *Elements) readOnly(label string, value interface{}, origin *member.Origin) *Binding {
	var rType reflect.Type
	if value != nil {
		rType = reflect.TypeOf(value)
	}
	descriptor := p.ctx.describe(label, rType, value, member.CategoryElement, false, origin)
	return p.ctx.bind(descriptor, value, nil)
}

// sortedKeys returns map keys ordered by rendered text
func (p *Elements) sortedKeys(rValue reflect.Value) []reflect.Value {
	keys := rValue.MapKeys()
	texts := make(map[int]string, len(keys))
	for i, key := range keys {
		texts[i] = p.ctx.Converter.Format(key.Interface())
	}
	indexes := make([]int, len(keys))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(i, j int) bool { return texts[indexes[i]] < texts[indexes[j]] })
	var result = make([]reflect.Value, len(keys))
	for i, index := range indexes {
		result[i] = keys[index]
	}
	return result
}

func elementLabel(index interface{}) string {
	switch actual := index.(type) {
	case int:
		return "[" + strconv.Itoa(actual) + "]"
	case string:
		return "[" + actual + "]"
	}
	return ""
}
