package member

import (
	"reflect"
	"sort"
	"sync"

	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/tags"
	"github.com/viant/inspector/visitor"
	"github.com/viant/tagly/format/text"
)

type (
	// Extension represents type level opt-in of static and non-public members
	Extension struct {
		Static    bool
		NonPublic bool
	}

	// Type represents visible members of a type
	Type struct {
		Type       reflect.Type
		Extension  Extension
		HideInTree bool
		Fields     []*Field
		Properties []*Property
		Methods    []*Method
		Statics    []*Static
	}

	// Registry holds the visibility policy and member caches
	Registry struct {
		Enums      *enum.Registry
		CaseFormat text.CaseFormat
		types      *visitor.SyncMap[reflect.Type, *Type]
		mux        sync.RWMutex
		extended   map[reflect.Type]Extension
		hidden     map[reflect.Type]bool
		statics    map[reflect.Type][]*Static
		getters    map[reflect.Type]map[string]bool
		members    map[reflect.Type]map[string]bool
	}
)

var treeHiderType = reflect.TypeOf((*TreeHider)(nil)).Elem()

// NewRegistry creates a registry
func NewRegistry(enums *enum.Registry) *Registry {
	if enums == nil {
		enums = enum.NewRegistry()
	}
	return &Registry{
		Enums:    enums,
		types:    visitor.NewSyncMap[reflect.Type, *Type](),
		extended: map[reflect.Type]Extension{},
		hidden:   map[reflect.Type]bool{},
		statics:  map[reflect.Type][]*Static{},
		getters:  map[reflect.Type]map[string]bool{},
		members:  map[reflect.Type]map[string]bool{},
	}
}

// Extend opts type static and non-public members in
func (r *Registry) Extend(rType reflect.Type, extension Extension) {
	rType = baseType(rType)
	r.mux.Lock()
	r.extended[rType] = extension
	r.mux.Unlock()
	r.types.Delete(rType)
}

// HideType omits values of supplied type from the object tree
func (r *Registry) HideType(rType reflect.Type) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.hidden[baseType(rType)] = true
}

// Hide excludes members by Go name, it applies to fields, properties, methods and statics regardless of opt in
func (r *Registry) Hide(rType reflect.Type, names ...string) {
	rType = baseType(rType)
	r.mux.Lock()
	hidden, ok := r.members[rType]
	if !ok {
		hidden = map[string]bool{}
		r.members[rType] = hidden
	}
	for _, name := range names {
		hidden[name] = true
	}
	r.mux.Unlock()
	r.types.Delete(rType)
}

// RegisterStatic registers a package level variable as owner static member
func (r *Registry) RegisterStatic(owner reflect.Type, name string, ptr interface{}, opts ...StaticOption) error {
	owner = baseType(owner)
	static, err := NewStatic(owner, name, ptr, opts...)
	if err != nil {
		return err
	}
	r.mux.Lock()
	r.statics[owner] = append(r.statics[owner], static)
	r.mux.Unlock()
	r.types.Delete(owner)
	return nil
}

// Properties registers read-only getters exposed as properties
func (r *Registry) Properties(rType reflect.Type, getters ...string) {
	rType = baseType(rType)
	r.mux.Lock()
	names, ok := r.getters[rType]
	if !ok {
		names = map[string]bool{}
		r.getters[rType] = names
	}
	for _, name := range getters {
		names[name] = true
	}
	r.mux.Unlock()
	r.types.Delete(rType)
}

// IsHidden returns true if value should be omitted from the object tree
func (r *Registry) IsHidden(value interface{}) bool {
	if value == nil {
		return false
	}
	if hider, ok := value.(TreeHider); ok {
		if !IsNil(value) && hider.HideInTree() {
			return true
		}
	}
	rType := baseType(reflect.TypeOf(value))
	r.mux.RLock()
	hidden := r.hidden[rType]
	r.mux.RUnlock()
	if hidden {
		return true
	}
	if rType.Kind() != reflect.Struct {
		return false
	}
	return r.TypeOf(rType).HideInTree
}

// TypeOf returns visible members of supplied type
func (r *Registry) TypeOf(rType reflect.Type) *Type {
	rType = baseType(rType)
	if ret, ok := r.types.Get(rType); ok {
		return ret
	}
	ret := r.buildType(rType)
	r.types.Put(rType, ret)
	return ret
}

func (r *Registry) buildType(rType reflect.Type) *Type {
	ret := &Type{Type: rType}
	r.mux.RLock()
	extension, hasExtension := r.extended[rType]
	statics := r.statics[rType]
	getters := r.getters[rType]
	hidden := r.members[rType]
	r.mux.RUnlock()
	ret.Extension = extension
	if rType.Kind() == reflect.Struct {
		r.buildFields(ret, hasExtension, hidden)
	}
	for _, static := range statics {
		if hidden[static.Name] {
			continue
		}
		if static.Show || ret.Extension.Static {
			ret.Statics = append(ret.Statics, static)
		}
	}
	r.buildMethods(ret, getters, hidden)
	return ret
}

func (r *Registry) buildFields(ret *Type, hasExtension bool, hidden map[string]bool) {
	rType := ret.Type
	for i := 0; i < rType.NumField(); i++ {
		structField := rType.Field(i)
		if structField.Name == "_" {
			if tag := tags.MustParse(structField.Tag); tag.Extended || tag.HideInTree {
				if tag.Extended && !hasExtension {
					ret.Extension = Extension{Static: tag.Static, NonPublic: tag.NonPublic}
				}
				ret.HideInTree = ret.HideInTree || tag.HideInTree
			}
		}
	}
	for i := 0; i < rType.NumField(); i++ {
		structField := rType.Field(i)
		if structField.Name == "_" {
			continue
		}
		tag := tags.MustParse(structField.Tag)
		if tag.Ignore || hidden[structField.Name] {
			continue
		}
		if !structField.IsExported() && !tag.Show && !ret.Extension.NonPublic {
			continue
		}
		field := newField(structField)
		field.ReadOnly = tag.ReadOnly
		field.Name, field.TimeLayout = r.label(structField, tag)
		ret.Fields = append(ret.Fields, field)
	}
}

func (r *Registry) buildMethods(ret *Type, getters, hidden map[string]bool) {
	if ret.Type.Kind() == reflect.Interface {
		return
	}
	receiverType := reflect.PtrTo(ret.Type)
	for i := 0; i < receiverType.NumMethod(); i++ {
		method := receiverType.Method(i)
		if !method.IsExported() || hidden[method.Name] {
			continue
		}
		ret.Methods = append(ret.Methods, newMethod(method))
		if !isGetter(method) {
			continue
		}
		setter := setterOf(receiverType, method)
		if setter == nil && !getters[method.Name] {
			continue
		}
		ret.Properties = append(ret.Properties, &Property{Name: FormatName(method.Name, r.CaseFormat), GoName: method.Name, Type: method.Type.Out(0), getter: method, setter: setter})
	}
	sort.SliceStable(ret.Properties, func(i, j int) bool { return ret.Properties[i].Name < ret.Properties[j].Name })
}

// Receiver returns value usable as method receiver of supplied type
func (t *Type) Receiver(value reflect.Value) (reflect.Value, bool) {
	if t.Type.Kind() == reflect.Struct {
		return Addressable(value)
	}
	if value.Kind() == reflect.Ptr {
		return value, !value.IsNil()
	}
	if value.CanAddr() {
		return value.Addr(), true
	}
	ptr := reflect.New(value.Type())
	ptr.Elem().Set(value)
	return ptr, true
}

func baseType(rType reflect.Type) reflect.Type {
	for rType != nil && rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	return rType
}
