package inspector

import (
	"container/list"
	"reflect"
	"strconv"

	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/member"
	"github.com/viant/inspector/script"
	"github.com/viant/inspector/variant"
	"github.com/viant/inspector/visitor"
)

const (
	nullType   = "null"
	nullText   = "NULL"
	emptyText  = "[Empty]"
	cyclicText = "[Cyclic]:"
	objLabel   = "Obj"
)

// Builder builds an inspected tree of a live object graph
type Builder struct {
	Members   *member.Registry
	Converter *coerce.Converter
	//ShowScriptProperties lists script object properties
	ShowScriptProperties bool
	//ShowScriptEnumName resolves script enum labels through the native enum registry
	ShowScriptEnumName bool
}

// Build builds a node for value, it returns nil when value type is hidden
func (b *Builder) Build(value interface{}, label string, visited *Visited, origin *member.Origin) *Node {
	if boxed, ok := value.(variant.Variant); ok {
		return b.variant(boxed, label, visited, origin)
	}
	if member.IsNil(value) {
		return b.null(label)
	}
	if b.isHidden(value) {
		return nil
	}
	node := &Node{Label: label, TypeName: typeName(value), Value: value}
	node.Class = member.Classify(value, b.Members.Enums, origin)
	switch node.Class {
	case member.Handle:
		node.Text = handleText(value.(variant.Handle))
		return node
	case member.Enum, member.Flags:
		node.Text = b.enumText(value, origin)
		return node
	case member.Bool, member.Number, member.Text:
		node.Text = b.Converter.WithTimeLayout(origin.Layout()).Format(value)
		return node
	}
	if !visited.Visit(value) {
		return b.cyclic(node)
	}
	if rValue := reflect.ValueOf(value); rValue.Kind() == reflect.Ptr && rValue.Elem().Kind() != reflect.Struct && node.Class == member.Composite {
		return b.pointer(rValue, label, visited, origin)
	}
	switch node.Class {
	case member.Collection:
		node.Text = sizeText(value)
		b.elements(node, value, visited, origin.Element(false))
	case member.Dictionary:
		node.Text = sizeText(value)
		b.dictionary(node, value, visited, origin.Element(false))
	default:
		b.composite(node, value, visited, origin)
	}
	return node
}

// pointer renders a pointer to non struct value as its target
func (b *Builder) pointer(rValue reflect.Value, label string, visited *Visited, origin *member.Origin) *Node {
	node := b.Build(rValue.Elem().Interface(), label, visited, origin)
	if node != nil {
		node.TypeName = rValue.Type().String()
		node.Value = rValue.Interface()
	}
	return node
}

func (b *Builder) null(label string) *Node {
	return &Node{Label: label, TypeName: nullType, Text: nullText, Class: member.Null}
}

func (b *Builder) cyclic(node *Node) *Node {
	node.Cyclic = true
	node.Text = cyclicText + describe(node.Value)
	return node
}

func (b *Builder) isHidden(value interface{}) bool {
	if object, ok := value.(script.Object); ok && script.IsHidden(object) {
		return true
	}
	if scripted, ok := value.(Scripted); ok {
		if object := scripted.Script(); !member.IsNil(object) && script.IsHidden(object) {
			return true
		}
	}
	return b.Members.IsHidden(value)
}

func (b *Builder) variant(boxed variant.Variant, label string, visited *Visited, origin *member.Origin) *Node {
	node := &Node{Label: label, TypeName: "Variant(" + boxed.Kind().String() + ")", Value: boxed, Class: member.Variant}
	payload := boxed.Unwrap()
	switch boxed.Kind() {
	case variant.KindNull:
		node.Text = "null"
	case variant.KindInt:
		if origin != nil && origin.EnumName != "" {
			node.TypeName += "\nEnum(" + origin.EnumName + ")"
		}
		node.Text = b.enumText(payload, origin)
	case variant.KindHandle:
		node.Text = handleText(payload.(variant.Handle))
	case variant.KindComposite:
		b.variantComposite(node, payload, visited, origin)
	default:
		if node.Text = boxed.String(); node.Text == "" {
			node.Text = emptyText
		}
	}
	return node
}

func (b *Builder) variantComposite(node *Node, payload interface{}, visited *Visited, origin *member.Origin) {
	if object, ok := payload.(script.Object); ok {
		className := object.ClassName()
		if origin != nil && origin.ClassName != "" {
			className = origin.ClassName
		}
		node.TypeName += "\nScript:" + className
	}
	switch class := member.Classify(payload, b.Members.Enums, nil); class {
	case member.Collection, member.Dictionary:
		if !visited.Visit(payload) {
			node.Cyclic, node.Text = true, cyclicText+sizeText(payload)
			return
		}
		if class == member.Dictionary {
			b.dictionary(node, payload, visited, origin.Element(false))
			return
		}
		b.elements(node, payload, visited, origin.Element(false))
		return
	}
	if visited.Has(payload) {
		node.Cyclic, node.Text = true, cyclicText+describe(payload)
		return
	}
	node.Text = describe(payload)
	node.Add(b.Build(payload, objLabel, visited, nil))
}

// enumText renders "<label>(<int>)", origin table takes precedence over the native registry
func (b *Builder) enumText(value interface{}, origin *member.Origin) string {
	rValue := reflect.ValueOf(value)
	var number int64
	switch rValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		number = rValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		number = int64(rValue.Uint())
	default:
		return b.Converter.Format(value)
	}
	if origin.HasTable() {
		if origin.Flags {
			return origin.Table.FormatFlags(number)
		}
		return origin.Table.Format(number)
	}
	if definition, ok := b.Members.Enums.Lookup(rValue.Type()); ok {
		if definition.Flags {
			return definition.Table.FormatFlags(number)
		}
		return definition.Table.Format(number)
	}
	return strconv.FormatInt(number, 10)
}

func (b *Builder) elements(node *Node, value interface{}, visited *Visited, origin *member.Origin) {
	if rValue := reflect.Indirect(reflect.ValueOf(value)); rValue.IsValid() && member.IsGrid(rValue.Type()) {
		b.grid(node, rValue, visited, origin)
		return
	}
	items, err := elementsVisitor(value)
	if err != nil {
		return
	}
	_ = items(func(index int, item interface{}) (bool, error) {
		node.Add(b.Build(item, "["+strconv.Itoa(index)+"]", visited, origin))
		return true, nil
	})
}

// grid flattens array of arrays into [row,column] cells
func (b *Builder) grid(node *Node, rValue reflect.Value, visited *Visited, origin *member.Origin) {
	for i := 0; i < rValue.Len(); i++ {
		row := rValue.Index(i)
		for j := 0; j < row.Len(); j++ {
			label := "[" + strconv.Itoa(i) + "," + strconv.Itoa(j) + "]"
			node.Add(b.Build(row.Index(j).Interface(), label, visited, origin))
		}
	}
}

func elementsVisitor(value interface{}) (visitor.Visitor[int, any], error) {
	switch actual := value.(type) {
	case member.Enumerable:
		return actual.Enumerate(), nil
	case *list.List:
		return visitor.ListVisitorOf(actual), nil
	}
	return visitor.SliceVisitorOf(value)
}

func (b *Builder) dictionary(node *Node, value interface{}, visited *Visited, origin *member.Origin) {
	entries, err := visitor.MapVisitorOf(value, b.Converter.Format)
	if err != nil {
		return
	}
	mapType := reflect.TypeOf(value)
	if mapType.Kind() == reflect.Ptr {
		mapType = mapType.Elem()
	}
	isSet := member.IsSet(mapType)
	_ = entries(func(index int, entry visitor.Entry) (bool, error) {
		if isSet {
			node.Add(b.Build(entry.Key, "["+strconv.Itoa(index)+"]", visited, origin))
			return true, nil
		}
		node.Add(b.Build(entry.Value, "["+entry.Text+"]", visited, origin))
		return true, nil
	})
}

// composite lists script properties, then native properties, fields and statics
func (b *Builder) composite(node *Node, value interface{}, visited *Visited, origin *member.Origin) {
	node.Text = describe(value)
	if object, ok := value.(script.Object); ok {
		node.TypeName = object.ClassName()
		b.scriptProperties(node, object, visited)
		return
	}
	if scripted, ok := value.(Scripted); ok && b.ShowScriptProperties {
		if object := scripted.Script(); !member.IsNil(object) {
			b.scriptProperties(node, object, visited)
		}
	}
	rValue := reflect.ValueOf(value)
	aType := b.Members.TypeOf(rValue.Type())
	receiver, ok := aType.Receiver(rValue)
	if !ok {
		return
	}
	for _, property := range aType.Properties {
		propertyValue, err := property.Get(receiver)
		if err != nil {
			continue
		}
		node.Add(b.Build(propertyValue, property.Name, visited, nil))
	}
	if aType.Type.Kind() == reflect.Struct {
		structPtr := member.Pointer(receiver)
		for _, field := range aType.Fields {
			node.Add(b.Build(field.Value(structPtr), field.Name, visited, &member.Origin{TimeLayout: field.TimeLayout}))
		}
	}
	for _, static := range aType.Statics {
		node.Add(b.Build(static.Value(), static.Name, visited, nil))
	}
}

func (b *Builder) scriptProperties(node *Node, object script.Object, visited *Visited) {
	if !b.ShowScriptProperties {
		return
	}
	for _, property := range object.Properties() {
		property := property
		if !property.IsVariable() {
			continue
		}
		value, err := object.Get(property.Name)
		if err != nil {
			continue
		}
		node.Add(b.Build(value, property.Name, visited, script.Origin(&property, b.Members.Enums, b.ShowScriptEnumName)))
	}
}

func handleText(handle variant.Handle) string {
	if member.IsNil(handle) || variant.IsEmptyHandle(handle) {
		return emptyText
	}
	return handle.HandleText()
}

func sizeText(value interface{}) string {
	switch actual := value.(type) {
	case *list.List:
		return "len=" + strconv.Itoa(actual.Len())
	case member.Enumerable:
		return ""
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		rValue = rValue.Elem()
	}
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "len=" + strconv.Itoa(rValue.Len())
	}
	return ""
}
