package inspector

import (
	"fmt"
	"reflect"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/script"
)

type (
	// SceneNode represents a host scene graph node, children should not be exposed as inspected members
	SceneNode interface {
		Name() string
		Children() []SceneNode
	}

	// Scripted is implemented by values with an attached script object
	Scripted interface {
		Script() script.Object
	}
)

// SelfLabel labels the members node of a scene node
const SelfLabel = "self"

// BuildScene builds scene hierarchy, each scene node gets a self child holding its members
func (b *Builder) BuildScene(root SceneNode) *Node {
	if member.IsNil(root) {
		return b.null(SelfLabel)
	}
	node := &Node{Label: root.Name(), TypeName: b.sceneType(root), Text: describe(root), Value: root, Class: member.Composite}
	node.Add(b.Build(root, SelfLabel, NewVisited(), nil))
	for _, child := range root.Children() {
		if member.IsNil(child) || b.isHidden(child) {
			continue
		}
		node.Add(b.BuildScene(child))
	}
	return node
}

func (b *Builder) sceneType(node SceneNode) string {
	if b.ShowScriptProperties {
		if scripted, ok := node.(Scripted); ok {
			if object := scripted.Script(); !member.IsNil(object) {
				return object.ClassName()
			}
		}
	}
	return typeName(node)
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

// describe returns value string form used by composite nodes
func describe(value interface{}) string {
	switch actual := value.(type) {
	case fmt.Stringer:
		if member.IsNil(value) {
			return "null"
		}
		return actual.String()
	case script.Object:
		return actual.ClassName()
	case SceneNode:
		return actual.Name() + ":<" + typeName(value) + ">"
	}
	return "<" + typeName(value) + ">"
}
