package provider

import (
	"github.com/viant/inspector/editor"
	"github.com/viant/inspector/member"
	"github.com/viant/inspector/variant"
)

// Binding binds a member to its editor
type Binding struct {
	*member.Descriptor
	Value interface{}
	//Target is the value opened by drill down, an element pointer when the element is addressable
	Target interface{}
	Editor editor.Editor
	Method *editor.Method
}

// Text returns rendered value
func (b *Binding) Text() string {
	if b.Method != nil {
		return b.Method.Signature
	}
	return b.Editor.Text()
}

// IsExpandable returns true if binding value can be opened in a nested panel
func (b *Binding) IsExpandable() bool {
	if b.Method != nil {
		return false
	}
	target := b.Target
	if boxed, ok := target.(variant.Variant); ok {
		target = boxed.Unwrap()
	}
	if member.IsNil(target) {
		return false
	}
	switch member.Classify(target, nil, nil) {
	case member.Collection, member.Dictionary, member.Composite:
		return true
	}
	return false
}

// DrillTarget returns the value opened by drill down
func (b *Binding) DrillTarget() interface{} {
	if boxed, ok := b.Target.(variant.Variant); ok {
		return boxed.Unwrap()
	}
	return b.Target
}
