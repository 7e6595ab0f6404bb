package editor

import (
	"github.com/viant/inspector/coerce"
)

// Composite represents collection, dictionary and object editor, it only requests a nested panel
type Composite struct {
	base
	expanders []func(value interface{})
}

// OnExpand registers nested panel request listener
func (e *Composite) OnExpand(listener func(value interface{})) {
	e.expanders = append(e.expanders, listener)
}

// Expand requests a nested panel for current value, nil values are not expanded
func (e *Composite) Expand() bool {
	if e.value == nil || len(e.expanders) == 0 {
		return false
	}
	for _, expander := range e.expanders {
		expander(e.value)
	}
	return true
}

// Submit requests expansion, text is not interpreted
func (e *Composite) Submit(string) error {
	e.Expand()
	return nil
}

// NewCollection creates collection or dictionary editor
func NewCollection(converter *coerce.Converter) *Composite {
	return &Composite{base: base{converter: converter}}
}

// NewObject creates object editor
func NewObject(converter *coerce.Converter) *Composite {
	return &Composite{base: base{converter: converter}}
}
