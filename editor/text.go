package editor

import "github.com/viant/inspector/coerce"

// Text represents text editor, also used for name, path and time values
type Text struct {
	base
}

// NewText creates text editor
func NewText(converter *coerce.Converter) *Text {
	return &Text{base: base{converter: converter}}
}
