package inspector

import (
	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/member"
)

// Option represents inspector option
type Option func(i *Inspector)

// Options represents inspector options
type Options []Option

// Apply applies options
func (o Options) Apply(i *Inspector) {
	for _, opt := range o {
		opt(i)
	}
}

// WithRegistry sets member registry
func WithRegistry(registry *member.Registry) Option {
	return func(i *Inspector) {
		i.builder.Members = registry
	}
}

// WithConverter sets value converter
func WithConverter(converter *coerce.Converter) Option {
	return func(i *Inspector) {
		i.builder.Converter = converter
	}
}

// WithScriptProperties shows script properties of script objects
func WithScriptProperties(enabled bool) Option {
	return func(i *Inspector) {
		i.builder.ShowScriptProperties = enabled
	}
}

// WithScriptEnumName resolves script enum labels through the native enum registry
func WithScriptEnumName(enabled bool) Option {
	return func(i *Inspector) {
		i.builder.ShowScriptEnumName = enabled
	}
}

// WithScene sets scene root
func WithScene(root SceneNode) Option {
	return func(i *Inspector) {
		i.scene = root
	}
}

// WithValue sets inspected value used when no scene is set
func WithValue(label string, value interface{}) Option {
	return func(i *Inspector) {
		i.label, i.value = label, value
	}
}
