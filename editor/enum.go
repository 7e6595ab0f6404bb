package editor

import (
	"fmt"
	"reflect"

	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/enum"
	"github.com/viant/inspector/member"
)

var int64Type = reflect.TypeOf(int64(0))

// Enum represents a single choice editor backed by a label table
type Enum struct {
	base
	table  *enum.Table
	native *enum.Table
}

// Labels returns selectable labels in declaration order
func (e *Enum) Labels() []string {
	return e.table.Labels()
}

// Table returns label table
func (e *Enum) Table() *enum.Table {
	return e.table
}

// Int returns current value as integer
func (e *Enum) Int() int64 {
	return toInt64(e.converter, e.value)
}

// Selected returns label of current value
func (e *Enum) Selected() (string, bool) {
	return e.table.Label(e.Int())
}

// Select selects supplied label
func (e *Enum) Select(label string) error {
	value, ok := e.table.Value(label)
	if !ok {
		return e.fail(fmt.Errorf("unknown %v label: %v", e.name, label))
	}
	return e.SetValue(value)
}

func (e *Enum) Text() string {
	if e.value == nil {
		return ""
	}
	return e.table.Format(e.Int())
}

func (e *Enum) Submit(text string) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	value, ok := e.table.Parse(text)
	if !ok {
		if value, ok = e.native.Parse(text); !ok {
			return e.fail(fmt.Errorf("invalid %v value: %v", e.name, text))
		}
	}
	return e.SetValue(value)
}

// Flags represents a bit-set editor backed by a label table, toggles are staged until Commit
type Flags struct {
	base
	table  *enum.Table
	staged int64
}

// Labels returns bit labels in declaration order
func (e *Flags) Labels() []string {
	return e.table.Labels()
}

// Int returns committed value as integer
func (e *Flags) Int() int64 {
	return toInt64(e.converter, e.value)
}

// Staged returns pending value
func (e *Flags) Staged() int64 {
	return e.staged
}

// IsSet returns true if label bit is set in the pending value
func (e *Flags) IsSet(label string) bool {
	bit, ok := e.table.Value(label)
	return ok && bit != 0 && e.staged&bit == bit
}

// Toggle sets or clears label bit in the pending value
func (e *Flags) Toggle(label string, on bool) error {
	bit, ok := e.table.Value(label)
	if !ok {
		return e.fail(fmt.Errorf("unknown %v flag: %v", e.name, label))
	}
	if on {
		e.staged |= bit
	} else {
		e.staged &^= bit
	}
	return nil
}

// Commit applies pending value
func (e *Flags) Commit() error {
	return e.SetValue(e.staged)
}

func (e *Flags) SetMemberInfo(name string, rType reflect.Type, value interface{}, class member.Class) {
	e.base.SetMemberInfo(name, rType, value, class)
	e.staged = e.Int()
}

func (e *Flags) SetValue(value interface{}) error {
	if err := e.base.SetValue(value); err != nil {
		e.staged = e.Int()
		return err
	}
	e.staged = e.Int()
	return nil
}

func (e *Flags) Text() string {
	if e.value == nil {
		return ""
	}
	return e.table.FormatFlags(e.Int())
}

func (e *Flags) Submit(text string) error {
	if err := e.ensureEditable(); err != nil {
		return err
	}
	value, ok := e.table.ParseFlags(text)
	if !ok {
		return e.fail(fmt.Errorf("invalid %v flags: %v", e.name, text))
	}
	return e.SetValue(value)
}

func toInt64(converter *coerce.Converter, value interface{}) int64 {
	if value == nil {
		return 0
	}
	ret, err := converter.To(value, int64Type)
	if err != nil {
		return 0
	}
	return ret.Int()
}

// NewEnum creates enum editor, native table is used as parse fallback
func NewEnum(converter *coerce.Converter, table, native *enum.Table) *Enum {
	return &Enum{base: base{converter: converter}, table: table, native: native}
}

// NewFlags creates flags editor
func NewFlags(converter *coerce.Converter, table *enum.Table) *Flags {
	return &Flags{base: base{converter: converter}, table: table}
}
