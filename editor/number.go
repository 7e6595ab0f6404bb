package editor

import (
	"math"
	"reflect"

	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/member"
)

// minFloat is the lowest float accepted by the numeric input
const minFloat = -3.4028235e+14

// Number represents numeric editor with type appropriate range and step
type Number struct {
	base
	Min  float64
	Max  float64
	Step float64
}

// SetMemberInfo sets member info and computes range
func (e *Number) SetMemberInfo(name string, rType reflect.Type, value interface{}, class member.Class) {
	e.base.SetMemberInfo(name, rType, value, class)
	e.updateRange()
}

func (e *Number) SetValue(value interface{}) error {
	if err := e.base.SetValue(value); err != nil {
		return err
	}
	e.updateRange()
	return nil
}

func (e *Number) Submit(text string) error {
	return e.SetValue(text)
}

func (e *Number) updateRange() {
	if e.rType == nil {
		e.Min, e.Max, e.Step = minFloat, math.MaxFloat64, 1
		return
	}
	switch e.rType.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := e.rType.Bits()
		e.Min, e.Max, e.Step = -math.Pow(2, float64(bits-1)), math.Pow(2, float64(bits-1))-1, 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.Min, e.Max, e.Step = 0, math.Pow(2, float64(e.rType.Bits()))-1, 1
	case reflect.Float32:
		e.Min, e.Max, e.Step = minFloat, math.MaxFloat32, FloatStep(e.float())
	default:
		e.Min, e.Max, e.Step = minFloat, math.MaxFloat64, FloatStep(e.float())
	}
}

func (e *Number) float() float64 {
	if e.value == nil {
		return 0
	}
	rValue := reflect.ValueOf(e.value)
	switch rValue.Kind() {
	case reflect.Float32, reflect.Float64:
		return rValue.Float()
	}
	return 0
}

// FloatStep returns input step for float magnitude
func FloatStep(value float64) float64 {
	value = math.Abs(value)
	switch {
	case value < 1e-3:
		return 1e-6
	case value < 1e-1:
		return 1e-3
	case value < 10:
		return 0.1
	}
	return 1
}

// NewNumber creates numeric editor
func NewNumber(converter *coerce.Converter) *Number {
	return &Number{base: base{converter: converter}}
}
