package member

import (
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/xunsafe"
)

var (
	stringType  = reflect.TypeOf("")
	intType     = reflect.TypeOf(0)
	int64Type   = reflect.TypeOf(int64(0))
	float64Type = reflect.TypeOf(float64(0))
	float32Type = reflect.TypeOf(float32(0))
	boolType    = reflect.TypeOf(false)
)

// Field represents an inspected struct field
type Field struct {
	Name       string
	GoName     string
	Type       reflect.Type
	Exported   bool
	ReadOnly   bool
	TimeLayout string
	xField     *xunsafe.Field
}

// Value returns field value, unexported fields included
func (f *Field) Value(structPtr unsafe.Pointer) interface{} {
	switch f.Type {
	case stringType:
		return f.xField.String(structPtr)
	case intType:
		return f.xField.Int(structPtr)
	case int64Type:
		return f.xField.Int64(structPtr)
	case float64Type:
		return f.xField.Float64(structPtr)
	case float32Type:
		return f.xField.Float32(structPtr)
	case boolType:
		return f.xField.Bool(structPtr)
	case timeType:
		return f.xField.Time(structPtr)
	}
	switch f.Type.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return f.xField.Value(structPtr)
	}
	return reflect.ValueOf(f.Addr(structPtr)).Elem().Interface()
}

// Addr returns field pointer, i.e. *T for a field of T type
func (f *Field) Addr(structPtr unsafe.Pointer) interface{} {
	return f.xField.Addr(structPtr)
}

// Set sets field value, value has to be assignable to the field type
func (f *Field) Set(structPtr unsafe.Pointer, value reflect.Value) {
	switch f.Type {
	case stringType:
		f.xField.SetString(structPtr, value.String())
		return
	case intType:
		f.xField.SetInt(structPtr, int(value.Int()))
		return
	case int64Type:
		f.xField.SetInt64(structPtr, value.Int())
		return
	case float64Type:
		f.xField.SetFloat64(structPtr, value.Float())
		return
	case float32Type:
		f.xField.SetFloat32(structPtr, float32(value.Float()))
		return
	case boolType:
		f.xField.SetBool(structPtr, value.Bool())
		return
	case timeType:
		f.xField.SetTime(structPtr, value.Interface().(time.Time))
		return
	}
	reflect.ValueOf(f.Addr(structPtr)).Elem().Set(value)
}

func newField(structField reflect.StructField) *Field {
	return &Field{
		Name:     structField.Name,
		GoName:   structField.Name,
		Type:     structField.Type,
		Exported: structField.IsExported(),
		xField:   xunsafe.NewField(structField),
	}
}

// Addressable returns pointer to a struct value, values are copied when not addressable
func Addressable(value reflect.Value) (reflect.Value, bool) {
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() || value.Elem().Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		return value, true
	case reflect.Struct:
		if value.CanAddr() {
			return value.Addr(), true
		}
		ptr := reflect.New(value.Type())
		ptr.Elem().Set(value)
		return ptr, true
	}
	return reflect.Value{}, false
}

// Pointer returns unsafe pointer of an addressable struct pointer value
func Pointer(structPtr reflect.Value) unsafe.Pointer {
	return unsafe.Pointer(structPtr.Pointer())
}
