package variant

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Kind represents a variant kind
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindHandle
	KindComposite
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindText:
		return "String"
	case KindHandle:
		return "Handle"
	case KindComposite:
		return "Object"
	}
	return "Nil"
}

// Variant represents a type-erased value box
type Variant struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	ref  interface{}
}

// Of boxes supplied value, named integer and float types keep their original value as ref
func Of(value interface{}) Variant {
	switch actual := value.(type) {
	case nil:
		return Variant{}
	case Variant:
		return actual
	case *Variant:
		if actual == nil {
			return Variant{}
		}
		return *actual
	case bool:
		return FromBool(actual)
	case int:
		return FromInt(int64(actual))
	case int8:
		return FromInt(int64(actual))
	case int16:
		return FromInt(int64(actual))
	case int32:
		return FromInt(int64(actual))
	case int64:
		return FromInt(actual)
	case uint:
		return FromInt(int64(actual))
	case uint8:
		return FromInt(int64(actual))
	case uint16:
		return FromInt(int64(actual))
	case uint32:
		return FromInt(int64(actual))
	case uint64:
		return FromInt(int64(actual))
	case float32:
		return FromFloat(float64(actual))
	case float64:
		return FromFloat(actual)
	case string:
		return FromText(actual)
	case Handle:
		return FromHandle(actual)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if rValue.IsNil() {
			return Variant{}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Variant{kind: KindInt, i: rValue.Int(), ref: value}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Variant{kind: KindInt, i: int64(rValue.Uint()), ref: value}
	case reflect.Float32, reflect.Float64:
		return Variant{kind: KindFloat, f: rValue.Float(), ref: value}
	case reflect.Bool:
		return Variant{kind: KindBool, b: rValue.Bool(), ref: value}
	case reflect.String:
		return Variant{kind: KindText, s: rValue.String(), ref: value}
	}
	return FromRef(value)
}

// FromBool creates bool variant
func FromBool(b bool) Variant {
	return Variant{kind: KindBool, b: b}
}

// FromInt creates int variant
func FromInt(i int64) Variant {
	return Variant{kind: KindInt, i: i}
}

// FromFloat creates float variant
func FromFloat(f float64) Variant {
	return Variant{kind: KindFloat, f: f}
}

// FromText creates text variant
func FromText(s string) Variant {
	return Variant{kind: KindText, s: s}
}

// FromHandle creates handle variant
func FromHandle(h Handle) Variant {
	if h == nil {
		return Variant{}
	}
	return Variant{kind: KindHandle, ref: h}
}

// FromRef creates composite variant
func FromRef(ref interface{}) Variant {
	if ref == nil {
		return Variant{}
	}
	return Variant{kind: KindComposite, ref: ref}
}

// Kind returns variant kind
func (v Variant) Kind() Kind {
	return v.kind
}

// IsNull returns true if variant holds nothing
func (v Variant) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns bool payload
func (v Variant) Bool() bool {
	return v.b
}

// Int returns int payload
func (v Variant) Int() int64 {
	return v.i
}

// Float returns float payload
func (v Variant) Float() float64 {
	return v.f
}

// Text returns text payload
func (v Variant) Text() string {
	return v.s
}

// Ref returns composite or handle payload
func (v Variant) Ref() interface{} {
	return v.ref
}

// Unwrap returns the boxed value, the original typed value is returned when known
func (v Variant) Unwrap() interface{} {
	switch v.kind {
	case KindBool:
		if v.ref != nil {
			return v.ref
		}
		return v.b
	case KindInt:
		if v.ref != nil {
			return v.ref
		}
		return v.i
	case KindFloat:
		if v.ref != nil {
			return v.ref
		}
		return v.f
	case KindText:
		if v.ref != nil {
			return v.ref
		}
		return v.s
	case KindHandle, KindComposite:
		return v.ref
	}
	return nil
}

// Type returns unwrapped runtime type or nil for null variant
func (v Variant) Type() reflect.Type {
	value := v.Unwrap()
	if value == nil {
		return nil
	}
	return reflect.TypeOf(value)
}

// Equal returns true if both variants hold equal payload
func (v Variant) Equal(other Variant) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindText:
		return v.s == other.s
	}
	return sameRef(v.ref, other.ref)
}

func sameRef(a, b interface{}) bool {
	aType, bType := reflect.TypeOf(a), reflect.TypeOf(b)
	if aType != bType {
		return false
	}
	if aType != nil && aType.Comparable() {
		return a == b
	}
	aValue, bValue := reflect.ValueOf(a), reflect.ValueOf(b)
	switch aValue.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return aValue.Pointer() == bValue.Pointer()
	}
	return false
}

// String returns textual representation
func (v Variant) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	case KindHandle:
		return v.ref.(Handle).HandleText()
	}
	if stringer, ok := v.ref.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", v.ref)
}

// AsInt converts variant to int, text is parsed
func (v Variant) AsInt() (int64, error) {
	switch v.kind {
	case KindInt:
		return v.i, nil
	case KindFloat:
		return int64(v.f), nil
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindText:
		text := strings.TrimSpace(v.s)
		if i, err := strconv.ParseInt(text, 0, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int", v.s)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("cannot convert %v to int", v.kind)
}

// AsFloat converts variant to float, text is parsed
func (v Variant) AsFloat() (float64, error) {
	switch v.kind {
	case KindInt:
		return float64(v.i), nil
	case KindFloat:
		return v.f, nil
	case KindBool:
		if v.b {
			return 1, nil
		}
		return 0, nil
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float", v.s)
		}
		return f, nil
	}
	return 0, fmt.Errorf("cannot convert %v to float", v.kind)
}

// AsBool converts variant to bool, text is parsed
func (v Variant) AsBool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindInt:
		return v.i != 0, nil
	case KindFloat:
		return v.f != 0, nil
	case KindText:
		b, err := strconv.ParseBool(strings.TrimSpace(v.s))
		if err != nil {
			return false, fmt.Errorf("cannot convert %q to bool", v.s)
		}
		return b, nil
	}
	return false, fmt.Errorf("cannot convert %v to bool", v.kind)
}

// Parse creates a variant from a loosely typed token: int, float, bool, otherwise text
func Parse(token string) Variant {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return FromFloat(f)
	}
	if b, err := strconv.ParseBool(token); err == nil && (token == "true" || token == "false") {
		return FromBool(b)
	}
	return FromText(token)
}
