package coerce

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/variant"
)

// Format renders value in the textual form accepted back by To
func (c *Converter) Format(value interface{}) string {
	switch actual := value.(type) {
	case nil:
		return ""
	case string:
		return actual
	case time.Time:
		return actual.Format(c.options.TimeLayout)
	case *time.Time:
		if actual == nil {
			return ""
		}
		return actual.Format(c.options.TimeLayout)
	case variant.Variant:
		return actual.String()
	case variant.Handle:
		if member.IsNil(actual) {
			return ""
		}
		return actual.HandleText()
	case []byte:
		return string(actual)
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rValue.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rValue.Float(), 'g', -1, rValue.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rValue.Complex(), 'g', -1, rValue.Type().Bits())
	case reflect.String:
		return rValue.String()
	case reflect.Ptr:
		if rValue.IsNil() {
			return "null"
		}
		if stringer, ok := value.(fmt.Stringer); ok {
			return stringer.String()
		}
		if rValue.Elem().Kind() != reflect.Struct {
			return c.Format(rValue.Elem().Interface())
		}
	}
	if stringer, ok := value.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", value)
}
