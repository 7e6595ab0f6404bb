package coerce

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/variant"
)

// Options contains configuration for the converter
type Options struct {
	// TimeLayout specifies the layout for time parsing and formatting
	TimeLayout string
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{TimeLayout: member.DefaultTimeLayout}
}

// ConversionFunc defines a custom conversion function
type ConversionFunc func(src interface{}, destType reflect.Type, opts Options) (reflect.Value, error)

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

// Converter provides type directed conversion
type Converter struct {
	options       Options
	customConvMap sync.Map // map[typeKey]ConversionFunc
}

var (
	timeType    = reflect.TypeOf(time.Time{})
	variantType = reflect.TypeOf(variant.Variant{})
	nameType    = reflect.TypeOf(&variant.Name{})
	pathType    = reflect.TypeOf(&variant.Path{})
	handleType  = reflect.TypeOf((*variant.Handle)(nil)).Elem()
)

// NewConverter creates a converter with the provided options
func NewConverter(options Options) *Converter {
	if options.TimeLayout == "" {
		options.TimeLayout = member.DefaultTimeLayout
	}
	return &Converter{options: options}
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// WithTimeLayout returns converter sharing custom conversions with a different time layout
func (c *Converter) WithTimeLayout(layout string) *Converter {
	if layout == "" || layout == c.options.TimeLayout {
		return c
	}
	ret := &Converter{options: c.options}
	ret.options.TimeLayout = layout
	c.customConvMap.Range(func(key, value any) bool {
		ret.customConvMap.Store(key, value)
		return true
	})
	return ret
}

// Convert converts the source value into destination pointer
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr || destValue.IsNil() {
		return errors.New("destination must be a non nil pointer")
	}
	value, err := c.To(src, destValue.Elem().Type())
	if err != nil {
		return err
	}
	destValue.Elem().Set(value)
	return nil
}

// To converts source value to a value of destination type
func (c *Converter) To(src interface{}, destType reflect.Type) (reflect.Value, error) {
	if src == nil {
		return reflect.Zero(destType), nil
	}
	srcValue := reflect.ValueOf(src)
	srcType := srcValue.Type()
	if v, ok := c.customConvMap.Load(typeKey{srcType, destType}); ok {
		return v.(ConversionFunc)(src, destType, c.options)
	}
	if srcType.AssignableTo(destType) {
		ret := reflect.New(destType).Elem()
		ret.Set(srcValue)
		return ret, nil
	}
	switch destType {
	case variantType:
		return c.toVariant(srcValue)
	case timeType:
		return c.toTime(srcValue)
	case nameType, handleType:
		return reflect.ValueOf(variant.NewName(c.text(srcValue))), nil
	case pathType:
		return reflect.ValueOf(variant.NewPath(c.text(srcValue))), nil
	}
	if srcType == variantType {
		return c.To(src.(variant.Variant).Unwrap(), destType)
	}
	ret := reflect.New(destType).Elem()
	var err error
	switch destType.Kind() {
	case reflect.String:
		err = c.convertToString(ret, srcValue)
	case reflect.Bool:
		err = c.convertToBool(ret, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		err = c.convertToInt(ret, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		err = c.convertToUint(ret, srcValue)
	case reflect.Float32, reflect.Float64:
		err = c.convertToFloat(ret, srcValue)
	case reflect.Complex64, reflect.Complex128:
		err = c.convertToComplex(ret, srcValue)
	case reflect.Ptr:
		return c.convertToPointer(destType, srcValue)
	case reflect.Slice:
		if destType.Elem().Kind() == reflect.Uint8 && srcValue.Kind() == reflect.String {
			ret.SetBytes([]byte(srcValue.String()))
			return ret, nil
		}
		fallthrough
	default:
		if srcType.ConvertibleTo(destType) {
			return srcValue.Convert(destType), nil
		}
		err = fmt.Errorf("unsupported conversion: %v to %v", srcType, destType)
	}
	if err != nil {
		return reflect.Value{}, err
	}
	return ret, nil
}

func (c *Converter) text(srcValue reflect.Value) string {
	if srcValue.Kind() == reflect.String {
		return srcValue.String()
	}
	return c.Format(srcValue.Interface())
}

func (c *Converter) toVariant(srcValue reflect.Value) (reflect.Value, error) {
	if srcValue.Kind() == reflect.String && srcValue.Type() == reflect.TypeOf("") {
		return reflect.ValueOf(variant.Parse(srcValue.String())), nil
	}
	return reflect.ValueOf(variant.Of(srcValue.Interface())), nil
}

func (c *Converter) convertToPointer(destType reflect.Type, srcValue reflect.Value) (reflect.Value, error) {
	if srcValue.Kind() == reflect.String && (srcValue.String() == "" || srcValue.String() == "null") {
		return reflect.Zero(destType), nil
	}
	elem, err := c.To(srcValue.Interface(), destType.Elem())
	if err != nil {
		return reflect.Value{}, err
	}
	ret := reflect.New(destType.Elem())
	ret.Elem().Set(elem)
	return ret, nil
}

func (c *Converter) convertToString(destValue, srcValue reflect.Value) error {
	switch srcValue.Kind() {
	case reflect.String:
		destValue.SetString(srcValue.String())
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("cannot convert %v to string", srcValue.Type())
		}
		destValue.SetString(string(srcValue.Bytes()))
	default:
		destValue.SetString(c.Format(srcValue.Interface()))
	}
	return nil
}

func (c *Converter) convertToBool(destValue, srcValue reflect.Value) error {
	var result bool
	switch srcValue.Kind() {
	case reflect.Bool:
		result = srcValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float() != 0
	case reflect.String:
		var err error
		text := strings.TrimSpace(srcValue.String())
		if result, err = strconv.ParseBool(text); err != nil {
			if f, fErr := strconv.ParseFloat(text, 64); fErr == nil {
				result = f != 0
				break
			}
			return fmt.Errorf("cannot convert %q to bool: %w", srcValue.String(), err)
		}
	default:
		return fmt.Errorf("cannot convert %v to bool", srcValue.Type())
	}
	destValue.SetBool(result)
	return nil
}

func (c *Converter) convertToInt(destValue, srcValue reflect.Value) error {
	var result int64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := srcValue.Uint()
		if v > 1<<63-1 {
			return fmt.Errorf("value %d overflows %v", v, destValue.Type())
		}
		result = int64(v)
	case reflect.Float32, reflect.Float64:
		f := srcValue.Float()
		if f != float64(int64(f)) {
			return fmt.Errorf("cannot convert %v to %v without loss", f, destValue.Type())
		}
		result = int64(f)
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		text := strings.TrimSpace(srcValue.String())
		var err error
		if result, err = strconv.ParseInt(text, 0, 64); err != nil {
			f, fErr := strconv.ParseFloat(text, 64)
			if fErr != nil || f != float64(int64(f)) {
				return fmt.Errorf("cannot convert %q to %v: %w", srcValue.String(), destValue.Type(), err)
			}
			result = int64(f)
		}
	default:
		return fmt.Errorf("cannot convert %v to %v", srcValue.Type(), destValue.Type())
	}
	if destValue.OverflowInt(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Type())
	}
	destValue.SetInt(result)
	return nil
}

func (c *Converter) convertToUint(destValue, srcValue reflect.Value) error {
	var result uint64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %d to %v", v, destValue.Type())
		}
		result = uint64(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		result = srcValue.Uint()
	case reflect.Float32, reflect.Float64:
		v := srcValue.Float()
		if v < 0 || v != float64(uint64(v)) {
			return fmt.Errorf("cannot convert %v to %v without loss", v, destValue.Type())
		}
		result = uint64(v)
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		text := strings.TrimSpace(srcValue.String())
		var err error
		if result, err = strconv.ParseUint(text, 0, 64); err != nil {
			return fmt.Errorf("cannot convert %q to %v: %w", srcValue.String(), destValue.Type(), err)
		}
	default:
		return fmt.Errorf("cannot convert %v to %v", srcValue.Type(), destValue.Type())
	}
	if destValue.OverflowUint(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Type())
	}
	destValue.SetUint(result)
	return nil
}

func (c *Converter) convertToFloat(destValue, srcValue reflect.Value) error {
	var result float64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = float64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float()
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if result, err = strconv.ParseFloat(strings.TrimSpace(srcValue.String()), destValue.Type().Bits()); err != nil {
			return fmt.Errorf("cannot convert %q to %v: %w", srcValue.String(), destValue.Type(), err)
		}
	default:
		return fmt.Errorf("cannot convert %v to %v", srcValue.Type(), destValue.Type())
	}
	if destValue.OverflowFloat(result) {
		return fmt.Errorf("value %v overflows %v", result, destValue.Type())
	}
	destValue.SetFloat(result)
	return nil
}

func (c *Converter) convertToComplex(destValue, srcValue reflect.Value) error {
	var result complex128
	switch srcValue.Kind() {
	case reflect.Complex64, reflect.Complex128:
		result = srcValue.Complex()
	case reflect.String:
		var err error
		if result, err = strconv.ParseComplex(strings.TrimSpace(srcValue.String()), destValue.Type().Bits()); err != nil {
			return fmt.Errorf("cannot convert %q to %v: %w", srcValue.String(), destValue.Type(), err)
		}
	default:
		return fmt.Errorf("cannot convert %v to %v", srcValue.Type(), destValue.Type())
	}
	destValue.SetComplex(result)
	return nil
}

func (c *Converter) toTime(srcValue reflect.Value) (reflect.Value, error) {
	var t time.Time
	switch srcValue.Kind() {
	case reflect.String:
		text := strings.TrimSpace(srcValue.String())
		var err error
		if t, err = time.Parse(c.options.TimeLayout, text); err != nil {
			formats := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
			for _, format := range formats {
				if t, err = time.Parse(format, text); err == nil {
					break
				}
			}
			if err != nil {
				return reflect.Value{}, fmt.Errorf("cannot parse time string '%s': %w", text, err)
			}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		t = time.Unix(srcValue.Int(), 0)
	case reflect.Struct:
		if srcValue.Type() != timeType {
			return reflect.Value{}, fmt.Errorf("cannot convert struct %v to time.Time", srcValue.Type())
		}
		t = srcValue.Interface().(time.Time)
	default:
		return reflect.Value{}, fmt.Errorf("cannot convert %v to time.Time", srcValue.Type())
	}
	return reflect.ValueOf(t), nil
}
