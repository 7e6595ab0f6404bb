package coerce

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/inspector/variant"
)

type level uint8

type title string

func TestConverter_RoundTrip(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	var testCases = []struct {
		description string
		value       interface{}
	}{
		{description: "int", value: -42},
		{description: "int8 min", value: int8(math.MinInt8)},
		{description: "uint64 max", value: uint64(math.MaxUint64)},
		{description: "named uint8", value: level(7)},
		{description: "float64", value: 0.1 + 0.2},
		{description: "float64 tiny", value: 1e-300},
		{description: "float32", value: float32(3.1415927)},
		{description: "bool", value: true},
		{description: "string", value: "hello world"},
		{description: "named string", value: title("boss")},
		{description: "complex", value: complex(1.5, -2)},
		{description: "time", value: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
	}
	for _, testCase := range testCases {
		text := converter.Format(testCase.value)
		actual, err := converter.To(text, reflect.TypeOf(testCase.value))
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.value, actual.Interface(), testCase.description)
	}
}

func TestConverter_To(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	var testCases = []struct {
		description string
		src         interface{}
		destType    reflect.Type
		expect      interface{}
		hasError    bool
	}{
		{description: "int overflow", src: "300", destType: reflect.TypeOf(int8(0)), hasError: true},
		{description: "negative to uint", src: "-1", destType: reflect.TypeOf(uint(0)), hasError: true},
		{description: "not a number", src: "abc", destType: reflect.TypeOf(0), hasError: true},
		{description: "integral float text to int", src: "10.0", destType: reflect.TypeOf(0), expect: 10},
		{description: "fractional float to int", src: 2.5, destType: reflect.TypeOf(0), hasError: true},
		{description: "hex int", src: "0x10", destType: reflect.TypeOf(0), expect: 16},
		{description: "numeric bool", src: "1", destType: reflect.TypeOf(false), expect: true},
		{description: "float32 overflow", src: "1e300", destType: reflect.TypeOf(float32(0)), hasError: true},
		{description: "int to float", src: 3, destType: reflect.TypeOf(0.0), expect: 3.0},
		{description: "string to bytes", src: "abc", destType: reflect.TypeOf([]byte{}), expect: []byte("abc")},
		{description: "variant from token", src: "12", destType: reflect.TypeOf(variant.Variant{}), expect: variant.FromInt(12)},
		{description: "variant unwrap", src: variant.FromInt(5), destType: reflect.TypeOf(int16(0)), expect: int16(5)},
		{description: "pointer", src: "5", destType: reflect.TypeOf((*int)(nil)), expect: intPtr(5)},
		{description: "nil pointer", src: "null", destType: reflect.TypeOf((*int)(nil)), expect: (*int)(nil)},
		{description: "unsupported", src: "x", destType: reflect.TypeOf(struct{}{}), hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := converter.To(testCase.src, testCase.destType)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Interface(), testCase.description)
	}
}

func TestConverter_Handles(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	name, err := converter.To("Player", reflect.TypeOf(&variant.Name{}))
	assert.Nil(t, err)
	assert.Equal(t, "Player", converter.Format(name.Interface()))

	path, err := converter.To("/root/World", reflect.TypeOf(&variant.Path{}))
	assert.Nil(t, err)
	assert.True(t, path.Interface().(*variant.Path).IsAbsolute())

	var nilName *variant.Name
	assert.Equal(t, "", converter.Format(nilName))
}

func TestConverter_Convert(t *testing.T) {
	converter := NewConverter(Options{TimeLayout: "2006-01-02"})
	var ts time.Time
	assert.Nil(t, converter.Convert("2024-02-03", &ts))
	assert.Equal(t, "2024-02-03", converter.Format(ts))

	var count int
	assert.NotNil(t, converter.Convert("x", count))

	converter.RegisterConversion(reflect.TypeOf(""), reflect.TypeOf(0), func(src interface{}, destType reflect.Type, opts Options) (reflect.Value, error) {
		return reflect.ValueOf(len(src.(string))), nil
	})
	assert.Nil(t, converter.Convert("four", &count))
	assert.Equal(t, 4, count)
}

func intPtr(i int) *int {
	return &i
}
