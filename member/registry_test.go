package member

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

type plain struct {
	Name   string
	health int
	Secret string `inspect:"-"`
	armor  int    `inspect:"show"`
}

type extended struct {
	_      struct{} `inspect:"extended"`
	Name   string
	health int
	token  string `inspect:"hidden"`
}

type nonPublicOnly struct {
	_      struct{} `inspect:"extended,static=false"`
	health int
}

type hiddenWindow struct {
	_     struct{} `inspect:"hideInTree"`
	Title string
}

type player struct {
	speed float64
	level int
}

func (p *player) Speed() float64         { return p.speed }
func (p *player) SetSpeed(speed float64) { p.speed = speed }
func (p *player) Level() int             { return p.level }
func (p *player) Broken() (int, error)   { return 0, errors.New("broken") }
func (p *player) Jump(height float64)    {}

type overlay struct{ Visible bool }

func (o overlay) HideInTree() bool { return !o.Visible }

var maxPlayers = 4

func fieldNames(aType *Type) []string {
	var result []string
	for _, field := range aType.Fields {
		result = append(result, field.Name)
	}
	return result
}

func TestRegistry_TypeOf_Visibility(t *testing.T) {
	var testCases = []struct {
		description string
		rType       reflect.Type
		extend      *Extension
		expect      []string
	}{
		{description: "private not opted in never appears", rType: reflect.TypeOf(plain{}), expect: []string{"Name", "armor"}},
		{description: "type opted in shows private", rType: reflect.TypeOf(extended{}), expect: []string{"Name", "health"}},
		{description: "non public only", rType: reflect.TypeOf(&nonPublicOnly{}), expect: []string{"health"}},
		{description: "registry extension", rType: reflect.TypeOf(plain{}), extend: &Extension{NonPublic: true}, expect: []string{"Name", "health", "armor"}},
	}
	for _, testCase := range testCases {
		registry := NewRegistry(nil)
		if testCase.extend != nil {
			registry.Extend(testCase.rType, *testCase.extend)
		}
		actual := registry.TypeOf(testCase.rType)
		assert.EqualValues(t, testCase.expect, fieldNames(actual), testCase.description)
	}
}

func TestRegistry_Statics(t *testing.T) {
	registry := NewRegistry(nil)
	assert.Nil(t, registry.RegisterStatic(reflect.TypeOf(plain{}), "MaxPlayers", &maxPlayers))
	assert.Empty(t, registry.TypeOf(reflect.TypeOf(plain{})).Statics)

	assert.Nil(t, registry.RegisterStatic(reflect.TypeOf(extended{}), "MaxPlayers", &maxPlayers))
	statics := registry.TypeOf(reflect.TypeOf(extended{})).Statics
	assert.Len(t, statics, 1)
	assert.Equal(t, 4, statics[0].Value())

	assert.Nil(t, registry.RegisterStatic(reflect.TypeOf(nonPublicOnly{}), "MaxPlayers", &maxPlayers))
	assert.Empty(t, registry.TypeOf(reflect.TypeOf(nonPublicOnly{})).Statics)

	assert.Nil(t, registry.RegisterStatic(reflect.TypeOf(plain{}), "Max", &maxPlayers, WithShow(), WithReadOnly()))
	statics = registry.TypeOf(reflect.TypeOf(plain{})).Statics
	assert.Len(t, statics, 1)
	assert.NotNil(t, statics[0].Set(reflect.ValueOf(5)))

	assert.NotNil(t, registry.RegisterStatic(reflect.TypeOf(plain{}), "Bad", maxPlayers))
}

func TestRegistry_Properties(t *testing.T) {
	registry := NewRegistry(nil)
	aType := registry.TypeOf(reflect.TypeOf(player{}))
	assert.Len(t, aType.Properties, 1)
	speed := aType.Properties[0]
	assert.Equal(t, "Speed", speed.Name)
	assert.True(t, speed.CanWrite())

	aPlayer := &player{speed: 1.5}
	receiver := reflect.ValueOf(aPlayer)
	value, err := speed.Get(receiver)
	assert.Nil(t, err)
	assert.Equal(t, 1.5, value)
	assert.Nil(t, speed.Set(receiver, reflect.ValueOf(3.0)))
	assert.Equal(t, 3.0, aPlayer.speed)

	registry.Properties(reflect.TypeOf(player{}), "Level", "Broken")
	aType = registry.TypeOf(reflect.TypeOf(player{}))
	assert.Len(t, aType.Properties, 3)
	for _, property := range aType.Properties {
		if property.Name == "Broken" {
			_, err := property.Get(receiver)
			assert.NotNil(t, err)
			assert.False(t, property.CanWrite())
		}
	}

	var methods []string
	for _, method := range aType.Methods {
		if method.Name == "Jump" {
			methods = append(methods, method.Signature())
		}
	}
	assert.Equal(t, []string{"Jump(float64)"}, methods)
}

func TestRegistry_Hide(t *testing.T) {
	registry := NewRegistry(nil)
	playerType := reflect.TypeOf(player{})
	registry.Extend(playerType, Extension{NonPublic: true, Static: true})
	assert.Nil(t, registry.RegisterStatic(playerType, "MaxPlayers", &maxPlayers))
	aType := registry.TypeOf(playerType)
	assert.EqualValues(t, []string{"speed", "level"}, fieldNames(aType))
	assert.Len(t, aType.Properties, 1)
	assert.Len(t, aType.Statics, 1)

	registry.Hide(playerType, "Speed", "Jump", "speed", "MaxPlayers")
	aType = registry.TypeOf(playerType)
	assert.EqualValues(t, []string{"level"}, fieldNames(aType), "hidden field stays absent on extended type")
	assert.Empty(t, aType.Properties, "hidden getter removes property")
	assert.Empty(t, aType.Statics)
	for _, method := range aType.Methods {
		assert.NotEqual(t, "Jump", method.Name)
		assert.NotEqual(t, "Speed", method.Name)
	}
}

func TestRegistry_IsHidden(t *testing.T) {
	registry := NewRegistry(nil)
	assert.True(t, registry.IsHidden(&hiddenWindow{}))
	assert.True(t, registry.IsHidden(overlay{}))
	assert.False(t, registry.IsHidden(overlay{Visible: true}))
	assert.False(t, registry.IsHidden(&plain{}))
	registry.HideType(reflect.TypeOf(plain{}))
	assert.True(t, registry.IsHidden(&plain{}))
}

func TestRegistry_CaseFormat(t *testing.T) {
	registry := NewRegistry(nil)
	registry.CaseFormat = text.CaseFormatLowerUnderscore
	aType := registry.TypeOf(reflect.TypeOf(struct {
		MaxSpeed int
		Custom   int `inspect:"name=Top Speed"`
	}{}))
	assert.EqualValues(t, []string{"max_speed", "Top Speed"}, fieldNames(aType))
}

func TestField_Value(t *testing.T) {
	registry := NewRegistry(nil)
	aType := registry.TypeOf(reflect.TypeOf(extended{}))
	anExtended := &extended{Name: "x", health: 10}
	ptr := Pointer(reflect.ValueOf(anExtended))
	health := aType.Fields[1]
	assert.Equal(t, 10, health.Value(ptr))
	health.Set(ptr, reflect.ValueOf(20))
	assert.Equal(t, 20, anExtended.health)
}

type level int

type fieldKinds struct {
	_      struct{} `inspect:"extended"`
	label  string
	count  int
	total  int64
	ratio  float64
	scale  float32
	active bool
	when   time.Time
	rank   level
	slots  [2]int
	tags   []string
	owner  *plain
	scores map[string]int
	origin plain
	boxed  interface{}
}

func TestField_Set(t *testing.T) {
	when := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	owner := &plain{Name: "o"}
	var testCases = []struct {
		description string
		name        string
		value       interface{}
		actual      func(f *fieldKinds) interface{}
	}{
		{description: "string", name: "label", value: "a", actual: func(f *fieldKinds) interface{} { return f.label }},
		{description: "int", name: "count", value: 3, actual: func(f *fieldKinds) interface{} { return f.count }},
		{description: "int64", name: "total", value: int64(4), actual: func(f *fieldKinds) interface{} { return f.total }},
		{description: "float64", name: "ratio", value: 0.5, actual: func(f *fieldKinds) interface{} { return f.ratio }},
		{description: "float32", name: "scale", value: float32(1.5), actual: func(f *fieldKinds) interface{} { return f.scale }},
		{description: "bool", name: "active", value: true, actual: func(f *fieldKinds) interface{} { return f.active }},
		{description: "time", name: "when", value: when, actual: func(f *fieldKinds) interface{} { return f.when }},
		{description: "named int", name: "rank", value: level(2), actual: func(f *fieldKinds) interface{} { return f.rank }},
		{description: "array", name: "slots", value: [2]int{1, 2}, actual: func(f *fieldKinds) interface{} { return f.slots }},
		{description: "slice", name: "tags", value: []string{"x"}, actual: func(f *fieldKinds) interface{} { return f.tags }},
		{description: "pointer", name: "owner", value: owner, actual: func(f *fieldKinds) interface{} { return f.owner }},
		{description: "map", name: "scores", value: map[string]int{"a": 1}, actual: func(f *fieldKinds) interface{} { return f.scores }},
		{description: "struct", name: "origin", value: plain{Name: "p"}, actual: func(f *fieldKinds) interface{} { return f.origin }},
		{description: "interface", name: "boxed", value: 7, actual: func(f *fieldKinds) interface{} { return f.boxed }},
	}
	aType := NewRegistry(nil).TypeOf(reflect.TypeOf(fieldKinds{}))
	for _, testCase := range testCases {
		target := &fieldKinds{}
		ptr := Pointer(reflect.ValueOf(target))
		var field *Field
		for _, candidate := range aType.Fields {
			if candidate.GoName == testCase.name {
				field = candidate
			}
		}
		if !assert.NotNil(t, field, testCase.description) {
			continue
		}
		before := field.Value(ptr)
		field.Set(ptr, reflect.ValueOf(testCase.value).Convert(field.Type))
		assert.EqualValues(t, testCase.value, testCase.actual(target), testCase.description)
		assert.EqualValues(t, testCase.value, field.Value(ptr), testCase.description)
		assert.NotEqual(t, testCase.value, before, testCase.description+": value is a copy")
		assert.IsType(t, reflect.New(field.Type).Interface(), field.Addr(ptr), testCase.description)
	}
}
