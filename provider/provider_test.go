package provider

import (
	"container/list"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/inspector/editor"
	"github.com/viant/inspector/member"
	"github.com/viant/inspector/script"
	"github.com/viant/inspector/variant"
)

type stats struct {
	Level int
}

type player struct {
	Name   string
	Speed  float64
	Stats  stats
	health int
	secret string `inspect:"show,readonly"`
	Skip   bool   `inspect:"-"`
	ammo   int
}

func (p *player) Ammo() int {
	return p.ammo
}

func (p *player) SetAmmo(ammo int) error {
	if ammo < 0 {
		return errors.New("negative ammo")
	}
	p.ammo = ammo
	return nil
}

func (p *player) Health() int {
	return p.health
}

func (p *player) Broken() (int, error) {
	return 0, errors.New("broken")
}

func (p *player) SetBroken(v int) {}

func (p *player) Jump(height float64) float64 {
	p.Speed = height * 2
	return p.Speed
}

type collector struct {
	errors []error
}

func (c *collector) Report(err error) {
	c.errors = append(c.errors, err)
}

func byName(bindings []*Binding) map[string]*Binding {
	var result = map[string]*Binding{}
	for _, binding := range bindings {
		result[binding.Name] = binding
	}
	return result
}

func TestFields_Populate(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	aPlayer := &player{Name: "hero", Speed: 1.5, health: 3, secret: "x"}
	bindings := byName((&Fields{ctx: ctx}).Populate(aPlayer, nil))
	assert.Equal(t, 4, len(bindings))
	assert.Nil(t, bindings["health"], "unexported field is hidden by default")
	assert.Nil(t, bindings["Skip"])

	assert.Nil(t, bindings["Name"].Editor.Submit("villain"))
	assert.Equal(t, "villain", aPlayer.Name)
	assert.Nil(t, bindings["Speed"].Editor.Submit("2.25"))
	assert.Equal(t, 2.25, aPlayer.Speed)

	assert.Equal(t, "x", bindings["secret"].Value)
	assert.NotNil(t, bindings["secret"].Editor.Submit("y"), "readonly field")
	assert.Equal(t, "x", aPlayer.secret)

	assert.True(t, bindings["Stats"].IsExpandable())
	nested := byName((&Fields{ctx: ctx}).Populate(bindings["Stats"].DrillTarget(), nil))
	assert.Nil(t, nested["Level"].Editor.Submit("7"))
	assert.Equal(t, 7, aPlayer.Stats.Level, "nested struct is edited in place")
}

func TestFields_ArrayTarget(t *testing.T) {
	type loadout struct {
		Slots [3]int
		Grid  [2][2]int
	}
	var testCases = []struct {
		description string
		name        string
		element     int
		text        string
		expect      func(l *loadout) int
	}{
		{description: "array element", name: "Slots", element: 1, text: "9", expect: func(l *loadout) int { return l.Slots[1] }},
		{description: "grid cell", name: "Grid", element: 2, text: "30", expect: func(l *loadout) int { return l.Grid[1][0] }},
	}
	ctx := NewContext(nil, nil, nil)
	for _, testCase := range testCases {
		aLoadout := &loadout{}
		bindings := byName((&Fields{ctx: ctx}).Populate(aLoadout, nil))
		field := bindings[testCase.name]
		if !assert.NotNil(t, field, testCase.description) {
			continue
		}
		elements := (&Elements{ctx: ctx}).Populate(field.DrillTarget(), field.Origin)
		if !assert.True(t, len(elements) > testCase.element, testCase.description) {
			continue
		}
		assert.Nil(t, elements[testCase.element].Editor.Submit(testCase.text), testCase.description)
		assert.Equal(t, testCase.text, strconv.Itoa(testCase.expect(aLoadout)), testCase.description+": live struct is edited")
	}
}

func TestFields_ExtendedType(t *testing.T) {
	registry := member.NewRegistry(nil)
	registry.Extend(reflect.TypeOf(player{}), member.Extension{NonPublic: true})
	ctx := NewContext(registry, nil, nil)
	aPlayer := &player{health: 3}
	bindings := byName((&Fields{ctx: ctx}).Populate(aPlayer, nil))
	if assert.NotNil(t, bindings["health"]) {
		assert.Nil(t, bindings["health"].Editor.Submit("9"))
		assert.Equal(t, 9, aPlayer.health)
	}
}

func TestFields_ValueTarget(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	bindings := byName((&Fields{ctx: ctx}).Populate(player{Name: "copy"}, nil))
	assert.Equal(t, "copy", bindings["Name"].Value)
	assert.False(t, bindings["Name"].Editor.Editable(), "copied struct is read-only")
}

func TestProperties_Populate(t *testing.T) {
	reporter := &collector{}
	registry := member.NewRegistry(nil)
	registry.Properties(reflect.TypeOf(player{}), "Health")
	ctx := NewContext(registry, nil, reporter)
	aPlayer := &player{ammo: 5, health: 2}
	bindings := byName((&Properties{ctx: ctx}).Populate(aPlayer, nil))
	assert.Equal(t, 2, len(bindings), "failing getter is skipped")
	assert.Nil(t, bindings["Broken"])
	assert.Equal(t, 2, bindings["Health"].Value)
	assert.False(t, bindings["Health"].Editor.Editable())

	ammo := bindings["Ammo"]
	assert.Nil(t, ammo.Editor.Submit("12"))
	assert.Equal(t, 12, aPlayer.ammo)

	err := ammo.Editor.Submit("-1")
	assert.NotNil(t, err, "setter error is returned by submit")
	assert.Equal(t, err, ammo.Editor.Err(), "setter error is kept on editor")
	assert.Equal(t, 12, aPlayer.ammo)
	assert.Equal(t, 1, len(reporter.errors))
	assert.Equal(t, 12, ammo.Editor.GetValue(), "failed write reverts editor")

	assert.Nil(t, ammo.Editor.Submit("3"))
	assert.Nil(t, ammo.Editor.Err(), "successful write clears error")
	assert.Equal(t, 3, aPlayer.ammo)
}

func TestMethods_Populate(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	ctx.PinReturnValue = true
	aPlayer := &player{}
	bindings := byName((&Methods{ctx: ctx}).Populate(aPlayer, nil))
	assert.Nil(t, bindings["Ammo"], "accessors are not listed as methods")
	assert.Nil(t, bindings["SetAmmo"])
	jump := bindings["Jump"]
	if !assert.NotNil(t, jump) {
		return
	}
	assert.Equal(t, "Jump(float64) float64", jump.Method.Signature)
	result, err := jump.Method.Invoke("1.5")
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{3.0}, result)
	assert.Equal(t, 3.0, aPlayer.Speed)
	pinned, ok := ctx.Clipboard.Get(0)
	assert.True(t, ok)
	assert.Equal(t, 3.0, pinned)
}

func TestStatics_Populate(t *testing.T) {
	limit := 10
	registry := member.NewRegistry(nil)
	assert.Nil(t, registry.RegisterStatic(reflect.TypeOf(player{}), "Limit", &limit, member.WithShow()))
	ctx := NewContext(registry, nil, nil)
	bindings := byName((&Statics{ctx: ctx}).Populate(&player{}, nil))
	if assert.NotNil(t, bindings["Limit"]) {
		assert.Nil(t, bindings["Limit"].Editor.Submit("20"))
		assert.Equal(t, 20, limit)
	}
}

func TestElements_Populate(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	aSlice := []int{1, 2, 3, 4}
	bindings := (&Elements{ctx: ctx}).Populate(aSlice, nil)
	assert.Equal(t, 4, len(bindings))
	assert.Equal(t, "[2]", bindings[2].Name)
	assert.Nil(t, bindings[2].Editor.Submit("30"))
	assert.Equal(t, []int{1, 2, 30, 4}, aSlice, "only edited index changes")

	aMap := map[string]int{"b": 2, "a": 1}
	bindings = (&Elements{ctx: ctx}).Populate(aMap, nil)
	assert.Equal(t, "[a]", bindings[0].Name)
	assert.Nil(t, bindings[1].Editor.Submit("20"))
	assert.Equal(t, map[string]int{"a": 1, "b": 20}, aMap)

	anArray := [2]int{1, 2}
	bindings = (&Elements{ctx: ctx}).Populate(anArray, nil)
	assert.False(t, bindings[0].Editor.Editable(), "array copy is read-only")
	bindings = (&Elements{ctx: ctx}).Populate(&anArray, nil)
	assert.Nil(t, bindings[1].Editor.Submit("5"))
	assert.Equal(t, [2]int{1, 5}, anArray)

	grid := [2][2]int{{1, 2}, {3, 4}}
	bindings = (&Elements{ctx: ctx}).Populate(&grid, nil)
	assert.Equal(t, "[1,0]", bindings[2].Name)
	assert.Nil(t, bindings[3].Editor.Submit("40"))
	assert.Equal(t, 40, grid[1][1])

	aSet := map[string]struct{}{"x": {}, "y": {}}
	bindings = (&Elements{ctx: ctx}).Populate(aSet, nil)
	assert.Equal(t, "y", bindings[1].Value)
	assert.False(t, bindings[1].Editor.Editable())

	aList := list.New()
	aList.PushBack("a")
	aList.PushBack(2)
	bindings = (&Elements{ctx: ctx}).Populate(aList, nil)
	assert.Equal(t, 2, len(bindings))
	assert.False(t, bindings[0].Editor.Editable())

	points := []stats{{Level: 1}}
	bindings = (&Elements{ctx: ctx}).Populate(points, nil)
	nested := byName((&Fields{ctx: ctx}).Populate(bindings[0].DrillTarget(), nil))
	assert.Nil(t, nested["Level"].Editor.Submit("3"))
	assert.Equal(t, 3, points[0].Level)

	assert.Nil(t, (&Elements{ctx: ctx}).Populate(&player{}, nil))
	assert.Nil(t, (&Elements{ctx: ctx}).Populate(nil, nil))
}

func TestElements_Interface(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	items := []interface{}{1, "a", nil}
	bindings := (&Elements{ctx: ctx}).Populate(items, nil)
	assert.IsType(t, &editor.Number{}, bindings[0].Editor)
	assert.Equal(t, member.Null, bindings[2].Class)
	assert.Nil(t, bindings[0].Editor.Submit("5"))
	assert.Equal(t, 5, items[0])
}

func TestScriptProperties_Populate(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	instance := script.NewInstance("Player").
		Section("Movement", script.UsageGroup).
		Define(script.Property{Name: "mode", Type: script.TypeInt, Hint: 2, HintString: "Idle,Run,Jump", Usage: script.UsageVariable}, 0).
		Var("speed", 1.5)
	bindings := (&ScriptProperties{ctx: ctx}).Populate(variant.FromRef(instance), nil)
	if !assert.Equal(t, 2, len(bindings)) {
		return
	}
	mode := bindings[0]
	assert.Equal(t, member.Variant, mode.Class)
	assert.Equal(t, "Idle(0)", mode.Text())
	assert.Nil(t, mode.Editor.Submit("Jump"))
	value, _ := instance.Get("mode")
	assert.EqualValues(t, 2, value.Int())

	assert.Nil(t, bindings[1].Editor.Submit("3.5"))
	value, _ = instance.Get("speed")
	assert.Equal(t, 3.5, value.Float())
	assert.Nil(t, (&ScriptProperties{ctx: ctx}).Populate(&player{}, nil))

	ctx.ShowScriptProperties = false
	assert.Empty(t, (&ScriptProperties{ctx: ctx}).Populate(variant.FromRef(instance), nil), "script properties are disabled")
}

func TestScriptMethods_Populate(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	instance := script.NewInstance("Player").Method("add", []string{"a", "b"}, func(instance *script.Instance, args ...variant.Variant) (variant.Variant, error) {
		a, _ := args[0].AsInt()
		b, _ := args[1].AsInt()
		return variant.FromInt(a + b), nil
	})
	bindings := (&ScriptMethods{ctx: ctx}).Populate(instance, nil)
	if !assert.Equal(t, 1, len(bindings)) {
		return
	}
	assert.Equal(t, "add(a, b)", bindings[0].Text())
	result, err := bindings[0].Method.Invoke("2", "3")
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{variant.FromInt(5)}, result)
}

func TestPopulate_Order(t *testing.T) {
	ctx := NewContext(nil, nil, nil)
	bindings := Populate(ctx, &player{}, nil)
	var categories []member.Category
	for _, binding := range bindings {
		if len(categories) == 0 || categories[len(categories)-1] != binding.Category {
			categories = append(categories, binding.Category)
		}
	}
	assert.Equal(t, []member.Category{member.CategoryProperty, member.CategoryField, member.CategoryMethod}, categories)
}
