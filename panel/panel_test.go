package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/inspector"
	"github.com/viant/inspector/member"
)

type (
	stats struct {
		Level int
	}

	hero struct {
		Name  string
		Stats *stats
		Items []string
		Bag   map[string]int
	}

	place struct {
		Title string
	}
)

func (h *hero) Rename(name string) {
	h.Name = name
}

func (p *place) Name() string { return p.Title }

func (p *place) Children() []inspector.SceneNode { return nil }

func newHero() *hero {
	return &hero{Name: "hero", Stats: &stats{Level: 1}, Items: []string{"a", "b"}, Bag: map[string]int{"x": 1}}
}

func names(panel *Panel, category member.Category) []string {
	var result []string
	group := panel.Group(category)
	if group == nil {
		return nil
	}
	for _, binding := range group.Bindings {
		result = append(result, binding.Name)
	}
	return result
}

func TestNavigator_Open(t *testing.T) {
	navigator := New(nil)
	assert.Nil(t, navigator.Current())
	panel := navigator.Open("player", newHero())
	assert.Equal(t, "hero : <hero>", panel.Title)
	assert.Equal(t, []string{"Name", "Stats", "Items", "Bag"}, names(panel, member.CategoryField))
	assert.Equal(t, []string{"Rename"}, names(panel, member.CategoryMethod))
	assert.Nil(t, panel.Group(member.CategoryElement))
	if assert.Equal(t, 2, len(panel.Groups)) {
		assert.Equal(t, member.CategoryField, panel.Groups[0].Category)
		assert.Equal(t, member.CategoryMethod, panel.Groups[1].Category)
	}
	assert.Equal(t, []string{"player"}, navigator.Tabs())
}

func TestNavigator_DrillDown(t *testing.T) {
	navigator := New(nil)
	root := navigator.Open("player", newHero())

	items, err := navigator.DrillDown(root.Lookup("Items"))
	assert.Nil(t, err)
	assert.Equal(t, []string{"[0]", "[1]"}, names(items, member.CategoryElement))
	assert.Equal(t, []string{"player", "Items"}, navigator.Tabs())

	_, err = navigator.DrillDown(items.Lookup("[0]"))
	assert.NotNil(t, err, "scalar element is not expandable")
	_, err = navigator.DrillDown(nil)
	assert.NotNil(t, err)

	selected, err := navigator.Select(0)
	assert.Nil(t, err)
	assert.Same(t, root, selected)
	assert.Equal(t, []string{"player"}, navigator.Tabs(), "descendants are discarded")

	_, err = navigator.DrillDown(root.Lookup("Stats"))
	assert.Nil(t, err)
	assert.Equal(t, "stats : <stats>", navigator.Current().Title)
	parent, err := navigator.Back()
	assert.Nil(t, err)
	assert.Same(t, root, parent)
	_, err = navigator.Back()
	assert.NotNil(t, err)
	_, err = navigator.Select(3)
	assert.NotNil(t, err)

	navigator.Open("other", &stats{})
	assert.Equal(t, []string{"other"}, navigator.Tabs(), "open clears the stack")
}

func TestNavigator_Resolve(t *testing.T) {
	aHero := newHero()
	navigator := New(nil)
	_, err := navigator.Resolve("Name")
	assert.NotNil(t, err)
	navigator.Open("player", aHero)

	var testCases = []struct {
		description string
		path        string
		text        string
		hasError    bool
	}{
		{description: "field", path: "Name", text: "hero"},
		{description: "nested field", path: "Stats.Level", text: "1"},
		{description: "index", path: "Items[1]", text: "b"},
		{description: "dictionary key", path: "Bag[x]", text: "1"},
		{description: "missing member", path: "Missing", hasError: true},
		{description: "scalar is not expandable", path: "Name.Length", hasError: true},
		{description: "missing index", path: "Items[5]", hasError: true},
		{description: "empty path", path: " ", hasError: true},
	}
	for _, testCase := range testCases {
		binding, err := navigator.Resolve(testCase.path)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if assert.Nil(t, err, testCase.description) {
			assert.Equal(t, testCase.text, binding.Text(), testCase.description)
		}
	}

	binding, _ := navigator.Resolve("Stats.Level")
	assert.Nil(t, binding.Editor.Submit("5"))
	assert.Equal(t, 5, aHero.Stats.Level)

	binding, _ = navigator.Resolve("Items[0]")
	assert.Nil(t, binding.Editor.Submit("z"))
	assert.Equal(t, []string{"z", "b"}, aHero.Items)

	binding, _ = navigator.Resolve("Rename")
	_, err = binding.Method.Invoke("neo")
	assert.Nil(t, err)
	assert.Equal(t, "neo", aHero.Name)
	assert.Equal(t, "neo", navigator.Refresh().Lookup("Name").Text())
}

func TestSplitPath(t *testing.T) {
	var testCases = []struct {
		description string
		path        string
		expect      []string
		hasError    bool
	}{
		{description: "single", path: "a", expect: []string{"a"}},
		{description: "nested", path: "a.b.c", expect: []string{"a", "b", "c"}},
		{description: "index", path: "a.b[2].c", expect: []string{"a", "b", "[2]", "c"}},
		{description: "grid index", path: "grid[1,2]", expect: []string{"grid", "[1,2]"}},
		{description: "leading index", path: "[0].x", expect: []string{"[0]", "x"}},
		{description: "consecutive index", path: "m[0][1]", expect: []string{"m", "[0]", "[1]"}},
		{description: "empty segment", path: "a..b", hasError: true},
		{description: "trailing dot", path: "a.", hasError: true},
		{description: "unterminated index", path: "a[1", hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := SplitPath(testCase.path)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "null", Title(nil))
	assert.Equal(t, "place : Town", Title(&place{Title: "Town"}))
	assert.Equal(t, "hero : <hero>", Title(newHero()))
}
