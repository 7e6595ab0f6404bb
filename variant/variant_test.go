package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type color int

func TestOf(t *testing.T) {
	type point struct{ X, Y int }
	var nilPtr *point
	aPoint := &point{X: 1}

	var testCases = []struct {
		description string
		value       interface{}
		kind        Kind
		text        string
		unwrap      interface{}
	}{
		{description: "nil", value: nil, kind: KindNull, text: "null"},
		{description: "typed nil pointer", value: nilPtr, kind: KindNull, text: "null"},
		{description: "bool", value: true, kind: KindBool, text: "true", unwrap: true},
		{description: "int", value: 12, kind: KindInt, text: "12", unwrap: int64(12)},
		{description: "named int keeps type", value: color(3), kind: KindInt, text: "3", unwrap: color(3)},
		{description: "float", value: 1.5, kind: KindFloat, text: "1.5", unwrap: 1.5},
		{description: "text", value: "abc", kind: KindText, text: "abc", unwrap: "abc"},
		{description: "name handle", value: NewName("Player"), kind: KindHandle, text: "Player"},
		{description: "composite", value: aPoint, kind: KindComposite, unwrap: aPoint},
	}
	for _, testCase := range testCases {
		actual := Of(testCase.value)
		assert.Equal(t, testCase.kind, actual.Kind(), testCase.description)
		if testCase.text != "" {
			assert.Equal(t, testCase.text, actual.String(), testCase.description)
		}
		if testCase.unwrap != nil {
			assert.EqualValues(t, testCase.unwrap, actual.Unwrap(), testCase.description)
		}
	}
}

func TestVariant_AsInt(t *testing.T) {
	i, err := FromText("42").AsInt()
	assert.Nil(t, err)
	assert.EqualValues(t, 42, i)

	i, err = FromText("2.9").AsInt()
	assert.Nil(t, err)
	assert.EqualValues(t, 2, i)

	_, err = FromText("abc").AsInt()
	assert.NotNil(t, err)
}

func TestParse(t *testing.T) {
	assert.Equal(t, KindInt, Parse("7").Kind())
	assert.Equal(t, KindFloat, Parse("7.5").Kind())
	assert.Equal(t, KindBool, Parse("true").Kind())
	assert.Equal(t, KindText, Parse("T").Kind())
	assert.Equal(t, KindText, Parse("hello").Kind())
}

func TestVariant_Equal(t *testing.T) {
	aMap := map[string]int{"a": 1}
	assert.True(t, Of(aMap).Equal(Of(aMap)))
	assert.False(t, Of(map[string]int{}).Equal(Of(aMap)))
	assert.True(t, FromInt(1).Equal(Of(1)))
	assert.False(t, FromInt(1).Equal(FromFloat(1)))
}

func TestPath(t *testing.T) {
	path := NewPath("/root/World/Player")
	assert.True(t, path.IsAbsolute())
	assert.Equal(t, []string{"root", "World", "Player"}, path.Names())
	assert.Equal(t, "/root/World/Player", path.String())
	assert.True(t, NewPath("").IsEmpty())
	var nilName *Name
	assert.True(t, nilName.IsEmpty())
}
