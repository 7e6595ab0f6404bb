package tags

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPairs(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      map[string]string
	}{
		{
			description: "mixed",
			input:       "show,name=Max Speed,readonly",
			expect: map[string]string{
				"show":     "",
				"name":     "Max Speed",
				"readonly": "",
			},
		},
		{
			description: "block value",
			input:       "name={a,b},static=false",
			expect: map[string]string{
				"name":   "a,b",
				"static": "false",
			},
		},
		{
			description: "leading coma",
			input:       ",hidden",
			expect: map[string]string{
				"hidden": "",
			},
		},
	}
	for _, testCase := range testCases {
		actual := map[string]string{}
		err := matchPairs(testCase.input, func(key, value string) error {
			actual[key] = value
			return nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		tag         reflect.StructTag
		expect      *Tag
		hasError    bool
	}{
		{description: "no tag", tag: `json:"id"`, expect: &Tag{}},
		{description: "dash", tag: `inspect:"-"`, expect: &Tag{Ignore: true}},
		{description: "hidden", tag: `inspect:"hidden"`, expect: &Tag{Ignore: true}},
		{description: "display name", tag: `inspect:"name=Max Speed"`, expect: &Tag{Name: "Max Speed", Show: true}},
		{description: "extended", tag: `inspect:"extended"`, expect: &Tag{Extended: true, Static: true, NonPublic: true}},
		{description: "extended without static", tag: `inspect:"extended,static=false"`, expect: &Tag{Extended: true, NonPublic: true}},
		{description: "hide in tree", tag: `inspect:"hideInTree"`, expect: &Tag{HideInTree: true}},
		{description: "unknown", tag: `inspect:"bogus"`, expect: &Tag{}, hasError: true},
	}
	for _, testCase := range testCases {
		actual, err := Parse(testCase.tag)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
