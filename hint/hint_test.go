package hint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/inspector/enum"
)

func TestParseEnum(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []enum.Entry
	}{
		{description: "auto values", input: "Hello,World,Goodbye", expect: []enum.Entry{{Label: "Hello", Value: 0}, {Label: "World", Value: 1}, {Label: "Goodbye", Value: 2}}},
		{description: "header", input: "2/2:Idle,Run", expect: []enum.Entry{{Label: "Idle", Value: 0}, {Label: "Run", Value: 1}}},
		{description: "continue after explicit", input: "A,B:5,C", expect: []enum.Entry{{Label: "A", Value: 0}, {Label: "B", Value: 5}, {Label: "C", Value: 6}}},
		{description: "duplicated label keeps first", input: "Hello:1,World:2,Hello:3", expect: []enum.Entry{{Label: "Hello", Value: 1}, {Label: "World", Value: 2}}},
		{description: "shared value", input: "A:1,B:1", expect: []enum.Entry{{Label: "A", Value: 1}, {Label: "B", Value: 1}}},
		{description: "empty", input: ""},
		{description: "header without colon", input: "2/2"},
		{description: "non integer value", input: "A:x,B"},
		{description: "empty label", input: "A,,B"},
		{description: "flags header", input: "2/6:A,B"},
	}
	for _, testCase := range testCases {
		actual := ParseEnum(testCase.input)
		if len(testCase.expect) == 0 {
			assert.True(t, actual.IsEmpty(), testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Entries(), testCase.description)
	}
}

func TestParseFlags(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []enum.Entry
	}{
		{description: "auto bits", input: "Bit0,Bit1,Bit2", expect: []enum.Entry{{Label: "Bit0", Value: 1}, {Label: "Bit1", Value: 2}, {Label: "Bit2", Value: 4}}},
		{description: "explicit does not shift auto", input: "2/6:A,B:16,C", expect: []enum.Entry{{Label: "A", Value: 1}, {Label: "B", Value: 16}, {Label: "C", Value: 4}}},
		{description: "malformed", input: "A:b"},
	}
	for _, testCase := range testCases {
		actual := ParseFlags(testCase.input)
		if len(testCase.expect) == 0 {
			assert.True(t, actual.IsEmpty(), testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.expect, actual.Entries(), testCase.description)
	}
}

func TestParseDictionaryValueEnum(t *testing.T) {
	actual := ParseDictionaryValueEnum("4;2/2:Low,High:10")
	assert.EqualValues(t, []enum.Entry{{Label: "Low", Value: 0}, {Label: "High", Value: 10}}, actual.Entries())
	assert.True(t, ParseDictionaryValueEnum("2/2:Low,High").IsEmpty())
	assert.True(t, ParseDictionaryValueEnum("4;2;2/2:Low").IsEmpty())
}

func TestParse(t *testing.T) {
	spec, ok := Parse("4;2/6:A,B")
	assert.True(t, ok)
	assert.Equal(t, "4", spec.Key)
	assert.Equal(t, TypeInt, spec.Type)
	assert.True(t, spec.IsFlags())
	assert.Equal(t, "A,B", spec.Body)
	assert.Equal(t, "4;2/6:A,B", spec.String())
	assert.EqualValues(t, 2, spec.Table().Len())

	_, ok = Parse("")
	assert.False(t, ok)
}
