package visitor

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      []interface{}
		hasError    bool
	}{
		{description: "interface slice", value: []interface{}{"a", 1, 3.14, true}, expect: []interface{}{"a", 1, 3.14, true}},
		{description: "typed slice", value: []int{1, 2}, expect: []interface{}{1, 2}},
		{description: "array", value: [3]string{"a", "b", "c"}, expect: []interface{}{"a", "b", "c"}},
		{description: "struct slice", value: []struct{ ID int }{{1}}, expect: []interface{}{struct{ ID int }{1}}},
		{description: "pointer", value: &[]string{"x"}, expect: []interface{}{"x"}},
		{description: "nil pointer", value: (*[]int)(nil)},
		{description: "not a slice", value: map[string]int{}, hasError: true},
	}
	for _, testCase := range testCases {
		visit, err := SliceVisitorOf(testCase.value)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		var clone []interface{}
		err = visit(func(index int, element interface{}) (bool, error) {
			clone = append(clone, element)
			return true, nil
		})
		assert.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, clone, testCase.description)
	}
}

func TestListVisitorOf(t *testing.T) {
	aList := list.New()
	aList.PushBack("a")
	aList.PushBack(2)
	aList.PushBack(true)
	var keys []int
	var clone []interface{}
	err := ListVisitorOf(aList)(func(key int, element interface{}) (bool, error) {
		keys = append(keys, key)
		clone = append(clone, element)
		return key < 1, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, keys, "visit stops when callback returns false")
	assert.Equal(t, []interface{}{"a", 2}, clone)
}
