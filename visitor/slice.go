package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates an index ordered visitor for a slice, an array or a pointer to either
func SliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return typedSlice(actual), nil
	case []string:
		return typedSlice(actual), nil
	case []int:
		return typedSlice(actual), nil
	case []float64:
		return typedSlice(actual), nil
	case []bool:
		return typedSlice(actual), nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return empty[int], nil
		}
		rValue = rValue.Elem()
	}
	if rValue.Kind() != reflect.Slice && rValue.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	return func(f func(key int, element any) (bool, error)) error {
		for i := 0; i < rValue.Len(); i++ {
			continueVisit, err := f(i, rValue.Index(i).Interface())
			if err != nil || !continueVisit {
				return err
			}
		}
		return nil
	}, nil
}

func typedSlice[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, item := range slice {
			continueVisit, err := f(i, item)
			if err != nil || !continueVisit {
				return err
			}
		}
		return nil
	}
}

func empty[K comparable](func(key K, element any) (bool, error)) error {
	return nil
}
