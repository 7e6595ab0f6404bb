package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// Entry represents a map entry with its formatted key
type Entry struct {
	Text  string
	Key   interface{}
	Value interface{}
}

// MapVisitorOf creates a visitor over map entries ordered by formatted key text,
// the visitor key is the entry position
func MapVisitorOf(value interface{}, format func(key interface{}) string) (Visitor[int, Entry], error) {
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return func(func(key int, element Entry) (bool, error)) error { return nil }, nil
		}
		rValue = rValue.Elem()
	}
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	if format == nil {
		format = func(key interface{}) string { return fmt.Sprint(key) }
	}
	return func(f func(key int, element Entry) (bool, error)) error {
		var entries = make([]Entry, 0, rValue.Len())
		iter := rValue.MapRange()
		for iter.Next() {
			key := iter.Key().Interface()
			entries = append(entries, Entry{Text: format(key), Key: key, Value: iter.Value().Interface()})
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Text < entries[j].Text })
		for i, entry := range entries {
			continueVisit, err := f(i, entry)
			if err != nil || !continueVisit {
				return err
			}
		}
		return nil
	}, nil
}
