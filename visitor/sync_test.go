package visitor

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	cache := NewSyncMap[reflect.Type, string]()
	intType := reflect.TypeOf(0)
	_, ok := cache.Get(intType)
	assert.False(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.Put(intType, "int")
			_, _ = cache.Get(intType)
		}()
	}
	wg.Wait()
	value, ok := cache.Get(intType)
	assert.True(t, ok)
	assert.Equal(t, "int", value)

	cache.Delete(intType)
	_, ok = cache.Get(intType)
	assert.False(t, ok, "deleted entry is invalidated")
}
