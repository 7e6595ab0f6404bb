package inspector

import (
	"reflect"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/variant"
)

type identity struct {
	ptr   uintptr
	rType reflect.Type
}

// Visited represents an identity set of reference values seen during a single walk
type Visited struct {
	identities map[identity]bool
}

// Visit records value identity, it returns false if value was already visited;
// non reference kinds and opaque handles are never recorded
func (v *Visited) Visit(value interface{}) bool {
	key, ok := identityOf(value)
	if !ok {
		return true
	}
	if v.identities[key] {
		return false
	}
	v.identities[key] = true
	return true
}

// Has returns true if value identity was recorded
func (v *Visited) Has(value interface{}) bool {
	key, ok := identityOf(value)
	return ok && v.identities[key]
}

// Len returns recorded identities count
func (v *Visited) Len() int {
	return len(v.identities)
}

func identityOf(value interface{}) (identity, bool) {
	if value == nil {
		return identity{}, false
	}
	if _, ok := value.(variant.Handle); ok {
		return identity{}, false
	}
	rValue := reflect.ValueOf(value)
	if !member.IsReference(rValue) {
		return identity{}, false
	}
	return identity{ptr: rValue.Pointer(), rType: rValue.Type()}, true
}

// NewVisited creates an empty visited set
func NewVisited() *Visited {
	return &Visited{identities: map[identity]bool{}}
}
