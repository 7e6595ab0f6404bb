package tags

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagName defines inspector tag name
const TagName = "inspect"

// Tag represents inspector tag, i.e. `inspect:"name=Speed,readonly"`
type Tag struct {
	Name     string
	Ignore   bool
	Show     bool
	ReadOnly bool

	//type level options, declared on a blank marker field
	Extended   bool
	Static     bool
	NonPublic  bool
	HideInTree bool
}

// Parse parses inspector tag from struct tag
func Parse(tag reflect.StructTag) (*Tag, error) {
	ret := &Tag{}
	encoded, ok := tag.Lookup(TagName)
	if !ok {
		return ret, nil
	}
	return ret, ret.decode(encoded)
}

// MustParse parses inspector tag, malformed options are ignored
func MustParse(tag reflect.StructTag) *Tag {
	ret, _ := Parse(tag)
	return ret
}

func (t *Tag) decode(encoded string) error {
	if strings.TrimSpace(encoded) == "-" {
		t.Ignore = true
		return nil
	}
	return matchPairs(encoded, t.update)
}

func (t *Tag) update(key, value string) error {
	switch strings.ToLower(key) {
	case "-", "hidden", "hide":
		t.Ignore = true
	case "show", "inspectable":
		t.Show = true
	case "name":
		t.Name = value
		t.Show = true
	case "readonly":
		t.ReadOnly = true
	case "extended":
		t.Extended = true
		t.Static = true
		t.NonPublic = true
	case "static":
		return t.updateBool(&t.Static, key, value)
	case "nonpublic":
		return t.updateBool(&t.NonPublic, key, value)
	case "hideintree":
		t.HideInTree = true
	default:
		return fmt.Errorf("unknown %v tag option: %v", TagName, key)
	}
	return nil
}

func (t *Tag) updateBool(dest *bool, key, value string) error {
	if value == "" {
		*dest = true
		return nil
	}
	flag, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid %v tag %v value: %w", TagName, key, err)
	}
	*dest = flag
	return nil
}
