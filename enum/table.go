package enum

import (
	"strconv"
	"strings"
)

type (
	// Entry represents an enum label and its integer constant
	Entry struct {
		Label string
		Value int64
	}

	// Table represents an ordered label to value mapping; labels are unique, values are not
	Table struct {
		entries []Entry
		index   map[string]int
	}
)

// NewTable creates a table, duplicated labels keep the first value
func NewTable(entries ...Entry) *Table {
	ret := &Table{index: make(map[string]int, len(entries))}
	for _, entry := range entries {
		ret.Add(entry.Label, entry.Value)
	}
	return ret
}

// Add adds an entry unless label is already defined
func (t *Table) Add(label string, value int64) bool {
	if t.index == nil {
		t.index = map[string]int{}
	}
	if _, ok := t.index[label]; ok {
		return false
	}
	t.index[label] = len(t.entries)
	t.entries = append(t.entries, Entry{Label: label, Value: value})
	return true
}

// Len returns entries count
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// IsEmpty returns true if table has no entries
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// Entries returns entries in declaration order
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Labels returns labels in declaration order
func (t *Table) Labels() []string {
	var result = make([]string, 0, t.Len())
	for _, entry := range t.Entries() {
		result = append(result, entry.Label)
	}
	return result
}

// Value returns value for supplied label
func (t *Table) Value(label string) (int64, bool) {
	if t == nil {
		return 0, false
	}
	pos, ok := t.index[label]
	if !ok {
		return 0, false
	}
	return t.entries[pos].Value, true
}

// Label returns the first label declared with supplied value
func (t *Table) Label(value int64) (string, bool) {
	for _, entry := range t.Entries() {
		if entry.Value == value {
			return entry.Label, true
		}
	}
	return "", false
}

// Format returns "<label>(<value>)" or bare value when no label matches
func (t *Table) Format(value int64) string {
	label, ok := t.Label(value)
	if !ok {
		return strconv.FormatInt(value, 10)
	}
	return label + "(" + strconv.FormatInt(value, 10) + ")"
}

// FlagLabels returns labels of all non zero entries set in supplied value
func (t *Table) FlagLabels(value int64) []string {
	var result []string
	for _, entry := range t.Entries() {
		if entry.Value != 0 && value&entry.Value == entry.Value {
			result = append(result, entry.Label)
		}
	}
	return result
}

// FormatFlags returns "<label>|<label>(<value>)" or bare value when nothing matches
func (t *Table) FormatFlags(value int64) string {
	labels := t.FlagLabels(value)
	if len(labels) == 0 {
		return strconv.FormatInt(value, 10)
	}
	return strings.Join(labels, "|") + "(" + strconv.FormatInt(value, 10) + ")"
}

// Parse resolves a label, a "label(value)" form or an integer literal
func (t *Table) Parse(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if value, ok := t.Value(text); ok {
		return value, true
	}
	if index := strings.LastIndexByte(text, '('); index > 0 && strings.HasSuffix(text, ")") {
		if value, ok := t.Value(text[:index]); ok {
			return value, true
		}
	}
	if value, err := strconv.ParseInt(text, 0, 64); err == nil {
		return value, true
	}
	return 0, false
}

// ParseFlags resolves labels separated by | or , into a bit set
func (t *Table) ParseFlags(text string) (int64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	if index := strings.LastIndexByte(text, '('); index > 0 && strings.HasSuffix(text, ")") {
		text = text[:index]
	}
	var result int64
	for _, part := range strings.FieldsFunc(text, func(r rune) bool { return r == '|' || r == ',' }) {
		value, ok := t.Parse(part)
		if !ok {
			return 0, false
		}
		result |= value
	}
	return result, true
}
