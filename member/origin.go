package member

import "github.com/viant/inspector/enum"

// Origin carries typing hints of the member a value came from
type Origin struct {
	//Table resolves enum or flag labels for dynamically typed integers
	Table *enum.Table
	Flags bool
	//ElementTable resolves labels of collection elements or dictionary values
	ElementTable *enum.Table
	ElementFlags bool
	//EnumName is script enum class name, i.e. Window.Mode
	EnumName string
	//ClassName is script class of composite value
	ClassName  string
	ReadOnly   bool
	TimeLayout string
}

// HasTable returns true if origin carries a non empty label table
func (o *Origin) HasTable() bool {
	return o != nil && !o.Table.IsEmpty()
}

// Element returns origin for collection elements
func (o *Origin) Element(readOnly bool) *Origin {
	if o == nil {
		if !readOnly {
			return nil
		}
		return &Origin{ReadOnly: true}
	}
	return &Origin{Table: o.ElementTable, Flags: o.ElementFlags, ReadOnly: readOnly || o.ReadOnly, TimeLayout: o.TimeLayout}
}

// IsReadOnly returns true if value came from read-only container
func (o *Origin) IsReadOnly() bool {
	return o != nil && o.ReadOnly
}

// Layout returns time layout or empty
func (o *Origin) Layout() string {
	if o == nil {
		return ""
	}
	return o.TimeLayout
}
