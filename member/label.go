package member

import (
	"reflect"
	"time"

	"github.com/viant/inspector/tags"
	"github.com/viant/tagly/format"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/tagly/format/text"
)

// DefaultTimeLayout is used to render and parse time values
const DefaultTimeLayout = time.RFC3339

// label returns field display name and time layout,
// inspect name wins over format name or case, registry case format applies otherwise
func (r *Registry) label(structField reflect.StructField, tag *tags.Tag) (string, string) {
	name := structField.Name
	layout := ""
	formatTag, err := format.Parse(structField.Tag)
	if err == nil && formatTag != nil {
		if formatTag.TimeLayout != "" {
			layout = formatTag.TimeLayout
		} else if formatTag.DateFormat != "" {
			layout = ftime.DateFormatToTimeLayout(formatTag.DateFormat)
		}
	}
	switch {
	case tag.Name != "":
		return tag.Name, layout
	case formatTag != nil && (formatTag.Name != "" || formatTag.CaseFormat != ""):
		aTag := &format.Tag{Name: formatTag.Name, CaseFormat: formatTag.CaseFormat}
		if aTag.Name == "" {
			aTag.Name = name
		}
		if formatted := aTag.CaseFormatName(""); formatted != "" {
			return formatted, layout
		}
	case r.CaseFormat.IsDefined():
		return FormatName(name, r.CaseFormat), layout
	}
	return name, layout
}

// FormatName formats Go member name with supplied case format
func FormatName(name string, caseFormat text.CaseFormat) string {
	if !caseFormat.IsDefined() {
		return name
	}
	return text.DetectCaseFormat(name).Format(name, caseFormat)
}

// Layout returns layout or default time layout
func Layout(layout string) string {
	if layout == "" {
		return DefaultTimeLayout
	}
	return layout
}
