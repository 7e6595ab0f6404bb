package hint

import (
	"strconv"
	"strings"

	"github.com/viant/inspector/enum"
	"github.com/viant/parsly"
)

// Host encoding codes
const (
	TypeInt        = 2
	TypeArray      = 28
	TypeDictionary = 27

	HintNone       = 0
	HintEnum       = 2
	HintFlags      = 6
	HintTypeString = 23
)

// Spec represents a decoded hint string: [<key>;][<type>/<hint>:]<body>
type Spec struct {
	Key       string
	Type      int
	Hint      int
	Body      string
	HasHeader bool
}

// String encodes spec back to a hint string
func (s *Spec) String() string {
	builder := strings.Builder{}
	if s.Key != "" {
		builder.WriteString(s.Key)
		builder.WriteByte(';')
	}
	if s.HasHeader {
		builder.WriteString(strconv.Itoa(s.Type))
		builder.WriteByte('/')
		builder.WriteString(strconv.Itoa(s.Hint))
		builder.WriteByte(':')
	}
	builder.WriteString(s.Body)
	return builder.String()
}

// IsFlags returns true if spec describes a bit-set
func (s *Spec) IsFlags() bool {
	return s.Hint == HintFlags
}

// Table returns label table for spec body, flags or enum depending on hint code
func (s *Spec) Table() *enum.Table {
	if s.IsFlags() {
		return parseBody(s.Body, true)
	}
	return parseBody(s.Body, false)
}

// Parse decodes a hint string, it returns false for malformed input
func Parse(text string) (*Spec, bool) {
	if text == "" {
		return nil, false
	}
	ret := &Spec{}
	cursor := parsly.NewCursor("", []byte(text), 0)
	if strings.IndexByte(text, ';') != -1 {
		match := cursor.MatchAny(keyTerminatorMatcher)
		if match.Code != keyTerminatorToken {
			return nil, false
		}
		key := match.Text(cursor)
		ret.Key = key[:len(key)-1]
		if strings.IndexByte(text[cursor.Pos:], ';') != -1 {
			return nil, false
		}
	}
	bodyStart := cursor.Pos
	match := cursor.MatchAny(headerTerminatorMatcher)
	switch match.Code {
	case headerTerminatorToken:
		header := match.Text(cursor)
		if typeCode, hintCode, ok := parseHeader(header[:len(header)-1]); ok {
			ret.Type, ret.Hint, ret.HasHeader = typeCode, hintCode, true
			bodyStart = cursor.Pos
		}
	default:
		if _, _, ok := parseHeader(text[cursor.Pos:]); ok {
			return nil, false //header without ':'
		}
	}
	ret.Body = text[bodyStart:]
	return ret, true
}

// ParseEnum parses "[2/2:]A,B:5,C", auto values continue from the previous explicit value
func ParseEnum(text string) *enum.Table {
	spec, ok := Parse(text)
	if !ok || spec.Key != "" || (spec.HasHeader && (spec.Type != TypeInt || spec.Hint != HintEnum)) {
		return enum.NewTable()
	}
	return parseBody(spec.Body, false)
}

// ParseFlags parses "[2/6:]A,B,C:16", auto values are 1 << position regardless of explicit values
func ParseFlags(text string) *enum.Table {
	spec, ok := Parse(text)
	if !ok || spec.Key != "" || (spec.HasHeader && (spec.Type != TypeInt || spec.Hint != HintFlags)) {
		return enum.NewTable()
	}
	return parseBody(spec.Body, true)
}

// ParseDictionaryValueEnum parses "<keyType>;2/2:A,B:5" used by typed dictionary values
func ParseDictionaryValueEnum(text string) *enum.Table {
	spec, ok := Parse(text)
	if !ok || spec.Key == "" || (spec.HasHeader && (spec.Type != TypeInt || spec.Hint != HintEnum)) {
		return enum.NewTable()
	}
	return parseBody(spec.Body, false)
}

func parseHeader(header string) (int, int, bool) {
	typeText, hintText, ok := strings.Cut(header, "/")
	if !ok {
		return 0, 0, false
	}
	typeCode, err := strconv.Atoi(typeText)
	if err != nil {
		return 0, 0, false
	}
	hintCode, err := strconv.Atoi(hintText)
	if err != nil {
		return 0, 0, false
	}
	return typeCode, hintCode, true
}

func parseBody(body string, flags bool) *enum.Table {
	ret := enum.NewTable()
	if body == "" {
		return ret
	}
	var value, autoValue int64 = 0, 1
	cursor := parsly.NewCursor("", []byte(body), 0)
	for cursor.Pos < len(cursor.Input) {
		element := matchElement(cursor)
		label, literal, hasValue := strings.Cut(element, ":")
		label = strings.TrimSpace(label)
		if label == "" || strings.Contains(literal, ":") {
			return enum.NewTable()
		}
		current := value
		if flags {
			current = autoValue
		}
		if hasValue {
			explicit, err := strconv.ParseInt(strings.TrimSpace(literal), 10, 64)
			if err != nil {
				return enum.NewTable()
			}
			current = explicit
		}
		ret.Add(label, current)
		value = current + 1
		autoValue <<= 1
	}
	return ret
}

func matchElement(cursor *parsly.Cursor) string {
	value := ""
	match := cursor.MatchAny(comaTerminatorMatcher)
	switch match.Code {
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1] //exclude ,
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return value
}
