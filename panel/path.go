package panel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

// SplitPath splits "a.b[2].c" into member labels "a", "b", "[2]", "c"
func SplitPath(path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("path was empty")
	}
	cursor := parsly.NewCursor("", []byte(path), 0)
	var result []string
	for cursor.Pos < len(cursor.Input) {
		pos := cursor.Pos
		switch cursor.Input[pos] {
		case '[':
			match := cursor.MatchAny(indexBlockMatcher)
			if match.Code != indexBlockToken {
				return nil, fmt.Errorf("invalid path %v: unterminated index at %v", path, pos)
			}
			result = append(result, match.Text(cursor))
			if cursor.Pos < len(cursor.Input) && cursor.Input[cursor.Pos] == '.' {
				cursor.Pos++
				if cursor.Pos == len(cursor.Input) {
					return nil, fmt.Errorf("invalid path %v: trailing dot", path)
				}
			}
			continue
		case '.':
			return nil, fmt.Errorf("invalid path %v: empty name at %v", path, pos)
		}
		name := matchName(cursor)
		if name == "" {
			return nil, fmt.Errorf("invalid path %v: empty name at %v", path, pos)
		}
		result = append(result, name)
	}
	return result, nil
}

// matchName matches a name terminated by dot, index or end of input
func matchName(cursor *parsly.Cursor) string {
	rest := cursor.Input[cursor.Pos:]
	indexPos := bytes.IndexByte(rest, '[')
	dotPos := bytes.IndexByte(rest, '.')
	if indexPos != -1 && (dotPos == -1 || indexPos < dotPos) {
		cursor.Pos += indexPos
		return string(rest[:indexPos])
	}
	match := cursor.MatchAny(dotTerminatorMatcher)
	if match.Code == dotTerminatorToken {
		name := match.Text(cursor)
		if cursor.Pos == len(cursor.Input) {
			return ""
		}
		return name[:len(name)-1] //exclude .
	}
	cursor.Pos = len(cursor.Input)
	return string(rest)
}
