package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	pairEndToken = iota
	keyEndToken
	blockToken
	quotedToken
)

var (
	pairEndMatcher = parsly.NewToken(pairEndToken, ",", matcher.NewTerminator(',', true))
	keyEndMatcher  = parsly.NewToken(keyEndToken, "=", matcher.NewTerminator('=', true))
	blockMatcher   = parsly.NewToken(blockToken, "{...}", matcher.NewBlock('{', '}', '\\'))
	quotedMatcher  = parsly.NewToken(quotedToken, "'...'", matcher.NewQuote('\'', '\\'))
)

// matchPairs calls onMatch for each key[=value] option, empty options are skipped
func matchPairs(encoded string, onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(encoded), 0)
	for cursor.Pos < len(cursor.Input) {
		pos := cursor.Pos
		key, value := matchPair(cursor)
		if cursor.Pos == pos {
			break
		}
		if key == "" {
			continue
		}
		if err := onMatch(key, value); err != nil {
			return err
		}
	}
	return nil
}

// matchPair matches key[=value] terminated by a comma or end of input
func matchPair(cursor *parsly.Cursor) (string, string) {
	for cursor.Pos < len(cursor.Input) && cursor.Input[cursor.Pos] == ' ' {
		cursor.Pos++
	}
	rest := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(rest, '=')
	comaIndex := bytes.IndexByte(rest, ',')
	if eqIndex == -1 || (comaIndex != -1 && comaIndex < eqIndex) {
		return strings.TrimSpace(matchValue(cursor)), ""
	}
	match := cursor.MatchAny(keyEndMatcher)
	if match.Code != keyEndToken {
		return "", ""
	}
	key := match.Text(cursor)
	key = strings.TrimSpace(key[:len(key)-1])
	return key, matchValue(cursor)
}

func matchValue(cursor *parsly.Cursor) string {
	value := ""
	match := cursor.MatchAny(blockMatcher, quotedMatcher, pairEndMatcher)
	switch match.Code {
	case blockToken, quotedToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAny(pairEndMatcher)
	case pairEndToken:
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
