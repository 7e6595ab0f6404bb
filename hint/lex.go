package hint

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	keyTerminatorToken = iota
	headerTerminatorToken
	comaTerminatorToken
)

var (
	keyTerminatorMatcher    = parsly.NewToken(keyTerminatorToken, "semicolon", matcher.NewTerminator(';', true))
	headerTerminatorMatcher = parsly.NewToken(headerTerminatorToken, "colon", matcher.NewTerminator(':', true))
	comaTerminatorMatcher   = parsly.NewToken(comaTerminatorToken, "coma", matcher.NewTerminator(',', true))
)
