package panel

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	indexBlockToken = iota
	dotTerminatorToken
)

var (
	indexBlockMatcher    = parsly.NewToken(indexBlockToken, "[ .... ]", matcher.NewBlock('[', ']', '\\'))
	dotTerminatorMatcher = parsly.NewToken(dotTerminatorToken, "dot", matcher.NewTerminator('.', true))
)
