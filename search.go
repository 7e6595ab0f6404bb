package inspector

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search represents a case insensitive substring search over tree labels, types and texts
type Search struct {
	term    string
	matches []*Node
	current int
}

// Term returns folded search term
func (s *Search) Term() string {
	return s.term
}

// Matches returns matches in tree order
func (s *Search) Matches() []*Node {
	return s.matches
}

// Index returns current match index or -1
func (s *Search) Index() int {
	return s.current
}

// Current returns current match or nil
func (s *Search) Current() *Node {
	if s.current < 0 {
		return nil
	}
	return s.matches[s.current]
}

// Next moves to the next match, wrapping to the first one
func (s *Search) Next() *Node {
	if len(s.matches) == 0 {
		return nil
	}
	s.focus((s.current + 1) % len(s.matches))
	return s.Current()
}

// Previous moves to the previous match, wrapping to the last one
func (s *Search) Previous() *Node {
	if len(s.matches) == 0 {
		return nil
	}
	s.focus((s.current - 1 + len(s.matches)) % len(s.matches))
	return s.Current()
}

// focus highlights match, previous highlight is reset and ancestors are expanded
func (s *Search) focus(index int) {
	if previous := s.Current(); previous != nil {
		previous.Highlighted = false
	}
	s.current = index
	match := s.matches[index]
	match.Highlighted = true
	match.ExpandAncestors()
}

func (s *Search) collect(root *Node, caser cases.Caser) {
	root.Walk(func(node *Node, depth int) bool {
		for _, text := range []string{node.Label, node.TypeName, node.Text} {
			if strings.Contains(caser.String(text), s.term) {
				s.matches = append(s.matches, node)
				break
			}
		}
		return true
	})
}

// NewSearch collects matches of term and focuses the first one, blank term matches nothing
func NewSearch(root *Node, term string) *Search {
	caser := cases.Fold()
	ret := &Search{term: caser.String(strings.TrimSpace(term)), current: -1}
	if root == nil {
		return ret
	}
	root.Walk(func(node *Node, depth int) bool {
		node.Highlighted = false
		return true
	})
	if ret.term == "" {
		return ret
	}
	ret.collect(root, caser)
	if len(ret.matches) > 0 {
		ret.focus(0)
	}
	return ret
}
