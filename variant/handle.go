package variant

import "strings"

// Handle represents an opaque leaf value rendered by its text and never expanded
type Handle interface {
	HandleText() string
}

// Name represents an interned name handle
type Name struct {
	text string
}

// NewName creates a name handle
func NewName(text string) *Name {
	return &Name{text: text}
}

// HandleText returns name text
func (n *Name) HandleText() string {
	if n == nil {
		return ""
	}
	return n.text
}

// IsEmpty returns true if name is empty
func (n *Name) IsEmpty() bool {
	return n.HandleText() == ""
}

// String returns name text
func (n *Name) String() string {
	return n.HandleText()
}

// Path represents a node path handle, i.e. /root/World/Player or ../Sibling
type Path struct {
	names    []string
	absolute bool
}

// NewPath parses a node path
func NewPath(text string) *Path {
	ret := &Path{absolute: strings.HasPrefix(text, "/")}
	for _, name := range strings.Split(text, "/") {
		if name == "" {
			continue
		}
		ret.names = append(ret.names, name)
	}
	return ret
}

// Names returns path names
func (p *Path) Names() []string {
	if p == nil {
		return nil
	}
	return p.names
}

// IsAbsolute returns true for absolute path
func (p *Path) IsAbsolute() bool {
	return p != nil && p.absolute
}

// IsEmpty returns true if path has no names
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.names) == 0
}

// HandleText returns path text
func (p *Path) HandleText() string {
	if p == nil {
		return ""
	}
	text := strings.Join(p.names, "/")
	if p.absolute {
		return "/" + text
	}
	return text
}

// String returns path text
func (p *Path) String() string {
	return p.HandleText()
}

// IsEmptyHandle returns true if handle renders as empty text
func IsEmptyHandle(h Handle) bool {
	return h == nil || h.HandleText() == ""
}
