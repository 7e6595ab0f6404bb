package inspector

import (
	"strings"

	"github.com/viant/inspector/member"
)

// Node represents an inspected tree node
type Node struct {
	Label    string
	TypeName string
	//Text is the rendered value
	Text string
	//Value is the live value, reference kinds are shared, never copied
	Value       interface{}
	Class       member.Class
	Cyclic      bool
	Collapsed   bool
	Highlighted bool
	Parent      *Node
	Children    []*Node
}

// Add appends child, nil child is ignored
func (n *Node) Add(child *Node) *Node {
	if child == nil {
		return nil
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Walk visits node and descendants in tree order until fn returns false
func (n *Node) Walk(fn func(node *Node, depth int) bool) bool {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Child returns child with supplied label
func (n *Node) Child(label string) *Node {
	for _, child := range n.Children {
		if child.Label == label {
			return child
		}
	}
	return nil
}

// Lookup returns descendant addressed by "/" separated labels, relative to n
func (n *Node) Lookup(path string) *Node {
	node := n
	for _, label := range strings.Split(path, "/") {
		if label == "" {
			continue
		}
		if node = node.Child(label); node == nil {
			return nil
		}
	}
	return node
}

// Path returns "/" separated labels from the root
func (n *Node) Path() string {
	var labels []string
	for node := n; node != nil; node = node.Parent {
		labels = append(labels, node.Label)
	}
	builder := strings.Builder{}
	for i := len(labels) - 1; i >= 0; i-- {
		builder.WriteByte('/')
		builder.WriteString(labels[i])
	}
	return builder.String()
}

// ExpandAncestors expands all ancestors so that node is visible
func (n *Node) ExpandAncestors() {
	for node := n.Parent; node != nil; node = node.Parent {
		node.Collapsed = false
	}
}

// IsLeaf returns true if node has no children
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}
