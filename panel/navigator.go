package panel

import (
	"fmt"
	"sync"

	"github.com/viant/inspector/member"
	"github.com/viant/inspector/provider"
)

// Navigator represents a stack of drill down panels
type Navigator struct {
	ctx    *provider.Context
	mux    sync.Mutex
	panels []*Panel
}

// Context returns provider context
func (n *Navigator) Context() *provider.Context {
	return n.ctx
}

// Open clears the stack and opens a root panel
func (n *Navigator) Open(label string, value interface{}) *Panel {
	ret := n.newPanel(label, value, nil)
	n.mux.Lock()
	n.panels = []*Panel{ret}
	n.mux.Unlock()
	return ret
}

// DrillDown opens a child panel of the current panel for an expandable binding
func (n *Navigator) DrillDown(binding *provider.Binding) (*Panel, error) {
	if binding == nil {
		return nil, fmt.Errorf("binding was nil")
	}
	if !binding.IsExpandable() {
		return nil, fmt.Errorf("%v is not expandable", binding.Name)
	}
	ret := n.newPanel(binding.Name, binding.DrillTarget(), binding.Origin)
	n.mux.Lock()
	n.panels = append(n.panels, ret)
	n.mux.Unlock()
	return ret, nil
}

// Select goes back to tab at index, descendants are discarded and the tab is repopulated
func (n *Navigator) Select(index int) (*Panel, error) {
	n.mux.Lock()
	defer n.mux.Unlock()
	if index < 0 || index >= len(n.panels) {
		return nil, fmt.Errorf("invalid tab index: %v, tabs: %v", index, len(n.panels))
	}
	for i := index + 1; i < len(n.panels); i++ {
		n.panels[i] = nil
	}
	n.panels = n.panels[:index+1]
	ret := n.panels[index]
	ret.populate(n.ctx)
	return ret, nil
}

// Back selects the parent tab
func (n *Navigator) Back() (*Panel, error) {
	depth := n.Depth()
	if depth < 2 {
		return nil, fmt.Errorf("no parent tab")
	}
	return n.Select(depth - 2)
}

// Refresh repopulates the current panel
func (n *Navigator) Refresh() *Panel {
	n.mux.Lock()
	defer n.mux.Unlock()
	if len(n.panels) == 0 {
		return nil
	}
	ret := n.panels[len(n.panels)-1]
	ret.populate(n.ctx)
	return ret
}

// Current returns the top panel or nil
func (n *Navigator) Current() *Panel {
	n.mux.Lock()
	defer n.mux.Unlock()
	if len(n.panels) == 0 {
		return nil
	}
	return n.panels[len(n.panels)-1]
}

// Depth returns open panels count
func (n *Navigator) Depth() int {
	n.mux.Lock()
	defer n.mux.Unlock()
	return len(n.panels)
}

// Tabs returns open panel labels from the root
func (n *Navigator) Tabs() []string {
	n.mux.Lock()
	defer n.mux.Unlock()
	var result = make([]string, 0, len(n.panels))
	for _, aPanel := range n.panels {
		result = append(result, aPanel.Label)
	}
	return result
}

// Resolve resolves "a.b[2].c" path relative to the current panel
func (n *Navigator) Resolve(path string) (*provider.Binding, error) {
	current := n.Current()
	if current == nil {
		return nil, fmt.Errorf("nothing is inspected")
	}
	labels, err := SplitPath(path)
	if err != nil {
		return nil, err
	}
	bindings := current.Bindings()
	for i, label := range labels {
		binding := lookup(bindings, label)
		if binding == nil {
			return nil, fmt.Errorf("failed to resolve %v: member %v not found", path, label)
		}
		if i == len(labels)-1 {
			return binding, nil
		}
		if !binding.IsExpandable() {
			return nil, fmt.Errorf("failed to resolve %v: %v is not expandable", path, label)
		}
		bindings = provider.Populate(n.ctx, binding.DrillTarget(), binding.Origin)
	}
	return nil, fmt.Errorf("failed to resolve %v", path)
}

func (n *Navigator) newPanel(label string, value interface{}, origin *member.Origin) *Panel {
	ret := &Panel{Label: label, Title: Title(value), Target: value, Origin: origin}
	ret.populate(n.ctx)
	return ret
}

// New creates a navigator
func New(ctx *provider.Context) *Navigator {
	if ctx == nil {
		ctx = provider.NewContext(nil, nil, nil)
	}
	return &Navigator{ctx: ctx}
}
