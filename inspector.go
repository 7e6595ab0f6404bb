package inspector

import (
	"sync"

	"github.com/viant/inspector/coerce"
	"github.com/viant/inspector/member"
)

// RootLabel labels the inspected value when no scene is set
const RootLabel = "root"

// Inspector builds and keeps the object tree of a scene or a value
type Inspector struct {
	builder *Builder
	scene   SceneNode
	label   string
	value   interface{}
	mux     sync.Mutex
	visible bool
	root    *Node
	search  *Search
}

// Builder returns tree builder
func (i *Inspector) Builder() *Builder {
	return i.builder
}

// Inspect sets inspected value, scene takes precedence when set
func (i *Inspector) Inspect(label string, value interface{}) {
	i.mux.Lock()
	i.label, i.value = label, value
	i.mux.Unlock()
}

// BuildTree rebuilds the tree with a fresh visited set, search state is reset
func (i *Inspector) BuildTree() *Node {
	i.mux.Lock()
	defer i.mux.Unlock()
	if i.scene != nil {
		i.root = i.builder.BuildScene(i.scene)
	} else {
		i.root = i.builder.Build(i.value, i.label, NewVisited(), nil)
	}
	i.search = nil
	return i.root
}

// Root returns last built tree
func (i *Inspector) Root() *Node {
	i.mux.Lock()
	defer i.mux.Unlock()
	return i.root
}

// Visible returns true if inspector is shown
func (i *Inspector) Visible() bool {
	i.mux.Lock()
	defer i.mux.Unlock()
	return i.visible
}

// SetVisible sets visibility, the tree is rebuilt when it becomes shown
func (i *Inspector) SetVisible(visible bool) {
	i.mux.Lock()
	shown := visible && !i.visible
	i.visible = visible
	i.mux.Unlock()
	if shown {
		i.RefreshOnShow()
	}
}

// RefreshOnShow rebuilds the tree if inspector is shown
func (i *Inspector) RefreshOnShow() {
	if i.Visible() {
		i.BuildTree()
	}
}

// SetScriptSettings changes script object settings, a shown inspector is rebuilt
func (i *Inspector) SetScriptSettings(showEnumName, showScriptProperties bool) {
	i.mux.Lock()
	i.builder.ShowScriptEnumName = showEnumName
	i.builder.ShowScriptProperties = showScriptProperties
	i.mux.Unlock()
	i.RefreshOnShow()
}

// Find starts a new search over the current tree
func (i *Inspector) Find(term string) *Search {
	root := i.Root()
	if root == nil {
		root = i.BuildTree()
	}
	search := NewSearch(root, term)
	i.mux.Lock()
	i.search = search
	i.mux.Unlock()
	return search
}

// Search returns active search or nil
func (i *Inspector) Search() *Search {
	i.mux.Lock()
	defer i.mux.Unlock()
	return i.search
}

// New creates an inspector
func New(opts ...Option) *Inspector {
	ret := &Inspector{label: RootLabel, builder: &Builder{ShowScriptProperties: true}}
	Options(opts).Apply(ret)
	if ret.builder.Members == nil {
		ret.builder.Members = member.NewRegistry(nil)
	}
	if ret.builder.Converter == nil {
		ret.builder.Converter = coerce.NewConverter(coerce.DefaultOptions())
	}
	return ret
}
