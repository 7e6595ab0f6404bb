package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/inspector"
	"github.com/viant/inspector/panel"
	"github.com/viant/inspector/provider"
	"github.com/viant/inspector/variant"
)

// Session binds inspector services to console commands
type Session struct {
	Inspector *inspector.Inspector
	Navigator *panel.Navigator
}

func (c *Console) registerBuiltins() {
	c.register("help", "help", c.help)
	c.register("clear", "clear", func(args []variant.Variant) error {
		c.Clear()
		return nil
	})
}

func (c *Console) register(name, usage string, command Command) {
	_ = c.registry.Register(name, usage, command)
}

func (c *Console) help(args []variant.Variant) error {
	for _, definition := range c.registry.Definitions() {
		c.PrintRaw(definition.Usage)
	}
	return nil
}

// Attach registers tree, search and member commands operating on session
func (c *Console) Attach(session *Session) error {
	if session == nil || session.Inspector == nil || session.Navigator == nil {
		return fmt.Errorf("session requires inspector and navigator")
	}
	s := &commands{console: c, session: session}
	c.register("tree", "tree [node/path]", s.tree)
	c.register("find", "find <term>", s.find)
	c.register("next", "next", s.next)
	c.register("prev", "prev", s.prev)
	c.register("inspect", "inspect [/node/path | member.path]", s.inspect)
	c.register("back", "back", s.back)
	c.register("members", "members", s.members)
	c.register("get", "get <member.path>", s.get)
	c.register("set", "set <member.path> <value>", s.set)
	c.register("call", "call <member.path> [args...]", s.call)
	c.register("pins", "pins", s.pins)
	return nil
}

type commands struct {
	console *Console
	session *Session
}

func (s *commands) tree(args []variant.Variant) error {
	node := s.session.Inspector.BuildTree()
	if len(args) > 0 {
		path := args[0].String()
		if node = lookupNode(node, path); node == nil {
			return fmt.Errorf("node %v not found", path)
		}
	}
	s.console.PrintRaw(s.console.renderer.Tree(node))
	return nil
}

func (s *commands) find(args []variant.Variant) error {
	if len(args) == 0 {
		return fmt.Errorf("search term was empty")
	}
	search := s.session.Inspector.Find(join(args))
	return s.printMatch(search, search.Current())
}

func (s *commands) next(args []variant.Variant) error {
	search := s.session.Inspector.Search()
	if search == nil {
		return fmt.Errorf("no active search")
	}
	return s.printMatch(search, search.Next())
}

func (s *commands) prev(args []variant.Variant) error {
	search := s.session.Inspector.Search()
	if search == nil {
		return fmt.Errorf("no active search")
	}
	return s.printMatch(search, search.Previous())
}

func (s *commands) printMatch(search *inspector.Search, node *inspector.Node) error {
	if node == nil {
		s.console.PrintWarning("no match for ", search.Term())
		return nil
	}
	s.console.PrintRaw(fmt.Sprintf("match %v/%v: %v", search.Index()+1, len(search.Matches()), node.Path()))
	return nil
}

func (s *commands) inspect(args []variant.Variant) error {
	navigator := s.session.Navigator
	if len(args) == 0 {
		root := s.session.Inspector.BuildTree()
		return s.open(root)
	}
	path := args[0].String()
	if strings.HasPrefix(path, "/") {
		node := lookupNode(s.session.Inspector.BuildTree(), path)
		if node == nil {
			return fmt.Errorf("node %v not found", path)
		}
		return s.open(node)
	}
	binding, err := navigator.Resolve(path)
	if err != nil {
		return err
	}
	if _, err = navigator.DrillDown(binding); err != nil {
		return err
	}
	return s.members(nil)
}

func (s *commands) open(node *inspector.Node) error {
	value := node.Value
	if boxed, ok := value.(variant.Variant); ok {
		value = boxed.Unwrap()
	}
	if value == nil {
		return fmt.Errorf("%v is null", node.Label)
	}
	s.session.Navigator.Open(node.Label, value)
	return s.members(nil)
}

func (s *commands) back(args []variant.Variant) error {
	if _, err := s.session.Navigator.Back(); err != nil {
		return err
	}
	return s.members(nil)
}

func (s *commands) members(args []variant.Variant) error {
	navigator := s.session.Navigator
	current := navigator.Refresh()
	if current == nil {
		return fmt.Errorf("nothing is inspected")
	}
	s.console.PrintRaw(s.console.renderer.Panel(current, navigator.Tabs()))
	return nil
}

func (s *commands) get(args []variant.Variant) error {
	binding, err := s.resolve(args, 1)
	if err != nil {
		return err
	}
	s.console.PrintRaw(args[0].String() + " = " + binding.Text())
	return nil
}

func (s *commands) set(args []variant.Variant) error {
	binding, err := s.resolve(args, 2)
	if err != nil {
		return err
	}
	if binding.Method != nil {
		return fmt.Errorf("%v is a method", binding.Name)
	}
	if err = binding.Editor.Submit(join(args[1:])); err != nil {
		return err
	}
	s.console.PrintRaw(args[0].String() + " = " + binding.Text())
	return nil
}

func (s *commands) call(args []variant.Variant) error {
	binding, err := s.resolve(args, 1)
	if err != nil {
		return err
	}
	if binding.Method == nil {
		return fmt.Errorf("%v is not a method", binding.Name)
	}
	var values = make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		values = append(values, arg.String())
	}
	result, err := binding.Method.Invoke(values...)
	if err != nil {
		return err
	}
	converter := s.session.Navigator.Context().Converter
	var texts []string
	for _, item := range result {
		if _, ok := item.(error); ok {
			continue
		}
		texts = append(texts, converter.Format(item))
	}
	s.console.PrintRaw(binding.Method.Signature + " => " + strings.Join(texts, ", "))
	return nil
}

func (s *commands) pins(args []variant.Variant) error {
	ctx := s.session.Navigator.Context()
	values := ctx.Clipboard.Values()
	if len(values) == 0 {
		s.console.PrintRaw("no pinned values")
		return nil
	}
	for i, value := range values {
		s.console.PrintRaw("#" + strconv.Itoa(i) + " = " + ctx.Converter.Format(value))
	}
	return nil
}

func (s *commands) resolve(args []variant.Variant, required int) (*provider.Binding, error) {
	if len(args) < required {
		return nil, fmt.Errorf("expected at least %v arguments, but had %v", required, len(args))
	}
	return s.session.Navigator.Resolve(args[0].String())
}

// lookupNode resolves "/" separated labels, an absolute path starts with the root label
func lookupNode(root *inspector.Node, path string) *inspector.Node {
	if strings.HasPrefix(path, "/") {
		label, rest, _ := strings.Cut(path[1:], "/")
		if label != root.Label {
			return nil
		}
		path = rest
	}
	return root.Lookup(path)
}

func join(args []variant.Variant) string {
	var texts = make([]string, 0, len(args))
	for _, arg := range args {
		texts = append(texts, arg.String())
	}
	return strings.Join(texts, " ")
}
