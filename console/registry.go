package console

import (
	"fmt"
	"sort"
	"sync"

	"github.com/viant/inspector/variant"
)

type (
	// Command represents a console command, arguments are loosely typed text variants
	Command func(args []variant.Variant) error

	// Definition represents a registered command
	Definition struct {
		Name    string
		Usage   string
		Command Command
	}

	// Registry maps exact, case sensitive command names to commands
	Registry struct {
		mux      sync.RWMutex
		commands map[string]*Definition
	}
)

// Register registers or replaces a command
func (r *Registry) Register(name, usage string, command Command) error {
	if name == "" {
		return fmt.Errorf("command name was empty")
	}
	if command == nil {
		return fmt.Errorf("command %v was nil", name)
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	r.commands[name] = &Definition{Name: name, Usage: usage, Command: command}
	return nil
}

// Lookup returns command definition
func (r *Registry) Lookup(name string) (*Definition, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret, ok := r.commands[name]
	return ret, ok
}

// Definitions returns definitions sorted by name
func (r *Registry) Definitions() []*Definition {
	r.mux.RLock()
	var result = make([]*Definition, 0, len(r.commands))
	for _, definition := range r.commands {
		result = append(result, definition)
	}
	r.mux.RUnlock()
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{commands: map[string]*Definition{}}
}
