package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/viant/inspector/render"
	"github.com/viant/inspector/variant"
)

// Level represents output line level
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
	LevelRaw
	LevelRawError
)

// DefaultTimeLayout formats line timestamps
const DefaultTimeLayout = "2006-01-02 15:04:05"

// String returns level tag
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	}
	return ""
}

// Line represents an output line
type Line struct {
	Level Level
	Text  string
}

// Console executes commands and keeps output lines and command history
type Console struct {
	registry     *Registry
	renderer     *render.Renderer
	output       io.Writer
	now          func() time.Time
	timeLayout   string
	historyLimit int
	mux          sync.Mutex
	lines        []Line
	history      []string
	historyIndex int
	input        string
}

// Registry returns command registry
func (c *Console) Registry() *Registry {
	return c.registry
}

// Renderer returns output renderer
func (c *Console) Renderer() *render.Renderer {
	return c.renderer
}

// Execute splits line on whitespace and runs the named command with remaining tokens as text variants
func (c *Console) Execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	c.record(line)
	name := tokens[0]
	definition, ok := c.registry.Lookup(name)
	if !ok {
		c.PrintRawError("Invalid command : " + name)
		return fmt.Errorf("invalid command: %v", name)
	}
	var args = make([]variant.Variant, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		args = append(args, variant.FromText(token))
	}
	if err := run(definition, args); err != nil {
		c.PrintError(err.Error())
		if definition.Usage != "" {
			c.PrintRaw("Usage: " + definition.Usage)
		}
		return err
	}
	return nil
}

func run(definition *Definition, args []variant.Variant) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v failed: %v", definition.Name, r)
		}
	}()
	return definition.Command(args)
}

func (c *Console) record(line string) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.history = append(c.history, line)
	if c.historyLimit > 0 && len(c.history) > c.historyLimit {
		c.history = c.history[len(c.history)-c.historyLimit:]
	}
	c.historyIndex = -1
	c.input = ""
}

// History returns executed lines, oldest first
func (c *Console) History() []string {
	c.mux.Lock()
	defer c.mux.Unlock()
	return append([]string{}, c.history...)
}

// Input returns current input text
func (c *Console) Input() string {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.input
}

// SetInput sets current input text
func (c *Console) SetInput(text string) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.input = text
}

// Up moves to the previous history entry, from the fresh input it starts at the latest one
func (c *Console) Up() string {
	return c.navigate(-1)
}

// Down moves to the next history entry, moving past the latest one clears the input
func (c *Console) Down() string {
	return c.navigate(1)
}

func (c *Console) navigate(direction int) string {
	c.mux.Lock()
	defer c.mux.Unlock()
	if len(c.history) == 0 {
		return c.input
	}
	if direction < 0 {
		if c.historyIndex == -1 {
			c.historyIndex = len(c.history) - 1
		} else {
			c.historyIndex = max(c.historyIndex-1, -1)
		}
	} else {
		c.historyIndex = min(c.historyIndex+1, len(c.history))
	}
	if c.historyIndex == -1 || c.historyIndex >= len(c.history) {
		c.historyIndex = -1
		c.input = ""
		return c.input
	}
	c.input = c.history[c.historyIndex]
	return c.input
}

// Print prints a timestamped info line
func (c *Console) Print(message ...interface{}) {
	c.print(LevelInfo, fmt.Sprint(message...))
}

// PrintWarning prints a timestamped warning line
func (c *Console) PrintWarning(message ...interface{}) {
	c.print(LevelWarning, fmt.Sprint(message...))
}

// PrintError prints a timestamped error line
func (c *Console) PrintError(message ...interface{}) {
	c.print(LevelError, fmt.Sprint(message...))
}

// PrintRaw prints message without timestamp
func (c *Console) PrintRaw(message string) {
	c.print(LevelRaw, message)
}

// PrintRawError prints error message without timestamp
func (c *Console) PrintRawError(message string) {
	c.print(LevelRawError, message)
}

// Report implements member.Reporter
func (c *Console) Report(err error) {
	if err != nil {
		c.PrintError(err.Error())
	}
}

func (c *Console) print(level Level, message string) {
	text := message
	if level < LevelRaw {
		text = "[" + c.now().Format(c.timeLayout) + "][" + level.String() + "]: " + message
	}
	c.mux.Lock()
	c.lines = append(c.lines, Line{Level: level, Text: text})
	c.mux.Unlock()
	if c.output == nil {
		return
	}
	switch level {
	case LevelWarning:
		text = c.renderer.Warning(text)
	case LevelError, LevelRawError:
		text = c.renderer.Error(text)
	}
	fmt.Fprintln(c.output, text)
}

// Lines returns output lines
func (c *Console) Lines() []Line {
	c.mux.Lock()
	defer c.mux.Unlock()
	return append([]Line{}, c.lines...)
}

// Text returns output lines joined with new line
func (c *Console) Text() string {
	lines := c.Lines()
	var texts = make([]string, 0, len(lines))
	for _, line := range lines {
		texts = append(texts, line.Text)
	}
	return strings.Join(texts, "\n")
}

// Clear clears output lines
func (c *Console) Clear() {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.lines = nil
}

// New creates a console with help and clear commands
func New(opts ...Option) *Console {
	ret := &Console{registry: NewRegistry(), now: time.Now, timeLayout: DefaultTimeLayout, historyIndex: -1}
	Options(opts).Apply(ret)
	writer := ret.output
	if writer == nil {
		writer = io.Discard
	}
	ret.renderer = render.New(writer)
	ret.registerBuiltins()
	return ret
}
