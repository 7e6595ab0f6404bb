package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/viant/inspector"
	"github.com/viant/inspector/panel"
)

// HighlightColor colors the current search match
const HighlightColor = "#E6B31A"

const indent = "  "

// Renderer renders trees, panels and log lines for a terminal writer
type Renderer struct {
	label     lipgloss.Style
	typeName  lipgloss.Style
	highlight lipgloss.Style
	cyclic    lipgloss.Style
	title     lipgloss.Style
	category  lipgloss.Style
	readOnly  lipgloss.Style
	warning   lipgloss.Style
	failure   lipgloss.Style
}

// Tree renders node with its expanded descendants, one node per line
func (r *Renderer) Tree(root *inspector.Node) string {
	if root == nil {
		return ""
	}
	builder := strings.Builder{}
	r.node(&builder, root, 0)
	return strings.TrimSuffix(builder.String(), "\n")
}

func (r *Renderer) node(builder *strings.Builder, node *inspector.Node, depth int) {
	builder.WriteString(strings.Repeat(indent, depth))
	marker := " "
	switch {
	case node.IsLeaf():
	case node.Collapsed:
		marker = "+"
	default:
		marker = "-"
	}
	line := marker + " " + node.Label
	if node.Text != "" {
		line += ": " + oneLine(node.Text)
	}
	switch {
	case node.Highlighted:
		builder.WriteString(r.highlight.Render(line))
	case node.Cyclic:
		builder.WriteString(r.cyclic.Render(line))
	default:
		builder.WriteString(r.label.Render(line))
	}
	builder.WriteString(" ")
	builder.WriteString(r.typeName.Render("[" + oneLine(node.TypeName) + "]"))
	builder.WriteString("\n")
	if node.Collapsed {
		return
	}
	for _, child := range node.Children {
		r.node(builder, child, depth+1)
	}
}

// Panel renders panel title, tabs and member groups
func (r *Renderer) Panel(aPanel *panel.Panel, tabs []string) string {
	if aPanel == nil {
		return ""
	}
	builder := strings.Builder{}
	builder.WriteString(r.title.Render(aPanel.Title))
	if len(tabs) > 0 {
		builder.WriteString("\n")
		builder.WriteString(r.typeName.Render(strings.Join(tabs, " > ")))
	}
	for _, group := range aPanel.Groups {
		builder.WriteString("\n")
		builder.WriteString(r.category.Render("[" + group.Category.String() + "]"))
		for _, binding := range group.Bindings {
			builder.WriteString("\n")
			builder.WriteString(indent)
			if binding.Method != nil {
				builder.WriteString(binding.Text())
				continue
			}
			builder.WriteString(binding.Name)
			builder.WriteString(" = ")
			builder.WriteString(oneLine(binding.Text()))
			if binding.IsExpandable() {
				builder.WriteString(" >")
			}
			if !binding.Editor.Editable() {
				builder.WriteString(" ")
				builder.WriteString(r.readOnly.Render("(read-only)"))
			}
		}
	}
	return builder.String()
}

// Info renders info text
func (r *Renderer) Info(text string) string {
	return text
}

// Warning renders warning text
func (r *Renderer) Warning(text string) string {
	return r.warning.Render(text)
}

// Error renders error text
func (r *Renderer) Error(text string) string {
	return r.failure.Render(text)
}

func oneLine(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}

// New creates a renderer detecting color support of w
func New(w io.Writer) *Renderer {
	renderer := lipgloss.NewRenderer(w)
	return &Renderer{
		label:     renderer.NewStyle(),
		typeName:  renderer.NewStyle().Foreground(lipgloss.Color("240")),
		highlight: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(HighlightColor)),
		cyclic:    renderer.NewStyle().Foreground(lipgloss.Color("208")),
		title:     renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		category:  renderer.NewStyle().Bold(true),
		readOnly:  renderer.NewStyle().Foreground(lipgloss.Color("240")),
		warning:   renderer.NewStyle().Foreground(lipgloss.Color("220")),
		failure:   renderer.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
