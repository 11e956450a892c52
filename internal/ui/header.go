package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one labelled value shown in a header or result box.
// A slice of Params keeps its display order.
type Param struct {
	Key   string
	Value string
}

// Header represents a command header with title, command, and parameters.
type Header struct {
	Title   string  // e.g., "GENERATE ANAGRAMS"
	Command string  // e.g., "anagram-form generate"
	Params  []Param // e.g., Endpoint, Name
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params ...Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := clampWidth(h.Width)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	sections := []string{lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)}

	if len(h.Params) > 0 {
		dividerWidth := width - 6 // Account for border and padding
		sections = append(sections, RenderHorizontalDivider(dividerWidth, "─"))

		lines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			lines = append(lines, HeaderParamKeyStyle.Render(p.Key+":")+" "+HeaderParamValueStyle.Render(p.Value))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return HeaderBorderStyle(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
