package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Printer writes styled components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width)
	return p
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Param) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintResult prints any result box at the printer's width
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}

// PrintAnagrams prints the anagram list in response order
func (p *Printer) PrintAnagrams(anagrams []string) {
	title := fmt.Sprintf("%d anagrams generated", len(anagrams))
	if len(anagrams) == 1 {
		title = "1 anagram generated"
	}
	p.PrintResult(NewListResult(title, anagrams, "The service returned no anagrams."))
}

// PrintFieldErrors prints per-field validation messages, skipping empty ones
func (p *Printer) PrintFieldErrors(fields ...Param) {
	var details []Param
	for _, f := range fields {
		if f.Value != "" {
			details = append(details, f)
		}
	}
	p.PrintResult(NewWarningResult("Input is not valid", details...))
}

// PrintError prints a failure result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.PrintResult(NewFailureResult(title, err, troubleshooting))
}

// PrintSuccess prints a success result box with details
func (p *Printer) PrintSuccess(title string, details ...Param) {
	p.PrintResult(NewSuccessResult(title, details...))
}

// PrintJSON writes v as indented JSON
func (p *Printer) PrintJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
