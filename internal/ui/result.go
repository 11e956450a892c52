package ui

import (
	"fmt"
	"strings"
)

// ResultType indicates success, failure, or warning
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result represents a result box.
type Result struct {
	Type            ResultType
	Title           string   // e.g., "2 anagrams generated"
	Details         []Param  // Key-value details, shown in order
	Items           []string // Numbered list, shown in order
	EmptyText       string   // Shown instead of Items when Items is empty and non-nil
	Error           error    // Error (for failure results)
	Troubleshooting []string // Troubleshooting tips (for failure results)
	Width           int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewListResult creates a success result box listing items in the given order
func NewListResult(title string, items []string, emptyText string) *Result {
	if items == nil {
		items = []string{}
	}
	return &Result{
		Type:      ResultSuccess,
		Title:     title,
		Items:     items,
		EmptyText: emptyText,
		Width:     GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	lines := []string{r.renderTitle(), ""}

	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
	}

	if r.Items != nil {
		if len(r.Items) == 0 && r.EmptyText != "" {
			lines = append(lines, "   "+EmptyListStyle.Render(r.EmptyText))
		}
		for i, item := range r.Items {
			lines = append(lines, ListIndexStyle.Render(fmt.Sprintf("%d.", i+1))+" "+ListItemStyle.Render(item))
		}
		lines = append(lines, "")
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Troubleshooting) > 0 {
		tips := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
		for _, tip := range r.Troubleshooting {
			tips = append(tips, TroubleshootingItemStyle.Render("  • "+tip))
		}
		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(tips, "\n")), "")
	}

	return ResultBoxStyle(r.Type, width).Render(strings.Join(lines, "\n"))
}

func (r *Result) renderTitle() string {
	switch r.Type {
	case ResultFailure:
		return ErrorTitleStyle.Render("   " + FailureMarker + "  FAILED  ─  " + r.Title)
	case ResultWarning:
		return WarningTitleStyle.Render("   " + WarningMarker + "  WARNING  ─  " + r.Title)
	default:
		return SuccessTitleStyle.Render("   " + SuccessMarker + "  SUCCESS  ─  " + r.Title)
	}
}
