// Package ui renders styled, non-interactive output for the anagram-form
// commands.
//
// Components follow a "print once" pattern: a Header describing the command,
// then a Result box (success list, validation warning, or failure with
// troubleshooting tips). The interactive form lives in package tui.
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Generate Anagrams", "anagram-form generate",
//	    ui.Param{Key: "Endpoint", Value: endpoint})
//	p.PrintAnagrams(resp.Anagrams)
//
// Logging is silent unless a level is configured, so zap output never
// interleaves with these boxes.
package ui
