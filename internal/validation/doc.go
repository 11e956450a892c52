// Package validation implements the field rules for the anagram request form.
//
// Validate is a pure function of the two raw field values. It never touches
// rendering state, so the TUI, the non-interactive CLI, and the form
// controller all share the same rule set and the same messages.
//
// # Rules
//
// User name:
//  1. Trimmed value must not be empty.
//  2. At most MaxWords whitespace-separated words.
//  3. Every word between MinWordLength and MaxWordLength characters.
//     Words are scanned in order and the first violating word decides
//     the message.
//
// Input text:
//  1. Trimmed value must not be empty.
//
// Only the first failing rule per field is reported.
package validation
