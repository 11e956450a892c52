// Package tui implements the interactive anagram form with Bubble Tea.
//
// AppModel renders two screens driven by a form.Controller: the form (name
// field, text area, Generate and Reset buttons) and the results list. A
// failed request raises a modal alert over the form. Requests run as a
// tea.Cmd, and their results come back as messages tagged with the
// submission ticket, so a result that arrives after Reset is dropped.
//
// Keys:
//
//	tab / shift+tab   move between fields and buttons
//	ctrl+s            generate (or enter on the Generate button)
//	ctrl+r            reset the form
//	n / enter         start over from the results screen
//	esc               quit from the results screen
//	ctrl+c            quit
package tui
