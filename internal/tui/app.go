package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/anagram-form/internal/anagram"
	"github.com/muurk/anagram-form/internal/form"
	"github.com/muurk/anagram-form/internal/logging"
)

// Focus identifies the form control that receives key events
type Focus int

const (
	FocusName Focus = iota
	FocusText
	FocusGenerate
	FocusReset
	focusCount
)

// String returns the control name
func (f Focus) String() string {
	switch f {
	case FocusName:
		return "name"
	case FocusText:
		return "text"
	case FocusGenerate:
		return "generate"
	case FocusReset:
		return "reset"
	default:
		return "unknown"
	}
}

// submitResultMsg carries the outcome of one generate request
type submitResultMsg struct {
	ticket uint64
	resp   *anagram.Response
	err    error
}

// Generator produces anagrams for a request. *anagram.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, req anagram.Request) (*anagram.Response, error)
}

// AppModel is the Bubble Tea model for the anagram form. It binds the
// text inputs to a form.Controller, which owns all form state.
type AppModel struct {
	Form     *form.Controller
	Client   Generator
	Endpoint string

	NameInput textinput.Model
	TextInput textarea.Model
	Spinner   spinner.Model
	Focus     Focus

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	FormKeys    formKeyMap
	ResultsKeys resultsKeyMap
	AlertKeys   alertKeyMap
}

// NewAppModel creates the form screen with an empty, focused name field
func NewAppModel(client Generator, endpoint string) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	nameInput := textinput.New()
	nameInput.Placeholder = "e.g. Ann Lee"
	nameInput.CharLimit = 0 // unlimited
	nameInput.Width = InputWidth
	nameInput.Focus()

	textInput := textarea.New()
	textInput.Placeholder = "Text to rearrange"
	textInput.ShowLineNumbers = false
	textInput.CharLimit = 0 // unlimited
	textInput.SetWidth(InputWidth)
	textInput.SetHeight(TextAreaRows)
	textInput.Blur()

	return AppModel{
		Form:        form.NewController(),
		Client:      client,
		Endpoint:    endpoint,
		NameInput:   nameInput,
		TextInput:   textInput,
		Spinner:     s,
		Focus:       FocusName,
		Help:        help.New(),
		FormKeys:    newFormKeyMap(),
		ResultsKeys: newResultsKeyMap(),
		AlertKeys:   newAlertKeyMap(),
	}
}

// Init starts the cursor blinking in the name field
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages and routes them to the active screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if !m.Form.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case submitResultMsg:
		return m.handleSubmitResult(msg)
	}

	if m.Form.Alert() != "" {
		return m.updateAlert(msg)
	}

	switch m.Form.View() {
	case form.ResultsVisible:
		return m.updateResults(msg)
	default:
		return m.updateForm(msg)
	}
}

// updateForm handles input on the form screen
func (m AppModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forwardToInput(msg)
	}

	switch {
	case key.Matches(keyMsg, m.FormKeys.Submit):
		return m.submit()

	case key.Matches(keyMsg, m.FormKeys.Reset):
		return m.reset()

	case key.Matches(keyMsg, m.FormKeys.Next):
		return m.setFocus((m.Focus + 1) % focusCount)

	case key.Matches(keyMsg, m.FormKeys.Prev):
		return m.setFocus((m.Focus + focusCount - 1) % focusCount)
	}

	if keyMsg.Type == tea.KeyEnter {
		switch m.Focus {
		case FocusName:
			return m.setFocus(FocusText)
		case FocusGenerate:
			return m.submit()
		case FocusReset:
			return m.reset()
		}
	}

	return m.forwardToInput(msg)
}

// forwardToInput passes msg to the focused field and feeds any change in
// its value to the controller, which re-runs validation.
func (m AppModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.Focus {
	case FocusName:
		before := m.NameInput.Value()
		m.NameInput, cmd = m.NameInput.Update(msg)
		if value := m.NameInput.Value(); value != before {
			m.Form.SetName(value)
		}

	case FocusText:
		before := m.TextInput.Value()
		m.TextInput, cmd = m.TextInput.Update(msg)
		if value := m.TextInput.Value(); value != before {
			m.Form.SetText(value)
		}
	}

	return m, cmd
}

// setFocus moves key focus to target, blurring the other fields
func (m AppModel) setFocus(target Focus) (tea.Model, tea.Cmd) {
	m.Focus = target
	m.NameInput.Blur()
	m.TextInput.Blur()

	var cmd tea.Cmd
	switch target {
	case FocusName:
		cmd = m.NameInput.Focus()
	case FocusText:
		cmd = m.TextInput.Focus()
	}
	return m, cmd
}

// submit hands an accepted submission to the client as a tea.Cmd
func (m AppModel) submit() (tea.Model, tea.Cmd) {
	sub, ok := m.Form.Submit()
	if !ok {
		return m, nil
	}

	logging.Debug("Generate submitted",
		zap.Uint64("ticket", sub.Ticket),
		zap.Stringer("focus", m.Focus),
		zap.String("endpoint", m.Endpoint),
	)

	return m, tea.Batch(m.Spinner.Tick, generateCmd(m.Client, sub))
}

// generateCmd performs the request off the event loop
func generateCmd(client Generator, sub form.Submission) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Generate(context.Background(), sub.Request)
		return submitResultMsg{
			ticket: sub.Ticket,
			resp:   resp,
			err:    err,
		}
	}
}

// handleSubmitResult applies a finished request to the controller
func (m AppModel) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	switch m.Form.Complete(msg.ticket, msg.resp, msg.err) {
	case form.OutcomeResults:
		logging.Info("Anagrams received", zap.Int("count", len(msg.resp.Anagrams)))
		m.NameInput.Blur()
		m.TextInput.Blur()

	case form.OutcomeAlert:
		logging.Warn("Anagram request failed", zap.Error(msg.err))
	}
	return m, nil
}

// reset clears the form and returns focus to the name field
func (m AppModel) reset() (tea.Model, tea.Cmd) {
	m.Form.Reset()
	m.NameInput.Reset()
	m.TextInput.Reset()
	return m.setFocus(FocusName)
}

// updateAlert handles input while the alert modal is shown. Other keys
// are swallowed.
func (m AppModel) updateAlert(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.AlertKeys.Dismiss) {
		m.Form.DismissAlert()
	}
	return m, nil
}

// updateResults handles input on the results screen
func (m AppModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.ResultsKeys.Back):
		m.Form.ReturnToForm()
		m.NameInput.Reset()
		m.TextInput.Reset()
		return m.setFocus(FocusName)

	case key.Matches(keyMsg, m.ResultsKeys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

// View renders the active screen
func (m AppModel) View() string {
	width, height := m.dimensions()

	if alert := m.Form.Alert(); alert != "" {
		return m.renderAlert(alert, width, height)
	}

	switch m.Form.View() {
	case form.ResultsVisible:
		return RenderApplicationContainer(m.buildResultsContent(), m.Help.View(m.ResultsKeys), width, height)
	default:
		return RenderApplicationContainer(m.buildFormContent(), m.Help.View(m.FormKeys), width, height)
	}
}

func (m AppModel) dimensions() (int, int) {
	width, height := m.Width, m.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// buildFormContent builds the form screen content
func (m AppModel) buildFormContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Generate Anagrams"))
	b.WriteString("\n")

	b.WriteString(m.renderLabel("Your name", FocusName))
	b.WriteString("\n")
	b.WriteString(m.NameInput.View())
	b.WriteString("\n")
	b.WriteString(FieldErrorStyle.Render(m.Form.NameError()))
	b.WriteString("\n\n")

	b.WriteString(m.renderLabel("Text", FocusText))
	b.WriteString("\n")
	b.WriteString(m.TextInput.View())
	b.WriteString("\n")
	b.WriteString(FieldErrorStyle.Render(m.Form.TextError()))
	b.WriteString("\n\n")

	generate := m.Form.SubmitLabel()
	if m.Form.Pending() {
		generate = m.Spinner.View() + " " + generate
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderButton(generate, m.Form.SubmitEnabled(), m.Focus == FocusGenerate),
		"  ",
		RenderButton("Reset", true, m.Focus == FocusReset),
	)
	b.WriteString(buttons)
	b.WriteString("\n\n")

	if m.Endpoint != "" {
		b.WriteString(SubtitleStyle.Render("Endpoint: " + m.Endpoint))
		b.WriteString("\n")
	}

	return b.String()
}

func (m AppModel) renderLabel(text string, target Focus) string {
	if m.Focus == target {
		return FocusedLabelStyle.Render("› " + text)
	}
	return LabelStyle.Render("  " + text)
}

// buildResultsContent builds the numbered anagram list in response order
func (m AppModel) buildResultsContent() string {
	var b strings.Builder

	results := m.Form.Results()

	b.WriteString(RenderTitle("Anagrams"))
	b.WriteString("\n")

	if len(results) == 0 {
		b.WriteString(SubtitleStyle.Render("No anagrams were returned."))
		b.WriteString("\n")
	}

	for i, item := range results {
		b.WriteString(ResultIndexStyle.Render(fmt.Sprintf("%d.", i+1)))
		b.WriteString(" ")
		b.WriteString(ResultItemStyle.Render(item))
		b.WriteString("\n")
	}

	return b.String()
}

// renderAlert renders the alert modal over the whole screen
func (m AppModel) renderAlert(alert string, width, height int) string {
	modalWidth := SafeModalWidth(60, width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		alert,
		"",
		m.Help.View(m.AlertKeys),
	)

	return RenderModal(AlertBoxStyle.Width(modalWidth).Render(content), width, height)
}
