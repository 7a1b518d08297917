package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// createOption is one line of the creation selector.
type createOption struct {
	choice   CreateChoice
	shortcut string
	label    string
}

var createOptions = []createOption{
	{ChoiceCreate, "c", "Create issue"},
	{ChoiceEdit, "e", "Edit title and create issue"},
	{ChoiceSkip, "s", "Do not create issue"},
	{ChoiceSkipAndRemember, "r", "Do not create issue and remember this title"},
	{ChoiceAbort, "a", "Abort (cancel push)"},
}

// selectModel represents the Bubble Tea model for the creation choice.
type selectModel struct {
	title    string
	options  []createOption
	cursor   int
	selected *CreateChoice
	quitting bool
}

// initialSelectModel creates a new select model, "create" being the default.
func initialSelectModel(title string) selectModel {
	return selectModel{
		title:   title,
		options: createOptions,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Handle special keys
	if m.handleSpecialKeys(key) {
		return m, tea.Quit
	}

	// Handle shortcut keys
	if m.handleShortcutKeys(key) {
		return m, tea.Quit
	}

	// Handle navigation keys
	m.handleNavigationKeys(key)

	return m, nil
}

// handleSpecialKeys handles special keys that cause the program to quit.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return true
	case "enter":
		selected := m.options[m.cursor].choice
		m.selected = &selected
		return true
	}
	return false
}

// handleShortcutKeys selects the option whose shortcut was typed.
func (m *selectModel) handleShortcutKeys(key string) bool {
	for i, option := range m.options {
		if option.shortcut == key {
			m.cursor = i
			selected := option.choice
			m.selected = &selected
			return true
		}
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	// Header
	s.WriteString(fmt.Sprintf("? Create new issue %q?  [Use arrows to move]\n\n", m.title))

	// Show options
	for i, option := range m.options {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s.WriteString(fmt.Sprintf("%s (%s) %s\n", cursor, option.shortcut, option.label))
	}

	// Footer
	s.WriteString("\nPress Enter or a shortcut to select, Ctrl+C or q to quit")

	return s.String()
}

// promptCreateChoiceBubbleTea runs the Bubble Tea program for the creation choice.
func promptCreateChoiceBubbleTea(title string, ttyInput bool) (CreateChoice, error) {
	var opts []tea.ProgramOption
	if ttyInput {
		opts = append(opts, tea.WithInputTTY())
	}

	// Create and run the program
	p := tea.NewProgram(initialSelectModel(title), opts...)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selection program: %w", err)
	}

	// Cast to our model type
	model, ok := finalModel.(selectModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}

	// Check if user quit without selecting
	if model.selected == nil {
		return "", ErrNoSelection
	}

	return *model.selected, nil
}
