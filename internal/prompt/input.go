package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	label    string
	input    textinput.Model
	done     bool
	canceled bool
}

func newInputModel(label, initial string) inputModel {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 250
	ti.Width = 60

	return inputModel{label: label, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.done = true
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return labelStyle.Render(m.label) + "\n" +
		m.input.View() + "\n" +
		hintStyle.Render("enter to accept, esc to cancel")
}

// Input asks for a single line of text, prefilled with initial. The
// second return value is false when the user canceled. An empty answer
// falls back to initial.
func Input(label, initial string) (string, bool, error) {
	p := tea.NewProgram(newInputModel(label, initial))
	m, err := p.Run()
	if err != nil {
		return "", false, err
	}

	im := m.(inputModel)
	if im.canceled {
		return "", false, nil
	}
	value := strings.TrimSpace(im.input.Value())
	if value == "" {
		value = initial
	}
	return value, true, nil
}
