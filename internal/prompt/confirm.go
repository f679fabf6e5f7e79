package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the prompts
var (
	questionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFE66D"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

type confirmModel struct {
	question string
	answer   bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		m.answer = true
		m.done = true
		return m, tea.Quit
	case "n", "N", "enter", "esc", "q", "ctrl+c":
		m.answer = false
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	return questionStyle.Render(m.question) + hintStyle.Render(" [y/N] ")
}

// Confirm asks a yes/no question on the terminal and returns the
// answer. Anything other than y is a no; the default is no.
func Confirm(question string) (bool, error) {
	p := tea.NewProgram(confirmModel{question: question})
	m, err := p.Run()
	if err != nil {
		return false, err
	}
	return m.(confirmModel).answer, nil
}
