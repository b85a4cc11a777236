package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptAborted is returned when the user cancels a prompt.
var ErrPromptAborted = errors.New("prompt aborted")

// Prompt is a single-line interactive question.
type Prompt struct {
	Question string
	Default  string
	Choices  []string // when non-empty, the answer must be one of these
	Validate func(string) error
}

type promptModel struct {
	prompt   Prompt
	input    textinput.Model
	styles   Styles
	errMsg   string
	value    string
	done     bool
	canceled bool
}

// Ask runs the prompt and returns the entered (or default) value.
func Ask(p Prompt) (string, error) {
	ti := textinput.New()
	ti.Placeholder = p.Default
	ti.Focus()
	ti.CharLimit = 64

	m := promptModel{prompt: p, input: ti, styles: DefaultStyles()}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	fm, ok := final.(promptModel)
	if !ok || fm.canceled {
		return "", ErrPromptAborted
	}
	return fm.value, nil
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				v = m.prompt.Default
			}
			if err := m.check(v); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.value = v
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) check(v string) error {
	if len(m.prompt.Choices) > 0 {
		ok := false
		for _, c := range m.prompt.Choices {
			if v == c {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("choose one of: %s", strings.Join(m.prompt.Choices, ", "))
		}
	}
	if m.prompt.Validate != nil {
		return m.prompt.Validate(v)
	}
	return nil
}

func (m promptModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s\n", m.styles.Label.Render(m.prompt.Question+":"), m.value)
	}

	var b strings.Builder
	b.WriteString(m.styles.Label.Render(m.prompt.Question))
	if m.prompt.Default != "" {
		b.WriteString(m.styles.Faint.Render(" (" + m.prompt.Default + ")"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if len(m.prompt.Choices) > 0 {
		b.WriteString(m.styles.Faint.Render("choices: " + strings.Join(m.prompt.Choices, ", ")))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}
