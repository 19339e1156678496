package prompt

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type item struct {
	name    string
	checked bool
}

// model is the checkbox-list state for the interactive column picker.
type model struct {
	items     []item
	cursor    int
	confirmed bool
	canceled  bool
}

func newModel(columns []string) model {
	items := make([]item, len(columns))
	for i, name := range columns {
		items[i] = item{name: name}
	}
	return model{items: items}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.canceled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.items[m.cursor].checked = !m.items[m.cursor].checked
	case "a":
		all := true
		for _, it := range m.items {
			if !it.checked {
				all = false
				break
			}
		}
		for i := range m.items {
			m.items[i].checked = !all
		}
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select columns to keep"))
	b.WriteString("\n\n")

	for i, it := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		box := "[ ] " + it.name
		if it.checked {
			box = checkedStyle.Render("[x] " + it.name)
		}
		b.WriteString(cursor + box + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%d/%d selected — space: toggle, a: toggle all, enter: confirm, q: cancel",
		len(m.selected()), len(m.items))))
	b.WriteString("\n")

	return b.String()
}

// selected returns the checked names in the original column order,
// regardless of the order they were toggled in.
func (m model) selected() []string {
	var names []string
	for _, it := range m.items {
		if it.checked {
			names = append(names, it.name)
		}
	}
	return names
}

// TUI renders an interactive checkbox list over the column names.
// It blocks until the user confirms or cancels.
type TUI struct{}

// Select runs the checkbox prompt and returns the checked column names in
// their original order. Returns ErrCanceled on q/esc/ctrl+c.
func (TUI) Select(columns []string) ([]string, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns to select from")
	}

	// Render on stderr so stdout stays clean for pipes.
	p := tea.NewProgram(newModel(columns), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("could not run column prompt: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.canceled || !m.confirmed {
		return nil, ErrCanceled
	}
	return m.selected(), nil
}
