package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/ui/theme"
)

// MultiSelect is a checkbox list for picking several items.
type MultiSelect struct {
	Options []string
	Checked []bool
	Cursor  int
}

// NewMultiSelect creates a multi-select over options, nothing checked.
func NewMultiSelect(options []string) MultiSelect {
	return MultiSelect{
		Options: options,
		Checked: make([]bool, len(options)),
	}
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update handles navigation and toggling. Confirmation is the caller's
// concern; enter is left alone here.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		if m.Cursor >= 0 && m.Cursor < len(m.Checked) {
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		}
	case "a":
		all := m.allChecked()
		for i := range m.Checked {
			m.Checked[i] = !all
		}
	}

	return m, nil
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	var s string
	for i, opt := range m.Options {
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}

		line := "  " + box + " " + opt
		if i == m.Cursor {
			line = "▸ " + box + " " + opt
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// SelectedIndexes returns the checked option positions.
func (m MultiSelect) SelectedIndexes() []int {
	var out []int
	for i, checked := range m.Checked {
		if checked {
			out = append(out, i)
		}
	}
	return out
}

func (m MultiSelect) allChecked() bool {
	for _, checked := range m.Checked {
		if !checked {
			return false
		}
	}
	return len(m.Checked) > 0
}
