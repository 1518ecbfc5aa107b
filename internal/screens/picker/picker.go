// Package picker selects which lessons a test round covers.
package picker

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/screens/session"
	"github.com/jinyu/pindrill/internal/selector"
	"github.com/jinyu/pindrill/internal/ui/components"
	"github.com/jinyu/pindrill/internal/ui/layout"
	"github.com/jinyu/pindrill/internal/ui/theme"
	"github.com/jinyu/pindrill/internal/vocab"
)

// PickerScreen lets the learner choose lessons before a test, or jump
// straight into a mistakes-only drill.
type PickerScreen struct {
	svc     *screen.Services
	lessons []vocab.Lesson
	sel     components.MultiSelect
	errMsg  string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates the picker over the current lesson list.
func New(svc *screen.Services) *PickerScreen {
	all := svc.Repo.List(context.Background())
	labels := make([]string, len(all))
	for i, l := range all {
		labels[i] = l.Name
	}
	return &PickerScreen{
		svc:     svc,
		lessons: all,
		sel:     components.NewMultiSelect(labels),
	}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Choose Lessons"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "All"},
		{Key: "M", Description: "Mistakes only"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		ids := p.selectedIDs()
		if len(ids) == 0 {
			p.errMsg = "Select at least one lesson."
			return p, nil
		}
		return p, p.start(selector.Scope{Mode: selector.ModeLessons, LessonIDs: ids})
	case "m":
		return p, p.start(selector.Scope{Mode: selector.ModeMistakes, LessonIDs: p.selectedIDs()})
	}

	p.errMsg = ""
	var cmd tea.Cmd
	p.sel, cmd = p.sel.Update(msg)
	return p, cmd
}

func (p *PickerScreen) start(scope selector.Scope) tea.Cmd {
	words := p.svc.Selector.Select(context.Background(), scope)
	if len(words) == 0 {
		if scope.Mode == selector.ModeMistakes {
			p.errMsg = "No mistakes to revise. Nice work!"
		} else {
			p.errMsg = "The selected lessons have no words."
		}
		return nil
	}

	lessonNames := p.namesFor(scope.LessonIDs)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: session.New(p.svc, scope, lessonNames)}
	}
}

func (p *PickerScreen) selectedIDs() []string {
	var ids []string
	for _, i := range p.sel.SelectedIndexes() {
		ids = append(ids, p.lessons[i].ID)
	}
	return ids
}

func (p *PickerScreen) namesFor(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var names []string
	for _, l := range p.lessons {
		if want[l.ID] {
			names = append(names, l.Name)
		}
	}
	return names
}

func (p *PickerScreen) View(width, height int) string {
	title := theme.Title.Render("Which lessons do you want to practice?")

	body := p.sel.View()
	if len(p.lessons) == 0 {
		body = theme.Hint.Render("No lessons yet. Create one from the home menu.")
	}

	content := title + "\n\n" + body
	if p.errMsg != "" {
		content += "\n" + theme.Incorrect.Render(p.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
