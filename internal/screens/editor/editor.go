// Package editor creates and edits lessons.
package editor

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/ui/components"
	"github.com/jinyu/pindrill/internal/ui/layout"
	"github.com/jinyu/pindrill/internal/ui/theme"
	"github.com/jinyu/pindrill/internal/vocab"
)

type focusField int

const (
	focusName focusField = iota
	focusWords
)

// EditorScreen edits a lesson name plus its word list as free text, one
// "character, pinyin" pair per line.
type EditorScreen struct {
	svc        *screen.Services
	existingID string

	name   components.TextInput
	words  components.TextArea
	focus  focusField
	errMsg string
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)

// New creates the editor. Pass nil to create a new lesson.
func New(svc *screen.Services, lesson *vocab.Lesson) *EditorScreen {
	name := components.NewTextInput("Lesson name", 40)
	words := components.NewTextArea("你好, ni hao", 44, 10)

	e := &EditorScreen{svc: svc, name: name, words: words}
	if lesson != nil {
		e.existingID = lesson.ID
		e.name.Model.SetValue(lesson.Name)
		e.words.SetValue(vocab.FormatWordText(lesson.Words))
	}
	e.words.Blur()
	return e
}

func (e *EditorScreen) Init() tea.Cmd {
	return e.name.Init()
}

func (e *EditorScreen) Title() string {
	if e.existingID != "" {
		return "Edit Lesson"
	}
	return "New Lesson"
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			return e, e.switchFocus()
		case "ctrl+s":
			return e.save()
		case "esc":
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	var cmd tea.Cmd
	switch e.focus {
	case focusName:
		e.name, cmd = e.name.Update(msg)
	case focusWords:
		e.words, cmd = e.words.Update(msg)
	}
	return e, cmd
}

func (e *EditorScreen) switchFocus() tea.Cmd {
	if e.focus == focusName {
		e.focus = focusWords
		e.name.Model.Blur()
		return e.words.Focus()
	}
	e.focus = focusName
	e.words.Blur()
	return e.name.Model.Focus()
}

func (e *EditorScreen) save() (screen.Screen, tea.Cmd) {
	_, err := e.svc.Repo.SaveLesson(context.Background(),
		e.name.Value(), e.words.Value(), e.existingID)
	if err != nil {
		e.errMsg = err.Error()
		return e, nil
	}
	return e, func() tea.Msg { return router.PopScreenMsg{} }
}

func (e *EditorScreen) View(width, height int) string {
	nameLabel := theme.Body.Render("Name")
	wordsLabel := theme.Body.Render("Words (character, pinyin per line)")

	content := nameLabel + "\n" + e.name.View() + "\n\n" +
		wordsLabel + "\n" + e.words.View()

	if e.errMsg != "" {
		content += "\n\n" + theme.Incorrect.Render(e.errMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
