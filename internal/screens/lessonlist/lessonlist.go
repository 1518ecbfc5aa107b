// Package lessonlist browses, edits, and deletes lessons.
package lessonlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/screens/editor"
	"github.com/jinyu/pindrill/internal/ui/layout"
	"github.com/jinyu/pindrill/internal/ui/theme"
	"github.com/jinyu/pindrill/internal/vocab"
)

// LessonListScreen shows every lesson with its word count.
type LessonListScreen struct {
	svc        *screen.Services
	lessons    []vocab.Lesson
	cursor     int
	confirming bool
}

var _ screen.Screen = (*LessonListScreen)(nil)
var _ screen.KeyHintProvider = (*LessonListScreen)(nil)

// New creates the lesson list.
func New(svc *screen.Services) *LessonListScreen {
	return &LessonListScreen{
		svc:     svc,
		lessons: svc.Repo.List(context.Background()),
	}
}

func (l *LessonListScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonListScreen) Title() string {
	return "Lessons"
}

func (l *LessonListScreen) KeyHints() []layout.KeyHint {
	if l.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Edit"},
		{Key: "N", Description: "New lesson"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LessonListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	if l.confirming {
		switch kmsg.String() {
		case "y", "Y":
			l.deleteCurrent()
		}
		l.confirming = false
		return l, nil
	}

	switch kmsg.String() {
	case "esc":
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.lessons)-1 {
			l.cursor++
		}
	case "enter":
		if len(l.lessons) > 0 {
			lesson := l.lessons[l.cursor]
			return l, func() tea.Msg {
				return router.PushScreenMsg{Screen: editor.New(l.svc, &lesson)}
			}
		}
	case "n":
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: editor.New(l.svc, nil)}
		}
	case "d":
		if len(l.lessons) > 0 {
			l.confirming = true
		}
	}
	return l, nil
}

func (l *LessonListScreen) deleteCurrent() {
	ctx := context.Background()
	l.svc.Repo.Delete(ctx, l.lessons[l.cursor].ID)
	l.lessons = l.svc.Repo.List(ctx)
	if l.cursor >= len(l.lessons) && l.cursor > 0 {
		l.cursor--
	}
}

func (l *LessonListScreen) View(width, height int) string {
	if l.confirming {
		name := l.lessons[l.cursor].Name
		content := theme.Title.Render(fmt.Sprintf("Delete %q?", name)) + "\n\n" +
			theme.Hint.Render("Its words and their mistake history stay linked only while the lesson exists.")
		return centered(width, height, content)
	}

	if len(l.lessons) == 0 {
		return centered(width, height,
			theme.Hint.Render("No lessons yet. Press N to create one."))
	}

	var lines []string
	for i, lesson := range l.lessons {
		label := fmt.Sprintf("%s  %s", lesson.Name,
			theme.Hint.Render(fmt.Sprintf("(%d words)", len(lesson.Words))))
		if lesson.Predefined {
			label += theme.Hint.Render(" · built-in")
		}
		if i == l.cursor {
			lines = append(lines, theme.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+label))
		}
	}

	content := theme.Title.Render("Your lessons") + "\n\n" + strings.Join(lines, "\n")
	return centered(width, height, content)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
