// Package history shows the most recent test scores.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/ui/layout"
	"github.com/jinyu/pindrill/internal/ui/theme"
	"github.com/jinyu/pindrill/internal/vocab"
)

// HistoryScreen renders the saved score list, newest first.
type HistoryScreen struct {
	scores []vocab.HistoricalScore
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen.
func New(svc *screen.Services) *HistoryScreen {
	return &HistoryScreen{scores: svc.History.List(context.Background())}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	title := theme.Title.Render("Recent tests")

	if len(h.scores) == 0 {
		content := title + "\n\n" + theme.Hint.Render("No tests taken yet.")
		return centered(width, height, content)
	}

	var lines []string
	for _, s := range h.scores {
		line := fmt.Sprintf("%s  %s",
			theme.Hint.Render(s.Date),
			theme.Body.Render(fmt.Sprintf("%d/%d", s.Score, s.Total)))
		if len(s.LessonNames) > 0 {
			line += "  " + theme.Hint.Render(strings.Join(s.LessonNames, ", "))
		} else {
			line += "  " + theme.Hint.Render("mistakes drill")
		}
		lines = append(lines, line)
	}

	content := title + "\n\n" + theme.Card.Render(strings.Join(lines, "\n"))
	return centered(width, height, content)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
