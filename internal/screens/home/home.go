// Package home is the main menu screen.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/screens/editor"
	"github.com/jinyu/pindrill/internal/screens/history"
	"github.com/jinyu/pindrill/internal/screens/lessonlist"
	"github.com/jinyu/pindrill/internal/screens/picker"
	"github.com/jinyu/pindrill/internal/screens/shop"
	"github.com/jinyu/pindrill/internal/ui/components"
	"github.com/jinyu/pindrill/internal/ui/theme"
	"github.com/jinyu/pindrill/internal/vocab"
)

// HomeScreen is the main menu with a snapshot of the learner's state.
type HomeScreen struct {
	svc         *screen.Services
	menu        components.Menu
	points      int
	lessonCount int
	wordCount   int
	topMistakes []vocab.Word
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen and loads the stats it shows.
func New(svc *screen.Services) *HomeScreen {
	ctx := context.Background()

	all := svc.Repo.List(ctx)
	wordCount := 0
	for _, l := range all {
		wordCount += len(l.Words)
	}

	items := []components.MenuItem{
		{Label: "START TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(svc)}
			}
		}},
		{Label: "LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessonlist.New(svc)}
			}
		}},
		{Label: "NEW LESSON", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: editor.New(svc, nil)}
			}
		}},
		{Label: "SHOP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shop.New(svc)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(svc)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		svc:         svc,
		menu:        components.NewMenu(items),
		points:      svc.Wallet.Points(ctx),
		lessonCount: len(all),
		wordCount:   wordCount,
		topMistakes: svc.Ledger.TopMistakes(ctx, svc.Repo.AllWords(ctx), 5),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("拼 Pindrill 音")
	subtitle := theme.Subtitle.Render("pinyin flashcard practice")

	stats := theme.Hint.Render(fmt.Sprintf(
		"%d lessons · %d words · %d points", h.lessonCount, h.wordCount, h.points))

	var sections []string
	sections = append(sections, title, subtitle, "", stats, "", h.menu.View())

	if len(h.topMistakes) > 0 {
		var lines []string
		lines = append(lines, theme.Subtitle.Render("Words to revise"))
		for _, w := range h.topMistakes {
			lines = append(lines, theme.Body.Render(w.Character)+"  "+theme.Hint.Render(w.Pinyin))
		}
		sections = append(sections, theme.Card.Render(strings.Join(lines, "\n")))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
