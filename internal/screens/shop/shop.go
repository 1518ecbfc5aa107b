// Package shop spends reward points on terminal backgrounds.
package shop

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/rewards"
	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/ui/layout"
	"github.com/jinyu/pindrill/internal/ui/theme"
)

// ShopScreen lists the background catalog and lets the learner buy and
// apply them.
type ShopScreen struct {
	svc       *screen.Services
	catalog   []rewards.Background
	cursor    int
	statusMsg string
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates the shop screen.
func New(svc *screen.Services) *ShopScreen {
	return &ShopScreen{svc: svc, catalog: rewards.Backgrounds()}
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return "Shop"
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Buy / Apply"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
		s.statusMsg = ""
	case "down", "j":
		if s.cursor < len(s.catalog)-1 {
			s.cursor++
		}
		s.statusMsg = ""
	case "enter":
		s.activate()
	}
	return s, nil
}

// activate buys the highlighted background if it is not owned yet, and
// makes it the active theme once it is.
func (s *ShopScreen) activate() {
	ctx := context.Background()
	bg := s.catalog[s.cursor]

	if !s.svc.Shop.Owned(ctx, bg.ID) {
		if err := s.svc.Shop.Purchase(ctx, bg.ID); err != nil {
			s.statusMsg = err.Error()
			return
		}
	}
	if err := s.svc.Shop.Apply(ctx, bg.ID); err != nil {
		s.statusMsg = err.Error()
		return
	}
	theme.SetPalette(bg.ID)
	s.statusMsg = fmt.Sprintf("%s is now active.", bg.Name)
}

func (s *ShopScreen) View(width, height int) string {
	ctx := context.Background()
	active := s.svc.Shop.ActiveID(ctx)
	points := s.svc.Wallet.Points(ctx)

	title := theme.Title.Render("Background Shop")
	balance := theme.Hint.Render(fmt.Sprintf("✦ %d points", points))

	var lines []string
	for i, bg := range s.catalog {
		var tag string
		switch {
		case bg.ID == active:
			tag = theme.Correct.Render("ACTIVE")
		case s.svc.Shop.Owned(ctx, bg.ID):
			tag = theme.Hint.Render("owned")
		default:
			tag = theme.Hint.Render(fmt.Sprintf("✦ %d", bg.Cost))
		}

		label := fmt.Sprintf("%-12s %s", bg.Name, tag)
		if i == s.cursor {
			lines = append(lines, theme.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+label))
		}
	}

	content := title + "\n" + balance + "\n\n" + strings.Join(lines, "\n")
	if s.statusMsg != "" {
		content += "\n\n" + theme.Body.Render(s.statusMsg)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
