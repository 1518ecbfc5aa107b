// Package results shows the outcome of a finished test round.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/ui/components"
	"github.com/jinyu/pindrill/internal/ui/layout"
	"github.com/jinyu/pindrill/internal/ui/theme"
	"github.com/jinyu/pindrill/internal/vocab"
)

// ResultsScreen lists every answer from the round with the score. The
// retry builder starts a fresh round over the same scope without this
// package importing the session screen.
type ResultsScreen struct {
	results []vocab.TestResult
	score   int
	retry   func() screen.Screen

	retryBtn components.Button
	doneBtn  components.Button
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen.
func New(results []vocab.TestResult, score int, retry func() screen.Screen) *ResultsScreen {
	r := &ResultsScreen{results: results, score: score, retry: retry}
	r.retryBtn = components.NewButton("TRY AGAIN", false, func() tea.Cmd {
		return r.retryCmd()
	})
	r.doneBtn = components.NewButton("DONE", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return r
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultsScreen) retryCmd() tea.Cmd {
	if r.retry == nil {
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: r.retry()}
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "right", "tab", "h", "l":
		r.retryBtn.Active = !r.retryBtn.Active
		r.doneBtn.Active = !r.doneBtn.Active
		return r, nil
	case "r":
		return r, r.retryCmd()
	case "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	r.retryBtn, cmd = r.retryBtn.Update(msg)
	if cmd != nil {
		return r, cmd
	}
	r.doneBtn, cmd = r.doneBtn.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	total := len(r.results)

	headline := theme.Title.Render(fmt.Sprintf("You scored %d out of %d", r.score, total))
	earned := theme.Hint.Render(fmt.Sprintf("✦ %d points earned", r.score))

	var lines []string
	for _, res := range r.results {
		mark := theme.Correct.Render("✓")
		detail := theme.Hint.Render(res.Word.Pinyin)
		if !res.Correct {
			mark = theme.Incorrect.Render("✗")
			detail = theme.Incorrect.Render(res.UserInput) +
				theme.Hint.Render(" → ") +
				theme.Correct.Render(res.Word.Pinyin)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			mark, theme.Body.Render(res.Word.Character), detail))
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		r.retryBtn.View(), "  ", r.doneBtn.View())

	content := headline + "\n" + earned
	if len(lines) > 0 {
		content += "\n\n" + theme.Card.Render(strings.Join(lines, "\n"))
	}
	content += "\n\n" + buttons

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
