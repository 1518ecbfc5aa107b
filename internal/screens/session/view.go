package session

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/jinyu/pindrill/internal/quiz"
	"github.com/jinyu/pindrill/internal/ui/components"
	"github.com/jinyu/pindrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuit {
		return centered(width, height,
			theme.Title.Render("End this test?")+"\n\n"+
				theme.Hint.Render("Your answers so far will be discarded."))
	}

	if s.runner.Total() == 0 {
		return centered(width, height,
			theme.Hint.Render("Nothing to practice. Press any key to go back."))
	}

	switch s.runner.Phase() {
	case quiz.PhaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func (s *SessionScreen) renderQuestion(width, height int) string {
	word, ok := s.runner.Current()
	if !ok {
		return ""
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("%d / %d", s.runner.Index()+1, s.runner.Total()),
		float64(s.runner.Index())/float64(s.runner.Total()),
		false, 40,
	)

	character := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Render(word.Character)

	content := progress.View() + "\n\n" +
		theme.Card.Render(character) + "\n\n" +
		s.input.View()

	if s.speechHint != "" {
		content += "\n" + theme.Hint.Render(s.speechHint)
	}

	return centered(width, height, content)
}

func (s *SessionScreen) renderFeedback(width, height int) string {
	res, ok := s.runner.LastResult()
	if !ok {
		return ""
	}

	var verdict string
	if res.Correct {
		verdict = theme.Correct.Render("✓ Correct!")
	} else {
		verdict = theme.Incorrect.Render("✗ Not quite") + "\n\n" +
			theme.Body.Render("The answer is: ") +
			theme.Correct.Render(res.Word.Pinyin)
	}

	character := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Align(lipgloss.Center).
		Render(res.Word.Character)

	content := theme.Card.Render(character) + "\n\n" + verdict
	return centered(width, height, content)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
