// Package session runs a test round: one word at a time, typed pinyin,
// timed feedback, and persistence of the finished round.
package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jinyu/pindrill/internal/quiz"
	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/screens/results"
	"github.com/jinyu/pindrill/internal/selector"
	"github.com/jinyu/pindrill/internal/speech"
	"github.com/jinyu/pindrill/internal/ui/components"
	"github.com/jinyu/pindrill/internal/ui/layout"
)

// SessionScreen drives a quiz.Runner and owns all timing, speech, and
// persistence around it.
type SessionScreen struct {
	svc         *screen.Services
	scope       selector.Scope
	lessonNames []string

	runner      *quiz.Runner
	input       components.TextInput
	showingQuit bool
	speechHint  string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New builds a round for scope and starts a session over it.
func New(svc *screen.Services, scope selector.Scope, lessonNames []string) *SessionScreen {
	words := svc.Selector.Select(context.Background(), scope)
	return &SessionScreen{
		svc:         svc,
		scope:       scope,
		lessonNames: lessonNames,
		runner:      quiz.NewRunner(words),
		input:       components.NewTextInput("Type the pinyin...", 64),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SessionScreen) Title() string {
	return "Test"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	if s.svc.Speech.Enabled() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+P", Description: "Hear it"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case speechDoneMsg:
		if msg.Err != nil && !errors.Is(msg.Err, speech.ErrBusy) {
			s.speechHint = "Could not play audio."
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.runner.Phase() == quiz.PhaseAnswering {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuit {
		switch key {
		case "y", "Y":
			s.runner.Cancel()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	// Empty round: any key goes back.
	if s.runner.Total() == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// During feedback only the timer advances; stray keys must not skip
	// a word.
	if s.runner.Phase() == quiz.PhaseFeedback {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuit = true
		return s, nil
	case "enter":
		return s.submit()
	case "ctrl+p":
		return s, s.speakCurrent()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	correct, ok := s.runner.Submit(s.input.Value())
	if !ok {
		return s, nil
	}
	s.input.Submit(correct)
	return s, s.feedbackTimer()
}

func (s *SessionScreen) feedbackTimer() tea.Cmd {
	return tea.Tick(s.svc.Config.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.runner.Advance()
	s.speechHint = ""

	if s.runner.Phase() == quiz.PhaseComplete {
		return s, s.finish()
	}

	s.input = components.NewTextInput("Type the pinyin...", 64)
	return s, s.input.Init()
}

// finish persists the round and swaps in the results screen, so Back
// from results skips the spent session.
func (s *SessionScreen) finish() tea.Cmd {
	ctx := context.Background()
	res := s.runner.Results()
	correct := s.runner.CorrectCount()

	s.svc.Ledger.RecordResults(ctx, res)
	s.svc.Wallet.Add(ctx, correct)
	s.svc.History.Add(ctx, time.Now(), correct, len(res), s.lessonNames)

	svc, scope, names := s.svc, s.scope, s.lessonNames
	retry := func() screen.Screen {
		return New(svc, scope, names)
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(res, correct, retry),
		}
	}
}

// speakCurrent plays the current word's pronunciation. Requests while
// audio is playing are dropped.
func (s *SessionScreen) speakCurrent() tea.Cmd {
	if !s.svc.Speech.Enabled() {
		s.speechHint = "Text-to-speech is not configured."
		return nil
	}
	word, ok := s.runner.Current()
	if !ok {
		return nil
	}
	dispatcher := s.svc.Speech
	return func() tea.Msg {
		return speechDoneMsg{Err: dispatcher.Speak(context.Background(), word.Character)}
	}
}
