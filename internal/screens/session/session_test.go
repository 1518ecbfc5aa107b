package session

import (
	"context"
	"math/rand"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jinyu/pindrill/internal/config"
	"github.com/jinyu/pindrill/internal/lessons"
	"github.com/jinyu/pindrill/internal/mistakes"
	"github.com/jinyu/pindrill/internal/quiz"
	"github.com/jinyu/pindrill/internal/rewards"
	"github.com/jinyu/pindrill/internal/router"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/screens/results"
	"github.com/jinyu/pindrill/internal/selector"
	"github.com/jinyu/pindrill/internal/speech"
	"github.com/jinyu/pindrill/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testServices(t *testing.T) (*screen.Services, selector.Scope) {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemKV()

	repo := lessons.NewRepository(kv)
	lesson, err := repo.SaveLesson(ctx, "Test Lesson", "你, ni", "")
	if err != nil {
		t.Fatalf("save lesson: %v", err)
	}

	ledger := mistakes.NewLedger(kv)
	wallet := rewards.NewWallet(kv)
	sel := selector.New(repo, ledger, selector.DefaultConfig(), rand.New(rand.NewSource(1)))

	svc := &screen.Services{
		Repo:     repo,
		Ledger:   ledger,
		Selector: sel,
		Wallet:   wallet,
		History:  rewards.NewHistory(kv),
		Shop:     rewards.NewShop(kv, wallet),
		Speech:   speech.NewDispatcher(nil),
		Config:   config.Default(),
	}
	scope := selector.Scope{Mode: selector.ModeLessons, LessonIDs: []string{lesson.ID}}
	return svc, scope
}

func TestSessionScreen_Title(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})
	if s.Title() != "Test" {
		t.Errorf("Title = %q, want %q", s.Title(), "Test")
	}
}

func TestSessionScreen_SubmitCorrect(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})

	s.input.Model.SetValue("ni")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.runner.Phase() != quiz.PhaseFeedback {
		t.Errorf("phase = %v, want feedback", ss.runner.Phase())
	}
	res, ok := ss.runner.LastResult()
	if !ok || !res.Correct {
		t.Error("expected last result to be correct")
	}
	if cmd == nil {
		t.Error("expected feedback timer command")
	}
}

func TestSessionScreen_BlankSubmitIgnored(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.runner.Phase() != quiz.PhaseAnswering {
		t.Errorf("phase = %v, want answering after blank submit", ss.runner.Phase())
	}
}

func TestSessionScreen_KeysIgnoredDuringFeedback(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})

	s.input.Model.SetValue("wrong")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	idx := ss.runner.Index()
	scr, _ = ss.Update(keyPress(' '))
	ss = scr.(*SessionScreen)
	if ss.runner.Index() != idx {
		t.Error("stray key must not advance past feedback")
	}
}

func TestSessionScreen_FinishPersistsAndShowsResults(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})
	ctx := context.Background()

	s.input.Model.SetValue("ni")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_, cmd := scr.(*SessionScreen).Update(feedbackDoneMsg{})

	if cmd == nil {
		t.Fatal("expected a command after the last word")
	}
	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("replacement screen = %T, want results", rep.Screen)
	}

	if got := svc.Wallet.Points(ctx); got != 1 {
		t.Errorf("points = %d, want 1", got)
	}
	if got := len(svc.History.List(ctx)); got != 1 {
		t.Errorf("history entries = %d, want 1", got)
	}
	if got := len(svc.Ledger.SeenIDs(ctx)); got != 1 {
		t.Errorf("seen words = %d, want 1", got)
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showingQuit {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showingQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if msg := cmd(); msg != (router.PopScreenMsg{}) {
		t.Errorf("msg = %#v, want PopScreenMsg", msg)
	}
	if !ss.runner.Canceled() {
		t.Error("expected the round to be canceled")
	}
	if got := svc.Wallet.Points(context.Background()); got != 0 {
		t.Errorf("points = %d, want 0 after cancel", got)
	}
}

func TestSessionScreen_View(t *testing.T) {
	svc, scope := testServices(t)
	s := New(svc, scope, []string{"Test Lesson"})

	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty question view")
	}

	s.input.Model.SetValue("ni")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	if view := scr.View(80, 24); view == "" {
		t.Error("expected non-empty feedback view")
	}
}
