package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jinyu/pindrill/internal/app"
	"github.com/jinyu/pindrill/internal/lessons"
	"github.com/jinyu/pindrill/internal/mistakes"
	"github.com/jinyu/pindrill/internal/rewards"
	"github.com/jinyu/pindrill/internal/screen"
	"github.com/jinyu/pindrill/internal/selector"
	"github.com/jinyu/pindrill/internal/speech"
	"github.com/jinyu/pindrill/internal/store"
)

// runApp opens the store, builds the services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repo := lessons.NewRepository(st)
	repo.Seed(ctx)
	ledger := mistakes.NewLedger(st)
	wallet := rewards.NewWallet(st)

	sel := selector.New(repo, ledger, selector.Config{
		TestSize:           cfg.TestSize,
		MistakeCap:         cfg.MistakeCap,
		GlobalMistakeScope: cfg.GlobalMistakeScope,
	}, rand.New(rand.NewSource(time.Now().UnixNano())))

	// Speech is optional. The app runs fine without a provider.
	speaker, err := speech.NewSpeaker(ctx, speech.Options{
		Provider: cfg.SpeechProvider,
		Voice:    cfg.SpeechVoice,
	})
	if err != nil && !errors.Is(err, speech.ErrNoProvider) {
		fmt.Fprintln(os.Stderr, "Text-to-speech not available:", err)
	}

	svc := &screen.Services{
		Repo:     repo,
		Ledger:   ledger,
		Selector: sel,
		Wallet:   wallet,
		History:  rewards.NewHistory(st),
		Shop:     rewards.NewShop(st, wallet),
		Speech:   speech.NewDispatcher(speaker),
		Config:   cfg,
	}

	return app.Run(svc)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
