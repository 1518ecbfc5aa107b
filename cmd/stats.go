package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jinyu/pindrill/internal/lessons"
	"github.com/jinyu/pindrill/internal/mistakes"
	"github.com/jinyu/pindrill/internal/rewards"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := lessons.NewRepository(st)
		ledger := mistakes.NewLedger(st)
		wallet := rewards.NewWallet(st)
		history := rewards.NewHistory(st)

		all := repo.List(ctx)
		wordCount := 0
		for _, l := range all {
			wordCount += len(l.Words)
		}

		fmt.Printf("Lessons:  %d\n", len(all))
		fmt.Printf("Words:    %d\n", wordCount)
		fmt.Printf("Seen:     %d\n", len(ledger.SeenIDs(ctx)))
		fmt.Printf("Mistakes: %d\n", len(ledger.Counts(ctx)))
		fmt.Printf("Points:   %d\n", wallet.Points(ctx))

		if top := ledger.TopMistakes(ctx, repo.AllWords(ctx), 5); len(top) > 0 {
			counts := ledger.Counts(ctx)
			fmt.Println("\nTop mistakes:")
			for _, w := range top {
				fmt.Printf("  %s  %s  (%d)\n", w.Character, w.Pinyin, counts[w.ID])
			}
		}

		scores := history.List(ctx)
		if len(scores) == 0 {
			return nil
		}
		fmt.Println("\nRecent tests:")
		for _, s := range scores {
			line := fmt.Sprintf("  %s  %d/%d", s.Date, s.Score, s.Total)
			if len(s.LessonNames) > 0 {
				line += "  " + strings.Join(s.LessonNames, ", ")
			}
			fmt.Println(line)
		}
		return nil
	},
}
