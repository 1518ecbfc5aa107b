package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jinyu/pindrill/internal/lessons"
)

var importOverwrite bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import lessons from a JSON backup",
	Long: "Import lessons from a JSON backup. Lessons whose names already exist are " +
		"skipped unless --overwrite is given, in which case the stored lesson is replaced " +
		"and word ids are kept where character and pinyin match.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := lessons.NewRepository(st)
		analysis, err := repo.AnalyzeImport(cmd.Context(), raw)
		if err != nil {
			return err
		}

		if len(analysis.Duplicates) > 0 && !importOverwrite {
			names := make([]string, len(analysis.Duplicates))
			for i, l := range analysis.Duplicates {
				names[i] = l.Name
			}
			fmt.Println("Skipping existing lessons:", strings.Join(names, ", "))
			fmt.Println("Re-run with --overwrite to replace them.")
		}

		added, replaced := repo.CommitImport(cmd.Context(), analysis, importOverwrite)
		fmt.Printf("Imported %d new lessons, replaced %d.\n", added, replaced)
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "Replace lessons that already exist")
}
