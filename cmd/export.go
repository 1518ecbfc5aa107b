package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jinyu/pindrill/internal/lessons"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all lessons to a JSON backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := lessons.NewRepository(st)
		raw, err := repo.ExportJSON(cmd.Context())
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			path = lessons.ExportFilename(time.Now())
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Println("Exported lessons to", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default pinyin-lessons-backup-<date>.json)")
}
