package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all lessons, mistakes, points, and purchases",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Print("This erases all learner data. Type 'yes' to continue: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
		fmt.Println("All data erased. Starter lessons will be reinstalled on next run.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
