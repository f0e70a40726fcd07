package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/store"
)

// dataKeys are cleared by reset. LLM events are kept.
var dataKeys = []string{
	store.KeySession,
	store.KeyAccounts,
	store.KeyProgress,
	store.KeyStepResponses,
	store.KeyDiaryEntries,
	store.KeyQuestions,
	store.KeyQuizResults,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all accounts, progress, journals, questions and maps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("this deletes all local data; run again with --yes to confirm")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		for _, k := range dataKeys {
			if err := e.db.Delete(e.ctx, k); err != nil {
				return fmt.Errorf("reset %s: %w", k, err)
			}
		}
		e.log.Info("local data reset")
		fmt.Fprintln(cmd.OutOrStdout(), "All local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
