package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/progress"
	"github.com/impa-jovem/impa/internal/ui/views"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile, avatar and progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		u, err := account.RequireUser(e.ctx)
		if err != nil {
			return err
		}
		counts, err := e.progress.All(e.ctx, u.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), views.Profile(*u, progress.Summarize(counts, content.Tracks()), renderWidth))
		return nil
	},
}
