package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/inbox"
	"github.com/impa-jovem/impa/internal/journal"
	"github.com/impa-jovem/impa/internal/progress"
	"github.com/impa-jovem/impa/internal/ui/theme"
	"github.com/impa-jovem/impa/internal/ui/views"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Write and read your journal",
}

var journalAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a journal entry",
	Args:  cobra.MinimumNArgs(1),
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
		track, _ := cmd.Flags().GetString("track")
		if track != "" && track != content.GeneralTrackID {
			if _, ok := content.GetTrack(track); !ok {
				return fmt.Errorf("%w: %q", progress.ErrUnknownTrack, track)
			}
		}
		image, _ := cmd.Flags().GetString("image")

		entry, err := e.journal.Append(e.ctx, journal.Entry{
			UserID:   u.ID,
			TrackID:  track,
			Content:  strings.Join(args, " "),
			ImageURL: image,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Completed.Render("Saved to your journal under "+content.TrackTitle(entry.TrackID)+"."))
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your journal entries, newest first",
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
		entries, err := e.journal.List(e.ctx, u.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), views.Journal(entries, renderWidth))
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <text...>",
	Short: "Send a question or suggestion to the mentors",
	Args:  cobra.MinimumNArgs(1),
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
		topic, _ := cmd.Flags().GetString("topic")
		kind := inbox.KindQuestion
		if s, _ := cmd.Flags().GetBool("suggestion"); s {
			kind = inbox.KindSuggestion
		}

		q, err := e.inbox.Submit(e.ctx, inbox.Question{
			UserID:    u.ID,
			UserName:  u.Name,
			UserEmail: u.Email,
			Topic:     topic,
			Content:   strings.Join(args, " "),
			Type:      kind,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Your %s about %q was sent to the mentors.\n",
			theme.Completed.Render("Sent!"), q.Type, q.Topic)
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringP("track", "t", "", "Track the entry belongs to (default general)")
	journalAddCmd.Flags().String("image", "", "Image URL")
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)

	askCmd.Flags().String("topic", "", "Topic (default General)")
	askCmd.Flags().Bool("suggestion", false, "Send a suggestion instead of a question")
}
