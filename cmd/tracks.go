package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/progress"
	"github.com/impa-jovem/impa/internal/ui/theme"
	"github.com/impa-jovem/impa/internal/ui/views"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Browse and follow practical tracks",
}

var tracksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracks with your progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		counts := map[string]int{}
		if u := account.SessionFrom(e.ctx); u != nil {
			if counts, err = e.progress.All(e.ctx, u.ID); err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), views.TrackList(content.Tracks(), counts, renderWidth))
		return nil
	},
}

var tracksShowCmd = &cobra.Command{
	Use:   "show <track>",
	Short: "Show a track's steps and your answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		t, ok := content.GetTrack(args[0])
		if !ok {
			return fmt.Errorf("%w: %q (try: %s)", progress.ErrUnknownTrack, args[0], strings.Join(content.TrackIDs(), ", "))
		}

		completed := 0
		responses := map[int]string{}
		if u := account.SessionFrom(e.ctx); u != nil {
			if completed, err = e.progress.StepIndex(e.ctx, u.ID, t.ID); err != nil {
				return err
			}
			for _, s := range t.Steps {
				r, err := e.progress.StepResponse(e.ctx, u.ID, t.ID, s.ID)
				if err != nil {
					return err
				}
				responses[s.ID] = r
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), views.TrackDetail(t, completed, responses, renderWidth))
		return nil
	},
}

var tracksCompleteCmd = &cobra.Command{
	Use:   "complete <track> <step> <response...>",
	Short: "Complete the current step of a track with your response",
	Args:  cobra.MinimumNArgs(3),
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
		t, ok := content.GetTrack(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", progress.ErrUnknownTrack, args[0])
		}
		step, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step %q: %w", args[1], err)
		}

		completed, err := e.progress.CompleteStep(e.ctx, u.ID, t, step, strings.Join(args[2:], " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if completed >= t.StepsCount {
			fmt.Fprintln(out, theme.Completed.Render(fmt.Sprintf("Track %q complete! Write about it with `impa journal add --track %s`.", t.Title, t.ID)))
			return nil
		}
		next := t.Steps[completed]
		fmt.Fprintf(out, "%s %d/%d steps. Next: %s\n",
			theme.Completed.Render("Saved."), completed, t.StepsCount, theme.Current.Render(next.Title))
		return nil
	},
}

func init() {
	tracksCmd.AddCommand(tracksListCmd)
	tracksCmd.AddCommand(tracksShowCmd)
	tracksCmd.AddCommand(tracksCompleteCmd)
}
