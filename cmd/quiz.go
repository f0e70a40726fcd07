package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/assessment"
	"github.com/impa-jovem/impa/internal/content"
	"github.com/impa-jovem/impa/internal/quizui"
	"github.com/impa-jovem/impa/internal/ui/theme"
	"github.com/impa-jovem/impa/internal/ui/views"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the self-assessment and get your potential map",
	Long: "Without --answer flags the quiz runs interactively. With flags, give one\n" +
		"--answer per question as <question>=<value or option number>, e.g. --answer 1=organizer.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		raw, _ := cmd.Flags().GetStringArray("answer")
		var res quizui.Result
		if len(raw) == 0 {
			if res, err = quizui.Run(e.ctx); err != nil {
				return err
			}
		} else {
			if res.Answers, err = parseAnswers(raw); err != nil {
				return err
			}
			res.Reflection.Likes, _ = cmd.Flags().GetString("likes")
			res.Reflection.GoodAt, _ = cmd.Flags().GetString("good-at")
			res.Reflection.Develop, _ = cmd.Flags().GetString("develop")
		}

		userID := ""
		if u := account.SessionFrom(e.ctx); u != nil {
			userID = u.ID
		}
		m, err := e.assessment.Complete(e.ctx, userID, res.Answers, res.Reflection)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, printMap(m))
		if userID == "" {
			fmt.Fprintln(out, theme.Hint.Render("Log in to keep this map on your profile."))
		}
		return nil
	},
}

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Show your saved potential map",
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
		m, err := e.assessment.Result(e.ctx, u.ID)
		if err != nil {
			return err
		}
		if m == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No potential map yet. Run `impa quiz` first.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), printMap(m))
		return nil
	},
}

func printMap(m *assessment.PotentialMap) string {
	title := ""
	if t, ok := content.ResolveSuggestedTrack(m.SuggestedTrackID); ok {
		title = t.Title
	}
	return views.PotentialMap(m, title, renderWidth)
}

// parseAnswers reads "<question>=<value>" pairs. The value may be an
// option value or its 1-based number.
func parseAnswers(raw []string) (assessment.Answers, error) {
	answers := assessment.Answers{}
	for _, a := range raw {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want <question>=<value>", a)
		}
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("invalid question number in %q: %w", a, err)
		}
		q, found := content.GetQuizQuestion(id)
		if !found {
			return nil, fmt.Errorf("unknown question %d", id)
		}
		v = strings.TrimSpace(v)
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= len(q.Options) {
			v = q.Options[n-1].Value
		}
		answers[id] = v
	}
	return answers, nil
}

func init() {
	f := quizCmd.Flags()
	f.StringArrayP("answer", "a", nil, "Quiz answer as <question>=<value> (repeatable)")
	f.String("likes", "", "What you like doing")
	f.String("good-at", "", "What you are good at")
	f.String("develop", "", "What you want to develop")
}
