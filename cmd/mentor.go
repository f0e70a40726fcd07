package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/impa-jovem/impa/internal/account"
	"github.com/impa-jovem/impa/internal/ui/theme"
	"github.com/impa-jovem/impa/internal/ui/views"
)

var mentorCmd = &cobra.Command{
	Use:   "mentor",
	Short: "Mentor dashboard",
}

var mentorStudentsCmd = &cobra.Command{
	Use:   "students",
	Short: "List students with their progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		rows, err := e.dashboard.Students(e.ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), views.Students(rows))
		return nil
	},
}

var mentorStudentCmd = &cobra.Command{
	Use:   "student <id>",
	Short: "Show a student's profile, potential map and journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		d, err := e.dashboard.Student(e.ctx, args[0])
		if err != nil {
			return err
		}
		if d == nil {
			return fmt.Errorf("student %s not found", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), views.StudentDetail(d, renderWidth))
		return nil
	},
}

var mentorInboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List questions and suggestions from users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if _, err := account.RequireRole(e.ctx, account.RoleMentor); err != nil {
			return err
		}
		qs, err := e.inbox.List(e.ctx)
		if err != nil {
			return err
		}
		pending, err := e.inbox.Pending(e.ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Inbox · %d pending", pending)))
		fmt.Fprintln(out, views.Inbox(qs, renderWidth))
		return nil
	},
}

var mentorAnswerCmd = &cobra.Command{
	Use:   "answer <id>",
	Short: "Mark a question as answered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if _, err := account.RequireRole(e.ctx, account.RoleMentor); err != nil {
			return err
		}
		if err := e.inbox.MarkAnswered(e.ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Completed.Render("Marked as answered."))
		return nil
	},
}

func init() {
	mentorCmd.AddCommand(mentorStudentsCmd)
	mentorCmd.AddCommand(mentorStudentCmd)
	mentorCmd.AddCommand(mentorInboxCmd)
	mentorCmd.AddCommand(mentorAnswerCmd)
}
