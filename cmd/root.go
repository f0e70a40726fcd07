package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "impa",
	Short: "Youth mentorship in your terminal",
	Long: "IMPA helps young people aged 15 to 19 discover their skills, follow practical tracks,\n" +
		"keep a journal and ask mentors for guidance.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides IMPA_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (default $XDG_CONFIG_HOME/impa/config.yaml)")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(avatarCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(mentorCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
