package main

import (
	"fmt"
	"os"

	"github.com/CodeCanna/pipali/pkg/logger"
	"github.com/CodeCanna/pipali/pkg/presenter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("PIPALI")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.pipali")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "pipali",
	Short: "Pipali scaffolds new agent skills from a built-in template",
	Long: `Pipali creates new skill directories under your skills root
(~/.pipali/skills by default, PIPALI_SKILLS_DIR to override).

Skill name requirements:
  - Hyphen-case (e.g., 'my-skill')
  - Lowercase letters, digits, and hyphens only
  - Max 64 characters

Example:
  pipali my-new-skill
  pipali init my-new-skill`,
	// Without Args set, cobra rejects bare positionals as unknown commands before Run
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
		return nil
	},
	// Default behavior is to show help if no arguments are provided
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			// If arguments are provided but no subcommand, forward to init command
			initCmd.Run(cmd, args)
		} else {
			cmd.Help()
			os.Exit(1)
		}
	},
}

func main() {
	// Add global flags
	rootCmd.PersistentFlags().String("skills-dir", "", "Skills root directory (overrides PIPALI_SKILLS_DIR and the default)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")

	// Bind flags to viper
	viper.BindPFlag("skills_dir", rootCmd.PersistentFlags().Lookup("skills-dir"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
