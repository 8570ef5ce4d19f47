package cmd

import (
	"github.com/spf13/cobra"

	"rn-env-setup/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `rn-env-setup`.
// Invoking it with no subcommand runs the full install pipeline, matching the
// historical behavior of the setup script this tool replaces.
var rootCmd = &cobra.Command{
	Use:     "rn-env-setup",
	Short:   "React Native development environment setup tool",
	Version: "1.0.0",

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	// Bare invocation runs the installer.
	Run: func(cmd *cobra.Command, args []string) {
		runInstall()
	},
}

// Execute registers global flags and starts command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Errors are ignored here with `_ =` since Cobra reports them itself;
	// the install/doctor handlers own the exit codes.
	_ = rootCmd.Execute()
}
