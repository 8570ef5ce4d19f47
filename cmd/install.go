package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"rn-env-setup/internal/config"
	"rn-env-setup/internal/installer"
	"rn-env-setup/internal/logger"
	"rn-env-setup/internal/platform"
	"rn-env-setup/internal/shell"
)

// configPath holds the path to an optional manifest YAML file overriding the
// built-in package names and bootstrap URLs.
var configPath string

// assumeYes answers the interactive Android Studio offer affirmatively
// without prompting, for non-interactive runs.
var assumeYes bool

// installCmd runs the full setup pipeline.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the React Native development toolchain",
	Run: func(cmd *cobra.Command, args []string) {
		runInstall()
	},
}

// runInstall wires the real runner and standard streams into the installer,
// runs the pipeline, and maps the outcome to an exit code. Conditions the
// tool cannot remediate print as warnings; everything else as errors.
func runInstall() {
	man, err := config.Load(configPath)
	if err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}

	inst := installer.New(shell.ExecRunner{}, os.Stdin, os.Stdout, platform.Detect(), man, assumeYes)
	if err := inst.Run(); err != nil {
		var unsup *installer.UnsupportedEnvError
		if errors.As(err, &unsup) {
			logger.Warn("[WARN] %s\n", unsup.Reason)
		} else {
			logger.Error("[ERROR] Setup failed: %v\n", err)
		}
		os.Exit(1)
	}
}

// init sets up CLI flags and registers the command with the root command.
// The flags are persistent on root so the bare invocation (which also runs
// the pipeline) accepts them too.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to manifest file overriding package defaults")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to the Android Studio download prompt")

	rootCmd.AddCommand(installCmd)
}
