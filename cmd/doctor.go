package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"rn-env-setup/internal/config"
	"rn-env-setup/internal/installer"
	"rn-env-setup/internal/logger"
	"rn-env-setup/internal/platform"
	"rn-env-setup/internal/shell"
)

// doctorCmd reports which toolchain pieces are present without installing
// anything. Exits non-zero when a required tool is missing.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the React Native toolchain without installing anything",
	Run: func(cmd *cobra.Command, args []string) {
		man, err := config.Load(configPath)
		if err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}

		inst := installer.New(shell.ExecRunner{}, os.Stdin, os.Stdout, platform.Detect(), man, false)
		if !inst.Doctor() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
