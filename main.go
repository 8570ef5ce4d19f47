package main

import (
	"rn-env-setup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The rn-env-setup project automates setting up a React Native development
// environment on a fresh machine:
//   - Verifies git is available before anything else runs
//   - Ensures a Node.js runtime is present, bootstrapping nvm and installing
//     the latest LTS release where the platform allows it
//   - Installs the React Native CLI globally through npm
//   - Runs one OS-specific toolchain procedure: Homebrew-based on macOS,
//     apt-get-based on Linux, Chocolatey-based on Windows
//   - Offers to open the Android Studio download page, then prints the manual
//     follow-up steps (SDK components, ANDROID_HOME) the user still has to do
//
// Error handling strategy:
//   - The pipeline is fail-fast: the first subprocess failure aborts the run
//     with exit code 1; nothing is retried or rolled back
//   - Environments the tool cannot remediate (git missing, no scripted Node.js
//     install path) are reported as warnings rather than errors, also exit 1
//
// Every install is delegated to an external package manager or bootstrap
// script; this tool only orchestrates and reports.
func main() {
	cmd.Execute()
}
