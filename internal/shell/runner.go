package shell

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"rn-env-setup/internal/logger"
)

// Runner abstracts external command execution so the install pipeline can be
// exercised in tests without invoking real package managers.
type Runner interface {
	// Run executes a command with the process's standard streams attached,
	// blocking until it exits. The returned error carries the command line.
	Run(name string, args ...string) error

	// Output executes a command and returns its combined stdout/stderr.
	Output(name string, args ...string) (string, error)

	// Probe reports whether `<name> --version` can be invoked successfully.
	// It never fails: any error from the probed command reads as "absent".
	Probe(name string) bool
}

// ExecRunner is the real Runner backed by os/exec.
type ExecRunner struct{}

// Run executes the command with inherited stdio so installer output (progress
// bars, sudo prompts) reaches the user directly.
func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", strings.Join(cmd.Args, " "), err)
	}
	return nil
}

// Output executes the command and captures both stdout and stderr.
func (ExecRunner) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("command %q failed: %w", strings.Join(cmd.Args, " "), err)
	}
	return string(out), nil
}

// Probe runs `<name> --version` with all output discarded. This is the sole
// existence check used by the pipeline: no version parsing, no PATH lookup
// subtleties, just "does invoking it succeed".
func (ExecRunner) Probe(name string) bool {
	cmd := exec.Command(name, "--version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	err := cmd.Run()
	logger.Debug("[DEBUG] Probe %s --version: present=%t\n", name, err == nil)
	return err == nil
}
