package installer

import (
	"bufio"
	"fmt"
	"io"

	"rn-env-setup/internal/config"
	"rn-env-setup/internal/logger"
	"rn-env-setup/internal/platform"
	"rn-env-setup/internal/shell"
)

// UnsupportedEnvError marks a condition the installer cannot remediate by
// running commands: a missing hard prerequisite, or a platform with no
// scripted install path for a required tool. The cmd layer prints these as
// warnings instead of errors; either way the process exits non-zero.
type UnsupportedEnvError struct {
	Reason string
}

func (e *UnsupportedEnvError) Error() string {
	return e.Reason
}

// Installer runs the environment setup pipeline: prerequisite check, Node.js
// runtime check, global CLI install, one platform-specific procedure, and the
// closing next-steps message. Stages run strictly in order and the first
// failure aborts the run; nothing is retried or rolled back.
type Installer struct {
	run  shell.Runner
	in   *bufio.Reader
	out  io.Writer
	plat platform.Platform
	man  config.Manifest

	// assumeYes answers the interactive IDE offer affirmatively without
	// reading input, for non-interactive runs.
	assumeYes bool
}

// New builds an Installer. The interactive reader and the command runner are
// injected here so tests can drive the pipeline with scripted fakes.
func New(run shell.Runner, in io.Reader, out io.Writer, plat platform.Platform, man config.Manifest, assumeYes bool) *Installer {
	return &Installer{
		run:       run,
		in:        bufio.NewReader(in),
		out:       out,
		plat:      plat,
		man:       man,
		assumeYes: assumeYes,
	}
}

// Run executes all stages in order and returns the first failure, if any.
// A nil return means every scripted stage completed; it does not mean the
// manual follow-up steps were done.
func (i *Installer) Run() error {
	logger.Info("[INFO] Setting up React Native environment (%s)\n", i.plat)

	if err := i.checkPrerequisites(); err != nil {
		return err
	}
	if err := i.ensureRuntime(); err != nil {
		return err
	}
	if err := i.installCLI(); err != nil {
		return err
	}
	if err := i.setupPlatform(); err != nil {
		return err
	}

	i.printNextSteps()
	return nil
}

// checkPrerequisites requires git to be invocable. Without it there is no
// point continuing: every React Native project workflow assumes it.
func (i *Installer) checkPrerequisites() error {
	logger.Step("[STEP] Checking prerequisites...\n")

	if !i.run.Probe("git") {
		return &UnsupportedEnvError{
			Reason: "git is not installed. Install git first, then re-run this tool.",
		}
	}
	logger.Info("[INFO] git found\n")
	return nil
}

// ensureRuntime makes sure a Node.js runtime is present. When it is absent,
// macOS and Linux get nvm bootstrapped and the latest LTS release installed;
// Windows has no scripted path here, so the user is pointed at the official
// installer and the run stops.
func (i *Installer) ensureRuntime() error {
	logger.Step("[STEP] Checking Node.js runtime...\n")

	if i.run.Probe("node") {
		logger.Info("[INFO] Node.js found\n")
		return nil
	}

	if i.plat == platform.Windows {
		return &UnsupportedEnvError{
			Reason: "Node.js is not installed. Download the LTS installer from https://nodejs.org and re-run this tool.",
		}
	}

	logger.Info("[INFO] Node.js not found. Installing nvm...\n")
	bootstrap := fmt.Sprintf("curl -o- %s | bash", i.man.NvmInstallURL)
	if err := i.run.Run("bash", "-c", bootstrap); err != nil {
		return fmt.Errorf("nvm bootstrap failed: %w", err)
	}

	logger.Info("[INFO] Installing Node.js LTS via nvm...\n")
	// nvm is a shell function, not a binary, so it has to be sourced into
	// the shell that invokes it.
	install := `source "$HOME/.nvm/nvm.sh" && nvm install --lts`
	if err := i.run.Run("bash", "-c", install); err != nil {
		return fmt.Errorf("Node.js LTS install failed: %w", err)
	}

	logger.Info("[INFO] Node.js LTS installed\n")
	return nil
}

// installCLI installs the React Native CLI globally. This runs on every
// invocation with no existence check: npm treats a re-install of the same
// package as an upgrade-or-noop, which is the behavior we want.
func (i *Installer) installCLI() error {
	logger.Step("[STEP] Installing %s...\n", i.man.CLIPackage)

	if err := i.run.Run("npm", "install", "-g", i.man.CLIPackage); err != nil {
		return fmt.Errorf("failed to install %s: %w", i.man.CLIPackage, err)
	}
	logger.Info("[INFO] %s installed\n", i.man.CLIPackage)
	return nil
}

// setupPlatform dispatches to exactly one OS-specific procedure. An
// unsupported platform is logged and skipped; the pipeline still completes.
func (i *Installer) setupPlatform() error {
	switch i.plat {
	case platform.Darwin:
		return i.setupDarwin()
	case platform.Linux:
		return i.setupLinux()
	case platform.Windows:
		return i.setupWindows()
	default:
		logger.Warn("[WARN] No platform-specific setup available for this OS. Skipping.\n")
		return nil
	}
}

// printNextSteps closes a successful run with the manual follow-ups the tool
// does not verify: Android Studio components and environment variables.
func (i *Installer) printNextSteps() {
	logger.Success("[OK] Environment setup complete!\n")

	fmt.Fprintln(i.out)
	fmt.Fprintln(i.out, "Next steps:")
	fmt.Fprintln(i.out, "  1. Finish the Android Studio installation if you started it")
	fmt.Fprintln(i.out, "  2. In Android Studio, install the Android SDK, SDK Platform and")
	fmt.Fprintln(i.out, "     Android Virtual Device through the SDK Manager")
	fmt.Fprintln(i.out, "  3. Set ANDROID_HOME and add its platform-tools directory to PATH")
	fmt.Fprintln(i.out, "  4. Run 'npx react-native doctor' to verify the environment")
	fmt.Fprintln(i.out)
}
