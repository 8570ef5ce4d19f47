package installer

import (
	"fmt"

	"rn-env-setup/internal/logger"
)

// setupDarwin runs the macOS toolchain procedure: Homebrew (bootstrapped if
// absent), the file watcher, an Xcode command-line tools check (warn only),
// the JDK cask, and the interactive Android Studio offer.
func (i *Installer) setupDarwin() error {
	logger.Step("[STEP] Setting up macOS dependencies...\n")

	if !i.run.Probe("brew") {
		logger.Info("[INFO] Homebrew not found. Installing...\n")
		// The official bootstrap: fetch the install script and hand it to
		// bash via command substitution.
		bootstrap := fmt.Sprintf(`$(curl -fsSL %s)`, i.man.Darwin.BrewInstallURL)
		if err := i.run.Run("/bin/bash", "-c", bootstrap); err != nil {
			return fmt.Errorf("Homebrew bootstrap failed: %w", err)
		}
	}

	logger.Info("[INFO] Installing %s...\n", i.man.Darwin.Watcher)
	if err := i.run.Run("brew", "install", i.man.Darwin.Watcher); err != nil {
		return fmt.Errorf("failed to install %s: %w", i.man.Darwin.Watcher, err)
	}

	// iOS builds need the Xcode toolchain, but installing Xcode is far
	// outside what a script should attempt. Warn and move on.
	if !i.run.Probe("xcodebuild") {
		logger.Warn("[WARN] Xcode not detected. Install it from the App Store to build iOS apps.\n")
	}

	logger.Info("[INFO] Installing JDK (%s)...\n", i.man.Darwin.Java)
	if err := i.run.Run("brew", "install", "--cask", i.man.Darwin.Java); err != nil {
		return fmt.Errorf("failed to install JDK: %w", err)
	}

	return i.offerAndroidStudio("open", i.man.AndroidStudioURL)
}
