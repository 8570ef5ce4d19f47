package installer

import (
	"fmt"

	"rn-env-setup/internal/logger"
)

// setupLinux runs the Linux toolchain procedure: refresh the apt index, then
// install the JDK and the Android device bridge utilities in one transaction,
// followed by the interactive Android Studio offer.
func (i *Installer) setupLinux() error {
	logger.Step("[STEP] Setting up Linux dependencies...\n")

	logger.Info("[INFO] Updating package index...\n")
	if err := i.run.Run("sudo", "apt-get", "update"); err != nil {
		return fmt.Errorf("apt-get update failed: %w", err)
	}

	packages := append([]string{i.man.Linux.Java}, i.man.Linux.DeviceTools...)
	logger.Info("[INFO] Installing %v...\n", packages)
	args := append([]string{"apt-get", "install", "-y"}, packages...)
	if err := i.run.Run("sudo", args...); err != nil {
		return fmt.Errorf("apt-get install failed: %w", err)
	}

	return i.offerAndroidStudio("xdg-open", i.man.AndroidStudioURL)
}
