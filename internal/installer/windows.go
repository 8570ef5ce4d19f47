package installer

import (
	"fmt"

	"rn-env-setup/internal/logger"
)

// setupWindows runs the Windows toolchain procedure: Chocolatey (bootstrapped
// through an elevated PowerShell if absent), the JDK package, and the
// interactive Android Studio offer.
func (i *Installer) setupWindows() error {
	logger.Step("[STEP] Setting up Windows dependencies...\n")

	if !i.run.Probe("choco") {
		logger.Info("[INFO] Chocolatey not found. Installing...\n")
		// The official bootstrap: relax the execution policy for this
		// process only, then fetch and run the install script.
		bootstrap := fmt.Sprintf(
			"Set-ExecutionPolicy Bypass -Scope Process -Force; "+
				"[System.Net.ServicePointManager]::SecurityProtocol = [System.Net.ServicePointManager]::SecurityProtocol -bor 3072; "+
				"iex ((New-Object System.Net.WebClient).DownloadString('%s'))",
			i.man.Windows.ChocoInstallURL)
		if err := i.run.Run("powershell", "-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", bootstrap); err != nil {
			return fmt.Errorf("Chocolatey bootstrap failed: %w", err)
		}
	}

	logger.Info("[INFO] Installing JDK (%s)...\n", i.man.Windows.Java)
	if err := i.run.Run("choco", "install", "-y", i.man.Windows.Java); err != nil {
		return fmt.Errorf("failed to install JDK: %w", err)
	}

	return i.offerAndroidStudio("cmd", "/c", "start", "", i.man.AndroidStudioURL)
}
