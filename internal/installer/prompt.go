package installer

import (
	"fmt"
	"strings"

	"rn-env-setup/internal/logger"
)

// question prints the prompt and blocks until a single line of input arrives.
// The line is returned trimmed. End of input reads as an empty answer rather
// than an error, so piping nothing into the tool declines every offer.
func (i *Installer) question(prompt string) string {
	fmt.Fprint(i.out, prompt)
	line, err := i.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// offerAndroidStudio asks whether to open the Android Studio download page
// and launches the platform browser opener on an affirmative answer. Only a
// case-insensitive "y" counts as yes; anything else, including an empty
// line, skips the launch without error. The actual download and install are
// manual and never verified.
func (i *Installer) offerAndroidStudio(opener string, args ...string) error {
	if !i.assumeYes {
		answer := i.question("Download Android Studio now? (y/N): ")
		if strings.ToLower(answer) != "y" {
			logger.Info("[INFO] Skipping Android Studio download. Get it later from %s\n", i.man.AndroidStudioURL)
			return nil
		}
	}

	logger.Info("[INFO] Opening Android Studio download page...\n")
	if err := i.run.Run(opener, args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
