package installer

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"rn-env-setup/internal/logger"
	"rn-env-setup/internal/platform"
)

// toolCheck is one entry of the doctor report.
type toolCheck struct {
	name     string
	required bool
}

// doctorChecks lists the tools worth probing for the given platform, in
// report order. Required tools gate the doctor exit code; the rest only
// produce warnings when absent.
func doctorChecks(plat platform.Platform) []toolCheck {
	checks := []toolCheck{
		{name: "git", required: true},
		{name: "node", required: true},
		{name: "npm", required: true},
		{name: "java"},
	}
	switch plat {
	case platform.Darwin:
		checks = append(checks,
			toolCheck{name: "brew", required: true},
			toolCheck{name: "watchman"},
		)
	case platform.Linux:
		checks = append(checks,
			toolCheck{name: "adb"},
			toolCheck{name: "fastboot"},
		)
	case platform.Windows:
		checks = append(checks, toolCheck{name: "choco", required: true})
	}
	return checks
}

// Doctor probes every tool the install pipeline relies on for the detected
// platform and reports what it finds, installing nothing. It returns true
// when every required tool is present.
func (i *Installer) Doctor() bool {
	logger.Step("[STEP] Checking React Native environment (%s)...\n", i.plat)

	ok := true
	for _, c := range doctorChecks(i.plat) {
		out, err := i.run.Output(c.name, "--version")
		if err != nil {
			if c.required {
				logger.Error("[ERROR] %-10s missing (required)\n", c.name)
				ok = false
			} else {
				logger.Warn("[WARN] %-10s missing\n", c.name)
			}
			continue
		}

		ver := firstLine(out)
		logger.Info("[INFO] %-10s %s\n", c.name, ver)

		if c.name == "node" && nodeBelowMinimum(ver, i.man.MinNodeMajor) {
			logger.Warn("[WARN] Node.js %s is older than the supported minimum (v%d). Run 'nvm install --lts'.\n",
				ver, i.man.MinNodeMajor)
		}
	}

	if ok {
		logger.Success("[OK] All required tools are present\n")
	} else {
		logger.Error("[ERROR] Some required tools are missing. Run 'rn-env-setup install'.\n")
	}
	return ok
}

// firstLine trims the output of `tool --version` down to its first line,
// which is the version string for every tool we probe.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// nodeBelowMinimum reports whether the version printed by `node --version`
// (e.g. "v22.18.0") is older than the given major version. Unparseable
// output reads as "not below" so odd builds do not trigger false warnings.
func nodeBelowMinimum(raw string, minMajor int) bool {
	v, err := goversion.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
	if err != nil {
		return false
	}
	min := goversion.Must(goversion.NewVersion(fmt.Sprintf("%d.0.0", minMajor)))
	return v.LessThan(min)
}
