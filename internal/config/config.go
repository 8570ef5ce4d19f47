package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes everything the install pipeline shells out for: the
// globally installed CLI package, bootstrap script locations, and the
// per-platform package names. Every field has a built-in default; a YAML
// manifest passed with --config overrides only the fields it sets.
type Manifest struct {
	// CLIPackage is installed globally through npm on every run.
	CLIPackage string `yaml:"cli_package"`

	// NvmInstallURL is the nvm bootstrap script, piped through bash when
	// Node.js is absent on macOS or Linux.
	NvmInstallURL string `yaml:"nvm_install_url"`

	// AndroidStudioURL is opened in a browser when the user accepts the
	// IDE download offer.
	AndroidStudioURL string `yaml:"android_studio_url"`

	// MinNodeMajor is the oldest Node.js major version `doctor` accepts
	// without a warning.
	MinNodeMajor int `yaml:"min_node_major"`

	Darwin  DarwinPackages  `yaml:"darwin"`
	Linux   LinuxPackages   `yaml:"linux"`
	Windows WindowsPackages `yaml:"windows"`
}

// DarwinPackages names the Homebrew-managed pieces of the macOS procedure.
type DarwinPackages struct {
	BrewInstallURL string `yaml:"brew_install_url"` // Homebrew bootstrap script
	Watcher        string `yaml:"watcher"`          // file-watching formula
	Java           string `yaml:"java"`             // JDK cask
}

// LinuxPackages names the apt-get packages for the Linux procedure.
type LinuxPackages struct {
	Java        string   `yaml:"java"`         // JDK package
	DeviceTools []string `yaml:"device_tools"` // Android device bridge utilities
}

// WindowsPackages names the Chocolatey-managed pieces of the Windows procedure.
type WindowsPackages struct {
	ChocoInstallURL string `yaml:"choco_install_url"` // Chocolatey bootstrap script
	Java            string `yaml:"java"`              // JDK package
}

// Default returns the manifest used when no --config file is given.
func Default() Manifest {
	return Manifest{
		CLIPackage:       "react-native-cli",
		NvmInstallURL:    "https://raw.githubusercontent.com/nvm-sh/nvm/v0.39.7/install.sh",
		AndroidStudioURL: "https://developer.android.com/studio",
		MinNodeMajor:     18,
		Darwin: DarwinPackages{
			BrewInstallURL: "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh",
			Watcher:        "watchman",
			Java:           "zulu17",
		},
		Linux: LinuxPackages{
			Java:        "openjdk-17-jdk",
			DeviceTools: []string{"adb", "fastboot"},
		},
		Windows: WindowsPackages{
			ChocoInstallURL: "https://community.chocolatey.org/install.ps1",
			Java:            "openjdk17",
		},
	}
}

// Load returns the default manifest with the YAML file at path layered on
// top. An empty path means defaults only.
func Load(path string) (Manifest, error) {
	man := Default()
	if path == "" {
		return man, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return man, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	// Unmarshal over the defaults: keys absent from the file keep their
	// built-in values.
	if err := yaml.Unmarshal(raw, &man); err != nil {
		return man, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return man, nil
}
