package platform

import "runtime"

// Platform identifies the host operating system for the duration of the run.
// It is detected once at startup and never changes afterwards.
type Platform int

const (
	// Unsupported covers any OS the installer has no procedure for.
	// It is an explicit case so the pipeline can log the skip instead of
	// silently doing nothing.
	Unsupported Platform = iota
	Darwin
	Linux
	Windows
)

// Detect returns the Platform for the current process.
func Detect() Platform {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS string to a Platform. Anything outside the three
// supported systems maps to Unsupported.
func FromGOOS(goos string) Platform {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Unsupported
	}
}

// String returns a human-readable name for log output.
func (p Platform) String() string {
	switch p {
	case Darwin:
		return "macOS"
	case Linux:
		return "Linux"
	case Windows:
		return "Windows"
	default:
		return "unsupported"
	}
}
