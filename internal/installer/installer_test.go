package installer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"rn-env-setup/internal/config"
	"rn-env-setup/internal/platform"
)

// fakeRunner scripts command outcomes so pipeline behavior can be asserted
// without touching real package managers.
type fakeRunner struct {
	missing map[string]bool // tools whose existence probe fails
	failOn  string          // substring of a command line that should fail
	calls   []string        // every Run/Output invocation as "name arg ..."
	probes  []string        // every probed tool name, in order
}

func (f *fakeRunner) record(name string, args ...string) string {
	call := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.calls = append(f.calls, call)
	return call
}

func (f *fakeRunner) Run(name string, args ...string) error {
	call := f.record(name, args...)
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) Output(name string, args ...string) (string, error) {
	call := f.record(name, args...)
	if f.missing[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return "", errors.New("exit status 1")
	}
	return "v22.18.0\n", nil
}

func (f *fakeRunner) Probe(name string) bool {
	f.probes = append(f.probes, name)
	return !f.missing[name]
}

// called reports whether any recorded command line contains substr.
func (f *fakeRunner) called(substr string) bool {
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

func newTestInstaller(r *fakeRunner, plat platform.Platform, input string) (*Installer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(r, strings.NewReader(input), out, plat, config.Default(), false), out
}

func TestRunDispatchesOnlyDetectedPlatform(t *testing.T) {
	cases := []struct {
		name    string
		plat    platform.Platform
		want    []string
		wantNot []string
	}{
		{
			name:    "darwin",
			plat:    platform.Darwin,
			want:    []string{"brew install watchman", "brew install --cask zulu17"},
			wantNot: []string{"apt-get", "choco"},
		},
		{
			name:    "linux",
			plat:    platform.Linux,
			want:    []string{"sudo apt-get update", "sudo apt-get install -y openjdk-17-jdk adb fastboot"},
			wantNot: []string{"brew", "choco"},
		},
		{
			name:    "windows",
			plat:    platform.Windows,
			want:    []string{"choco install -y openjdk17"},
			wantNot: []string{"brew", "apt-get"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeRunner{}
			inst, _ := newTestInstaller(f, tc.plat, "n\n")

			if err := inst.Run(); err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			for _, w := range tc.want {
				if !f.called(w) {
					t.Errorf("expected command containing %q, got calls: %v", w, f.calls)
				}
			}
			for _, w := range tc.wantNot {
				if f.called(w) {
					t.Errorf("unexpected command containing %q, got calls: %v", w, f.calls)
				}
			}
		})
	}
}

func TestMissingGitAbortsBeforeAnyStage(t *testing.T) {
	f := &fakeRunner{missing: map[string]bool{"git": true}}
	inst, _ := newTestInstaller(f, platform.Linux, "")

	err := inst.Run()
	var unsup *UnsupportedEnvError
	if !errors.As(err, &unsup) {
		t.Fatalf("expected UnsupportedEnvError, got %v", err)
	}
	if len(f.calls) != 0 {
		t.Errorf("no commands should run after the git probe, got: %v", f.calls)
	}
	if len(f.probes) != 1 || f.probes[0] != "git" {
		t.Errorf("expected only the git probe, got: %v", f.probes)
	}
}

func TestNodePresentSkipsBootstrap(t *testing.T) {
	f := &fakeRunner{}
	inst, _ := newTestInstaller(f, platform.Linux, "n\n")

	if err := inst.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if f.called("nvm") {
		t.Errorf("nvm must not be invoked when node is present, got: %v", f.calls)
	}
}

func TestMissingNodeBootstrapsNvm(t *testing.T) {
	f := &fakeRunner{missing: map[string]bool{"node": true}}
	inst, _ := newTestInstaller(f, platform.Linux, "n\n")

	if err := inst.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !f.called("curl -o- https://raw.githubusercontent.com/nvm-sh/nvm") {
		t.Errorf("expected nvm bootstrap download, got: %v", f.calls)
	}
	if !f.called("nvm install --lts") {
		t.Errorf("expected LTS install through nvm, got: %v", f.calls)
	}
}

func TestWindowsMissingNodeIsHardStop(t *testing.T) {
	f := &fakeRunner{missing: map[string]bool{"node": true}}
	inst, _ := newTestInstaller(f, platform.Windows, "")

	err := inst.Run()
	var unsup *UnsupportedEnvError
	if !errors.As(err, &unsup) {
		t.Fatalf("expected UnsupportedEnvError, got %v", err)
	}
	if f.called("curl") || f.called("nvm") {
		t.Errorf("no download may be attempted on Windows, got: %v", f.calls)
	}
	if f.called("npm install") {
		t.Errorf("CLI install must not run after the hard stop, got: %v", f.calls)
	}
}

func TestCLIInstallAlwaysRuns(t *testing.T) {
	f := &fakeRunner{}
	inst, _ := newTestInstaller(f, platform.Linux, "n\n")

	if err := inst.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !f.called("npm install -g react-native-cli") {
		t.Errorf("expected unconditional CLI install, got: %v", f.calls)
	}
}

func TestIDEOfferAnswerHandling(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		launch bool
	}{
		{name: "lowercase y", input: "y\n", launch: true},
		{name: "uppercase Y", input: "Y\n", launch: true},
		{name: "padded y", input: "  y  \n", launch: true},
		{name: "yes is not the token", input: "yes\n", launch: false},
		{name: "n", input: "n\n", launch: false},
		{name: "empty line", input: "\n", launch: false},
		{name: "no input at all", input: "", launch: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeRunner{}
			inst, _ := newTestInstaller(f, platform.Linux, tc.input)

			if err := inst.Run(); err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if got := f.called("xdg-open"); got != tc.launch {
				t.Errorf("browser launch = %t, want %t (calls: %v)", got, tc.launch, f.calls)
			}
		})
	}
}

func TestAssumeYesSkipsPrompt(t *testing.T) {
	f := &fakeRunner{}
	out := &bytes.Buffer{}
	inst := New(f, strings.NewReader(""), out, platform.Linux, config.Default(), true)

	if err := inst.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !f.called("xdg-open https://developer.android.com/studio") {
		t.Errorf("expected browser launch without prompting, got: %v", f.calls)
	}
	if strings.Contains(out.String(), "Download Android Studio now?") {
		t.Errorf("prompt must not be printed with --yes")
	}
}

func TestPlatformStageFailureAborts(t *testing.T) {
	f := &fakeRunner{failOn: "apt-get install"}
	inst, out := newTestInstaller(f, platform.Linux, "n\n")

	err := inst.Run()
	if err == nil {
		t.Fatal("expected an error from the failing install")
	}
	var unsup *UnsupportedEnvError
	if errors.As(err, &unsup) {
		t.Fatalf("a subprocess failure is not an unsupported environment: %v", err)
	}
	if strings.Contains(out.String(), "Next steps:") {
		t.Errorf("next steps must not be printed after a failure")
	}
}

func TestUnsupportedPlatformStillCompletes(t *testing.T) {
	f := &fakeRunner{}
	inst, out := newTestInstaller(f, platform.Unsupported, "")

	if err := inst.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, forbidden := range []string{"brew", "apt-get", "choco", "xdg-open", "open "} {
		if f.called(forbidden) {
			t.Errorf("no platform procedure may run, got command containing %q: %v", forbidden, f.calls)
		}
	}
	if !f.called("npm install -g react-native-cli") {
		t.Errorf("platform-independent stages must still run, got: %v", f.calls)
	}
	if !strings.Contains(out.String(), "Next steps:") {
		t.Errorf("pipeline must complete through the next-steps output")
	}
}

func TestBrewBootstrapOnlyWhenAbsent(t *testing.T) {
	present := &fakeRunner{}
	inst, _ := newTestInstaller(present, platform.Darwin, "n\n")
	if err := inst.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if present.called("Homebrew/install") {
		t.Errorf("bootstrap must not run when brew is present, got: %v", present.calls)
	}

	absent := &fakeRunner{missing: map[string]bool{"brew": true}}
	inst, _ = newTestInstaller(absent, platform.Darwin, "n\n")
	if err := inst.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !absent.called("Homebrew/install") {
		t.Errorf("expected the Homebrew bootstrap, got: %v", absent.calls)
	}
}

func TestMissingXcodeWarnsOnly(t *testing.T) {
	f := &fakeRunner{missing: map[string]bool{"xcodebuild": true}}
	inst, _ := newTestInstaller(f, platform.Darwin, "n\n")

	if err := inst.Run(); err != nil {
		t.Fatalf("a missing Xcode must not fail the run: %v", err)
	}
	if !f.called("brew install --cask zulu17") {
		t.Errorf("the JDK install must still run after the Xcode warning, got: %v", f.calls)
	}
}
