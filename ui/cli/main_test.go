// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/impassword/internal/charset"
	"github.com/toeirei/impassword/internal/config"
	"github.com/toeirei/impassword/internal/core"
	"github.com/toeirei/impassword/internal/generator"
	"github.com/toeirei/impassword/internal/logging"
	"github.com/toeirei/impassword/internal/model"
	"github.com/toeirei/impassword/internal/testutil"
)

// runCmd executes a fresh root command with args in an isolated config
// environment and returns stdout, stderr and the error.
func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Chdir(tmp)

	prevTerm := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = prevTerm }()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, n := range []string{"generate", "score", "debug", "version"} {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == n {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected subcommand %s to be registered", n)
		}
	}
	if cmd.Version == "" {
		t.Fatalf("expected a version string")
	}
}

func TestGenerate_DefaultsAndCount(t *testing.T) {
	out, _, err := runCmd(t, "generate", "-n", "3")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	got := lines(out)
	if len(got) != 3 {
		t.Fatalf("expected 3 passwords, got %d: %q", len(got), out)
	}
	for _, pw := range got {
		if len(pw) != 16 {
			t.Fatalf("expected default length 16, got %q", pw)
		}
		if strings.ContainsAny(pw, charset.Ambiguous) {
			t.Fatalf("default options exclude ambiguous characters, got %q", pw)
		}
	}
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	a, _, err := runCmd(t, "generate", "--seed", "42", "--length", "24")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	b, _, _ := runCmd(t, "generate", "--seed", "42", "--length", "24")
	if a != b {
		t.Fatalf("same seed gave different output: %q vs %q", a, b)
	}

	want, _ := generator.New(generator.NewSeededSource(42)).Generate(model.Options{
		Length: 24, IncludeUppercase: true, IncludeLowercase: true,
		IncludeNumbers: true, IncludeSymbols: true, ExcludeAmbiguous: true,
	})
	if strings.TrimSpace(a) != want {
		t.Fatalf("expected %q, got %q", want, strings.TrimSpace(a))
	}
}

func TestGenerate_WithStrength(t *testing.T) {
	out, _, err := runCmd(t, "generate", "--strength", "--length", "16")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	parts := strings.Split(strings.TrimSpace(out), "\t")
	if len(parts) != 2 || parts[1] != "Very Strong" {
		t.Fatalf("expected password and Very Strong, got %q", out)
	}
}

func TestGenerate_OnlyNumbers(t *testing.T) {
	out, _, err := runCmd(t, "generate", "--upper=false", "--lower=false", "--symbols=false", "-l", "10")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	pw := strings.TrimSpace(out)
	if len(pw) != 10 || strings.Trim(pw, "23456789") != "" {
		t.Fatalf("expected 10 unambiguous digits, got %q", pw)
	}
}

func TestGenerate_NoCategories(t *testing.T) {
	_, _, err := runCmd(t, "generate", "--upper=false", "--lower=false", "--numbers=false", "--symbols=false")
	if !errors.Is(err, generator.ErrNoCharactersAvailable) {
		t.Fatalf("expected ErrNoCharactersAvailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "select at least one character type") {
		t.Fatalf("expected localized message, got %q", err.Error())
	}
}

func TestGenerate_RejectsOutOfRangeLength(t *testing.T) {
	for _, l := range []string{"4", "65"} {
		_, _, err := runCmd(t, "generate", "--length", l)
		if err == nil || !strings.Contains(err.Error(), "between 8 and 64") {
			t.Fatalf("length %s: expected range error, got %v", l, err)
		}
	}
	if _, _, err := runCmd(t, "generate", "--count", "0"); err == nil {
		t.Fatalf("expected error for count 0")
	}
}

func TestGenerate_CopyUsesClipboard(t *testing.T) {
	clip := &testutil.FakeClipboard{}
	prev := newClipboard
	newClipboard = func() core.Clipboard { return clip }
	defer func() { newClipboard = prev }()

	out, errOut, err := runCmd(t, "generate", "--copy", "-n", "2")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	got := lines(out)
	if clip.Text != got[len(got)-1] {
		t.Fatalf("expected last password %q on the clipboard, got %q", got[len(got)-1], clip.Text)
	}
	if !strings.Contains(errOut, "Password copied to clipboard!") {
		t.Fatalf("expected copy notification on stderr, got %q", errOut)
	}

	clip.Err = errors.New("no display")
	if _, _, err := runCmd(t, "generate", "--copy"); err == nil || err.Error() != "Failed to copy password." {
		t.Fatalf("expected copy failure, got %v", err)
	}
}

func TestGenerate_ReadsConfigAndEnv(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "custom.yaml")
	yaml := "language: de\ndefaults:\n  length: 20\n  symbols: false\n"
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, _, err := runCmd(t, "--config", file, "generate", "-s")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	parts := strings.Split(strings.TrimSpace(out), "\t")
	if len(parts[0]) != 20 || strings.ContainsAny(parts[0], charset.Symbols) {
		t.Fatalf("config options not applied: %q", parts[0])
	}
	if parts[1] != "Sehr stark" {
		t.Fatalf("expected German strength label, got %q", parts[1])
	}

	t.Setenv("IMPASSWORD_DEFAULTS_LENGTH", "12")
	out, _, err = runCmd(t, "generate")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(strings.TrimSpace(out)) != 12 {
		t.Fatalf("expected env length 12, got %q", out)
	}
}

func TestRoot_WritesDefaultConfigOnFirstRun(t *testing.T) {
	var logBuf bytes.Buffer
	logging.SetOutput(&logBuf)
	defer logging.SetOutput(os.Stderr)

	if _, _, err := runCmd(t, "generate"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	path, err := config.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(logBuf.String(), "created default config at "+path) {
		t.Fatalf("expected an info line for the new config file, got %q", logBuf.String())
	}
}

func TestRoot_NonTerminalPrintsOnePassword(t *testing.T) {
	out, _, err := runCmd(t)
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if got := lines(out); len(got) != 1 || len(got[0]) != 16 {
		t.Fatalf("expected a single 16 character password, got %q", out)
	}
}

func TestRoot_TerminalLaunchesTUI(t *testing.T) {
	prevTUI := runTUI
	defer func() { runTUI = prevTUI }()
	var gotOpts model.Options
	runTUI = func(opts model.Options, rng generator.RandomSource, clip core.Clipboard) error {
		gotOpts = opts
		return nil
	}

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Chdir(tmp)
	prevTerm := isTerminal
	isTerminal = func() bool { return true }
	defer func() { isTerminal = prevTerm }()

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--length", "30"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if gotOpts.Length != 30 {
		t.Fatalf("expected TUI to start with length 30, got %+v", gotOpts)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"score", "Ab3$Ab3$Ab3$Ab3$"}, "Very Strong"},
		{[]string{"score", "--length", "8", "Ab3$Ab3$Ab3$Ab3$"}, "Strong"},
		{[]string{"score", "abcdefgh"}, "Very Weak"},
		{[]string{"score", "--upper=false", "--numbers=false", "--symbols=false", "abcdefghabcdefgh"}, "Medium"},
		{[]string{"score", "--raw", "--lang", "de", "abcdefgh"}, "Very Weak"},
		{[]string{"score", "--lang", "de", "abcdefgh"}, "Sehr schwach"},
	}
	for _, tt := range tests {
		out, _, err := runCmd(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Fatalf("%v: got %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestScore_MinLevel(t *testing.T) {
	out, _, err := runCmd(t, "score", "--min", "strong", "Ab3$Ab3$Ab3$Ab3$")
	if err != nil {
		t.Fatalf("very strong password rejected by --min strong: %v", err)
	}
	if strings.TrimSpace(out) != "Very Strong" {
		t.Fatalf("unexpected output %q", out)
	}

	out, _, err = runCmd(t, "score", "--min", "Very_Strong", "abcdefgh")
	if err == nil {
		t.Fatalf("expected an error for a password below the threshold")
	}
	if err.Error() != "Strength Very Weak is below the required Very Strong." {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
	if strings.TrimSpace(out) != "Very Weak" {
		t.Fatalf("rating must still be printed, got %q", out)
	}

	if _, _, err := runCmd(t, "score", "--min", "mighty", "abcdefgh"); err == nil || !strings.Contains(err.Error(), "unknown strength level") {
		t.Fatalf("expected unknown level error, got %v", err)
	}
}

func TestDebugAndVersion(t *testing.T) {
	out, _, err := runCmd(t, "debug")
	if err != nil {
		t.Fatalf("debug failed: %v", err)
	}
	for _, want := range []string{"--- IMPASSWORD DEBUG ---", "-- flags --", "en = English", "--- END DEBUG ---"} {
		if !strings.Contains(out, want) {
			t.Fatalf("debug output missing %q:\n%s", want, out)
		}
	}

	out, _, err = runCmd(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestUnknownRandomSource(t *testing.T) {
	t.Setenv("IMPASSWORD_RANDOM_SOURCE", "dice")
	if _, _, err := runCmd(t, "generate"); !errors.Is(err, config.ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}
