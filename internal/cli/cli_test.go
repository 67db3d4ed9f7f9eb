package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/rps/internal/app"
	"github.com/vk/rps/internal/hcl"
)

// writeFile creates a file with content in a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func parse(t *testing.T, args ...string) (*app.Config, bool, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(context.Background(), args, out, hcl.NewLoader())
	return cfg, shouldExit, out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T: %v", err, err)
	require.Equal(t, code, exitErr.Code)
	return exitErr
}

func TestParse_Modes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "no argument is interactive",
			args: nil,
			want: &app.Config{LogLevel: "warn", LogFormat: "text", Color: true},
		},
		{
			name: "throw argument is single shot",
			args: []string{"rock"},
			want: &app.Config{Throw: "rock", SingleShot: true, LogLevel: "warn", LogFormat: "text", Color: true},
		},
		{
			name: "unparseable throw is still passed through",
			args: []string{"banana"},
			want: &app.Config{Throw: "banana", SingleShot: true, LogLevel: "warn", LogFormat: "text", Color: true},
		},
		{
			name: "flags before throw",
			args: []string{"--log-level=debug", "--log-format", "json", "--color=false", "Paper"},
			want: &app.Config{Throw: "Paper", SingleShot: true, LogLevel: "debug", LogFormat: "json", Color: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, shouldExit, _, err := parse(t, tc.args...)

			require.NoError(t, err)
			require.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, out, err := parse(t, "-h")

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "-log-level")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "unknown flag",
			args:    []string{"--this-is-not-a-valid-flag"},
			wantMsg: "flag provided but not defined: -this-is-not-a-valid-flag",
		},
		{
			name:    "two throws",
			args:    []string{"rock", "paper"},
			wantMsg: "expected at most one throw, got 2 arguments",
		},
		{
			name:    "bad log level",
			args:    []string{"--log-level=loud"},
			wantMsg: "invalid log-level",
		},
		{
			name:    "bad log format",
			args:    []string{"--log-format=xml"},
			wantMsg: "invalid log-format",
		},
		{
			name:    "missing config file",
			args:    []string{"--config=/definitely/not/here.hcl"},
			wantMsg: "failed to find settings files",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, _, err := parse(t, tc.args...)

			exitErr := requireExitCode(t, err, 2)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_ConfigFileApplies(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, "rps.hcl", `
		log_level  = "info"
		log_format = "json"
		color      = false
	`)

	// --- Act ---
	cfg, _, _, err := parse(t, "--config", path, "rock")

	// --- Assert ---
	require.NoError(t, err)
	want := &app.Config{Throw: "rock", SingleShot: true, LogLevel: "info", LogFormat: "json", Color: false}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ExplicitFlagsOverrideConfigFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "rps.hcl", `
		log_level  = "info"
		log_format = "json"
		color      = false
	`)

	cfg, _, _, err := parse(t, "--config", path, "--log-level=error", "--color=true")

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat, "unset flag keeps the file value")
	assert.True(t, cfg.Color)
	assert.False(t, cfg.SingleShot)
}

func TestParse_EnvFileFeedsConfig(t *testing.T) {
	t.Parallel()

	envPath := writeFile(t, "game.env", "RPS_TEST_LEVEL=debug\n")
	cfgPath := writeFile(t, "rps.hcl", `log_level = env.RPS_TEST_LEVEL`)

	cfg, _, _, err := parse(t, "--config", cfgPath, "--env-file", envPath)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_InvalidValueFromConfigFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "rps.hcl", `log_format = "yaml"`)

	_, _, _, err := parse(t, "--config", path)

	exitErr := requireExitCode(t, err, 2)
	assert.Contains(t, exitErr.Message, "invalid log-format")
}

func TestParse_MissingEnvFile(t *testing.T) {
	t.Parallel()

	cfgPath := writeFile(t, "rps.hcl", ``)

	_, _, _, err := parse(t, "--config", cfgPath, "--env-file", filepath.Join(t.TempDir(), "nope.env"))

	exitErr := requireExitCode(t, err, 2)
	assert.Contains(t, exitErr.Message, "failed to read env file")
}
