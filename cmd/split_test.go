package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/csvsplit/internal/constants"
	"github.com/turbot/csvsplit/internal/splitter"
)

func runRoot(t *testing.T, args ...string) int {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	exitCode = 0

	root := rootCommand()
	root.SetArgs(args)
	_ = root.Execute()
	return exitCode
}

// runExecute runs the full entry point, including the mapping of cobra errors to exit codes
func runExecute(t *testing.T, args ...string) int {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	exitCode = 0

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = append([]string{"csvsplit"}, args...)

	return Execute()
}

func writeInput(t *testing.T, rows int) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("id,rating\n")
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&sb, "%d,%d.5\n", i, i%5)
	}
	path := filepath.Join(t.TempDir(), "ratings.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}

func TestSplitCommand(t *testing.T) {
	input := writeInput(t, 10)
	outDir := filepath.Join(t.TempDir(), "parts")

	code := runRoot(t, "split", "--input", input, "--parts", "4", "--output-dir", outDir, "--output", "json")
	require.Equal(t, constants.ExitCodeSuccessful, code)

	wantRows := []int{2, 2, 2, 4}
	for i, want := range wantRows {
		b, err := os.ReadFile(filepath.Join(outDir, fmt.Sprintf("ratings_part%d.csv", i+1)))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
		assert.Equal(t, "id,rating", lines[0])
		assert.Len(t, lines[1:], want)
	}
}

func TestSplitCommand_EnvConfig(t *testing.T) {
	input := writeInput(t, 6)
	t.Setenv("CSVSPLIT_INPUT", input)
	t.Setenv("CSVSPLIT_PARTS", "3")
	t.Setenv("CSVSPLIT_BASE_NAME", "shard")

	code := runRoot(t, "split", "--output", "table")
	require.Equal(t, constants.ExitCodeSuccessful, code)

	for i := 1; i <= 3; i++ {
		assert.FileExists(t, filepath.Join(filepath.Dir(input), fmt.Sprintf("shard_part%d.csv", i)))
	}
	assert.NoFileExists(t, filepath.Join(filepath.Dir(input), "ratings_part1.csv"))
}

func TestSplitCommand_ExitCodes(t *testing.T) {
	input := writeInput(t, 3)
	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"invalid part count", []string{"split", "--input", input, "--parts", "0"}, constants.ExitCodeInsufficientOrWrongInputs},
		{"missing input", []string{"split", "--input", input + ".missing"}, constants.ExitCodeSplitFailed},
		{"empty input", []string{"split", "--input", empty}, constants.ExitCodeSplitFailed},
		{"plan", []string{"plan", "--input", input, "--parts", "2"}, constants.ExitCodeSuccessful},
		{"plan invalid part count", []string{"plan", "--input", input, "--parts", "-1"}, constants.ExitCodeInsufficientOrWrongInputs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runRoot(t, tt.args...))
		})
	}
}

func TestExecute_ExitCodes(t *testing.T) {
	input := writeInput(t, 3)
	dir := t.TempDir()
	badConfig := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("output: yaml\n"), 0644))
	goodConfig := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(goodConfig, []byte("parts: 3\n"), 0644))

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"split", "--input", input, "--output-dir", t.TempDir(), "--output", "json"}, constants.ExitCodeSuccessful},
		{"config file", []string{"plan", "--input", input, "--config-path", goodConfig}, constants.ExitCodeSuccessful},
		{"invalid output mode", []string{"split", "--input", input, "--output", "yaml"}, constants.ExitCodeInsufficientOrWrongInputs},
		{"non numeric part count", []string{"split", "--input", input, "--parts", "abc"}, constants.ExitCodeInsufficientOrWrongInputs},
		{"missing config file", []string{"split", "--input", input, "--config-path", filepath.Join(dir, "missing.yaml")}, constants.ExitCodeInsufficientOrWrongInputs},
		{"invalid config value", []string{"plan", "--input", input, "--config-path", badConfig}, constants.ExitCodeInsufficientOrWrongInputs},
		{"unknown command", []string{"merge"}, constants.ExitCodeInsufficientOrWrongInputs},
		{"invalid part count", []string{"split", "--input", input, "--parts", "0"}, constants.ExitCodeInsufficientOrWrongInputs},
		{"missing input", []string{"plan", "--input", filepath.Join(dir, "missing.csv")}, constants.ExitCodeSplitFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runExecute(t, tt.args...))
		})
	}
}

func TestPlanCommand_WritesNothing(t *testing.T) {
	input := writeInput(t, 10)

	code := runRoot(t, "plan", "--input", input, "--parts", "4", "--output", "text")
	require.Equal(t, constants.ExitCodeSuccessful, code)

	entries, err := os.ReadDir(filepath.Dir(input))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func Test_setExitCodeForSplitError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"part count", fmt.Errorf("bad: %w", splitter.ErrInvalidPartCount), constants.ExitCodeInsufficientOrWrongInputs},
		{"no input", splitter.ErrNoInput, constants.ExitCodeInsufficientOrWrongInputs},
		{"empty input", splitter.ErrEmptyInput, constants.ExitCodeSplitFailed},
		{"io", errors.New("disk full"), constants.ExitCodeSplitFailed},
		{"cancelled", context.Canceled, constants.ExitCodeSplitFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode = 0
			setExitCodeForSplitError(tt.err)
			assert.Equal(t, tt.want, exitCode)
		})
	}
}
