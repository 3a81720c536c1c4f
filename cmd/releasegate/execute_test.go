package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Value.Type() == "stringSlice" || f.Value.Type() == "intSlice" {
			_ = f.Value.Set("")
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "releasegate")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "file")
	assert.Contains(t, output, "manifest")
	assert.Contains(t, output, "tests")
	assert.Contains(t, output, "run")
}

func TestFileCommand(t *testing.T) {
	path := writeTempFile(t, "README.md", "# widget\n")

	output, err := executeCommand("file", path)
	require.NoError(t, err)
	assert.Contains(t, output, "[OK]")
}

func TestFileCommand_Missing(t *testing.T) {
	output, err := executeCommand("file", filepath.Join(t.TempDir(), "absent.js"))
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, output, "[FAIL]")
	assert.Contains(t, output, "not found")
}

func TestFileCommand_ConflictingDigestFlags(t *testing.T) {
	path := writeTempFile(t, "index.js", "module.exports = {}\n")

	_, err := executeCommand("file", path, "--sha256", "ab", "--checksum-file", "sums.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestManifestCommand(t *testing.T) {
	path := writeTempFile(t, "package.json", `{"main": "./dist/cjs/index.js"}`)

	output, err := executeCommand("manifest", path, "--field", "main", "--exact", "./dist/cjs/index.js")
	require.NoError(t, err)
	assert.Contains(t, output, "[OK]")
}

func TestManifestCommand_Mismatch(t *testing.T) {
	path := writeTempFile(t, "package.json", `{"main": "./index.js"}`)

	output, err := executeCommand("manifest", path, "--field", "main", "--exact", "./dist/cjs/index.js")
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, output, "[FAIL]")
}

func TestManifestCommand_RequiresAssertion(t *testing.T) {
	path := writeTempFile(t, "package.json", `{}`)

	_, err := executeCommand("manifest", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of --field, --has-field is required")
}

func TestManifestCommand_ExactRequiresField(t *testing.T) {
	path := writeTempFile(t, "package.json", `{}`)

	_, err := executeCommand("manifest", path, "--exact", "./dist/cjs/index.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--exact and --match require --field")
}

func TestSemverCommand(t *testing.T) {
	path := writeTempFile(t, "package.json", `{"version": "1.2.3"}`)

	output, err := executeCommand("semver", path, "--min", "1.0.0")
	require.NoError(t, err)
	assert.Contains(t, output, "version: 1.2.3")
}

func TestTestsCommand_PolicyValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown policy",
			args:    []string{"tests", "npm", "test", "--policy", "lenient"},
			wantErr: "unknown policy",
		},
		{
			name:    "threshold without rate",
			args:    []string{"tests", "npm", "test", "--policy", "threshold"},
			wantErr: "--min-pass-rate must be in (0, 1]",
		},
		{
			name:    "rate outside range",
			args:    []string{"tests", "npm", "test", "--policy", "threshold", "--min-pass-rate", "1.5"},
			wantErr: "--min-pass-rate must be in (0, 1]",
		},
		{
			name:    "rate with strict policy",
			args:    []string{"tests", "npm", "test", "--min-pass-rate", "0.95"},
			wantErr: "--min-pass-rate only applies to the threshold policy",
		},
		{
			name:    "marker with strict policy",
			args:    []string{"tests", "npm", "test", "--marker", "Tests:"},
			wantErr: "--marker only applies to the ran-at-all policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvCommand(t *testing.T) {
	t.Setenv("RELEASEGATE_TEST_TOKEN", "npm_abc123def")

	output, err := executeCommand("env", "RELEASEGATE_TEST_TOKEN", "--mask-value")
	require.NoError(t, err)
	assert.Contains(t, output, "npm•••def")
}

func TestGitCommand_RequiresFlag(t *testing.T) {
	_, err := executeCommand("git")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of --clean, --branch, --tag-match is required")
}

func TestRunCommand_AllPass(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# widget\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"version": "1.2.3", "main": "./dist/cjs/index.js"}`), 0o600))

	gatePath := filepath.Join(dir, ".releasegate.yml")
	gateYml := `checks:
  - type: file
    path: ` + filepath.Join(dir, "README.md") + `
  - type: manifest
    path: ` + filepath.Join(dir, "package.json") + `
    field: main
    exact: ./dist/cjs/index.js
  - type: semver
    path: ` + filepath.Join(dir, "package.json") + `
    min: 1.0.0
`
	require.NoError(t, os.WriteFile(gatePath, []byte(gateYml), 0o600))

	output, err := executeCommand("run", "--file", gatePath)
	require.NoError(t, err)
	assert.Contains(t, output, "all 3 checks passed")
	assert.NotContains(t, output, "[FAIL]")
}

func TestRunCommand_SingleFailureKeepsOthers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# widget\n"), 0o600))
	// main points at the source entry instead of the build output
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"main": "./index.js"}`), 0o600))

	gatePath := filepath.Join(dir, ".releasegate.yml")
	gateYml := `checks:
  - type: file
    path: ` + filepath.Join(dir, "README.md") + `
  - type: manifest
    path: ` + filepath.Join(dir, "package.json") + `
    field: main
    exact: ./dist/cjs/index.js
  - type: file
    path: ` + filepath.Join(dir, "README.md") + `
`
	require.NoError(t, os.WriteFile(gatePath, []byte(gateYml), 0o600))

	output, err := executeCommand("run", "--file", gatePath)
	require.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, output, "1 of 3 checks failed")
	assert.Contains(t, output, "[FAIL] manifest:")

	// Both file checks around the failure still passed.
	lines := bytes.Count([]byte(output), []byte("[OK] file:"))
	assert.Equal(t, 2, lines)
}

func TestRunCommand_MalformedGateFile(t *testing.T) {
	gatePath := writeTempFile(t, ".releasegate.yml", "checks: [")

	_, err := executeCommand("run", "--file", gatePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse gate file")
}

func TestRunCommand_MissingGateFile(t *testing.T) {
	_, err := executeCommand("run", "--file", filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gate file not found")
}
