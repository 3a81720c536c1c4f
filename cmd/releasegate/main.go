package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	pkgexec "github.com/vertti/releasegate/pkg/exec"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "releasegate",
	Short:   "Publish-readiness checks for your package",
	Long:    "Releasegate is a CLI tool that verifies artifacts, metadata, and test health before publishing.",
	Version: Version,
}

var knownSubcommands = []string{
	"file", "manifest", "tests", "semver", "env", "git", "run",
	"version", "help", "completion", "--help", "-h",
}

func main() {
	// Everything after "--" is the publish command to exec into on success.
	execArgs := extractExecArgs(&os.Args)

	// Shortcut: `releasegate gate.yml` rewrites to `releasegate run --file gate.yml`
	if len(os.Args) > 1 {
		firstArg := os.Args[1]
		if !strings.HasPrefix(firstArg, "-") && !isSubcommand(firstArg) {
			if info, err := os.Stat(firstArg); err == nil && !info.IsDir() {
				runFile = firstArg
				os.Args = append([]string{os.Args[0], "run"}, os.Args[2:]...)
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	// Gate passed - exec into the publish command if one was given
	if err := runExec(execArgs); err != nil {
		fmt.Fprintf(os.Stderr, "exec: %v\n", err)
		os.Exit(1)
	}
}

func isSubcommand(arg string) bool {
	for _, subcmd := range knownSubcommands {
		if arg == subcmd {
			return true
		}
	}
	return false
}

// extractExecArgs removes everything after "--" from args and returns it.
func extractExecArgs(args *[]string) []string {
	for i, a := range *args {
		if a == "--" {
			execArgs := (*args)[i+1:]
			*args = (*args)[:i]
			return execArgs
		}
	}
	return nil
}

func runExec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return (&pkgexec.RealExecutor{}).Exec(args[0], args[1:])
}
