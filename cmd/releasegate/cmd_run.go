package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/gate"
	"github.com/vertti/releasegate/pkg/gatefile"
	"github.com/vertti/releasegate/pkg/output"
)

var runFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full gate from a .releasegate.yml file",
	Long: `Run the full gate from a .releasegate.yml file.

Every declared check runs in order; a failed check never stops the
evaluation. The exit code is 0 only if all checks passed.

With a trailing command, exec into it once the gate passes:
  releasegate run -- npm publish`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to gate file (default: search up from current directory)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	gatePath, err := gatefile.FindFile(wd, runFile)
	if err != nil {
		return err
	}

	checks, err := gatefile.Load(gatePath)
	if err != nil {
		return err
	}

	report := gate.Evaluate(checks)
	output.FprintReport(cmd.OutOrStdout(), report)

	if !report.AllPassed() {
		return ErrCheckFailed
	}
	return nil
}
