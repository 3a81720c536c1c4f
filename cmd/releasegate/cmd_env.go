package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/envcheck"
)

var (
	envMatch     string
	envHideValue bool
	envMaskValue bool
)

var envCmd = &cobra.Command{
	Use:   "env <name>",
	Short: "Check that a publish credential or environment variable is set",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnvCheck,
}

func init() {
	envCmd.Flags().StringVar(&envMatch, "match", "", "regex pattern the value must match")
	envCmd.Flags().BoolVar(&envHideValue, "hide-value", false, "don't show the value in output")
	envCmd.Flags().BoolVar(&envMaskValue, "mask-value", false, "show only the first and last 3 chars")
	rootCmd.AddCommand(envCmd)
}

func runEnvCheck(cmd *cobra.Command, args []string) error {
	c := &envcheck.Check{
		Name:      args[0],
		Match:     envMatch,
		HideValue: envHideValue,
		MaskValue: envMaskValue,
		Getter:    &envcheck.RealEnvGetter{},
	}

	return runCheck(cmd, c)
}
