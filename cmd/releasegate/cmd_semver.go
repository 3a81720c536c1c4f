package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/semvercheck"
)

var (
	semverField       string
	semverMin         string
	semverExact       string
	semverGreaterThan string
)

var semverCmd = &cobra.Command{
	Use:   "semver <manifest>",
	Short: "Check that the manifest version field is a valid semantic version",
	Long: `Check that the manifest version field is a valid semantic version.

Examples:
  releasegate semver package.json
  releasegate semver package.json --min 1.0.0
  releasegate semver package.json --greater-than 1.2.2  # last published`,
	Args: cobra.ExactArgs(1),
	RunE: runSemverCheck,
}

func init() {
	semverCmd.Flags().StringVar(&semverField, "field", "", "manifest field holding the version (default: version)")
	semverCmd.Flags().StringVar(&semverMin, "min", "", "version must be >= this")
	semverCmd.Flags().StringVar(&semverExact, "exact", "", "version must equal this")
	semverCmd.Flags().StringVar(&semverGreaterThan, "greater-than", "", "version must be > this")
	rootCmd.AddCommand(semverCmd)
}

func runSemverCheck(cmd *cobra.Command, args []string) error {
	c := &semvercheck.Check{
		File:        args[0],
		Field:       semverField,
		Min:         semverMin,
		Exact:       semverExact,
		GreaterThan: semverGreaterThan,
		FS:          &semvercheck.RealFileSystem{},
	}

	return runCheck(cmd, c)
}
