package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/manifestcheck"
)

var (
	manifestHasField string
	manifestField    string
	manifestExact    string
	manifestMatch    string
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <file>",
	Short: "Validate the package manifest and check field values",
	Long: `Validate the package manifest and check field values.

Examples:
  releasegate manifest package.json --field main --exact ./dist/cjs/index.js
  releasegate manifest package.json --has-field publishConfig.access
  releasegate manifest package.json --field types --match '\.d\.ts$'`,
	Args: cobra.ExactArgs(1),
	RunE: runManifestCheck,
}

func init() {
	manifestCmd.Flags().StringVar(&manifestHasField, "has-field", "", "check that field exists (dot notation for nested)")
	manifestCmd.Flags().StringVar(&manifestField, "field", "", "field to check the value of (dot notation for nested)")
	manifestCmd.Flags().StringVar(&manifestExact, "exact", "", "exact value required (requires --field)")
	manifestCmd.Flags().StringVar(&manifestMatch, "match", "", "regex pattern for value (requires --field)")
	rootCmd.AddCommand(manifestCmd)
}

func runManifestCheck(cmd *cobra.Command, args []string) error {
	if (manifestExact != "" || manifestMatch != "") && manifestField == "" {
		return errors.New("--exact and --match require --field to be set")
	}
	if err := requireAtLeastOne(
		flagSet{"--field", manifestField != ""},
		flagSet{"--has-field", manifestHasField != ""},
	); err != nil {
		return err
	}

	c := &manifestcheck.Check{
		File:     args[0],
		HasField: manifestHasField,
		Field:    manifestField,
		Exact:    manifestExact,
		Match:    manifestMatch,
		FS:       &manifestcheck.RealFileSystem{},
	}

	return runCheck(cmd, c)
}
