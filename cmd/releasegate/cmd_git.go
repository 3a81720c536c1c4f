package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/gitcheck"
)

var (
	gitClean    bool
	gitBranch   string
	gitTagMatch string
)

var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Check git repository state (clean, branch, tags)",
	Long: `Check git repository state.

Examples:
  releasegate git --clean                  # No uncommitted or untracked files
  releasegate git --branch main            # Must be on 'main' branch
  releasegate git --tag-match "v*"         # HEAD must have tag starting with 'v'
  releasegate git --clean --branch main    # Combined checks`,
	RunE: runGitCheck,
}

func init() {
	gitCmd.Flags().BoolVar(&gitClean, "clean", false,
		"working directory must be clean (no uncommitted or untracked)")
	gitCmd.Flags().StringVar(&gitBranch, "branch", "",
		"must be on specified branch")
	gitCmd.Flags().StringVar(&gitTagMatch, "tag-match", "",
		"HEAD must have tag matching glob pattern (e.g., 'v*')")
	rootCmd.AddCommand(gitCmd)
}

func runGitCheck(cmd *cobra.Command, _ []string) error {
	if err := requireAtLeastOne(
		flagSet{"--clean", gitClean},
		flagSet{"--branch", gitBranch != ""},
		flagSet{"--tag-match", gitTagMatch != ""},
	); err != nil {
		return err
	}

	c := &gitcheck.Check{
		Clean:    gitClean,
		Branch:   gitBranch,
		TagMatch: gitTagMatch,
		Runner:   &gitcheck.RealGitRunner{},
	}

	return runCheck(cmd, c)
}
