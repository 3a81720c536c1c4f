package gitcheck

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/vertti/releasegate/pkg/check"
)

// Check verifies that the repository is in a publishable state.
type Check struct {
	Clean    bool   // --clean: no uncommitted or untracked changes
	Branch   string // --branch: must be on this branch
	TagMatch string // --tag-match: HEAD must have a tag matching this glob
	Runner   GitRunner
}

// Run executes the git check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "git",
	}

	isRepo, err := c.Runner.IsGitRepo()
	if err != nil {
		return result.Failf("failed to check git repository: %v", err)
	}
	if !isRepo {
		return result.Failf("not a git repository")
	}

	if c.Clean {
		if err := c.checkClean(&result); err != nil {
			return result
		}
	}

	if c.Branch != "" {
		if err := c.checkBranch(&result); err != nil {
			return result
		}
	}

	if c.TagMatch != "" {
		if err := c.checkTagMatch(&result); err != nil {
			return result
		}
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) checkClean(result *check.Result) error {
	status, err := c.Runner.Status()
	if err != nil {
		result.Failf("failed to get git status: %v", err)
		return err
	}

	if status == "" {
		result.AddDetail("working directory clean")
		return nil
	}

	// Porcelain format: XY PATH, with '??' marking untracked files.
	var dirty []string
	for _, line := range strings.Split(status, "\n") {
		if len(line) < 4 {
			continue
		}
		dirty = append(dirty, strings.TrimSpace(line[2:]))
	}

	for _, f := range dirty {
		result.AddDetailf("  %s", f)
	}
	err = fmt.Errorf("working directory has %d dirty file(s)", len(dirty))
	result.Fail(fmt.Sprintf("working directory has %d dirty file(s)", len(dirty)), err)
	return err
}

func (c *Check) checkBranch(result *check.Result) error {
	branch, err := c.Runner.CurrentBranch()
	if err != nil {
		result.Failf("failed to get current branch: %v", err)
		return err
	}

	result.AddDetailf("branch: %s", branch)

	if branch != c.Branch {
		result.Failf("on branch %q, expected %q", branch, c.Branch)
		return errors.New("wrong branch")
	}

	return nil
}

func (c *Check) checkTagMatch(result *check.Result) error {
	tags, err := c.Runner.TagsAtHead()
	if err != nil {
		result.Failf("failed to get tags: %v", err)
		return err
	}

	if len(tags) == 0 {
		result.Failf("no tags at HEAD, expected match for %q", c.TagMatch)
		return errors.New("no tags")
	}

	for _, tag := range tags {
		matched, err := path.Match(c.TagMatch, tag)
		if err != nil {
			result.Failf("invalid tag pattern %q: %v", c.TagMatch, err)
			return err
		}
		if matched {
			result.AddDetailf("tag: %s (matches %q)", tag, c.TagMatch)
			return nil
		}
	}

	result.AddDetailf("tags at HEAD: %s", strings.Join(tags, ", "))
	result.Failf("no tag matches pattern %q", c.TagMatch)
	return errors.New("no matching tag")
}
