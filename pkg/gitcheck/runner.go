package gitcheck

import (
	"bytes"
	"os/exec"
	"strings"
)

// GitRunner abstracts git command execution for testability.
type GitRunner interface {
	// IsGitRepo returns true if the current directory is inside a git repository.
	IsGitRepo() (bool, error)

	// Status returns the output of 'git status --porcelain'.
	Status() (string, error)

	// CurrentBranch returns the name of the current branch.
	// Returns "HEAD" if in detached HEAD state.
	CurrentBranch() (string, error)

	// TagsAtHead returns all tags pointing at the current HEAD commit.
	TagsAtHead() ([]string, error)
}

// RealGitRunner executes actual git commands.
type RealGitRunner struct{}

func (r *RealGitRunner) IsGitRepo() (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	if err := cmd.Run(); err != nil {
		// Exit code 128 = not a git repository
		return false, nil
	}
	return true, nil
}

func (r *RealGitRunner) Status() (string, error) {
	return gitOutput("status", "--porcelain")
}

func (r *RealGitRunner) CurrentBranch() (string, error) {
	return gitOutput("rev-parse", "--abbrev-ref", "HEAD")
}

func (r *RealGitRunner) TagsAtHead() ([]string, error) {
	output, err := gitOutput("tag", "--points-at", "HEAD")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

func gitOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

// MockGitRunner is a test double for GitRunner.
type MockGitRunner struct {
	IsGitRepoFunc     func() (bool, error)
	StatusFunc        func() (string, error)
	CurrentBranchFunc func() (string, error)
	TagsAtHeadFunc    func() ([]string, error)
}

func (m *MockGitRunner) IsGitRepo() (bool, error) {
	return m.IsGitRepoFunc()
}

func (m *MockGitRunner) Status() (string, error) {
	return m.StatusFunc()
}

func (m *MockGitRunner) CurrentBranch() (string, error) {
	return m.CurrentBranchFunc()
}

func (m *MockGitRunner) TagsAtHead() ([]string, error) {
	return m.TagsAtHeadFunc()
}
