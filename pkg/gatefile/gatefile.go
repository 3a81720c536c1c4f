// Package gatefile loads the .releasegate.yml gate definition: an ordered
// list of check declarations evaluated before publishing.
package gatefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the gate definition file searched for by default.
const FileName = ".releasegate.yml"

// FindFile locates the gate file. An explicit path wins; otherwise the
// search walks up from startDir, stopping at the repository boundary
// (a directory containing .git) or the home directory.
func FindFile(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("gate file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		gatePath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(gatePath); err == nil {
			return gatePath, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(FileName + " not found")
}
