package filecheck

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vertti/releasegate/pkg/check"
)

// Check verifies that a required file or build artifact meets requirements.
type Check struct {
	Path         string     // path to check
	ExpectDir    bool       // --dir: expect a directory
	NotEmpty     bool       // --not-empty: file must have size > 0
	MinSize      int64      // --min-size: minimum file size in bytes
	Contains     string     // --contains: literal string to search in content
	Match        string     // --match: regex pattern for content
	Sha256       string     // --sha256: expected hex digest
	ChecksumFile string     // --checksum-file: sha256sum-style file listing the digest
	FS           FileSystem // injected for testing
}

// Run executes the file check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("file: %s", c.Path),
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail("not found", err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Failf("stat failed: %v", err)
		}
	}

	if c.ExpectDir {
		if !info.IsDir() {
			return result.Fail("expected directory, got file", fmt.Errorf("expected directory, got file"))
		}
		result.AddDetail("type: directory")
	} else if info.IsDir() {
		result.AddDetail("type: directory")
	} else {
		result.AddDetail("type: file")
	}

	if !info.IsDir() {
		if err := c.checkSizeConstraints(info, &result); err != nil {
			return result
		}
	}

	if !info.IsDir() && (c.Contains != "" || c.Match != "") {
		if err := c.checkContent(&result); err != nil {
			return result
		}
	}

	if c.Sha256 != "" || c.ChecksumFile != "" {
		if info.IsDir() {
			return result.Failf("cannot checksum a directory")
		}
		if err := c.checkDigest(&result); err != nil {
			return result
		}
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) checkSizeConstraints(info fs.FileInfo, result *check.Result) error {
	result.AddDetailf("size: %d", info.Size())

	if c.NotEmpty && info.Size() == 0 {
		err := fmt.Errorf("file is empty")
		result.Fail("file is empty", err)
		return err
	}

	if c.MinSize > 0 && info.Size() < c.MinSize {
		err := fmt.Errorf("file size %d below minimum %d", info.Size(), c.MinSize)
		result.Fail(fmt.Sprintf("size %d < minimum %d", info.Size(), c.MinSize), err)
		return err
	}

	return nil
}

func (c *Check) checkContent(result *check.Result) error {
	content, err := c.FS.ReadFile(c.Path)
	if err != nil {
		result.Failf("failed to read file: %v", err)
		return err
	}

	if c.Contains != "" {
		if !strings.Contains(string(content), c.Contains) {
			err := fmt.Errorf("content does not contain %q", c.Contains)
			result.Fail(fmt.Sprintf("content does not contain %q", c.Contains), err)
			return err
		}
	}

	if c.Match != "" {
		re, err := check.CompileRegex(c.Match)
		if err != nil {
			result.Failf("invalid regex pattern: %v", err)
			return err
		}
		if !re.Match(content) {
			err := fmt.Errorf("content does not match pattern %q", c.Match)
			result.Fail(fmt.Sprintf("content does not match pattern %q", c.Match), err)
			return err
		}
	}

	return nil
}

func (c *Check) checkDigest(result *check.Result) error {
	expected := strings.ToLower(c.Sha256)
	if c.ChecksumFile != "" {
		var err error
		expected, err = c.lookupChecksum()
		if err != nil {
			result.Failf("%v", err)
			return err
		}
	}

	if _, err := hex.DecodeString(expected); err != nil || len(expected) != sha256.Size*2 {
		err := fmt.Errorf("invalid sha256 digest %q", expected)
		result.Failf("invalid sha256 digest %q", expected)
		return err
	}

	f, err := c.FS.Open(c.Path)
	if err != nil {
		result.Failf("failed to open file: %v", err)
		return err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		result.Failf("failed to compute digest: %v", err)
		return err
	}
	actual := hex.EncodeToString(h.Sum(nil))

	if actual != expected {
		err := fmt.Errorf("digest mismatch")
		result.AddDetailf("expected: %s", expected)
		result.AddDetailf("actual: %s", actual)
		result.Fail("sha256 digest mismatch", err)
		return err
	}

	result.AddDetailf("sha256: %s", actual)
	return nil
}

// lookupChecksum finds the digest for Path in a sha256sum-style checksum
// file: one "digest  filename" pair per line, comments allowed.
func (c *Check) lookupChecksum() (string, error) {
	f, err := c.FS.Open(c.ChecksumFile)
	if err != nil {
		return "", fmt.Errorf("failed to open checksum file: %w", err)
	}
	defer func() { _ = f.Close() }()

	base := filepath.Base(c.Path)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		// sha256sum binary-mode entries prefix the name with '*'
		name := strings.TrimPrefix(fields[1], "*")
		if name == c.Path || filepath.Base(name) == base {
			return strings.ToLower(fields[0]), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read checksum file: %w", err)
	}

	return "", fmt.Errorf("no checksum entry for %q in %s", base, c.ChecksumFile)
}
