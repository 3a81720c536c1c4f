package gatefile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vertti/releasegate/pkg/check"
	"github.com/vertti/releasegate/pkg/envcheck"
	"github.com/vertti/releasegate/pkg/filecheck"
	"github.com/vertti/releasegate/pkg/gitcheck"
	"github.com/vertti/releasegate/pkg/manifestcheck"
	"github.com/vertti/releasegate/pkg/semvercheck"
	"github.com/vertti/releasegate/pkg/testcheck"
)

// File is the parsed gate definition.
type File struct {
	Checks []Entry `yaml:"checks"`
}

// Entry is one check declaration; Type selects which keys apply.
type Entry struct {
	Type string `yaml:"type"`

	// file
	Path         string `yaml:"path"`
	Dir          bool   `yaml:"dir"`
	NotEmpty     bool   `yaml:"not-empty"`
	MinSize      int64  `yaml:"min-size"`
	Contains     string `yaml:"contains"`
	Match        string `yaml:"match"`
	Sha256       string `yaml:"sha256"`
	ChecksumFile string `yaml:"checksum-file"`

	// manifest / semver
	Field       string `yaml:"field"`
	HasField    string `yaml:"has-field"`
	Exact       string `yaml:"exact"`
	Min         string `yaml:"min"`
	GreaterThan string `yaml:"greater-than"`

	// tests
	Command     string  `yaml:"command"`
	Policy      string  `yaml:"policy"`
	MinPassRate float64 `yaml:"min-pass-rate"`
	Marker      string  `yaml:"marker"`
	Timeout     string  `yaml:"timeout"`

	// env
	Name      string `yaml:"name"`
	HideValue bool   `yaml:"hide-value"`
	MaskValue bool   `yaml:"mask-value"`

	// git
	Clean    bool   `yaml:"clean"`
	Branch   string `yaml:"branch"`
	TagMatch string `yaml:"tag-match"`
}

// Load reads and parses a gate file into an ordered check list.
// Config errors are reported here, before any check runs; they are not
// check failures.
func Load(path string) ([]check.Checker, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading gate file
	if err != nil {
		return nil, fmt.Errorf("failed to read gate file: %w", err)
	}
	return Parse(data)
}

// Parse builds the ordered check list from gate file contents.
func Parse(data []byte) ([]check.Checker, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse gate file: %w", err)
	}
	if len(f.Checks) == 0 {
		return nil, fmt.Errorf("gate file declares no checks")
	}

	checks := make([]check.Checker, 0, len(f.Checks))
	for i, e := range f.Checks {
		c, err := buildCheck(e)
		if err != nil {
			return nil, fmt.Errorf("check %d: %w", i+1, err)
		}
		checks = append(checks, c)
	}
	return checks, nil
}

func buildCheck(e Entry) (check.Checker, error) {
	switch e.Type {
	case "file":
		return buildFileCheck(e)
	case "manifest":
		return buildManifestCheck(e)
	case "tests":
		return buildTestCheck(e)
	case "semver":
		return buildSemverCheck(e)
	case "env":
		return buildEnvCheck(e)
	case "git":
		return buildGitCheck(e)
	case "":
		return nil, fmt.Errorf("missing check type")
	default:
		return nil, fmt.Errorf("unknown check type %q", e.Type)
	}
}

func buildFileCheck(e Entry) (check.Checker, error) {
	if e.Path == "" {
		return nil, fmt.Errorf("file check requires path")
	}
	if e.Sha256 != "" && e.ChecksumFile != "" {
		return nil, fmt.Errorf("file check takes sha256 or checksum-file, not both")
	}
	return &filecheck.Check{
		Path:         e.Path,
		ExpectDir:    e.Dir,
		NotEmpty:     e.NotEmpty,
		MinSize:      e.MinSize,
		Contains:     e.Contains,
		Match:        e.Match,
		Sha256:       e.Sha256,
		ChecksumFile: e.ChecksumFile,
		FS:           &filecheck.RealFileSystem{},
	}, nil
}

func buildManifestCheck(e Entry) (check.Checker, error) {
	if e.Path == "" {
		return nil, fmt.Errorf("manifest check requires path")
	}
	if (e.Exact != "" || e.Match != "") && e.Field == "" {
		return nil, fmt.Errorf("manifest check exact and match require field")
	}
	if e.Field == "" && e.HasField == "" {
		return nil, fmt.Errorf("manifest check requires field or has-field")
	}
	return &manifestcheck.Check{
		File:     e.Path,
		HasField: e.HasField,
		Field:    e.Field,
		Exact:    e.Exact,
		Match:    e.Match,
		FS:       &manifestcheck.RealFileSystem{},
	}, nil
}

func buildTestCheck(e Entry) (check.Checker, error) {
	if e.Command == "" {
		return nil, fmt.Errorf("tests check requires command")
	}
	policy, err := testcheck.ParsePolicy(e.Policy)
	if err != nil {
		return nil, err
	}
	if policy == testcheck.PolicyThreshold {
		if e.MinPassRate <= 0 || e.MinPassRate > 1 {
			return nil, fmt.Errorf("threshold policy requires min-pass-rate in (0, 1], got %v", e.MinPassRate)
		}
	} else if e.MinPassRate != 0 {
		return nil, fmt.Errorf("min-pass-rate only applies to the threshold policy")
	}
	if policy != testcheck.PolicyRanAtAll && e.Marker != "" {
		return nil, fmt.Errorf("marker only applies to the ran-at-all policy")
	}

	var timeout time.Duration
	if e.Timeout != "" {
		timeout, err = time.ParseDuration(e.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", e.Timeout, err)
		}
	}

	return &testcheck.Check{
		Command:     strings.Fields(e.Command),
		Policy:      policy,
		MinPassRate: e.MinPassRate,
		Marker:      e.Marker,
		Timeout:     timeout,
		Runner:      &testcheck.RealRunner{},
	}, nil
}

func buildSemverCheck(e Entry) (check.Checker, error) {
	if e.Path == "" {
		return nil, fmt.Errorf("semver check requires path")
	}
	return &semvercheck.Check{
		File:        e.Path,
		Field:       e.Field,
		Min:         e.Min,
		Exact:       e.Exact,
		GreaterThan: e.GreaterThan,
		FS:          &semvercheck.RealFileSystem{},
	}, nil
}

func buildEnvCheck(e Entry) (check.Checker, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("env check requires name")
	}
	return &envcheck.Check{
		Name:      e.Name,
		Match:     e.Match,
		HideValue: e.HideValue,
		MaskValue: e.MaskValue,
		Getter:    &envcheck.RealEnvGetter{},
	}, nil
}

func buildGitCheck(e Entry) (check.Checker, error) {
	if !e.Clean && e.Branch == "" && e.TagMatch == "" {
		return nil, fmt.Errorf("git check requires clean, branch, or tag-match")
	}
	return &gitcheck.Check{
		Clean:    e.Clean,
		Branch:   e.Branch,
		TagMatch: e.TagMatch,
		Runner:   &gitcheck.RealGitRunner{},
	}, nil
}
