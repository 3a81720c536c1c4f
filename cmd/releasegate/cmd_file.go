package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/filecheck"
)

var (
	fileDir          bool
	fileNotEmpty     bool
	fileMinSize      int64
	fileContains     string
	fileMatch        string
	fileSha256       string
	fileChecksumFile string
)

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Check that a required file or build artifact exists and meets requirements",
	Args:  cobra.ExactArgs(1),
	RunE:  runFileCheck,
}

func init() {
	fileCmd.Flags().BoolVar(&fileDir, "dir", false, "expect a directory")
	fileCmd.Flags().BoolVar(&fileNotEmpty, "not-empty", false, "file must have size > 0")
	fileCmd.Flags().Int64Var(&fileMinSize, "min-size", 0, "minimum file size in bytes")
	fileCmd.Flags().StringVar(&fileContains, "contains", "", "literal string to search in content")
	fileCmd.Flags().StringVar(&fileMatch, "match", "", "regex pattern to match content")
	fileCmd.Flags().StringVar(&fileSha256, "sha256", "", "expected SHA-256 digest (hex)")
	fileCmd.Flags().StringVar(&fileChecksumFile, "checksum-file", "", "sha256sum-style file listing the expected digest")
	rootCmd.AddCommand(fileCmd)
}

func runFileCheck(cmd *cobra.Command, args []string) error {
	if fileSha256 != "" && fileChecksumFile != "" {
		return errors.New("--sha256 and --checksum-file are mutually exclusive")
	}

	c := &filecheck.Check{
		Path:         args[0],
		ExpectDir:    fileDir,
		NotEmpty:     fileNotEmpty,
		MinSize:      fileMinSize,
		Contains:     fileContains,
		Match:        fileMatch,
		Sha256:       fileSha256,
		ChecksumFile: fileChecksumFile,
		FS:           &filecheck.RealFileSystem{},
	}

	return runCheck(cmd, c)
}
