package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/releasegate/pkg/check"
	"github.com/vertti/releasegate/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
// The returned error causes Cobra to exit with code 1.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a single check, prints the result, and returns an error
// if it failed.
func runCheck(cmd *cobra.Command, c check.Checker) error {
	result := c.Run()
	output.FprintResult(cmd.OutOrStdout(), result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
