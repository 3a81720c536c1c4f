package main

import (
	"reflect"
	"testing"
)

func TestExtractExecArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantArgs     []string
		wantExecArgs []string
	}{
		{
			name:         "no separator",
			args:         []string{"releasegate", "run"},
			wantArgs:     []string{"releasegate", "run"},
			wantExecArgs: nil,
		},
		{
			name:         "publish command after separator",
			args:         []string{"releasegate", "run", "--", "npm", "publish"},
			wantArgs:     []string{"releasegate", "run"},
			wantExecArgs: []string{"npm", "publish"},
		},
		{
			name:         "empty after separator",
			args:         []string{"releasegate", "run", "--"},
			wantArgs:     []string{"releasegate", "run"},
			wantExecArgs: []string{},
		},
		{
			name:         "only first separator splits",
			args:         []string{"releasegate", "run", "--", "sh", "-c", "echo --"},
			wantArgs:     []string{"releasegate", "run"},
			wantExecArgs: []string{"sh", "-c", "echo --"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string(nil), tt.args...)
			got := extractExecArgs(&args)

			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
			if len(got) != len(tt.wantExecArgs) {
				t.Fatalf("execArgs = %v, want %v", got, tt.wantExecArgs)
			}
			for i := range got {
				if got[i] != tt.wantExecArgs[i] {
					t.Errorf("execArgs[%d] = %q, want %q", i, got[i], tt.wantExecArgs[i])
				}
			}
		})
	}
}

func TestIsSubcommand(t *testing.T) {
	for _, known := range []string{"file", "manifest", "tests", "semver", "env", "git", "run", "help"} {
		if !isSubcommand(known) {
			t.Errorf("isSubcommand(%q) = false, want true", known)
		}
	}
	for _, unknown := range []string{"gate.yml", "publish", ""} {
		if isSubcommand(unknown) {
			t.Errorf("isSubcommand(%q) = true, want false", unknown)
		}
	}
}
