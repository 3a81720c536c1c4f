package main

import (
	"strings"
	"testing"
)

func TestRequireAtLeastOne(t *testing.T) {
	tests := []struct {
		name    string
		flags   []flagSet
		wantErr string
	}{
		{
			name:  "one set",
			flags: []flagSet{{"--clean", true}, {"--branch", false}},
		},
		{
			name:  "all set",
			flags: []flagSet{{"--clean", true}, {"--branch", true}},
		},
		{
			name:    "none set",
			flags:   []flagSet{{"--clean", false}, {"--branch", false}, {"--tag-match", false}},
			wantErr: "at least one of --clean, --branch, --tag-match is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireAtLeastOne(tt.flags...)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("requireAtLeastOne() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("requireAtLeastOne() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
