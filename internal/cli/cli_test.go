package cli

import (
	"testing"
)

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--json", "--save"}, "--json", true},
		{"absent", []string{"--save"}, "--json", false},
		{"empty", nil, "--json", false},
		{"case insensitive", []string{"--JSON"}, "--json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want string
	}{
		{"present", []string{"--seed", "alice", "--save"}, "--seed", "alice"},
		{"absent", []string{"--save"}, "--seed", ""},
		{"trailing flag has no value", []string{"--save", "--seed"}, "--seed", ""},
		{"case insensitive", []string{"--SEED", "bob"}, "--seed", "bob"},
		{"first occurrence wins", []string{"--format", "json", "--format", "csv"}, "--format", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flagValue(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("flagValue(%v, %s) = %q, want %q", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}
