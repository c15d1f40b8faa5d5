package main

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootRequiresTwoArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"none", nil},
		{"config only", []string{"config.json"}},
		{"too many", []string{"config.json", "key.pem", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected an argument count error")
			}
			if !strings.Contains(err.Error(), "accepts 2 arg(s)") {
				t.Errorf("error = %v, want argument count error", err)
			}
		})
	}
}

func TestRootCommandMetadata(t *testing.T) {
	if rootCmd.RunE == nil {
		t.Fatal("rootCmd.RunE should not be nil")
	}
	if !strings.HasPrefix(rootCmd.Use, "frontend ") {
		t.Errorf("rootCmd.Use = %q", rootCmd.Use)
	}

	want := map[string]bool{"version": false, "certs": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
