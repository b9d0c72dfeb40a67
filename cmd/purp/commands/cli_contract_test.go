package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	out := b.String()

	requiredCommands := []string{
		"build",
		"bundle",
		"help",
		"run",
		"test",
		"version",
	}

	for _, c := range requiredCommands {
		if !strings.Contains(out, c) {
			t.Errorf("expected top-level command %q in root help", c)
		}
	}
}

func TestCLIContract_Flags(t *testing.T) {
	tests := map[string][]string{
		"build":  {"--dependencies-only", "-d"},
		"test":   {"--main", "-m", "--skip-build", "-s", "--pattern", "--exclude"},
		"run":    {"--main", "-m", "--skip-build", "-s"},
		"bundle": {"--main", "-m", "--output", "-o", "--source-maps", "--skip-build", "-s"},
	}

	for sub, flags := range tests {
		t.Run(sub, func(t *testing.T) {
			cmd := NewRootCmd()
			b := bytes.NewBufferString("")
			cmd.SetOut(b)
			cmd.SetArgs([]string{sub, "--help"})

			if err := cmd.Execute(); err != nil {
				t.Fatalf("%s --help failed: %v", sub, err)
			}

			out := b.String()
			if !strings.Contains(out, "Usage:") {
				t.Errorf("expected usage info in %s help", sub)
			}
			for _, f := range flags {
				if !strings.Contains(out, f) {
					t.Errorf("expected flag %q in %s help", f, sub)
				}
			}
		})
	}
}
