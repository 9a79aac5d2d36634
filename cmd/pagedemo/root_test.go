package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "seed"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pagination:\n  per_page: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	root := newRootCmd()
	root.SetArgs([]string{"--config", path, "seed", "--count", "1"})
	root.SetErr(&discard{})

	if err := root.Execute(); err == nil {
		t.Error("Expected Execute() to fail on an invalid config")
	}
}

func TestSeedCmd_NegativeCount(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"seed", "--count", "-1"})
	root.SetErr(&discard{})

	if err := root.Execute(); err == nil {
		t.Error("Expected Execute() to reject a negative count")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
