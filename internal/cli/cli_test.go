package cli

import (
	"io"
	"testing"
)

func TestNew(t *testing.T) {
	c := New(io.Discard, LogInfo)
	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "planforge" {
		t.Errorf("root.Use = %q, want %q", root.Use, "planforge")
	}

	want := []string{"generate", "render", "graph", "inspect", "cache", "completion"}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommandVerboseFlag(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	flag := root.PersistentFlags().Lookup("verbose")
	if flag == nil {
		t.Fatal("root command should define --verbose")
	}
	if flag.Shorthand != "v" {
		t.Errorf("verbose shorthand = %q, want %q", flag.Shorthand, "v")
	}
}
