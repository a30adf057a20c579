package cli

import (
	"io"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"demo", "layouts", "validate", "render", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestLayoutsSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	layouts := c.layoutsCommand()

	want := []string{"list", "show", "delete", "export", "import", "prune"}
	for _, name := range want {
		found := false
		for _, cmd := range layouts.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("layouts command missing subcommand %q", name)
		}
	}
}
