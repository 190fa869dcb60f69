package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.Logger == nil {
		t.Fatal("New() should create a logger")
	}

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug output should be filtered at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug output should appear after SetLogLevel(debug)")
	}
}

func TestRootCommand(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	root := c.RootCommand()
	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{
		"trace":      false,
		"render":     false,
		"completion": false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommandHelp(t *testing.T) {
	var logBuf, out bytes.Buffer
	c := New(&logBuf, log.InfoLevel)

	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--help"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute(--help): %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("trace")) {
		t.Error("help output should list the trace command")
	}
}
