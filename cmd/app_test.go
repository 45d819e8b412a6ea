package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("divsheet", flag.ContinueOnError), "divsheet")
	Register(c)

	for _, name := range []string{"refresh", "init", "columns", "quote", "fx", "config", "topic"} {
		assert.True(t, Lookup(c, name), "%s is not registered", name)
	}
	assert.False(t, Lookup(c, "hello"))
}

func TestCompletionCoversCommands(t *testing.T) {
	completion := Completion()
	for _, cmds := range commands() {
		for _, cmd := range cmds {
			assert.Contains(t, completion.Sub, cmd.Name(), "%s has no completion", cmd.Name())
		}
	}
}

func TestColumnsMarkdown(t *testing.T) {
	out, err := columnsMarkdown()
	require.NoError(t, err)
	for _, want := range []string{"| A ", "long_name", "Current Price", "| V ", "input"} {
		assert.Contains(t, out, want)
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := "#!/bin/sh\necho \"$" + EnvVerbose + " $*\" > \"$HELLO_OUT\"\nexit 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "divsheet-hello"), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("HELLO_OUT", out)

	found, code := RunExtension("hello", []string{"a", "b"})
	require.True(t, found)
	assert.Equal(t, 3, code)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "false a b", strings.TrimSpace(string(content)))

	found, _ = RunExtension("nothere", nil)
	assert.False(t, found)
}

func TestTopicCommand(t *testing.T) {
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}, "-list"))
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}, "workbook", "providers"))
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &topicCmd{}))
	assert.Equal(t, subcommands.ExitFailure, execute(t, &topicCmd{}, "nope"))
}
