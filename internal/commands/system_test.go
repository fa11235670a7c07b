package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	ctx := newTestContext(t)
	result := run(t, ctx, "date")
	require.True(t, result.Success())
	_, err := time.Parse("Mon Jan 02 15:04:05 2006", result.Output)
	assert.NoError(t, err)
}

func TestClear(t *testing.T) {
	ctx := newTestContext(t)
	result := run(t, ctx, "clear")
	require.True(t, result.Success())
	assert.Equal(t, "\x1b[2J\x1b[H", result.Output)
}

func TestHelp(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "help")
	require.True(t, result.Success())
	assert.Contains(t, result.Output, "Available commands:")
	assert.Contains(t, result.Output, "ls")
	assert.Contains(t, result.Output, "List directory contents")

	result = run(t, ctx, "help", "grep")
	require.True(t, result.Success())
	assert.Contains(t, result.Output, "grep [-i] [-n] pattern")

	result = run(t, ctx, "help", "nonsense")
	assert.False(t, result.Success())
}

func TestSave(t *testing.T) {
	ctx := newTestContext(t)

	// No backing store configured.
	result := run(t, ctx, "save")
	assert.False(t, result.Success())

	saved := false
	ctx.Save = func() error { saved = true; return nil }
	result = run(t, ctx, "save")
	require.True(t, result.Success())
	assert.True(t, saved)

	ctx.Save = func() error { return errors.New("disk full") }
	result = run(t, ctx, "save")
	assert.False(t, result.Success())
	assert.Contains(t, result.Err, "disk full")
}

func TestNano(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Input = strings.NewReader("first line\nsecond line\n")

	result := run(t, ctx, "nano", "note.txt")
	require.True(t, result.Success())
	assert.Equal(t, "Saved 2 lines to note.txt", result.Output)

	content, err := ctx.FS.ReadFile("/home/user/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", content)

	// Editing again replaces the content.
	ctx.Input = strings.NewReader("rewritten\n")
	result = run(t, ctx, "nano", "note.txt")
	require.True(t, result.Success())
	content, err = ctx.FS.ReadFile("/home/user/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "rewritten", content)

	result = run(t, ctx, "nano")
	assert.False(t, result.Success())
}

func TestNeofetch(t *testing.T) {
	ctx := newTestContext(t)
	result := run(t, ctx, "neofetch")
	require.True(t, result.Success())
	assert.Contains(t, result.Output, "user@")
	assert.Contains(t, result.Output, "OS: TermOS")
	assert.Contains(t, result.Output, "Shell: /bin/termos")
	assert.Contains(t, result.Output, "VFS:")
}
