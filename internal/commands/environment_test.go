package commands_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "export", "EDITOR=nano")
	require.True(t, result.Success())
	value, ok := ctx.Env.Get("EDITOR")
	require.True(t, ok)
	assert.Equal(t, "nano", value)

	// Values may contain '='.
	result = run(t, ctx, "export", "OPTS=a=b")
	require.True(t, result.Success())
	value, _ = ctx.Env.Get("OPTS")
	assert.Equal(t, "a=b", value)

	// A bare name is a no-op, not an error.
	result = run(t, ctx, "export", "PATH")
	require.True(t, result.Success())

	// Without arguments export lists the environment.
	result = run(t, ctx, "export")
	require.True(t, result.Success())
	assert.Contains(t, result.Output, "EDITOR=nano")

	result = run(t, ctx, "export", "=broken")
	assert.False(t, result.Success())
}

func TestEnv(t *testing.T) {
	ctx := newTestContext(t)
	result := run(t, ctx, "env")
	require.True(t, result.Success())
	lines := strings.Split(result.Output, "\n")
	assert.Contains(t, lines, "HOME=/home/user")
	assert.Contains(t, lines, "USER=user")
	assert.Contains(t, lines, "PATH=/usr/bin:/bin")
}

func TestUnset(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Env.Set("TEMPVAR", "x")

	result := run(t, ctx, "unset", "TEMPVAR")
	require.True(t, result.Success())
	_, ok := ctx.Env.Get("TEMPVAR")
	assert.False(t, ok)

	// Unsetting a missing variable succeeds quietly.
	result = run(t, ctx, "unset", "NEVERSET")
	require.True(t, result.Success())

	result = run(t, ctx, "unset")
	assert.False(t, result.Success())
}

func TestHistory(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Env.AddHistory("ls -la")
	ctx.Env.AddHistory("pwd")

	result := run(t, ctx, "history")
	require.True(t, result.Success())
	lines := strings.Split(result.Output, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "   1  ls -la", lines[0])
	assert.Equal(t, "   2  pwd", lines[1])
}

func TestWhich(t *testing.T) {
	ctx := newTestContext(t)

	result := run(t, ctx, "which", "ls", "grep")
	require.True(t, result.Success())
	assert.Equal(t, "/usr/bin/ls\n/usr/bin/grep", result.Output)

	result = run(t, ctx, "which", "frobnicate")
	assert.False(t, result.Success())

	result = run(t, ctx, "which")
	assert.False(t, result.Success())
}
