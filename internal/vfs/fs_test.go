package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLayout(t *testing.T) {
	fs := Seed("alice")
	assert.Equal(t, "/home/alice", fs.Cwd())
	for _, dir := range []string{"/home", "/home/alice", "/tmp", "/var", "/usr", "/usr/bin"} {
		assert.True(t, fs.IsDir(dir), "expected directory %s", dir)
	}
}

func TestMkdirAndStat(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Mkdir("/projects"))

	node, err := fs.Stat("/projects")
	require.NoError(t, err)
	assert.True(t, node.Dir)
	assert.Equal(t, "projects", node.Name)
	assert.Equal(t, DefaultMode, node.Mode)

	err = fs.Mkdir("/projects")
	assert.ErrorIs(t, err, ErrExists)

	err = fs.Mkdir("/missing/child")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMkdirAll(t *testing.T) {
	fs := New()
	require.NoError(t, fs.MkdirAll("/a/b/c"))
	assert.True(t, fs.IsDir("/a/b/c"))

	// Idempotent over existing directories.
	require.NoError(t, fs.MkdirAll("/a/b"))

	require.NoError(t, fs.WriteFile("/a/file", "x", false))
	err := fs.MkdirAll("/a/file/sub")
	assert.ErrorIs(t, err, ErrNotDir)
}

func TestTouchAndReadWrite(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Touch("/note.txt"))
	assert.True(t, fs.IsFile("/note.txt"))

	content, err := fs.ReadFile("/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "", content)

	require.NoError(t, fs.WriteFile("/note.txt", "hello", false))
	content, err = fs.ReadFile("/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	require.NoError(t, fs.WriteFile("/note.txt", " world", true))
	content, err = fs.ReadFile("/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)

	node, err := fs.Stat("/note.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(len("hello world")), node.Size)

	// Touch on an existing file keeps content.
	require.NoError(t, fs.Touch("/note.txt"))
	content, err = fs.ReadFile("/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)

	require.NoError(t, fs.Mkdir("/dir"))
	assert.ErrorIs(t, fs.Touch("/dir"), ErrIsDir)
	_, err = fs.ReadFile("/dir")
	assert.ErrorIs(t, err, ErrIsDir)
	assert.ErrorIs(t, fs.WriteFile("/dir", "x", false), ErrIsDir)
}

func TestWriteFileCreatesMissing(t *testing.T) {
	fs := New()
	require.NoError(t, fs.WriteFile("/fresh.txt", "data", true))
	content, err := fs.ReadFile("/fresh.txt")
	require.NoError(t, err)
	assert.Equal(t, "data", content)
}

func TestListSorted(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Mkdir("/dir"))
	require.NoError(t, fs.Touch("/dir/zebra"))
	require.NoError(t, fs.Touch("/dir/alpha"))
	require.NoError(t, fs.Mkdir("/dir/middle"))

	entries, err := fs.List("/dir")
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"alpha", "middle", "zebra"}, names)

	_, err = fs.List("/dir/alpha")
	assert.ErrorIs(t, err, ErrNotDir)
	_, err = fs.List("/nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListDefaultsToCwd(t *testing.T) {
	fs := Seed("user")
	require.NoError(t, fs.Touch("readme"))
	entries, err := fs.List("")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "readme", entries[0].Name)
}

func TestRemove(t *testing.T) {
	fs := New()
	require.NoError(t, fs.Mkdir("/dir"))
	require.NoError(t, fs.Touch("/dir/file"))

	assert.ErrorIs(t, fs.Remove("/dir", false), ErrNotEmpty)
	require.NoError(t, fs.Remove("/dir/file", false))
	require.NoError(t, fs.Remove("/dir", false))
	assert.False(t, fs.Exists("/dir"))

	assert.ErrorIs(t, fs.Remove("/", true), ErrRootForbidden)
	assert.ErrorIs(t, fs.Remove("/ghost", false), ErrNotFound)
}

func TestRemoveCwdFallsBack(t *testing.T) {
	fs := New()
	require.NoError(t, fs.MkdirAll("/a/b"))
	require.NoError(t, fs.Chdir("/a/b"))
	require.NoError(t, fs.Remove("/a", true))
	assert.Equal(t, "/", fs.Cwd())
}

func TestRename(t *testing.T) {
	fs := New()
	require.NoError(t, fs.WriteFile("/old.txt", "data", false))
	require.NoError(t, fs.Rename("/old.txt", "/new.txt"))
	assert.False(t, fs.Exists("/old.txt"))
	content, err := fs.ReadFile("/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "data", content)

	// Renaming into a directory keeps the base name.
	require.NoError(t, fs.Mkdir("/dir"))
	require.NoError(t, fs.Rename("/new.txt", "/dir"))
	assert.True(t, fs.IsFile("/dir/new.txt"))

	// A directory cannot move into its own subtree.
	require.NoError(t, fs.MkdirAll("/x/y"))
	assert.ErrorIs(t, fs.Rename("/x", "/x/y/z"), ErrInvalidPath)
}

func TestCopy(t *testing.T) {
	fs := New()
	require.NoError(t, fs.MkdirAll("/src/sub"))
	require.NoError(t, fs.WriteFile("/src/file", "payload", false))

	require.NoError(t, fs.Copy("/src", "/dst"))
	assert.True(t, fs.IsDir("/dst/sub"))
	content, err := fs.ReadFile("/dst/file")
	require.NoError(t, err)
	assert.Equal(t, "payload", content)

	// Deep copy: mutating the copy leaves the source alone.
	require.NoError(t, fs.WriteFile("/dst/file", "changed", false))
	content, err = fs.ReadFile("/src/file")
	require.NoError(t, err)
	assert.Equal(t, "payload", content)
}

func TestChdirRelative(t *testing.T) {
	fs := Seed("user")
	require.NoError(t, fs.Chdir(".."))
	assert.Equal(t, "/home", fs.Cwd())
	require.NoError(t, fs.Chdir("user"))
	assert.Equal(t, "/home/user", fs.Cwd())

	require.NoError(t, fs.Touch("file"))
	assert.ErrorIs(t, fs.Chdir("file"), ErrNotDir)
	assert.ErrorIs(t, fs.Chdir("/missing"), ErrNotFound)
}

func TestWalkOrder(t *testing.T) {
	fs := New()
	require.NoError(t, fs.MkdirAll("/a/b"))
	require.NoError(t, fs.Touch("/a/b/f1"))
	require.NoError(t, fs.Touch("/a/f0"))

	var visited []string
	require.NoError(t, fs.Walk("/a", func(p string, n *Node) error {
		visited = append(visited, p)
		return nil
	}))
	assert.Equal(t, []string{"/a", "/a/b", "/a/b/f1", "/a/f0"}, visited)
}

func TestStats(t *testing.T) {
	fs := New()
	require.NoError(t, fs.MkdirAll("/a/b"))
	require.NoError(t, fs.WriteFile("/a/one", "12345", false))
	require.NoError(t, fs.WriteFile("/a/b/two", "xy", false))

	dirs, files, bytes := fs.Stats()
	assert.Equal(t, 2, dirs)
	assert.Equal(t, 2, files)
	assert.Equal(t, int64(7), bytes)
}
