package vfs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleFS(t *testing.T) *FS {
	t.Helper()
	fs := Seed("user")
	require.NoError(t, fs.MkdirAll("/home/user/docs"))
	require.NoError(t, fs.WriteFile("/home/user/docs/readme.md", "# hi\n", false))
	require.NoError(t, fs.WriteFile("/tmp/scratch", "temp", false))
	require.NoError(t, fs.Chdir("/home/user/docs"))
	return fs
}

func assertSameTree(t *testing.T, want, got *FS) {
	t.Helper()
	assert.Equal(t, want.Cwd(), got.Cwd())

	var wantPaths, gotPaths []string
	require.NoError(t, want.Walk("/", func(p string, n *Node) error {
		wantPaths = append(wantPaths, p)
		return nil
	}))
	require.NoError(t, got.Walk("/", func(p string, n *Node) error {
		gotPaths = append(gotPaths, p)
		return nil
	}))
	assert.Equal(t, wantPaths, gotPaths)

	for _, p := range wantPaths {
		wn, err := want.Stat(p)
		require.NoError(t, err)
		gn, err := got.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, wn.Dir, gn.Dir, p)
		assert.Equal(t, wn.Content, gn.Content, p)
		assert.Equal(t, wn.Size, gn.Size, p)
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	fs := buildSampleFS(t)
	restored, err := Restore(fs.Snapshot())
	require.NoError(t, err)
	assertSameTree(t, fs, restored)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	fs := buildSampleFS(t)
	path := filepath.Join(t.TempDir(), "filesystem.json")
	require.NoError(t, Save(fs, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assertSameTree(t, fs, loaded)
}

func TestSaveLoadCompressed(t *testing.T) {
	fs := buildSampleFS(t)
	path := filepath.Join(t.TempDir(), "filesystem.json.gz")
	require.NoError(t, Save(fs, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assertSameTree(t, fs, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestRestoreNormalizes(t *testing.T) {
	// A hand-built snapshot with inconsistent names and sizes.
	snap := &Snapshot{
		Version: SnapshotVersion,
		Cwd:     "/docs",
		Root: &Node{
			Dir: true,
			Children: map[string]*Node{
				"docs": {Name: "wrong", Dir: true, Children: map[string]*Node{
					"a.txt": {Name: "a.txt", Content: "abc", Size: 999},
				}},
			},
		},
	}
	fs, err := Restore(snap)
	require.NoError(t, err)

	node, err := fs.Stat("/docs")
	require.NoError(t, err)
	assert.Equal(t, "docs", node.Name)
	assert.Equal(t, DefaultMode, node.Mode)

	file, err := fs.Stat("/docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(3), file.Size)
	assert.Equal(t, "/docs", fs.Cwd())
}

func TestRestoreBadCwdFallsBack(t *testing.T) {
	snap := &Snapshot{Version: SnapshotVersion, Cwd: "/gone", Root: NewDir("")}
	fs, err := Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, "/", fs.Cwd())
}

func TestRestoreRejectsBadRoot(t *testing.T) {
	_, err := Restore(&Snapshot{Version: SnapshotVersion, Root: nil})
	assert.Error(t, err)

	_, err = Restore(&Snapshot{Version: SnapshotVersion, Root: NewFile("root", "")})
	assert.Error(t, err)

	_, err = Restore(&Snapshot{Version: SnapshotVersion + 1, Root: NewDir("")})
	assert.Error(t, err)
}
