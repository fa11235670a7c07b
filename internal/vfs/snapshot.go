package vfs

import (
	"fmt"
	"time"

	"github.com/GriffinCanCode/TermOS/internal/store"
)

// SnapshotVersion is the current on-disk snapshot format version.
const SnapshotVersion = 1

// Snapshot is the serialized form of a filesystem: the whole tree plus
// the working directory, flushed wholesale as one JSON document.
type Snapshot struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Cwd     string    `json:"cwd"`
	Root    *Node     `json:"root"`
}

// Snapshot captures the current state of the filesystem. The returned
// tree is a deep copy and safe to hold across later mutations.
func (fs *FS) Snapshot() *Snapshot {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return &Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now(),
		Cwd:     fs.cwd,
		Root:    fs.root.Clone(),
	}
}

// Restore builds a filesystem from a snapshot, normalizing the tree as
// it goes: child names must match their map keys, directory children
// maps are materialized, and file sizes are recomputed from content. A
// cwd that no longer resolves falls back to the root.
func Restore(s *Snapshot) (*FS, error) {
	if s.Root == nil || !s.Root.Dir {
		return nil, fmt.Errorf("snapshot root: %w", ErrInvalidPath)
	}
	if s.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported", s.Version)
	}

	root := s.Root.Clone()
	root.Name = ""
	normalize(root)

	fs := &FS{root: root, cwd: Separator}
	if s.Cwd != "" {
		if node, err := fs.lookup(Clean(s.Cwd)); err == nil && node.Dir {
			fs.cwd = Clean(s.Cwd)
		}
	}
	return fs, nil
}

func normalize(n *Node) {
	if n.Mode == "" {
		n.Mode = DefaultMode
	}
	if !n.Dir {
		n.Size = int64(len(n.Content))
		return
	}
	n.Content = ""
	n.Size = 0
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	for name, child := range n.Children {
		child.Name = name
		normalize(child)
	}
}

// Save writes the filesystem snapshot to path.
func Save(fs *FS, path string) error {
	return store.WriteJSON(path, fs.Snapshot())
}

// Load reads a snapshot from path and restores it. A missing file
// surfaces as os.ErrNotExist so callers can seed a fresh tree.
func Load(path string) (*FS, error) {
	var snap Snapshot
	if err := store.ReadJSON(path, &snap); err != nil {
		return nil, err
	}
	return Restore(&snap)
}
