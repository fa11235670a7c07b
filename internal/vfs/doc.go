// Package vfs implements the virtual filesystem: an in-memory tree of
// directory and file nodes with a current working directory, persisted
// wholesale as a single JSON snapshot.
//
// Components:
//   - Node: a named file or directory entry
//   - FS: path resolution, navigation, and mutation over the tree
//   - Snapshot: load/save of the whole tree plus the cwd
//   - Archive: tar.gz export and import of the tree
//
// Paths are slash-separated and resolved lexically against the cwd;
// there is no notion of links, ownership, or enforced permissions.
package vfs
