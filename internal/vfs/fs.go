package vfs

import (
	"fmt"
	"strings"
	"sync"
)

// FS is an in-memory filesystem tree with a current working directory.
// All operations resolve paths against the cwd and are safe for
// concurrent use.
type FS struct {
	mu   sync.RWMutex
	root *Node
	cwd  string
}

// New returns an empty filesystem rooted at "/".
func New() *FS {
	return &FS{root: NewDir(""), cwd: Separator}
}

// Seed returns a filesystem with the standard directory layout and the
// cwd set to the user's home directory.
func Seed(user string) *FS {
	fs := New()
	home := Join("home", user)
	for _, dir := range []string{"/home", home, "/tmp", "/var", "/usr", "/usr/bin"} {
		// Seeding a fresh tree cannot fail.
		_ = fs.Mkdir(dir)
	}
	fs.cwd = home
	return fs
}

// Cwd returns the current working directory.
func (fs *FS) Cwd() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.cwd
}

// Resolve turns p into a cleaned absolute path relative to the cwd.
func (fs *FS) Resolve(p string) string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return Resolve(fs.cwd, p)
}

// lookup walks the tree to the node at abs. Callers hold the lock.
func (fs *FS) lookup(abs string) (*Node, error) {
	current := fs.root
	for _, part := range Components(abs) {
		if !current.Dir {
			return nil, fmt.Errorf("%s: %w", abs, ErrNotDir)
		}
		child, ok := current.Children[part]
		if !ok {
			return nil, fmt.Errorf("%s: %w", abs, ErrNotFound)
		}
		current = child
	}
	return current, nil
}

// parentOf returns the parent directory node of abs and the final path
// element. Callers hold the lock.
func (fs *FS) parentOf(abs string) (*Node, string, error) {
	dir, name := Split(abs)
	if name == "" {
		return nil, "", ErrRootForbidden
	}
	parent, err := fs.lookup(dir)
	if err != nil {
		return nil, "", err
	}
	if !parent.Dir {
		return nil, "", fmt.Errorf("%s: %w", dir, ErrNotDir)
	}
	return parent, name, nil
}

// Stat returns the node at p.
func (fs *FS) Stat(p string) (*Node, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.lookup(Resolve(fs.cwd, p))
}

// Exists reports whether p names an existing node.
func (fs *FS) Exists(p string) bool {
	_, err := fs.Stat(p)
	return err == nil
}

// IsDir reports whether p names a directory.
func (fs *FS) IsDir(p string) bool {
	node, err := fs.Stat(p)
	return err == nil && node.Dir
}

// IsFile reports whether p names a regular file.
func (fs *FS) IsFile(p string) bool {
	node, err := fs.Stat(p)
	return err == nil && !node.Dir
}

// Mkdir creates a single directory. The parent must already exist.
func (fs *FS) Mkdir(p string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.mkdir(Resolve(fs.cwd, p))
}

func (fs *FS) mkdir(abs string) error {
	parent, name, err := fs.parentOf(abs)
	if err != nil {
		return err
	}
	if _, ok := parent.Children[name]; ok {
		return fmt.Errorf("%s: %w", abs, ErrExists)
	}
	parent.Children[name] = NewDir(name)
	return nil
}

// MkdirAll creates a directory and any missing ancestors. Existing
// directories along the way are fine; an existing file is not.
func (fs *FS) MkdirAll(p string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	abs := Resolve(fs.cwd, p)
	current := fs.root
	walked := ""
	for _, part := range Components(abs) {
		walked += Separator + part
		child, ok := current.Children[part]
		if !ok {
			child = NewDir(part)
			current.Children[part] = child
		} else if !child.Dir {
			return fmt.Errorf("%s: %w", walked, ErrNotDir)
		}
		current = child
	}
	return nil
}

// Touch creates an empty file at p, or refreshes its mtime when it
// already exists. Touching a directory is an error.
func (fs *FS) Touch(p string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	abs := Resolve(fs.cwd, p)
	parent, name, err := fs.parentOf(abs)
	if err != nil {
		return err
	}
	if existing, ok := parent.Children[name]; ok {
		if existing.Dir {
			return fmt.Errorf("%s: %w", abs, ErrIsDir)
		}
		existing.SetContent(existing.Content)
		return nil
	}
	parent.Children[name] = NewFile(name, "")
	return nil
}

// ReadFile returns the content of the file at p.
func (fs *FS) ReadFile(p string) (string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	abs := Resolve(fs.cwd, p)
	node, err := fs.lookup(abs)
	if err != nil {
		return "", err
	}
	if node.Dir {
		return "", fmt.Errorf("%s: %w", abs, ErrIsDir)
	}
	return node.Content, nil
}

// WriteFile writes content to the file at p, creating it when missing.
// With appendTo set, content is appended instead of replacing.
func (fs *FS) WriteFile(p, content string, appendTo bool) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	abs := Resolve(fs.cwd, p)
	parent, name, err := fs.parentOf(abs)
	if err != nil {
		return err
	}
	node, ok := parent.Children[name]
	if !ok {
		parent.Children[name] = NewFile(name, content)
		return nil
	}
	if node.Dir {
		return fmt.Errorf("%s: %w", abs, ErrIsDir)
	}
	if appendTo {
		node.AppendContent(content)
	} else {
		node.SetContent(content)
	}
	return nil
}

// List returns the entries of the directory at p, sorted by name. An
// empty path lists the cwd.
func (fs *FS) List(p string) ([]*Node, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	abs := Resolve(fs.cwd, p)
	node, err := fs.lookup(abs)
	if err != nil {
		return nil, err
	}
	if !node.Dir {
		return nil, fmt.Errorf("%s: %w", abs, ErrNotDir)
	}
	return node.SortedChildren(), nil
}

// Remove deletes the node at p. Directories require recursive unless
// they are empty. The root cannot be removed.
func (fs *FS) Remove(p string, recursive bool) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	abs := Resolve(fs.cwd, p)
	parent, name, err := fs.parentOf(abs)
	if err != nil {
		return err
	}
	node, ok := parent.Children[name]
	if !ok {
		return fmt.Errorf("%s: %w", abs, ErrNotFound)
	}
	if node.Dir && len(node.Children) > 0 && !recursive {
		return fmt.Errorf("%s: %w", abs, ErrNotEmpty)
	}
	delete(parent.Children, name)

	// Keep the cwd pointing at something that exists.
	if fs.cwd == abs || strings.HasPrefix(fs.cwd, abs+Separator) {
		dir, _ := Split(abs)
		fs.cwd = dir
	}
	return nil
}

// Rename moves the node at src to dst. When dst is an existing
// directory the node moves into it under its own name.
func (fs *FS) Rename(src, dst string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	srcAbs := Resolve(fs.cwd, src)
	dstAbs := Resolve(fs.cwd, dst)

	srcParent, srcName, err := fs.parentOf(srcAbs)
	if err != nil {
		return err
	}
	node, ok := srcParent.Children[srcName]
	if !ok {
		return fmt.Errorf("%s: %w", srcAbs, ErrNotFound)
	}

	if target, err := fs.lookup(dstAbs); err == nil && target.Dir {
		dstAbs = Join(dstAbs, srcName)
	}
	if node.Dir && (dstAbs == srcAbs || strings.HasPrefix(dstAbs, srcAbs+Separator)) {
		return fmt.Errorf("%s into %s: %w", srcAbs, dstAbs, ErrInvalidPath)
	}

	dstParent, dstName, err := fs.parentOf(dstAbs)
	if err != nil {
		return err
	}
	if existing, ok := dstParent.Children[dstName]; ok && existing.Dir {
		return fmt.Errorf("%s: %w", dstAbs, ErrIsDir)
	}

	delete(srcParent.Children, srcName)
	node.Name = dstName
	dstParent.Children[dstName] = node

	if fs.cwd == srcAbs || strings.HasPrefix(fs.cwd, srcAbs+Separator) {
		fs.cwd = dstAbs + strings.TrimPrefix(fs.cwd, srcAbs)
	}
	return nil
}

// Copy deep-copies the node at src to dst. When dst is an existing
// directory the copy lands inside it under the source name.
func (fs *FS) Copy(src, dst string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	srcAbs := Resolve(fs.cwd, src)
	dstAbs := Resolve(fs.cwd, dst)

	node, err := fs.lookup(srcAbs)
	if err != nil {
		return err
	}
	if target, err := fs.lookup(dstAbs); err == nil && target.Dir {
		dstAbs = Join(dstAbs, node.Name)
	}
	if node.Dir && (dstAbs == srcAbs || strings.HasPrefix(dstAbs, srcAbs+Separator)) {
		return fmt.Errorf("%s into %s: %w", srcAbs, dstAbs, ErrInvalidPath)
	}

	dstParent, dstName, err := fs.parentOf(dstAbs)
	if err != nil {
		return err
	}
	clone := node.Clone()
	clone.Name = dstName
	dstParent.Children[dstName] = clone
	return nil
}

// Chdir changes the current working directory.
func (fs *FS) Chdir(p string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	abs := Resolve(fs.cwd, p)
	node, err := fs.lookup(abs)
	if err != nil {
		return err
	}
	if !node.Dir {
		return fmt.Errorf("%s: %w", abs, ErrNotDir)
	}
	fs.cwd = abs
	return nil
}

// WalkFunc is invoked for every node visited by Walk, with the node's
// absolute path.
type WalkFunc func(path string, node *Node) error

// Walk traverses the subtree at p depth-first in name order, starting
// with p itself. The tree must not be mutated from the callback.
func (fs *FS) Walk(p string, fn WalkFunc) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	abs := Resolve(fs.cwd, p)
	node, err := fs.lookup(abs)
	if err != nil {
		return err
	}
	return walk(abs, node, fn)
}

func walk(p string, node *Node, fn WalkFunc) error {
	if err := fn(p, node); err != nil {
		return err
	}
	if !node.Dir {
		return nil
	}
	for _, child := range node.SortedChildren() {
		if err := walk(Join(p, child.Name), child, fn); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the number of directories and files in the tree and
// the total file bytes. The root directory is not counted.
func (fs *FS) Stats() (dirs, files int, bytes int64) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var count func(n *Node)
	count = func(n *Node) {
		for _, child := range n.Children {
			if child.Dir {
				dirs++
				count(child)
			} else {
				files++
				bytes += child.Size
			}
		}
	}
	count(fs.root)
	return dirs, files, bytes
}
