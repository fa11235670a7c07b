package vfs

import (
	"path"
	"strings"
)

// Separator is the path separator for virtual paths. The tree is
// slash-only regardless of host platform.
const Separator = "/"

// Clean normalizes p to an absolute slash path with "." and ".."
// resolved lexically. ".." above the root stays at the root.
func Clean(p string) string {
	return path.Clean(Separator + p)
}

// Resolve interprets p relative to base (which must be absolute) and
// returns the cleaned absolute result.
func Resolve(base, p string) string {
	if p == "" {
		return Clean(base)
	}
	if strings.HasPrefix(p, Separator) {
		return Clean(p)
	}
	return Clean(base + Separator + p)
}

// Split returns the cleaned parent directory and the final element of
// p. Splitting the root yields ("/", "").
func Split(p string) (dir, name string) {
	p = Clean(p)
	if p == Separator {
		return Separator, ""
	}
	return path.Dir(p), path.Base(p)
}

// Base returns the final element of p, or "/" for the root.
func Base(p string) string {
	return path.Base(Clean(p))
}

// Components splits a cleaned absolute path into its elements. The
// root has no components.
func Components(p string) []string {
	p = Clean(p)
	if p == Separator {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, Separator), Separator)
}

// Join joins elements into a cleaned absolute path.
func Join(elems ...string) string {
	return Clean(strings.Join(elems, Separator))
}
