package vfs

import "errors"

// Sentinel errors for filesystem operations. Callers match with
// errors.Is after unwrapping.
var (
	ErrNotFound      = errors.New("no such file or directory")
	ErrNotDir        = errors.New("not a directory")
	ErrIsDir         = errors.New("is a directory")
	ErrExists        = errors.New("file exists")
	ErrNotEmpty      = errors.New("directory not empty")
	ErrInvalidPath   = errors.New("invalid path")
	ErrRootForbidden = errors.New("operation not permitted on /")
)
