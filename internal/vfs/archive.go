package vfs

import (
	"archive/tar"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ExportArchive writes the whole tree to w as a gzip-compressed tar
// stream. Directory entries come before their contents.
func ExportArchive(fs *FS, w io.Writer) error {
	zw := gzip.NewWriter(w)
	tw := tar.NewWriter(zw)

	err := fs.Walk(Separator, func(p string, node *Node) error {
		if p == Separator {
			return nil
		}
		hdr := &tar.Header{
			Name:    strings.TrimPrefix(p, Separator),
			ModTime: node.Modified,
		}
		if node.Dir {
			hdr.Typeflag = tar.TypeDir
			hdr.Name += Separator
			hdr.Mode = 0o755
		} else {
			hdr.Typeflag = tar.TypeReg
			hdr.Mode = 0o644
			hdr.Size = node.Size
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("archive %s: %w", p, err)
		}
		if !node.Dir {
			if _, err := io.WriteString(tw, node.Content); err != nil {
				return fmt.Errorf("archive %s: %w", p, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	return zw.Close()
}

// ImportArchive reads a gzip-compressed tar stream into a fresh tree.
// Missing parent directories are created on the fly.
func ImportArchive(r io.Reader) (*FS, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	defer zr.Close()

	fs := New()
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("restore: %w", err)
		}

		name := Clean(hdr.Name)
		if name == Separator {
			continue
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := fs.MkdirAll(name); err != nil {
				return nil, err
			}
		case tar.TypeReg:
			dir, _ := Split(name)
			if err := fs.MkdirAll(dir); err != nil {
				return nil, err
			}
			content, err := io.ReadAll(tr)
			if err != nil {
				return nil, fmt.Errorf("restore %s: %w", name, err)
			}
			if err := fs.WriteFile(name, string(content), false); err != nil {
				return nil, err
			}
			if node, err := fs.Stat(name); err == nil && !hdr.ModTime.IsZero() {
				node.Modified = hdr.ModTime
			}
		}
	}
	return fs, nil
}
