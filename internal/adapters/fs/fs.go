// Package fs is the export output target.
package fs

import (
	iofs "io/fs"
)

// FileSystem is what the exporter needs from its output directory.
type FileSystem interface {
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	CopyFrom(src iofs.FS, name, dst string) error
	RemoveAll(path string) error
}
