package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	filePerm = 0o644
)

// Path returns the full path of the file.
func (f *GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// WriteFiles writes all generated files into their package directories.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := os.WriteFile(file.Path(), file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path(), err)
		}
	}

	return nil
}

// IsUpToDate reports whether the file on disk already holds the content.
func IsUpToDate(file GeneratedFile) (bool, error) {
	existing, err := os.ReadFile(file.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", file.Path(), err)
	}

	return bytes.Equal(existing, file.Content), nil
}

// RemoveStale deletes dir/filename when it was written by litgen. It is
// used once a package no longer has annotated types. Files without the
// generated header are left alone. It reports whether a file was removed.
func RemoveStale(dir, filename string) (bool, error) {
	path := filepath.Join(dir, filename)

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", path, err)
	}

	if !IsGenerated(content) {
		return false, nil
	}

	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("removing stale file %s: %w", path, err)
	}

	return true, nil
}

// IsGenerated reports whether content starts with the litgen header.
func IsGenerated(content []byte) bool {
	return bytes.HasPrefix(content, []byte(Header))
}
