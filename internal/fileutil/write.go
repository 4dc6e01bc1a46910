package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// DefaultFileMode is the permission given to newly created output files.
const DefaultFileMode os.FileMode = 0644

// tempPrefix names the temporary file created next to the destination.
const tempPrefix = ".quickreplace-"

// AtomicWrite replaces the file at path with data using a temp file and rename strategy.
//
// The process:
// 1. Create a temporary file in the same directory as the target
// 2. Write the data and apply the permission bits of the existing target, or perm for a new one
// 3. Close the temporary file
// 4. Rename the temporary file to the target path
//
// If the operation fails at any point, the original file (if it exists) remains unchanged.
func AtomicWrite(fsys billy.Filesystem, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	info, err := fsys.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	if existing, err := fsys.Stat(path); err == nil {
		if existing.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		perm = existing.Mode().Perm()
	}

	tempFile, err := fsys.TempFile(dir, tempPrefix)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure temp file is cleaned up on error
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			fsys.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if s, ok := tempFile.(interface{ Sync() error }); ok {
		if err := s.Sync(); err != nil {
			return fmt.Errorf("failed to sync temp file: %w", err)
		}
	}

	if err := chmod(fsys, tempFile, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fsys.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	// Renamed into place, nothing left to clean up
	tempFile = nil

	return nil
}

// chmod applies perm through the open handle when it is backed by an *os.File,
// otherwise through the filesystem if it supports permission changes.
func chmod(fsys billy.Filesystem, f billy.File, perm os.FileMode) error {
	if c, ok := f.(interface{ Chmod(os.FileMode) error }); ok {
		return c.Chmod(perm)
	}
	if change, ok := fsys.(billy.Change); ok {
		return change.Chmod(f.Name(), perm)
	}
	return nil
}
