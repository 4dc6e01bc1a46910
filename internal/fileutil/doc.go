// Package fileutil loads and persists whole files through a billy.Filesystem.
//
// The package serves the two I/O stages of the replace pipeline:
//
//   - LoadText reads an entire file into memory as UTF-8 text.
//   - AtomicWrite replaces a file's contents all at once.
//
// Both functions take the filesystem as a parameter. Production code passes
// NativeFS(), which resolves paths exactly like the os package does; tests
// pass memfs.New().
//
// # Scoped handles
//
// Every file handle opened here is closed before the function returns,
// on success and on failure.
//
// # Atomic writes
//
// AtomicWrite writes to a temporary file in the destination directory and
// renames it over the destination. Readers see either the old content or
// the new content, never a truncated mix. If any step fails the temporary
// file is removed and the destination is left as it was.
//
// The destination directory must already exist; missing parents are
// reported as errors rather than created.
//
// Usage:
//
//	fsys := fileutil.NativeFS()
//	text, err := fileutil.LoadText(fsys, "in.txt")
//	if err != nil {
//	    return err
//	}
//	err = fileutil.AtomicWrite(fsys, "out.txt", []byte(text), fileutil.DefaultFileMode)
package fileutil
