package fileutil

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
)

// ErrInvalidUTF8 is returned by LoadText when the file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// LoadText reads the whole file at path and returns it as text.
// The file handle is released on every return path.
func LoadText(fsys billy.Filesystem, path string) (string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrInvalidUTF8)
	}

	return string(data), nil
}
