package fileutil

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// nativeFS is a billy.Filesystem that acts like the os package: relative
// paths resolve against the working directory, absolute paths are used as is.
type nativeFS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
func (n *nativeFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (n *nativeFS) Root() string {
	return "/"
}

// NativeFS returns the filesystem used outside of tests.
func NativeFS() billy.Filesystem {
	return &nativeFS{}
}
