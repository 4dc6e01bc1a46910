// Package filelock serializes concurrent quickreplace runs that write into
// the same directory.
//
// The advisory lock is taken on the output's parent directory rather than
// on a sibling lock file, so a locked run leaves nothing behind but the
// output itself. The directory inode also survives the rename that
// replaces the output, which a lock on the output file would not.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// DirLock is an exclusive advisory lock on the directory holding a target file.
type DirLock struct {
	flock *flock.Flock
	dir   string
}

// ForTarget returns the lock guarding writes to target. It is not yet held.
func ForTarget(target string) *DirLock {
	dir := filepath.Dir(target)
	return &DirLock{
		// Directories can only be opened read-only, and must not be created here
		flock: flock.New(dir, flock.SetFlag(os.O_RDONLY)),
		dir:   dir,
	}
}

// Acquire takes the lock. If another holder has it, onWait (when non-nil) is
// called once before blocking until the lock is free.
func (l *DirLock) Acquire(onWait func(dir string)) error {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", l.dir, err)
	}
	if acquired {
		return nil
	}

	if onWait != nil {
		onWait(l.dir)
	}
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", l.dir, err)
	}
	return nil
}

// Release drops the lock and closes the directory handle.
func (l *DirLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("unlock %s: %w", l.dir, err)
	}
	return nil
}

// WithLock runs fn while holding the lock for target's directory.
func WithLock(target string, onWait func(dir string), fn func() error) error {
	lock := ForTarget(target)
	if err := lock.Acquire(onWait); err != nil {
		return err
	}
	defer lock.Release()

	return fn()
}
