//go:build unix

package workspace

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Lock takes an advisory lock on the workspace so concurrent invocations
// do not stomp each other's checkouts. Blocks until the lock is available.
// The returned function releases the lock.
func (w *Workspace) Lock() (unlock func(), err error) {
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(w.root, ".lock"), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
	}, nil
}
