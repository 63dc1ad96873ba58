// Package runlock serializes batch runs over a single work directory. Two
// concurrent runs would race on the same intermediates and outputs, so the
// second acquirer is turned away.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock file created inside the work directory.
const LockFileName = ".subburn.lock"

// Lock holds the advisory lock for one run.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the work-directory lock without blocking. It fails when
// another run already holds it.
func Acquire(workDir string) (*Lock, error) {
	path := filepath.Join(workDir, LockFileName)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another subburn run is already processing %s", workDir)
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks the work directory. Safe on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release run lock: %w", err)
	}
	return nil
}
