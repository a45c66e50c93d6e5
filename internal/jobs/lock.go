package jobs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// ErrLockHeld reports that another process currently owns a job's lock.
// Callers treat it as losing a spawn race, not as a failure.
var ErrLockHeld = errors.New("job lock held by another process")

// Lock is a per-job exclusive lock implemented via a lock file and
// flock(2). The lock belongs to the open file description, so it stays
// held while any process keeps an inherited copy of the descriptor open
// and is released by the kernel when the last copy closes — including
// when the holder crashes.
type Lock struct {
	path string
	f    *os.File
}

// AcquireLock acquires the exclusive non-blocking lock at path and
// writes the current PID into the file. It returns ErrLockHeld when
// another process already holds the lock.
func AcquireLock(path string) (*Lock, error) {
	if path == "" {
		return nil, fmt.Errorf("lock path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		_ = f.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, ErrLockHeld
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	// The PID is informational for anyone inspecting the cache; the
	// flock itself is authoritative.
	if err := f.Truncate(0); err == nil {
		if _, err := f.Seek(0, 0); err == nil {
			_, _ = fmt.Fprintf(f, "%d\n", os.Getpid())
		}
	}

	return &Lock{path: path, f: f}, nil
}

// Held probes whether some process currently holds the lock at path. It
// works by attempting a non-blocking acquisition and immediately backing
// out on success.
func Held(path string) bool {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		return true
	}
	_ = syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	return false
}

func (l *Lock) Path() string { return l.path }

// File exposes the locked descriptor so it can be handed to a spawned
// child via ExtraFiles.
func (l *Lock) File() *os.File { return l.f }

// Release unlocks and closes the descriptor.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	_ = syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
	err := l.f.Close()
	l.f = nil
	return err
}

// Handoff closes this process's copy of the descriptor without
// unlocking. Used after the descriptor has been inherited by a spawned
// child: the flock stays held through the child's copy until the child
// exits.
func (l *Lock) Handoff() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
