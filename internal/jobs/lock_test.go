package jobs

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestLockAcquireRelease(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "job.lock")

	lck, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	if !Held(path) {
		t.Error("Held = false while lock is acquired")
	}

	// Second acquisition from the same process on a fresh descriptor
	// must be refused.
	if _, err := AcquireLock(path); !errors.Is(err, ErrLockHeld) {
		t.Errorf("second AcquireLock: err = %v, want ErrLockHeld", err)
	}

	if err := lck.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if Held(path) {
		t.Error("Held = true after release")
	}

	// Reacquirable after release.
	lck2, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock after release: %v", err)
	}
	_ = lck2.Release()
}

func TestHeldAbsentFile(t *testing.T) {
	t.Parallel()

	if Held(filepath.Join(t.TempDir(), "nope.lock")) {
		t.Error("Held = true for a lock file that does not exist")
	}
}

// The Held probe must not steal or break the lock it probes.
func TestHeldDoesNotDisturbLock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "job.lock")
	lck, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	defer func() { _ = lck.Release() }()

	for i := 0; i < 3; i++ {
		if !Held(path) {
			t.Fatalf("probe %d: Held = false while lock is acquired", i)
		}
	}
}

func TestLockHandoffKeepsDescriptorClosed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "job.lock")
	lck, err := AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}

	if err := lck.Handoff(); err != nil {
		t.Fatalf("Handoff: %v", err)
	}
	if lck.File() != nil {
		t.Error("File() non-nil after Handoff")
	}
	// Idempotent.
	if err := lck.Handoff(); err != nil {
		t.Errorf("second Handoff: %v", err)
	}
	if err := lck.Release(); err != nil {
		t.Errorf("Release after Handoff: %v", err)
	}
}
