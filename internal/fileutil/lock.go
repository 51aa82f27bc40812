package fileutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// LockSuffix is appended to a page path to name its lock file.
const LockSuffix = ".lock"

const lockRetryDelay = 100 * time.Millisecond

// ErrLocked is returned when another process holds the lock until ctx ends.
var ErrLocked = errors.New("file is locked by another process")

// WithFileLock runs fn while holding an advisory lock on path+LockSuffix. It
// keeps retrying until the lock is free or ctx is done.
func WithFileLock(ctx context.Context, path string, fn func() error) error {
	lock := flock.New(path + LockSuffix)
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("lock %s: %w: %w", path, ErrLocked, ctx.Err())
		}
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("lock %s: %w", path, ErrLocked)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
