package runlock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"hexctl/internal/config"
)

// ErrBusy indicates another hexctl run currently holds the mutation lock.
var ErrBusy = errors.New("another hexctl run is mutating your account")

// Guard holds the mutation lock until released.
type Guard struct {
	lock *flock.Flock
}

// Acquire takes the mutation lock without blocking. It returns ErrBusy when
// another process holds it.
func Acquire(cfg *config.Config) (*Guard, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lockPath := filepath.Join(cfg.Paths.DataDir, "hexctl.lock")
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock %s: %w", lockPath, err)
	}
	if !ok {
		return nil, ErrBusy
	}
	return &Guard{lock: lock}, nil
}

// Release drops the lock.
func (g *Guard) Release() error {
	if g == nil || g.lock == nil {
		return nil
	}
	return g.lock.Unlock()
}
