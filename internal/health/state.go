package health

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrUnhealthy = errors.New("unhealthy")

// State holds the outcome of the last renewal run.
// It is safe for concurrent use.
type State struct {
	mutex      sync.RWMutex
	lastErr    error
	finishedAt time.Time
}

func NewState() *State {
	return &State{}
}

func (s *State) SetResult(runErr error, finishedAt time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lastErr = runErr
	s.finishedAt = finishedAt
}

// Check returns an error wrapping ErrUnhealthy if the last run
// failed. It returns nil if no run finished yet.
func (s *State) Check() (err error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.lastErr == nil {
		return nil
	}
	return fmt.Errorf("%w: last run at %s failed: %w",
		ErrUnhealthy, s.finishedAt.Format(time.RFC3339), s.lastErr)
}
