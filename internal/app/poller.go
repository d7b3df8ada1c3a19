package app

import (
	"context"
	"log"
	"time"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/recipes"
	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/state"
)

const (
	defaultPollInterval = 15 * time.Second
	maxBackoff          = 30 * time.Second
)

// HealthChecker is the part of the API the poller needs.
type HealthChecker interface {
	Health(ctx context.Context) (recipes.Health, error)
}

// StartPoller launches a background goroutine that checks backend health
// and records the result in store. The first check happens one interval
// after start; the UI performs its own check at boot. Consecutive failures
// stretch the wait up to maxBackoff. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, checker HealthChecker, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, checker)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, checker HealthChecker) {
	health, err := checker.Health(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		log.Printf("health poll failed: %v", err)
		return
	}
	store.Update(&health, nil)
}

// calculateBackoff doubles base for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
