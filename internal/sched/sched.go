// Package sched drives daemon mode: it fires the pipeline on a cron
// schedule until the context is cancelled.
package sched

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gorhill/cronexpr"
)

// NextAfter returns the next fire time for spec strictly after t.
// Shortcuts like "@daily" and "@hourly" are supported alongside
// standard cron expressions.
func NextAfter(spec string, t time.Time) (time.Time, error) {
	expr, err := cronexpr.Parse(spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing cron spec %q: %w", spec, err)
	}
	next := expr.Next(t)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("cron spec %q never fires", spec)
	}
	return next, nil
}

// Run fires fn on the given schedule until ctx is cancelled. A failed
// run is logged and the schedule keeps going; the spec being invalid is
// the only error returned.
func Run(ctx context.Context, spec string, fn func(context.Context) error, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(log.Writer(), "[SCHED] ", log.LstdFlags)
	}
	// Validate up front so a bad spec fails the daemon immediately.
	if _, err := NextAfter(spec, time.Now()); err != nil {
		return err
	}

	for {
		next, err := NextAfter(spec, time.Now())
		if err != nil {
			return err
		}
		logger.Printf("next run scheduled for %s", next.Format(time.RFC1123))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(next)):
		}

		if err := fn(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Printf("scheduled run failed: %v", err)
		}
	}
}
