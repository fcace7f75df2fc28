package sched

import (
	"context"
	"io"
	"log"
	"testing"
	"time"
)

func TestNextAfter_Cron(t *testing.T) {
	// Mondays at 13:00.
	at := time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC) // Friday
	next, err := NextAfter("0 13 * * 1", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, time.February, 23, 13, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("expected %s, got %s", want, next)
	}
}

func TestNextAfter_Shortcuts(t *testing.T) {
	// Shortcuts fire at calendar boundaries, not relative to now.
	at := time.Date(2026, time.February, 20, 9, 15, 0, 0, time.UTC)
	hourly := time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC)
	if next, err := NextAfter("@hourly", at); err != nil || !next.Equal(hourly) {
		t.Fatalf("expected %s, got %s (%v)", hourly, next, err)
	}
	daily := time.Date(2026, time.February, 21, 0, 0, 0, 0, time.UTC)
	if next, err := NextAfter("@daily", at); err != nil || !next.Equal(daily) {
		t.Fatalf("expected %s, got %s (%v)", daily, next, err)
	}
}

func TestNextAfter_InvalidSpec(t *testing.T) {
	if _, err := NextAfter("not a cron spec", time.Now()); err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestRun_InvalidSpecFailsImmediately(t *testing.T) {
	err := Run(context.Background(), "bogus", func(context.Context) error { return nil }, log.New(io.Discard, "", 0))
	if err == nil {
		t.Fatal("expected error for invalid spec")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, "0 13 * * 1", func(context.Context) error {
		t.Fatal("fn must not fire under cancelled context")
		return nil
	}, log.New(io.Discard, "", 0))
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
