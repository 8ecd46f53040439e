package taskman

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunInBackgroundDeliversResultOnMain(t *testing.T) {
	m := New()
	go m.Run(context.Background())
	defer m.Shutdown()

	done := make(chan error, 1)
	m.RunInBackground(
		func() error { return errors.New("boom") },
		func(err error) { done <- err },
	)

	select {
	case err := <-done:
		if err == nil || err.Error() != "boom" {
			t.Errorf("onDone err = %v, want boom", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onDone never delivered")
	}
}

func TestMainLoopSerializesCallbacks(t *testing.T) {
	m := New()
	go m.Run(context.Background())
	defer m.Shutdown()

	// Counter mutated only from main-loop callbacks; a data race here
	// would trip the race detector.
	count := 0
	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		m.RunInBackground(func() error { return nil }, func(error) {
			count++
			if count == 50 {
				close(done)
			}
		})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("only %d callbacks ran", count)
	}
}

func TestShutdownStopsLoop(t *testing.T) {
	m := New()
	stopped := make(chan struct{})
	go func() {
		m.Run(context.Background())
		close(stopped)
	}()

	m.Shutdown()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}

func TestRunOnMainAfterShutdownDoesNotBlock(t *testing.T) {
	m := New()
	m.Shutdown()

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 32; i++ {
			m.RunOnMain(func() {})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("RunOnMain blocked after Shutdown")
	}
}
