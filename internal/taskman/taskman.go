// Package taskman bridges background work and the main loop. Blocking
// work (network synthesis, file IO) runs on its own goroutine; its
// completion callback is delivered back to the loop that owns UI and
// playback state, so those callbacks never race with each other.
package taskman

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Manager runs a single main loop and schedules background tasks whose
// completion handlers run on that loop.
type Manager struct {
	main chan func()

	stopOnce sync.Once
	stop     chan struct{}
}

func New() *Manager {
	return &Manager{
		main: make(chan func(), 16),
		stop: make(chan struct{}),
	}
}

// Run processes main-loop callbacks until Shutdown is called or ctx is
// cancelled. It must be called from exactly one goroutine.
func (m *Manager) Run(ctx context.Context) {
	for {
		select {
		case fn := <-m.main:
			fn()
		case <-m.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Shutdown stops the main loop. Pending callbacks are dropped.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// RunOnMain schedules fn on the main loop.
func (m *Manager) RunOnMain(fn func()) {
	select {
	case m.main <- fn:
	case <-m.stop:
		logrus.Debug("taskman stopped, dropping main-loop callback")
	}
}

// RunInBackground runs task on a new goroutine and delivers its result
// to onDone on the main loop. A nil onDone logs failures instead.
func (m *Manager) RunInBackground(task func() error, onDone func(error)) {
	go func() {
		err := task()
		if onDone == nil {
			if err != nil {
				logrus.WithError(err).Error("background task failed")
			}
			return
		}
		m.RunOnMain(func() { onDone(err) })
	}()
}
