package sound

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Player plays one kind of Tag. Play must eventually invoke next so
// the queue can advance; players that fail internally still call next
// after reporting the problem through their own channels.
type Player interface {
	CanPlay(tag Tag) bool
	Play(tag Tag, next func())
	Stop()
}

// Manager owns the playback queue. Providers are registered explicitly
// at construction; there is no process-global player list.
type Manager struct {
	mu      sync.Mutex
	players []Player
	queue   []Tag
	current Player
	playing bool
	onIdle  func()
}

func NewManager(players ...Player) *Manager {
	return &Manager{players: players}
}

// RegisterPlayer appends a player. Registration happens explicitly
// during startup, before playback begins.
func (m *Manager) RegisterPlayer(p Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players = append(m.players, p)
}

// SetOnIdle registers a callback invoked when the queue drains.
func (m *Manager) SetOnIdle(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onIdle = fn
}

// PlayTags appends tags to the queue and starts playback if idle.
func (m *Manager) PlayTags(tags ...Tag) {
	m.mu.Lock()
	m.queue = append(m.queue, tags...)
	start := !m.playing
	if start {
		m.playing = true
	}
	m.mu.Unlock()

	if start {
		m.playNext()
	}
}

// InsertFile places an audio file at the front of the queue, ahead of
// everything still pending. The next queue advance plays it.
func (m *Manager) InsertFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append([]Tag{FileTag{Filename: path}}, m.queue...)
}

// Interrupt flushes the queue and stops whatever is playing.
func (m *Manager) Interrupt() {
	m.mu.Lock()
	m.queue = nil
	current := m.current
	m.current = nil
	m.playing = false
	m.mu.Unlock()

	if current != nil {
		current.Stop()
	}
}

func (m *Manager) playNext() {
	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			m.current = nil
			m.playing = false
			onIdle := m.onIdle
			m.mu.Unlock()
			if onIdle != nil {
				onIdle()
			}
			return
		}
		tag := m.queue[0]
		m.queue = m.queue[1:]

		var player Player
		for _, p := range m.players {
			if p.CanPlay(tag) {
				player = p
				break
			}
		}
		if player == nil {
			m.mu.Unlock()
			logrus.WithField("tag", tag).Warn("no player for tag, skipping")
			continue
		}
		m.current = player
		m.mu.Unlock()

		player.Play(tag, m.playNext)
		return
	}
}
