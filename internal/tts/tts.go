// Package tts defines the contract between the playback subsystem and
// text-to-speech voice providers, and the process player that runs a
// provider's synthesis off the main loop.
package tts

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"readaloud/internal/sound"
)

// audioSuffix is appended to every synthesized cache file; all
// providers in this project produce MP3.
const audioSuffix = ".mp3"

// Voice is one selectable voice. Provider is the backend name users
// reference when requesting a voice, Lang the normalized locale code,
// and Code the provider's own language or voice identifier, opaque to
// everything but the provider that produced it.
type Voice struct {
	Provider string
	Lang     string
	Code     string
}

// Synthesizer is implemented by each voice backend.
type Synthesizer interface {
	// Name returns the provider name carried by every Voice.
	Name() string
	// Voices enumerates the selectable voices. Called once, lazily.
	// Every returned Voice must have a non-empty Lang.
	Voices() ([]Voice, error)
	// SynthesizeToFile writes spoken audio for the tag's text to path.
	// It runs off the main loop and may block on network IO.
	SynthesizeToFile(ctx context.Context, tag sound.TTSTag, voice Voice, path string) error
}

// ProcessPlayer adapts a Synthesizer to the playback queue: synthesis
// runs on a background task, and the completion handler - which hands
// the finished file to the queue - runs on the main loop.
//
// A single in-flight request per player is assumed; the queue never
// starts the next tag before the current one finishes.
type ProcessPlayer struct {
	synth    Synthesizer
	tasks    *taskRunner
	queue    fileQueue
	cacheDir string
	onError  func(error)

	voicesOnce sync.Once
	voices     []Voice

	interrupted atomic.Bool

	// lastFile bridges the background synthesis step to the queue
	// insertion in the completion handler.
	lastFile string
}

// taskRunner is the slice of the task manager the player needs.
type taskRunner interface {
	RunInBackground(task func() error, onDone func(error))
}

// fileQueue is the slice of the playback queue the player needs.
type fileQueue interface {
	InsertFile(path string)
}

// NewProcessPlayer wires a Synthesizer into the host. onError receives
// synthesis failures; nil means they are only logged.
func NewProcessPlayer(synth Synthesizer, tasks taskRunner, queue fileQueue, cacheDir string, onError func(error)) *ProcessPlayer {
	if onError == nil {
		onError = func(err error) {
			logrus.WithError(err).WithField("provider", synth.Name()).Error("speech synthesis failed")
		}
	}
	return &ProcessPlayer{
		synth:    synth,
		tasks:    tasks,
		queue:    queue,
		cacheDir: cacheDir,
		onError:  onError,
	}
}

func (p *ProcessPlayer) CanPlay(tag sound.Tag) bool {
	tt, ok := tag.(sound.TTSTag)
	if !ok {
		return false
	}
	_, ok = p.voiceForTag(tt)
	return ok
}

func (p *ProcessPlayer) Play(tag sound.Tag, next func()) {
	tt, ok := tag.(sound.TTSTag)
	if !ok {
		next()
		return
	}
	p.tasks.RunInBackground(
		func() error { return p.play(tt) },
		func(err error) { p.onDone(err, next) },
	)
}

// Stop does not cancel in-flight synthesis; it only keeps the
// completion from reaching the queue. Playback of already-synthesized
// audio is interrupted by the file player, not here.
func (p *ProcessPlayer) Stop() {
	p.interrupted.Store(true)
}

// play runs on a background task.
func (p *ProcessPlayer) play(tag sound.TTSTag) error {
	voice, ok := p.voiceForTag(tag)
	if !ok {
		return fmt.Errorf("tts: no %s voice for %q", p.synth.Name(), tag.Lang)
	}

	p.lastFile = ""
	if strings.TrimSpace(tag.Text) == "" {
		return nil
	}

	path := p.cachePath(tag, voice)
	p.lastFile = path
	if _, err := os.Stat(path); err == nil {
		// Cache hit; the completion handler queues the existing file.
		return nil
	}

	if err := os.MkdirAll(p.cacheDir, 0755); err != nil {
		return fmt.Errorf("tts: create cache dir: %w", err)
	}
	return p.synth.SynthesizeToFile(context.Background(), tag, voice, path)
}

// onDone runs on the main loop after play finishes.
func (p *ProcessPlayer) onDone(err error, next func()) {
	if p.interrupted.Swap(false) || errors.Is(err, sound.ErrInterrupted) {
		// Interrupted by the user; don't advance the queue.
		return
	}
	if err != nil {
		p.onError(err)
		return
	}

	if p.lastFile != "" {
		p.queue.InsertFile(p.lastFile)
	}
	next()
}

// availableVoices enumerates the provider's voices once. Voices whose
// locale could not be normalized are dropped.
func (p *ProcessPlayer) availableVoices() []Voice {
	p.voicesOnce.Do(func() {
		voices, err := p.synth.Voices()
		if err != nil {
			logrus.WithError(err).WithField("provider", p.synth.Name()).Error("failed to enumerate voices")
			return
		}
		for _, v := range voices {
			if v.Lang == "" {
				continue
			}
			p.voices = append(p.voices, v)
		}
	})
	return p.voices
}

// voiceForTag picks the voice for a tag: a requested provider name
// with a matching language wins, otherwise any voice for the language
// when the tag names no provider.
func (p *ProcessPlayer) voiceForTag(tag sound.TTSTag) (Voice, bool) {
	voices := p.availableVoices()

	for _, want := range tag.Voices {
		for _, v := range voices {
			if v.Provider == want && v.Lang == tag.Lang {
				return v, true
			}
		}
	}
	if len(tag.Voices) == 0 {
		for _, v := range voices {
			if v.Lang == tag.Lang {
				return v, true
			}
		}
	}
	return Voice{}, false
}

// cachePath derives the deterministic cache file for a (text, voice,
// speed) combination.
func (p *ProcessPlayer) cachePath(tag sound.TTSTag, voice Voice) string {
	h := md5.New()
	fmt.Fprintf(h, "%s\x00%s\x00%s\x00%s\x00%g", tag.Text, voice.Provider, voice.Code, voice.Lang, tag.Speed)
	return filepath.Join(p.cacheDir, fmt.Sprintf("tts-%x%s", h.Sum(nil), audioSuffix))
}
