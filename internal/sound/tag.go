// Package sound is the playback subsystem: tagged audio values, the
// ordered playback queue, and player selection.
package sound

import "errors"

// ErrInterrupted signals that playback or pending work was cut short by
// the user. It is not a failure; completion callbacks must swallow it.
var ErrInterrupted = errors.New("sound: playback interrupted")

// Tag is an entry in the playback queue: either an audio file on disk
// or a span of text still to be synthesized.
type Tag interface {
	isTag()
}

// FileTag plays an existing audio file.
type FileTag struct {
	Filename string
}

func (FileTag) isTag() {}

// TTSTag is a span of text to speak, with language and speed hints.
type TTSTag struct {
	Text string
	// Lang is the normalized locale code, e.g. "en_US".
	Lang string
	// Voices lists requested provider names in preference order.
	Voices []string
	// Speed is a rate multiplier; 1 is normal.
	Speed float64
}

func (TTSTag) isTag() {}
