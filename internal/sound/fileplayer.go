package sound

import (
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"
)

// FilePlayer plays FileTags through the system speaker. Only MP3 is
// supported; every synthesis backend in this project produces MP3.
type FilePlayer struct {
	volumeDB float64

	mu       sync.Mutex
	streamer beep.StreamSeekCloser
}

// NewFilePlayer creates a player with the given volume adjustment in
// dB (0 leaves the source volume untouched, negative is quieter).
func NewFilePlayer(volumeDB float64) *FilePlayer {
	return &FilePlayer{volumeDB: volumeDB}
}

func (p *FilePlayer) CanPlay(tag Tag) bool {
	_, ok := tag.(FileTag)
	return ok
}

func (p *FilePlayer) Play(tag Tag, next func()) {
	ft, ok := tag.(FileTag)
	if !ok {
		next()
		return
	}

	f, err := os.Open(ft.Filename)
	if err != nil {
		logrus.WithError(err).WithField("file", ft.Filename).Error("failed to open audio file")
		next()
		return
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		logrus.WithError(err).WithField("file", ft.Filename).Error("failed to decode audio file")
		next()
		return
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		logrus.WithError(err).Error("failed to initialise speaker")
		next()
		return
	}

	p.mu.Lock()
	p.streamer = streamer
	p.mu.Unlock()

	vol := &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   p.volumeDB,
	}
	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		p.mu.Lock()
		p.streamer = nil
		p.mu.Unlock()
		streamer.Close()
		next()
	})))
}

func (p *FilePlayer) Stop() {
	speaker.Clear()

	p.mu.Lock()
	streamer := p.streamer
	p.streamer = nil
	p.mu.Unlock()

	if streamer != nil {
		streamer.Close()
	}
}
