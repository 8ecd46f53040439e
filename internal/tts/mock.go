package tts

import (
	"context"
	"os"

	"github.com/fatih/color"

	"readaloud/internal/sound"
)

// MockProvider is the voice name of the offline placeholder backend.
const MockProvider = "mock"

// MockSpeech is a placeholder provider for running without network or
// credentials. It writes an empty file instead of audio and announces
// what it would have spoken.
type MockSpeech struct{}

func NewMockSpeech() *MockSpeech { return &MockSpeech{} }

func (m *MockSpeech) Name() string { return MockProvider }

func (m *MockSpeech) Voices() ([]Voice, error) {
	return []Voice{
		{Provider: MockProvider, Lang: "en_US", Code: "en-us"},
		{Provider: MockProvider, Lang: "en_GB", Code: "en-gb"},
		{Provider: MockProvider, Lang: "ja_JP", Code: "ja"},
	}, nil
}

func (m *MockSpeech) SynthesizeToFile(_ context.Context, tag sound.TTSTag, voice Voice, path string) error {
	color.Yellow("🔊 would speak %q in %s", tag.Text, voice.Lang)
	return os.WriteFile(path, nil, 0644)
}
