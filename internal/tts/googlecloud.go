package tts

import (
	"context"
	"fmt"
	"os"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "google.golang.org/genproto/googleapis/cloud/texttospeech/v1"

	"readaloud/internal/lang"
	"readaloud/internal/sound"
)

// CloudProvider is the voice name users request to get the Google
// Cloud Text-to-Speech backend.
const CloudProvider = "gcloud"

// CloudSpeech exposes Google Cloud Text-to-Speech as a voice provider.
// Unlike the translate backend it supports a continuous speaking rate,
// so the tag's speed is passed through unchanged.
type CloudSpeech struct {
	client *texttospeech.Client
}

// NewCloudSpeech creates the provider. Credentials come from the
// environment (GOOGLE_APPLICATION_CREDENTIALS).
func NewCloudSpeech(ctx context.Context) (*CloudSpeech, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcloud tts: create client: %w", err)
	}
	return &CloudSpeech{client: client}, nil
}

func (s *CloudSpeech) Name() string { return CloudProvider }

// Voices lists the service's voices, one Voice per (voice, language)
// combination. Service codes like "en-US" already carry a region and
// normalize directly; anything unmappable is dropped.
func (s *CloudSpeech) Voices() ([]Voice, error) {
	resp, err := s.client.ListVoices(context.Background(), &texttospeechpb.ListVoicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("gcloud tts: list voices: %w", err)
	}

	var voices []Voice
	for _, v := range resp.Voices {
		for _, code := range v.LanguageCodes {
			std, ok := lang.Normalize(strings.ToLower(code))
			if !ok {
				continue
			}
			voices = append(voices, Voice{
				Provider: CloudProvider,
				Lang:     std,
				Code:     v.Name,
			})
		}
	}
	return voices, nil
}

func (s *CloudSpeech) SynthesizeToFile(ctx context.Context, tag sound.TTSTag, voice Voice, path string) error {
	rate := tag.Speed
	if rate <= 0 {
		rate = 1
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: tag.Text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: strings.ReplaceAll(voice.Lang, "_", "-"),
			Name:         voice.Code,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  rate,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return fmt.Errorf("gcloud tts: synthesize: %w", err)
	}
	if err := os.WriteFile(path, resp.AudioContent, 0644); err != nil {
		return fmt.Errorf("gcloud tts: write %s: %w", path, err)
	}
	return nil
}

func (s *CloudSpeech) Close() error {
	return s.client.Close()
}
