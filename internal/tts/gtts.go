package tts

import (
	"context"

	"readaloud/internal/gtts"
	"readaloud/internal/lang"
	"readaloud/internal/sound"
)

// TranslateProvider is the voice name users request to get the Google
// Translate backend, e.g. a tag asking for voices=gTTS.
const TranslateProvider = "gTTS"

// TranslateSpeech exposes the Google Translate speech endpoint as a
// voice provider: one voice per supported language, all sharing the
// provider name.
type TranslateSpeech struct {
	client *gtts.Client
}

func NewTranslateSpeech(client *gtts.Client) *TranslateSpeech {
	return &TranslateSpeech{client: client}
}

func (s *TranslateSpeech) Name() string { return TranslateProvider }

// Voices maps the endpoint's language table to voices. Codes with a
// region part normalize directly ("en-us" to "en_US"); bare codes go
// through the compat table and are dropped when absent.
func (s *TranslateSpeech) Voices() ([]Voice, error) {
	var voices []Voice
	for code := range gtts.Langs() {
		std, ok := lang.Normalize(code)
		if !ok {
			continue
		}
		voices = append(voices, Voice{
			Provider: TranslateProvider,
			Lang:     std,
			Code:     code,
		})
	}
	return voices, nil
}

func (s *TranslateSpeech) SynthesizeToFile(ctx context.Context, tag sound.TTSTag, voice Voice, path string) error {
	sp := gtts.Speech{
		Text: tag.Text,
		Lang: voice.Code,
		// The endpoint only has normal and slow; anything below
		// normal speed selects slow.
		Slow: tag.Speed < 1,
		// The language came from the endpoint's own table, so skip
		// the client-side check.
		LangCheck: false,
	}
	return s.client.Save(ctx, sp, path)
}
