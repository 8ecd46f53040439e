// Package app wires the playback subsystem, the task manager and the
// configured voice providers into the CLI commands.
package app

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"readaloud/internal/cli/scheme/colours"
	"readaloud/internal/gtts"
	"readaloud/internal/sound"
	"readaloud/internal/taskman"
	"readaloud/internal/tts"
)

type App struct {
	cacheDir string
	synths   []tts.Synthesizer
	tasks    *taskman.Manager
	manager  *sound.Manager
}

func New() *App {
	cacheDir := viper.GetString("tts.cache_path")
	tasks := taskman.New()
	manager := sound.NewManager(sound.NewFilePlayer(viper.GetFloat64("sound.volume_db")))

	a := &App{
		cacheDir: cacheDir,
		tasks:    tasks,
		manager:  manager,
	}

	for _, name := range resolveProviders(viper.GetStringSlice("tts.providers")) {
		synth, err := newSynthesizer(name)
		if err != nil {
			logrus.WithError(err).WithField("provider", name).Warn("voice provider unavailable")
			continue
		}
		a.synths = append(a.synths, synth)
		manager.RegisterPlayer(tts.NewProcessPlayer(synth, tasks, manager, cacheDir, a.onSynthesisError))
	}
	if len(a.synths) == 0 {
		logrus.Fatal("no voice providers available")
	}

	return a
}

func newSynthesizer(name string) (tts.Synthesizer, error) {
	switch name {
	case tts.TranslateProvider, "gtts":
		return tts.NewTranslateSpeech(gtts.NewClient()), nil
	case tts.CloudProvider:
		return tts.NewCloudSpeech(context.Background())
	case tts.MockProvider:
		return tts.NewMockSpeech(), nil
	default:
		return nil, fmt.Errorf("unknown voice provider %q", name)
	}
}

// resolveProviders expands "auto" into the best provider for the
// current environment: the cloud backend when credentials are present,
// the translate backend otherwise.
func resolveProviders(names []string) []string {
	var out []string
	for _, name := range names {
		if name != "auto" {
			out = append(out, name)
			continue
		}
		if hasGoogleCredentials() {
			out = append(out, tts.CloudProvider, "gtts")
		} else {
			out = append(out, "gtts")
		}
	}
	return out
}

// hasGoogleCredentials checks if Google Cloud credentials are available
func hasGoogleCredentials() bool {
	_, ok := os.LookupEnv("GOOGLE_APPLICATION_CREDENTIALS")
	return ok
}

// onSynthesisError is the host's task-failure path: report and stop,
// rather than leaving the queue stalled.
func (a *App) onSynthesisError(err error) {
	logrus.WithError(err).Error("speech synthesis failed")
	colours.Error.Printf("❌ %v\n", err)
	a.tasks.Shutdown()
}

// Interrupt stops playback and the main loop. Safe to call from a
// signal handler goroutine.
func (a *App) Interrupt() {
	a.manager.Interrupt()
	a.tasks.Shutdown()
}

// Say speaks the command arguments through the playback queue and
// blocks until the queue drains.
func (a *App) Say(cmd *cobra.Command, args []string) {
	text := strings.Join(args, " ")
	langCode, _ := cmd.Flags().GetString("lang")
	speed, _ := cmd.Flags().GetFloat64("speed")
	voice, _ := cmd.Flags().GetString("voice")

	if langCode == "" {
		langCode = viper.GetString("tts.lang")
	}
	if speed == 0 {
		speed = viper.GetFloat64("tts.speed")
	}

	var requested []string
	if voice != "" {
		requested = strings.Split(voice, ",")
	}

	a.manager.SetOnIdle(a.tasks.Shutdown)
	a.manager.PlayTags(sound.TTSTag{
		Text:   text,
		Lang:   langCode,
		Voices: requested,
		Speed:  speed,
	})
	a.tasks.Run(context.Background())
}

// ListVoices prints every voice each configured provider offers.
func (a *App) ListVoices(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("🗣  Available voices")
	fmt.Println()

	for _, synth := range a.synths {
		voices, err := synth.Voices()
		if err != nil {
			colours.Error.Printf("❌ %s: %v\n", synth.Name(), err)
			continue
		}
		sort.Slice(voices, func(i, j int) bool { return voices[i].Lang < voices[j].Lang })

		colours.Info.Printf("%s (%d voices)\n", synth.Name(), len(voices))
		for _, v := range voices {
			colours.Voice.Printf("  %-8s", v.Lang)
			fmt.Printf("  %s\n", v.Code)
		}
		fmt.Println()
	}
}

// ClearCache removes all synthesized audio files.
func (a *App) ClearCache(cmd *cobra.Command, args []string) {
	if err := os.RemoveAll(a.cacheDir); err != nil {
		colours.Error.Printf("❌ failed to clear cache: %v\n", err)
		return
	}
	colours.Success.Printf("🧹 Cleared synthesis cache at %s\n", a.cacheDir)
}
