package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"readaloud/internal/app"
	"readaloud/internal/cli/scheme/colours"
	"readaloud/internal/config"
)

func main() {

	config.SetDefaults()

	a := app.New()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		a.Interrupt()
		fmt.Println("\n" + colours.Warning.Sprint("👋 Stopped."))
		os.Exit(0)
	}()

	rootCmd := &cobra.Command{
		Use:   "readaloud",
		Short: "🗣 Read text aloud through pluggable voice providers",
		Long: `readaloud speaks text through text-to-speech voice providers.

Synthesized audio is cached on disk, so repeating the same text with
the same voice plays instantly without hitting the network again.`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	sayCmd := &cobra.Command{
		Use:   "say [text]",
		Short: "🔊 Speak the given text",
		Long:  "Synthesize the given text and play it through the speakers",
		Args:  cobra.MinimumNArgs(1),
		Run:   a.Say,
	}

	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "🗂 List available voices",
		Long:  "Display every voice offered by the configured providers",
		Run:   a.ListVoices,
	}

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "🧹 Manage the synthesis cache",
	}
	cacheClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached audio files",
		Run:   a.ClearCache,
	}
	cacheCmd.AddCommand(cacheClearCmd)

	sayCmd.Flags().StringP("lang", "l", "", "Locale code to speak in, e.g. en_US")
	sayCmd.Flags().Float64P("speed", "s", 0, "Speaking speed (1 is normal; below 1 is slow)")
	sayCmd.Flags().StringP("voice", "v", "", "Comma-separated provider names to prefer, e.g. gTTS")

	rootCmd.AddCommand(sayCmd, voicesCmd, cacheCmd)

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}
}

// Configuration management with Viper
func init() {
	viper.SetConfigName("readaloud")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.readaloud")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			colours.Warning.Printf("⚠ Could not read config: %v\n", err)
		}
	}
}
