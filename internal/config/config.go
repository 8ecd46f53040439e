package config

import "github.com/spf13/viper"

func SetDefaults() {
	viper.SetDefault("tts.providers", []string{"auto"}) // Auto-select best provider
	viper.SetDefault("tts.cache_path", "./cache/tts")
	viper.SetDefault("tts.lang", "en_US")
	viper.SetDefault("tts.speed", 1.0)
	viper.SetDefault("sound.volume_db", 0.0)
}
