package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	LogFiles LogFilesConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type LoggingConfig struct {
	Level string
}

type LogFilesConfig struct {
	// FallbackPaths are tried in order when no path is given or the given path is unreadable.
	FallbackPaths []string
}

var DefaultFallbackPaths = []string{
	"../dummy_logs/server_errors.log",
	"../../dummy_logs/server_errors.log",
	"dummy_logs/server_errors.log",
	"Rune/dummy_logs/server_errors.log",
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FALLBACK_PATHS", strings.Join(DefaultFallbackPaths, ","))

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))
	if len(config.Server.AllowOrigins) == 0 {
		config.Server.AllowOrigins = []string{"*"}
	}

	config.Logging.Level = viper.GetString("LOG_LEVEL")

	// --- Log files ---
	config.LogFiles.FallbackPaths = splitList(viper.GetString("LOG_FALLBACK_PATHS"))

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}
