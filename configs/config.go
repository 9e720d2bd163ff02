package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type DiscordVoteBotConfig struct {
	App     App
	Discord Discord
	DB      DB
	Logger  Logger
}

type TelegramVoteBotConfig struct {
	App      App
	Telegram Telegram
	DB       DB
	Logger   Logger
}

type RegistryCleanupServiceConfig struct {
	App    App
	DB     DB
	Logger Logger

	// Rows for polls closed longer than this many days ago are pruned.
	RetentionDays int `env:"EPHEMERAL_MESSAGE_RETENTION_DAYS" envDefault:"7"`
}

func LoadDiscordVoteBotConfig() (DiscordVoteBotConfig, error) {
	var config DiscordVoteBotConfig

	if err := env.Parse(&config); err != nil {
		return DiscordVoteBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadTelegramVoteBotConfig() (TelegramVoteBotConfig, error) {
	var config TelegramVoteBotConfig

	if err := env.Parse(&config); err != nil {
		return TelegramVoteBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadRegistryCleanupServiceConfig() (RegistryCleanupServiceConfig, error) {
	var config RegistryCleanupServiceConfig

	if err := env.Parse(&config); err != nil {
		return RegistryCleanupServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
