package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"discord_vote_bot"`
	URL     string `env:"LOGGER_URL"`
}
