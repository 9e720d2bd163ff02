package configs

type Telegram struct {
	Token         string `env:"TELEGRAM_VOTE_BOT_TOKEN,notEmpty"`
	UpdateTimeout int    `env:"TELEGRAM_BOT_UPDATE_TIMEOUT" envDefault:"60"`
}
