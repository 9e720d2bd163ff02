package configs

type Discord struct {
	Token string `env:"DISCORD_VOTE_BOT_TOKEN,notEmpty"`
}
