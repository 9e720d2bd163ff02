package configs

type App struct {
	Environment   string `env:"ENVIRONMENT,notEmpty"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
