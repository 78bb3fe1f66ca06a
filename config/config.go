package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	DiscordBotToken string `envconfig:"DISCORD_BOT_TOKEN" required:"true"`
	DatabaseURL     string `envconfig:"TIPPING_DB_URL" required:"true"`

	// AdminSecret authorizes tipping on behalf of any member and gates
	// the admin slash commands alongside Discord's own permission check.
	AdminSecret string `envconfig:"ADMIN_SECRET" default:"admin"`

	// NRLFeedURL points at a ladder/fixture/results feed. Empty means
	// the embedded season seed data is used instead.
	NRLFeedURL string `envconfig:"NRL_FEED_URL"`

	Env string `envconfig:"ENV" default:"development"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
