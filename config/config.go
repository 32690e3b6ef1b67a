package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/atomflunder/bot-dashboard/pkg/logger"
)

const DefaultDiscordAPIURL = "https://discord.com/api"

type Configs struct {
	Env string `toml:"env"`

	Discord DiscordConfigs `toml:"discord"`
	Log     LogConfigs     `toml:"log"`
}

type DiscordConfigs struct {
	APIURL    string `toml:"api_url"`
	BotToken  string `toml:"bot_token"`
	UserAgent string `toml:"user_agent"`
}

type LogConfigs struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func (l LogConfigs) ParseLevel() (int, error) {
	return logger.ParseLevel(l.Level)
}

func Default() Configs {
	return Configs{
		Env:     "local",
		Discord: DiscordConfigs{APIURL: DefaultDiscordAPIURL},
		Log:     LogConfigs{Level: "info"},
	}
}

// Load returns the defaults overlaid with the TOML file at path. An empty path
// returns the defaults.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c Configs) Validate() error {
	if c.Discord.APIURL == "" {
		return errors.New("discord api url is empty")
	}

	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}

	return nil
}
