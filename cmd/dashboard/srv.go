package main

import (
	"context"
	"fmt"

	"github.com/atomflunder/bot-dashboard/config"
	"github.com/atomflunder/bot-dashboard/pkg/api/discord"
	"github.com/atomflunder/bot-dashboard/pkg/logger"
	"github.com/atomflunder/bot-dashboard/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App

	configs  config.Configs
	logger   logger.Logger
	endpoint discord.IEndpoint
}

func (s *srv) load(c *cli.Context) error {
	if err := s.loadConfig(c); err != nil {
		return err
	}

	if err := s.loadLogger(); err != nil {
		return err
	}

	s.loadEndpoint()
	return nil
}

// loadConfig applies the config file first, then any non-empty flag or env
// var.
func (s *srv) loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	override(c, "api-url", &cfg.Discord.APIURL)
	override(c, "bot-token", &cfg.Discord.BotToken)
	override(c, "user-agent", &cfg.Discord.UserAgent)
	override(c, "log-level", &cfg.Log.Level)
	override(c, "log-file", &cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	s.configs = cfg
	return nil
}

func override(c *cli.Context, flag string, field *string) {
	if v := c.String(flag); c.IsSet(flag) && v != "" {
		*field = v
	}
}

func (s *srv) loadLogger() error {
	level, err := s.configs.Log.ParseLevel()
	if err != nil {
		return err
	}

	s.logger = logger.NewLogger(level, s.configs.Log.File)
	return nil
}

func (s *srv) loadEndpoint() {
	s.endpoint = discord.New(s.configs.Discord)
}

func (s *srv) context(c *cli.Context) context.Context {
	return xcontext.WithLogger(c.Context, s.logger)
}

func (s *srv) botToken() (string, error) {
	if s.configs.Discord.BotToken == "" {
		return "", cli.Exit("bot token is not set, use --bot-token or DISCORD_BOT_TOKEN", 1)
	}

	return s.configs.Discord.BotToken, nil
}
