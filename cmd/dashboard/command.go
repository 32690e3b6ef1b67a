package main

import (
	"fmt"

	"github.com/atomflunder/bot-dashboard/pkg/api/discord"
	"github.com/atomflunder/bot-dashboard/pkg/jsonutil"
	"github.com/urfave/cli/v2"
)

func strictFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "strict",
		Usage: "fail with the cause instead of printing a default result",
	}
}

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "dashboard"
	app.Usage = "Query guild admins, members and users from the Discord API"
	app.Before = s.load
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path of a TOML config file",
			EnvVars: []string{"DASHBOARD_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "api-url",
			Usage:   "base URL of the Discord API",
			EnvVars: []string{"DISCORD_API_URL"},
		},
		&cli.StringFlag{
			Name:    "bot-token",
			Usage:   "bot token used for member and user lookups",
			EnvVars: []string{"DISCORD_BOT_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "user-agent",
			Usage:   "User-Agent header sent to Discord",
			EnvVars: []string{"DISCORD_USER_AGENT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warning, error or silence",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-file",
			Usage:   "also write logs to this rotated file",
			EnvVars: []string{"LOG_FILE"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:   s.checkAdmin,
			Name:     "admin",
			Usage:    "Check whether a user token holds every permission in a guild",
			Category: "Guild",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Usage:    "OAuth2 access token of the user",
					EnvVars:  []string{"DISCORD_USER_TOKEN"},
					Required: true,
				},
				&cli.StringFlag{Name: "guild", Usage: "guild id", Required: true},
				strictFlag(),
			},
		},
		{
			Action:   s.listMembers,
			Name:     "members",
			Usage:    "List every member of a guild",
			Category: "Guild",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "guild", Usage: "guild id", Required: true},
				strictFlag(),
			},
		},
		{
			Action:   s.fetchUser,
			Name:     "user",
			Usage:    "Fetch a user by id",
			Category: "User",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Usage: "user id", Required: true},
				strictFlag(),
			},
		},
	}

	s.app = app
}

func (s *srv) checkAdmin(c *cli.Context) error {
	ctx := s.context(c)
	token, guildID := c.String("token"), c.String("guild")

	if !c.Bool("strict") {
		return s.print(c, s.endpoint.IsAdmin(ctx, token, guildID))
	}

	ok, err := s.endpoint.CheckAdmin(ctx, token, guildID)
	if err != nil {
		return err
	}

	return s.print(c, ok)
}

func (s *srv) listMembers(c *cli.Context) error {
	ctx := s.context(c)
	token, err := s.botToken()
	if err != nil {
		return err
	}

	if !c.Bool("strict") {
		return s.print(c, s.endpoint.GetMembers(ctx, token, c.String("guild")))
	}

	entries, err := s.endpoint.ListMembers(ctx, token, c.String("guild"))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.Parsed() {
			return fmt.Errorf("member record %s: %w", entry.Raw, entry.Err)
		}
	}

	members := make([]discord.GuildMember, 0, len(entries))
	for _, entry := range entries {
		members = append(members, entry.Member)
	}

	return s.print(c, members)
}

func (s *srv) fetchUser(c *cli.Context) error {
	ctx := s.context(c)
	token, err := s.botToken()
	if err != nil {
		return err
	}

	if !c.Bool("strict") {
		user, ok := s.endpoint.GetUser(ctx, token, c.String("id"))
		if !ok {
			return cli.Exit("user not found", 1)
		}
		return s.print(c, user)
	}

	user, err := s.endpoint.FetchUser(ctx, token, c.String("id"))
	if err != nil {
		return err
	}

	return s.print(c, user)
}

func (s *srv) print(c *cli.Context, v any) error {
	_, err := fmt.Fprintln(c.App.Writer, jsonutil.String(s.context(c), v))
	return err
}
