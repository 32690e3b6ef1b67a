package discord

import "context"

type IEndpoint interface {
	IsAdmin(ctx context.Context, token, guildID string) bool
	CheckAdmin(ctx context.Context, token, guildID string) (bool, error)
	GetMembers(ctx context.Context, botToken, guildID string) []GuildMember
	ListMembers(ctx context.Context, botToken, guildID string) ([]MemberEntry, error)
	GetUser(ctx context.Context, botToken, userID string) (FetchedUser, bool)
	FetchUser(ctx context.Context, botToken, userID string) (FetchedUser, error)
}
