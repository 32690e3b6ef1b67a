package discord

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/atomflunder/bot-dashboard/config"
	"github.com/atomflunder/bot-dashboard/pkg/api"
	"github.com/atomflunder/bot-dashboard/pkg/errorx"
)

const (
	// adminPermissions is the permission value of a member holding every
	// permission bit Discord defined when this check was written.
	adminPermissions = 2147483647

	membersPageLimit = 1000
)

type Endpoint struct {
	userAgent string

	apiGenerator api.Generator
}

func New(cfg config.DiscordConfigs) *Endpoint {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = config.DefaultDiscordAPIURL
	}

	return &Endpoint{
		userAgent:    cfg.UserAgent,
		apiGenerator: api.NewGenerator(apiURL),
	}
}

// IsAdmin reports whether the owner of the OAuth2 token holds the full
// permission set in the guild. Any failure yields false.
func (e *Endpoint) IsAdmin(ctx context.Context, token, guildID string) bool {
	ok, err := e.CheckAdmin(ctx, token, guildID)
	return err == nil && ok
}

func (e *Endpoint) CheckAdmin(ctx context.Context, token, guildID string) (bool, error) {
	resp, err := e.request("/users/@me/guilds").GET(ctx, api.OAuth2("Bearer", token))
	if err != nil {
		return false, err
	}

	if err := checkStatus(resp); err != nil {
		return false, err
	}

	array, ok := resp.Body.(api.Array)
	if !ok {
		return false, errorx.New(errorx.BadResponse, "guild list is not an array")
	}

	for _, guild := range array {
		id, err := guild.GetString("id")
		if err != nil {
			continue
		}

		if id == guildID && isFullPermissions(guild["permissions"]) {
			return true, nil
		}
	}

	return false, nil
}

// GetMembers returns every member of the guild in the order Discord lists
// them. Records that cannot be parsed are replaced by PlaceholderMember. If a
// page cannot be fetched the members gathered so far are returned.
func (e *Endpoint) GetMembers(ctx context.Context, botToken, guildID string) []GuildMember {
	entries, _ := e.ListMembers(ctx, botToken, guildID)

	members := make([]GuildMember, 0, len(entries))
	for _, entry := range entries {
		if !entry.Parsed() {
			members = append(members, PlaceholderMember())
			continue
		}

		members = append(members, entry.Member)
	}

	return members
}

// ListMembers pages through the guild members using the id of the last member
// of each page as the cursor of the next one. On error the entries read before
// the failing page are returned along with it.
func (e *Endpoint) ListMembers(ctx context.Context, botToken, guildID string) ([]MemberEntry, error) {
	var entries []MemberEntry
	after := "0"

	for {
		page, err := e.getMemberPage(ctx, botToken, guildID, after)
		if err != nil {
			return entries, err
		}

		if len(page) == 0 {
			return entries, nil
		}

		for _, raw := range page {
			entries = append(entries, parseMemberEntry(raw))
		}

		if len(page) < membersPageLimit {
			return entries, nil
		}

		next := cursorOf(page[len(page)-1])
		if next == after {
			return entries, errorx.New(errorx.BadResponse, "member cursor did not advance past %s", after)
		}
		after = next
	}
}

func (e *Endpoint) getMemberPage(ctx context.Context, botToken, guildID, after string) ([]json.RawMessage, error) {
	resp, err := e.request("/guilds/%s/members", url.PathEscape(guildID)).
		Query(api.Parameter{
			"limit": strconv.Itoa(membersPageLimit),
			"after": after,
		}).
		GET(ctx, api.OAuth2("Bot", botToken))
	if err != nil {
		return nil, err
	}

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var page []json.RawMessage
	if err := json.Unmarshal(resp.RawBody, &page); err != nil {
		return nil, errorx.Wrap(errorx.BadResponse, err, "member page is not an array")
	}

	return page, nil
}

// GetUser looks up a user by id. ok is false when the user cannot be fetched
// or parsed, whatever the reason.
func (e *Endpoint) GetUser(ctx context.Context, botToken, userID string) (FetchedUser, bool) {
	user, err := e.FetchUser(ctx, botToken, userID)
	if err != nil {
		return FetchedUser{}, false
	}

	return user, true
}

func (e *Endpoint) FetchUser(ctx context.Context, botToken, userID string) (FetchedUser, error) {
	resp, err := e.request("/users/%s", url.PathEscape(userID)).GET(ctx, api.OAuth2("Bot", botToken))
	if err != nil {
		return FetchedUser{}, err
	}

	if err := checkStatus(resp); err != nil {
		return FetchedUser{}, err
	}

	if _, ok := resp.Body.(api.JSON); !ok {
		return FetchedUser{}, errorx.New(errorx.BadResponse, "user is not an object")
	}

	return parseUser(resp.RawBody)
}

func (e *Endpoint) request(path string, args ...any) api.Client {
	client := e.apiGenerator.New(path, args...)
	if e.userAgent != "" {
		client = client.Header("User-Agent", e.userAgent)
	}

	return client
}
