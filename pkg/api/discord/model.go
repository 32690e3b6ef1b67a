package discord

import "encoding/json"

// User is a Discord user object. Optional fields that Discord leaves out or
// sends as null decode to their zero value and are always serialized.
// https://discord.com/developers/docs/resources/user#user-object
type User struct {
	AccentColor      Color  `json:"accent_color"`
	Avatar           string `json:"avatar"`
	AvatarDecoration string `json:"avatar_decoration"`
	Banner           string `json:"banner"`
	BannerColor      Color  `json:"banner_color"`
	Bot              bool   `json:"bot"`
	Discriminator    string `json:"discriminator"`
	DisplayName      string `json:"display_name"`
	Flags            int64  `json:"flags"`
	GlobalName       string `json:"global_name"`
	ID               string `json:"id"`
	PublicFlags      int64  `json:"public_flags"`
	Username         string `json:"username"`
}

// FetchedUser is a user looked up directly by id.
type FetchedUser User

// GuildMember is a Discord guild member object.
// https://discord.com/developers/docs/resources/guild#guild-member-object
type GuildMember struct {
	Avatar                     string   `json:"avatar"`
	CommunicationDisabledUntil string   `json:"communication_disabled_until"`
	Deaf                       bool     `json:"deaf"`
	Flags                      int64    `json:"flags"`
	JoinedAt                   string   `json:"joined_at"`
	Mute                       bool     `json:"mute"`
	Nick                       string   `json:"nick"`
	Pending                    bool     `json:"pending"`
	PremiumSince               string   `json:"premium_since"`
	Roles                      []string `json:"roles"`
	User                       User     `json:"user"`
}

// PlaceholderMember stands in for a member record that could not be parsed.
func PlaceholderMember() GuildMember {
	return GuildMember{Roles: []string{}}
}

// MemberEntry is one record of a member page. Err is set, and Raw holds the
// original record, when the record did not parse into Member.
type MemberEntry struct {
	Member GuildMember
	Raw    json.RawMessage
	Err    error
}

func (m MemberEntry) Parsed() bool {
	return m.Err == nil
}
