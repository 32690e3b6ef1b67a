package discord

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomflunder/bot-dashboard/pkg/api"
	"github.com/atomflunder/bot-dashboard/pkg/errorx"
	"github.com/tidwall/gjson"
)

// Color is an RGB color. Discord sends colors either as an integer or as a
// "#rrggbb" string depending on the field, so both are accepted.
type Color int

func (c *Color) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	switch r.Type {
	case gjson.Null:
		*c = 0
		return nil

	case gjson.Number:
		var n int
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*c = Color(n)
		return nil

	case gjson.String:
		s := strings.TrimPrefix(r.Str, "#")
		if s == "" {
			*c = 0
			return nil
		}

		n, err := strconv.ParseInt(s, 16, 32)
		if err != nil {
			return errorx.Wrap(errorx.BadResponse, err, "invalid color %q", r.Str)
		}
		*c = Color(n)
		return nil
	}

	return errorx.New(errorx.BadResponse, "invalid color %s", string(b))
}

var (
	memberRequiredFields = []string{"roles", "joined_at", "deaf", "mute", "flags", "user.id", "user.username", "user.discriminator"}
	userRequiredFields   = []string{"id", "username"}
)

func requireFields(raw []byte, fields []string) error {
	r := gjson.ParseBytes(raw)
	if !r.IsObject() {
		return errorx.New(errorx.BadResponse, "record is not an object")
	}

	for _, f := range fields {
		v := r.Get(f)
		if !v.Exists() {
			return errorx.New(errorx.BadResponse, "missing field %s", f)
		}

		if v.Type == gjson.Null {
			return errorx.New(errorx.BadResponse, "field %s is null", f)
		}
	}

	return nil
}

func parseMember(raw []byte) (GuildMember, error) {
	if err := requireFields(raw, memberRequiredFields); err != nil {
		return GuildMember{}, err
	}

	var m GuildMember
	if err := json.Unmarshal(raw, &m); err != nil {
		return GuildMember{}, errorx.Wrap(errorx.BadResponse, err, "cannot parse member")
	}

	return m, nil
}

func parseMemberEntry(raw json.RawMessage) MemberEntry {
	m, err := parseMember(raw)
	if err != nil {
		return MemberEntry{Raw: raw, Err: err}
	}

	return MemberEntry{Member: m}
}

func parseUser(raw []byte) (FetchedUser, error) {
	if err := requireFields(raw, userRequiredFields); err != nil {
		return FetchedUser{}, err
	}

	var u FetchedUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return FetchedUser{}, errorx.Wrap(errorx.BadResponse, err, "cannot parse user")
	}

	return u, nil
}

// cursorOf returns the id of the member used as the "after" cursor, or "0"
// when the record has no string user id.
func cursorOf(raw []byte) string {
	if id := gjson.GetBytes(raw, "user.id"); id.Type == gjson.String {
		return id.Str
	}

	return "0"
}

// isFullPermissions reports whether a guild's raw permissions value is
// exactly the full permission set. Discord sends the field as a string on
// current API versions and as a number on older ones.
func isFullPermissions(v any) bool {
	switch p := v.(type) {
	case float64:
		return p == adminPermissions
	case string:
		return p == strconv.Itoa(adminPermissions)
	}

	return false
}

func checkStatus(resp *api.Response) error {
	if resp.OK() {
		return nil
	}

	msg := "unexpected status"
	body, ok := resp.Body.(api.JSON)
	if ok {
		if m, err := body.GetString("message"); err == nil && m != "" {
			msg = m
		}

		// Discord JSON error codes, e.g. 10013 for an unknown user.
		if code, err := body.GetInt("code"); err == nil && code != 0 {
			msg = fmt.Sprintf("%s (code %d)", msg, code)
		}
	}

	return errorx.New(errorx.FromStatus(resp.Code), "discord responded %d: %s", resp.Code, msg)
}
