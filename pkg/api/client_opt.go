package api

import (
	"net/http"

	"github.com/atomflunder/bot-dashboard/pkg/errorx"
	"golang.org/x/net/http/httpguts"
	"golang.org/x/oauth2"
)

type oauth2Opt struct {
	token *oauth2.Token
}

// OAuth2 authorizes the request with "<prefix> <token>", e.g. OAuth2("Bot", t).
func OAuth2(prefix, token string) *oauth2Opt {
	return &oauth2Opt{token: &oauth2.Token{TokenType: prefix, AccessToken: token}}
}

func (opt *oauth2Opt) Do(client defaultClient, req *http.Request) error {
	if !httpguts.ValidHeaderFieldValue(opt.token.Type() + " " + opt.token.AccessToken) {
		return errorx.New(errorx.BadRequest, "invalid authorization header value")
	}

	opt.token.SetAuthHeader(req)
	return nil
}
