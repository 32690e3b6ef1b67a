package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atomflunder/bot-dashboard/pkg/errorx"
	"github.com/atomflunder/bot-dashboard/pkg/logger"
	"github.com/atomflunder/bot-dashboard/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return xcontext.WithLogger(context.Background(), logger.NewLogger(logger.SILENCE, ""))
}

func Test_Client_GET_JSONObject(t *testing.T) {
	var gotAuth, gotQuery, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":"42","user":{"id":"7"}}`))
	}))
	defer srv.Close()

	resp, err := NewGenerator(srv.URL).New("/guilds/%s/members", "42").
		Query(Parameter{"limit": "1000", "after": "0"}).
		GET(testContext(), OAuth2("Bot", "secret"))
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.Equal(t, "Bot secret", gotAuth)
	require.Equal(t, "after=0&limit=1000", gotQuery)
	require.Equal(t, "/guilds/42/members", gotPath)

	body, ok := resp.Body.(JSON)
	require.True(t, ok)

	id, err := body.GetString("id")
	require.NoError(t, err)
	require.Equal(t, "42", id)

	userID, err := body.GetString("user.id")
	require.NoError(t, err)
	require.Equal(t, "7", userID)
}

func Test_Client_GET_Array(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1"},{"id":"2"}]`))
	}))
	defer srv.Close()

	resp, err := NewGenerator(srv.URL).New("/users/@me/guilds").GET(testContext(), OAuth2("Bearer", "t"))
	require.NoError(t, err)

	array, ok := resp.Body.(Array)
	require.True(t, ok)
	require.Len(t, array, 2)
	require.Equal(t, `[{"id":"1"},{"id":"2"}]`, string(resp.RawBody))
}

func Test_Client_GET_OtherJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[1, 2]`))
	}))
	defer srv.Close()

	resp, err := NewGenerator(srv.URL).New("/x").GET(testContext())
	require.NoError(t, err)
	require.Nil(t, resp.Body)
	require.Equal(t, "[1, 2]", string(resp.RawBody))
}

func Test_Client_GET_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	_, err := NewGenerator(srv.URL).New("/x").GET(testContext())
	require.Error(t, err)
	require.True(t, errors.Is(err, errorx.Error{Code: errorx.BadResponse}))
}

func Test_Client_GET_InvalidAuthorization(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewGenerator(srv.URL).New("/x").GET(testContext(), OAuth2("Bot", "bad\ntoken"))
	require.Error(t, err)
	require.True(t, errors.Is(err, errorx.Error{Code: errorx.BadRequest}))
	require.False(t, called)
}

func Test_Client_GET_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewGenerator(url).New("/x").GET(testContext())
	require.Error(t, err)
	require.True(t, errors.Is(err, errorx.Error{Code: errorx.Unavailable}))
}

func Test_Client_GET_Failover(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := down.URL
	down.Close()

	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer up.Close()

	for i := 0; i < 5; i++ {
		resp, err := NewGenerator(downURL, up.URL).New("/x").GET(testContext())
		require.NoError(t, err)
		require.Equal(t, JSON{"ok": true}, resp.Body)
	}
}

func Test_Client_GET_NoDomain(t *testing.T) {
	_, err := NewGenerator().New("/x").GET(testContext())
	require.Error(t, err)
}

func Test_Client_GET_StatusKept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Unknown User","code":10013}`))
	}))
	defer srv.Close()

	resp, err := NewGenerator(srv.URL).New("/users/1").GET(testContext())
	require.NoError(t, err)
	require.False(t, resp.OK())
	require.Equal(t, http.StatusNotFound, resp.Code)

	code, err := resp.Body.(JSON).GetInt("code")
	require.NoError(t, err)
	require.Equal(t, 10013, code)
}
