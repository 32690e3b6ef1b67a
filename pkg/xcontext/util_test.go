package xcontext

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/atomflunder/bot-dashboard/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, http.DefaultClient, HTTPClient(ctx))

	client := &http.Client{Timeout: time.Second}
	ctx = WithHTTPClient(ctx, client)
	require.Equal(t, client, HTTPClient(ctx))
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, Logger(ctx))

	l := logger.NewLogger(logger.SILENCE, "")
	ctx = WithLogger(ctx, l)
	require.Equal(t, logger.Logger(l), Logger(ctx))
}
