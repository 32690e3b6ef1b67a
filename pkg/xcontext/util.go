package xcontext

import (
	"context"
	"net/http"

	"github.com/atomflunder/bot-dashboard/pkg/logger"
)

type (
	loggerKey     struct{}
	httpClientKey struct{}
)

var defaultLogger = logger.NewLogger(logger.INFO, "")

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger stored by WithLogger, or a stdout logger at info
// level.
func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok {
		return l
	}

	return defaultLogger
}

func WithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	return context.WithValue(ctx, httpClientKey{}, client)
}

// HTTPClient returns the client stored by WithHTTPClient, or
// http.DefaultClient.
func HTTPClient(ctx context.Context) *http.Client {
	if c, ok := ctx.Value(httpClientKey{}).(*http.Client); ok && c != nil {
		return c
	}

	return http.DefaultClient
}
