package errorx

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	err := Wrap(Unavailable, io.ErrUnexpectedEOF, "cannot read body")
	require.Equal(t, "cannot read body: unexpected EOF", err.Error())
	require.True(t, errors.Is(err, Error{Code: Unavailable}))
	require.False(t, errors.Is(err, Error{Code: NotFound}))
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	wrapped := fmt.Errorf("members: %w", err)
	require.True(t, errors.Is(wrapped, Error{Code: Unavailable}))
	require.Equal(t, Unavailable, CodeOf(wrapped))
	require.Equal(t, Unknown.Code, CodeOf(io.EOF))
}

func TestFromStatus(t *testing.T) {
	require.Equal(t, BadRequest, FromStatus(400))
	require.Equal(t, Unauthenticated, FromStatus(401))
	require.Equal(t, PermissionDenied, FromStatus(403))
	require.Equal(t, NotFound, FromStatus(404))
	require.Equal(t, TooManyRequests, FromStatus(429))
	require.Equal(t, Unavailable, FromStatus(502))
	require.Equal(t, BadResponse, FromStatus(302))
}
