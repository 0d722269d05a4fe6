package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	pb "github.com/dmitrijs2005/gophaccounts/internal/proto"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var meInfo = &grpc.UnaryServerInfo{FullMethod: pb.AccountService_Me_FullMethodName}

func runInterceptor(t *testing.T, md metadata.MD) (services.Caller, bool, error) {
	t.Helper()
	s := newTestServer(&fakeAccounts{})

	ctx := context.Background()
	if md != nil {
		ctx = metadata.NewIncomingContext(ctx, md)
	}

	var (
		got    services.Caller
		called bool
	)
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		got = callerFrom(ctx)
		return "ok", nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, meInfo, h)
	return got, called, err
}

func TestInterceptor_NoToken_Anonymous(t *testing.T) {
	got, called, err := runInterceptor(t, nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.True(t, got.Anonymous())
}

func TestInterceptor_BearerAuthorization(t *testing.T) {
	for _, v := range []string{"Bearer good-u1", "bearer good-u1", "BEARER   good-u1 "} {
		got, called, err := runInterceptor(t, metadata.Pairs(common.AuthorizationHeaderName, v))
		require.NoError(t, err, v)
		assert.True(t, called)
		assert.Equal(t, services.Caller{UserID: "u1"}, got, v)
	}
}

func TestInterceptor_AccessTokenFallback(t *testing.T) {
	got, _, err := runInterceptor(t, metadata.Pairs(common.AccessTokenHeaderName, "good-u2"))
	require.NoError(t, err)
	assert.Equal(t, "u2", got.UserID)
}

func TestInterceptor_AuthorizationWins(t *testing.T) {
	got, _, err := runInterceptor(t, metadata.Pairs(
		common.AuthorizationHeaderName, "Bearer good-first",
		common.AccessTokenHeaderName, "good-second",
	))
	require.NoError(t, err)
	assert.Equal(t, "first", got.UserID)
}

func TestInterceptor_InvalidToken(t *testing.T) {
	_, called, err := runInterceptor(t, metadata.Pairs(common.AuthorizationHeaderName, "Bearer not-a-jwt"))
	assert.False(t, called)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "invalid token", status.Convert(err).Message())
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	_, called, err := runInterceptor(t, metadata.Pairs(common.AccessTokenHeaderName, "expired"))
	assert.False(t, called)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "token expired", status.Convert(err).Message())
}

func TestCallerFrom_EmptyContext(t *testing.T) {
	assert.True(t, callerFrom(context.Background()).Anonymous())
}
