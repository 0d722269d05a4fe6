package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const callerKey ctxKey = "caller"

// callerFrom returns the caller resolved by the interceptor, anonymous if none.
func callerFrom(ctx context.Context) services.Caller {
	c, _ := ctx.Value(callerKey).(services.Caller)
	return c
}

// tokenFromMetadata reads "authorization: Bearer <token>", falling back to
// "access_token: <token>".
func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	if values := md.Get(common.AuthorizationHeaderName); len(values) > 0 {
		v := strings.TrimSpace(values[0])
		if len(v) >= len(common.BearerPrefix) && strings.EqualFold(v[:len(common.BearerPrefix)], common.BearerPrefix) {
			v = strings.TrimSpace(v[len(common.BearerPrefix):])
		}
		if v != "" {
			return v
		}
	}

	if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
		return strings.TrimSpace(values[0])
	}

	return ""
}

// accessTokenInterceptor attaches the caller identity to ctx. Requests without
// a token go through as anonymous; a token that does not verify is rejected.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	token := tokenFromMetadata(ctx)
	if token == "" {
		return handler(ctx, req)
	}

	userID, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, callerKey, services.Caller{UserID: userID})

	return handler(ctx, req)
}
