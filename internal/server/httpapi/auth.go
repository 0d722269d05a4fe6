package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
)

type ctxKey string

const callerKey ctxKey = "caller"

func callerFrom(ctx context.Context) services.Caller {
	c, _ := ctx.Value(callerKey).(services.Caller)
	return c
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) < len(common.BearerPrefix) || !strings.EqualFold(h[:len(common.BearerPrefix)], common.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(h[len(common.BearerPrefix):])
}

// authenticate resolves the caller. No token means anonymous; a token that
// fails to verify is a 401.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := s.tokens.ParseAccessToken(token)
		if err != nil {
			msg := common.ErrInvalidToken.Error()
			if errors.Is(err, common.ErrTokenExpired) {
				msg = common.ErrTokenExpired.Error()
			}
			writeErrors(w, http.StatusUnauthorized, queryError{Message: msg, Code: codeUnauthenticated})
			return
		}

		ctx := context.WithValue(r.Context(), callerKey, services.Caller{UserID: userID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
