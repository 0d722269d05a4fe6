package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
)

// fakeAccounts records the last caller it saw and returns canned results.
type fakeAccounts struct {
	lastCaller   services.Caller
	lastRegister services.RegisterInput
	lastUpdate   services.ProfileUpdate

	authResp *services.AuthResult
	authErr  error

	user    *models.User
	userErr error

	upload    *services.AvatarUpload
	uploadErr error
}

func (f *fakeAccounts) Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error) {
	f.lastRegister = in
	return f.authResp, f.authErr
}

func (f *fakeAccounts) Login(ctx context.Context, identifier, password string) (*services.AuthResult, error) {
	return f.authResp, f.authErr
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, caller services.Caller, upd services.ProfileUpdate) (*models.User, error) {
	f.lastCaller = caller
	f.lastUpdate = upd
	if caller.Anonymous() {
		return nil, common.ErrAuthenticationRequired
	}
	return f.user, f.userErr
}

func (f *fakeAccounts) Me(ctx context.Context, caller services.Caller) (*models.User, error) {
	f.lastCaller = caller
	if caller.Anonymous() {
		return nil, nil
	}
	return f.user, f.userErr
}

func (f *fakeAccounts) AvatarUploadURL(ctx context.Context, caller services.Caller) (*services.AvatarUpload, error) {
	f.lastCaller = caller
	return f.upload, f.uploadErr
}

// fakeTokens accepts "good-<id>" and "expired"; everything else is invalid.
type fakeTokens struct{}

func (fakeTokens) ParseAccessToken(token string) (string, error) {
	switch {
	case token == "expired":
		return "", common.ErrTokenExpired
	case len(token) > len("good-") && token[:len("good-")] == "good-":
		return token[len("good-"):], nil
	default:
		return "", common.ErrInvalidToken
	}
}

func newTestServer(f *fakeAccounts) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, f, fakeTokens{})
}
