// Package api holds what the gRPC and HTTP transports share: the service
// interfaces they call, the JSON shapes of the HTTP endpoint and the mapping
// of service errors to caller-facing messages.
package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/services"
)

// AccountService is the slice of services.UserService the transports call.
type AccountService interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, identifier, password string) (*services.AuthResult, error)
	UpdateProfile(ctx context.Context, caller services.Caller, upd services.ProfileUpdate) (*models.User, error)
	Me(ctx context.Context, caller services.Caller) (*models.User, error)
	AvatarUploadURL(ctx context.Context, caller services.Caller) (*services.AvatarUpload, error)
}

// TokenParser resolves an access token to a user id.
type TokenParser interface {
	ParseAccessToken(token string) (string, error)
}

// User is the public view of an account. It has no password field.
type User struct {
	ID               string         `json:"id"`
	Username         string         `json:"username"`
	Email            string         `json:"email"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	AvatarURL        *string        `json:"avatar_url"`
	PrimaryContact   *string        `json:"primary_contact"`
	SecondaryContact *string        `json:"secondary_contact"`
	ProfileJSON      map[string]any `json:"profile_json"`
}

// FromModel returns nil for a nil user.
func FromModel(u *models.User) *User {
	if u == nil {
		return nil
	}
	profile := u.ProfileJSON
	if profile == nil {
		profile = map[string]any{}
	}
	return &User{
		ID:               u.ID,
		Username:         u.UserName,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		AvatarURL:        u.AvatarURL,
		PrimaryContact:   u.PrimaryContact,
		SecondaryContact: u.SecondaryContact,
		ProfileJSON:      profile,
	}
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (r *RegisterRequest) Input() services.RegisterInput {
	return services.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		UserName:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse answers Register and Login.
type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func NewAuthResponse(res *services.AuthResult) *AuthResponse {
	return &AuthResponse{
		User:         FromModel(res.User),
		AccessToken:  res.Tokens.AccessToken,
		RefreshToken: res.Tokens.RefreshToken,
	}
}

// UpdateProfileRequest has one field per updatable column; absent or null
// fields are left alone.
type UpdateProfileRequest struct {
	PrimaryContact   *string `json:"primary_contact,omitempty"`
	SecondaryContact *string `json:"secondary_contact,omitempty"`
	AvatarURL        *string `json:"avatar_url,omitempty"`
}

func (r *UpdateProfileRequest) Update() services.ProfileUpdate {
	return services.ProfileUpdate{
		PrimaryContact:   r.PrimaryContact,
		SecondaryContact: r.SecondaryContact,
		AvatarURL:        r.AvatarURL,
	}
}

// UserResponse answers UpdateProfile and Me. User is null for an anonymous
// Me.
type UserResponse struct {
	User *User `json:"user"`
}

type MeRequest struct{}

type AvatarUploadURLRequest struct{}

type AvatarUploadURLResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	AvatarURL string `json:"avatar_url"`
}

// Kind classifies an error returned by the services package.
type Kind int

const (
	KindInternal Kind = iota
	KindDuplicate
	KindUnauthenticated
	KindInvalid
	KindUnavailable
)

// Classify maps err to its Kind and the message safe to show the caller.
// Anything unrecognised is internal and its details are withheld.
func Classify(err error) (Kind, string) {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return KindDuplicate, common.ErrDuplicateEmail.Error()
	case errors.Is(err, common.ErrDuplicateUsername):
		return KindDuplicate, common.ErrDuplicateUsername.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return KindUnauthenticated, common.ErrInvalidCredentials.Error()
	case errors.Is(err, common.ErrAuthenticationRequired):
		return KindUnauthenticated, common.ErrAuthenticationRequired.Error()
	case errors.Is(err, common.ErrTokenExpired):
		return KindUnauthenticated, common.ErrTokenExpired.Error()
	case errors.Is(err, common.ErrInvalidToken):
		return KindUnauthenticated, common.ErrInvalidToken.Error()
	case errors.Is(err, common.ErrorValidation):
		return KindInvalid, err.Error()
	case errors.Is(err, common.ErrAvatarStorageDisabled):
		return KindUnavailable, common.ErrAvatarStorageDisabled.Error()
	default:
		return KindInternal, common.ErrorInternal.Error()
	}
}
