// Package auth mints and parses the JWTs handed to clients and hashes
// account passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the registered JWT claims plus the token kind.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"typ"`
}

// Tokens is the result of Issue. RefreshID is the jti of RefreshToken and is
// what the refresh ledger stores.
type Tokens struct {
	AccessToken      string
	RefreshToken     string
	RefreshID        string
	RefreshExpiresAt time.Time
}

// Issuer signs access tokens with one key and refresh tokens with another.
type Issuer struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string

	now   func() time.Time
	newID func() string
}

func NewIssuer(cfg *config.Config) *Issuer {
	return &Issuer{
		accessKey:  []byte(cfg.SecretKey),
		refreshKey: []byte(cfg.RefreshSecretKey),
		accessTTL:  cfg.AccessTokenValidityDuration,
		refreshTTL: cfg.RefreshTokenValidityDuration,
		issuer:     cfg.TokenIssuer,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// RefreshValidity is the lifetime given to refresh tokens.
func (i *Issuer) RefreshValidity() time.Duration {
	return i.refreshTTL
}

// Issue mints a fresh access/refresh pair for userID.
func (i *Issuer) Issue(userID string) (*Tokens, error) {
	now := i.now()

	access, err := i.sign(i.accessKey, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
		Type: TokenTypeAccess,
	})
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	jti := i.newID()
	refreshExp := now.Add(i.refreshTTL)
	refresh, err := i.sign(i.refreshKey, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(refreshExp),
		},
		Type: TokenTypeRefresh,
	})
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &Tokens{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshID:        jti,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// ParseAccessToken validates an access token and returns its subject.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// validation yields common.ErrInvalidToken.
func (i *Issuer) ParseAccessToken(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return i.accessKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Type != TokenTypeAccess || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	if i.issuer != "" && claims.Issuer != i.issuer {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

func (i *Issuer) sign(key []byte, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
