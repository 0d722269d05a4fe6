// Package services holds the account operations: Register, Login,
// UpdateProfile, Me and AvatarUploadURL.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/auth"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/dmitrijs2005/gophaccounts/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	db          dbx.Conn
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	config      *config.Config
	log         logging.Logger
}

func NewUserService(db dbx.Conn, m repomanager.RepositoryManager, issuer *auth.Issuer, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		issuer:      issuer,
		config:      cfg,
		log:         log.With("module", "services.users"),
	}
}

// maxUsernameAttempts caps how many usernames a registration without an
// explicit one tries before giving up.
const maxUsernameAttempts = 5

// Register creates an account and signs the new user in.
//
// The email lookup below only gives a friendlier error in the common case;
// the UNIQUE constraints on users decide concurrent registrations. A username
// derived from the email gets a random suffix when the plain local part is
// taken.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email := NormalizeEmail(in.Email)
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: a valid email is required", common.ErrorValidation)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	username := strings.TrimSpace(in.UserName)
	derived := username == ""
	if derived {
		username = localPart(email)
	} else if !validUsername(username) {
		return nil, fmt.Errorf("%w: username must not contain spaces or '@'", common.ErrorValidation)
	}

	_, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateEmail
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.internal(ctx, "lookup email", err)
	}

	hash, err := auth.HashPassword(in.Password, s.config.BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password is too long", common.ErrorValidation)
		}
		return nil, s.internal(ctx, "hash password", err)
	}

	for attempt := 1; ; attempt++ {
		user, tokens, err := s.createUser(ctx, &models.User{
			UserName:     username,
			Email:        email,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			ProfileJSON:  map[string]any{},
		})
		if err == nil {
			s.log.Info(ctx, "user registered", "user_id", user.ID)
			return &AuthResult{User: user, Tokens: pairOf(tokens)}, nil
		}

		if derived && errors.Is(err, common.ErrDuplicateUsername) && attempt < maxUsernameAttempts {
			username = localPart(email) + "-" + usernameSuffix()
			continue
		}
		if errors.Is(err, common.ErrDuplicateEmail) || errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, s.internal(ctx, "create user", err)
	}
}

// createUser inserts user and issues its first token pair in one
// transaction.
func (s *UserService) createUser(ctx context.Context, user *models.User) (*models.User, *auth.Tokens, error) {
	var tokens *auth.Tokens
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		user = created

		tokens, err = s.issueTokens(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Login checks password against the account whose email matches identifier
// and against the account whose username matches it; the first match wins.
// Unknown accounts and wrong passwords give the same
// common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	candidates, err := s.loginCandidates(ctx, identifier)
	if err != nil {
		return nil, s.internal(ctx, "lookup user", err)
	}
	if len(candidates) == 0 {
		auth.VerifyDummy(password)
		return nil, common.ErrInvalidCredentials
	}

	var user *models.User
	for _, c := range candidates {
		if auth.VerifyPassword(c.PasswordHash, password) {
			user = c
			break
		}
	}
	if user == nil {
		return nil, common.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, s.db, user.ID)
	if err != nil {
		return nil, s.internal(ctx, "issue tokens", err)
	}

	return &AuthResult{User: user, Tokens: pairOf(tokens)}, nil
}

// UpdateProfile overwrites the supplied fields on the caller's own record.
func (s *UserService) UpdateProfile(ctx context.Context, caller Caller, upd ProfileUpdate) (*models.User, error) {
	if caller.Anonymous() {
		return nil, common.ErrAuthenticationRequired
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		u, err := repo.GetByID(ctx, caller.UserID)
		if err != nil {
			return err
		}

		if !upd.Empty() {
			upd.Apply(u)
			if err := repo.Save(ctx, u); err != nil {
				return err
			}
		}

		user = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// the token outlived its account
			return nil, common.ErrAuthenticationRequired
		}
		return nil, s.internal(ctx, "update profile", err)
	}

	return user, nil
}

// Me returns the caller's record, or nil for an anonymous caller.
func (s *UserService) Me(ctx context.Context, caller Caller) (*models.User, error) {
	if caller.Anonymous() {
		return nil, nil
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, s.internal(ctx, "load caller", err)
	}

	return user, nil
}

// loginCandidates returns the accounts matching identifier by email, then by
// username, without duplicates.
func (s *UserService) loginCandidates(ctx context.Context, identifier string) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)

	var out []*models.User

	byEmail, err := repo.GetByEmail(ctx, NormalizeEmail(identifier))
	switch {
	case err == nil:
		out = append(out, byEmail)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	byName, err := repo.GetByUsername(ctx, strings.TrimSpace(identifier))
	switch {
	case err == nil:
		if len(out) == 0 || out[0].ID != byName.ID {
			out = append(out, byName)
		}
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	return out, nil
}

// issueTokens mints a pair and records the refresh jti through db, which may
// be the transaction that created the user.
func (s *UserService) issueTokens(ctx context.Context, db dbx.DBTX, userID string) (*auth.Tokens, error) {
	tokens, err := s.issuer.Issue(userID)
	if err != nil {
		return nil, err
	}

	if err := s.repomanager.RefreshTokens(db).Create(ctx, userID, tokens.RefreshID, s.issuer.RefreshValidity()); err != nil {
		return nil, fmt.Errorf("record refresh token: %w", err)
	}

	return tokens, nil
}

func (s *UserService) internal(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, op+" failed", "error", err)
	return fmt.Errorf("%w: %s", common.ErrorInternal, op)
}

func pairOf(t *auth.Tokens) TokenPair {
	return TokenPair{AccessToken: t.AccessToken, RefreshToken: t.RefreshToken}
}
