package users

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode = "23505"

	emailConstraint    = "users_email_key"
	usernameConstraint = "users_username_key"
)

const selectUser = `SELECT id, username, email, password_hash, first_name, last_name,
		        avatar_url, primary_contact, secondary_contact, profile_json,
		        created_at, updated_at
		 FROM users`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	profile, err := encodeProfile(user.ProfileJSON)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO users (username, email, password_hash, first_name, last_name, profile_json)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.UserName, user.Email, user.PasswordHash, user.FirstName, user.LastName, profile,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if user.ProfileJSON == nil {
		user.ProfileJSON = map[string]any{}
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUser+`
		 WHERE email = $1
		 `, email)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, selectUser+`
		 WHERE username = $1
		 `, username)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+`
		 WHERE id = $1
		 `, id)
}

func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	profile, err := encodeProfile(user.ProfileJSON)
	if err != nil {
		return err
	}

	query :=
		`UPDATE users
		 SET first_name = $1, last_name = $2, avatar_url = $3,
		     primary_contact = $4, secondary_contact = $5, profile_json = $6,
		     updated_at = now()
		 WHERE id = $7
		 RETURNING updated_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName,
		nullString(user.AvatarURL), nullString(user.PrimaryContact), nullString(user.SecondaryContact),
		profile, user.ID,
	).Scan(&user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		user                       models.User
		avatar, primary, secondary sql.NullString
		profile                    []byte
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.UserName, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName,
		&avatar, &primary, &secondary, &profile,
		&user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.AvatarURL = stringPtr(avatar)
	user.PrimaryContact = stringPtr(primary)
	user.SecondaryContact = stringPtr(secondary)

	if user.ProfileJSON, err = decodeProfile(profile); err != nil {
		return nil, err
	}

	return &user, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch pgErr.ConstraintName {
	case emailConstraint:
		return common.ErrDuplicateEmail
	case usernameConstraint:
		return common.ErrDuplicateUsername
	}
	return nil
}

func encodeProfile(profile map[string]any) (string, error) {
	if profile == nil {
		return "{}", nil
	}
	b, err := json.Marshal(profile)
	if err != nil {
		return "", fmt.Errorf("encode profile_json: %w", err)
	}
	return string(b), nil
}

// decodeProfile keeps numbers as json.Number so integers past 2^53 survive
// the round trip.
func decodeProfile(b []byte) (map[string]any, error) {
	profile := map[string]any{}
	if len(b) == 0 {
		return profile, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile_json: %w", err)
	}
	return profile, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
