package models

import "time"

// User is the sole account entity. PasswordHash is never exposed to callers;
// optional profile columns are nil when unset.
type User struct {
	ID               string
	UserName         string
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	AvatarURL        *string
	PrimaryContact   *string
	SecondaryContact *string
	ProfileJSON      map[string]any
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
