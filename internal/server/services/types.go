package services

import (
	"strings"
	"unicode"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
)

// Caller is the identity resolved by the transport. The zero value is an
// anonymous caller.
type Caller struct {
	UserID string
}

func (c Caller) Anonymous() bool {
	return c.UserID == ""
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is what Register and Login hand back.
type AuthResult struct {
	User   *models.User
	Tokens TokenPair
}

// RegisterInput carries the register arguments. Optional fields are empty
// when not supplied.
type RegisterInput struct {
	Email     string
	Password  string
	UserName  string
	FirstName string
	LastName  string
}

// ProfileUpdate lists the only fields a caller may change on their own
// record. A nil field is left untouched.
type ProfileUpdate struct {
	PrimaryContact   *string
	SecondaryContact *string
	AvatarURL        *string
}

// Apply copies every non-nil field of p onto u.
func (p ProfileUpdate) Apply(u *models.User) {
	if p.PrimaryContact != nil {
		u.PrimaryContact = cloneString(p.PrimaryContact)
	}
	if p.SecondaryContact != nil {
		u.SecondaryContact = cloneString(p.SecondaryContact)
	}
	if p.AvatarURL != nil {
		u.AvatarURL = cloneString(p.AvatarURL)
	}
}

// Empty reports whether p would change nothing.
func (p ProfileUpdate) Empty() bool {
	return p.PrimaryContact == nil && p.SecondaryContact == nil && p.AvatarURL == nil
}

// AvatarUpload is a presigned PUT for a new avatar object and the URL the
// object will be served from once uploaded.
type AvatarUpload struct {
	Key       string
	UploadURL string
	AvatarURL string
}

func cloneString(s *string) *string {
	v := *s
	return &v
}

// NormalizeEmail trims surrounding spaces and lowercases the domain part.
// The local part is kept as typed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return email
	}
	return local + "@" + strings.ToLower(domain)
}

func validEmail(email string) bool {
	local, domain, ok := strings.Cut(email, "@")
	return ok && local != "" && domain != "" && !strings.ContainsAny(email, " \t\r\n")
}

// validUsername rejects names that could never be typed back at login.
func validUsername(username string) bool {
	return !strings.Contains(username, "@") && !strings.ContainsFunc(username, unicode.IsSpace)
}

// usernameSuffix is a short random tag for derived usernames that collide.
func usernameSuffix() string {
	id := strings.ReplaceAll(newObjectID(), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}

// localPart returns the part of email before '@'.
func localPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
