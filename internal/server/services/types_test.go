package services

import (
	"testing"

	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"a@x.com":            "a@x.com",
		" Bob@Example.COM  ": "Bob@example.com",
		"no-at-sign":         "no-at-sign",
		"":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeEmail(in), "input %q", in)
	}
}

func TestProfileUpdate_Apply(t *testing.T) {
	old := "old"
	u := &models.User{
		Email:          "a@x.com",
		PrimaryContact: &old,
		AvatarURL:      &old,
	}

	newAvatar := "http://x/img.png"
	ProfileUpdate{AvatarURL: &newAvatar}.Apply(u)

	assert.Equal(t, "http://x/img.png", *u.AvatarURL)
	assert.Equal(t, "old", *u.PrimaryContact)
	assert.Nil(t, u.SecondaryContact)

	newAvatar = "mutated"
	assert.Equal(t, "http://x/img.png", *u.AvatarURL)
}

func TestProfileUpdate_Empty(t *testing.T) {
	s := ""
	assert.True(t, ProfileUpdate{}.Empty())
	assert.False(t, ProfileUpdate{SecondaryContact: &s}.Empty())
}

func TestCaller_Anonymous(t *testing.T) {
	assert.True(t, Caller{}.Anonymous())
	assert.False(t, Caller{UserID: "u-1"}.Anonymous())
}
