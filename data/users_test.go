package data

import (
	"strings"
	"testing"

	"github.com/emzola/scribe/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	var user User
	require.NoError(t, user.Password.Set("pa55word"))
	assert.NotEqual(t, []byte("pa55word"), user.Password.Hash)

	match, err := user.Password.Matches("pa55word")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = user.Password.Matches("password")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		field    string
	}{
		{name: "valid", email: "ada@example.com", password: "secret"},
		{name: "malformed email", email: "ada.example.com", password: "secret", field: "email"},
		{name: "short password", email: "ada@example.com", password: "five5", field: "password"},
		{name: "long password", email: "ada@example.com", password: strings.Repeat("x", 73), field: "password"},
		{name: "long name", userName: strings.Repeat("x", 501), email: "ada@example.com", password: "secret", field: "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plaintext := tt.password
			user := &User{Name: tt.userName, Email: tt.email, Password: password{Plaintext: &plaintext}}
			v := validator.New()
			ValidateUser(v, user)
			if tt.field == "" {
				assert.True(t, v.Valid())
				return
			}
			assert.Contains(t, v.Errors, tt.field)
		})
	}
}

func TestUserIdentity(t *testing.T) {
	user := &User{ID: 7, Name: "Ada", Email: "ada@example.com"}
	assert.Equal(t, Identity{ID: 7, Name: "Ada", Email: "ada@example.com"}, user.Identity())
	assert.False(t, user.IsAnonymous())
	assert.True(t, AnonymousUser.IsAnonymous())
}
