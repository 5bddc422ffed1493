package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wtfTimeline/domain"
	"wtfTimeline/errs"
)

func TestCreateUser(t *testing.T) {
	s := testServices(t)

	user := &domain.User{
		Username: "Jack ",
		Email:    " Jack@Example.com",
		Password: "password123",
	}
	require.NoError(t, s.User.Create(user))

	// Username and email are normalized, the password is hashed and wiped.
	assert.Equal(t, "jack", user.Username)
	assert.Equal(t, "jack@example.com", user.Email)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEmpty(t, user.Remember)
	assert.NotEmpty(t, user.RememberHash)
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	s := testServices(t)
	createUser(t, s, "jack")

	err := s.User.Create(&domain.User{
		Username: "jack",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.Equal(t, errs.ECONFLICT, errs.ErrorCode(err))
}

func TestCreateUser_Validation(t *testing.T) {
	s := testServices(t)

	for name, user := range map[string]*domain.User{
		"missing username": {Email: "a@example.com", Password: "password123"},
		"bad username":     {Username: "Not Valid!", Email: "a@example.com", Password: "password123"},
		"missing email":    {Username: "jack", Password: "password123"},
		"bad email":        {Username: "jack", Email: "not-an-email", Password: "password123"},
		"short password":   {Username: "jack", Email: "a@example.com", Password: "short"},
		"missing password": {Username: "jack", Email: "a@example.com"},
	} {
		err := s.User.Create(user)
		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err), name)
	}
}

func TestAuthenticate(t *testing.T) {
	s := testServices(t)
	createUser(t, s, "jack")

	user, err := s.User.Authenticate("jack@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jack", user.Username)

	_, err = s.User.Authenticate("jack@example.com", "wrong-password")
	assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))

	_, err = s.User.Authenticate("nobody@example.com", "password123")
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}

func TestByRemember(t *testing.T) {
	s := testServices(t)
	user := createUser(t, s, "jack")

	found, err := s.User.ByRemember(user.Remember)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = s.User.ByRemember("bm90LXRoZS1yaWdodC10b2tlbi1hdC1hbGwhISEhISE=")
	assert.Equal(t, errs.ENOTFOUND, errs.ErrorCode(err))
}
