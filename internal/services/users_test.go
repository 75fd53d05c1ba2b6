package services

import (
	"testing"

	"newsapi/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("carla@example.com", "qwer1234!")
	require.NoError(t, err)
	assert.Equal(t, "carla", user.Username)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "qwer1234!", user.Password)
	assert.True(t, utils.CheckPasswordHash("qwer1234!", user.Password))
}

func TestRegisterSameLocalPart(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	first, err := svc.Register("ana@example.com", "qwer1234!")
	require.NoError(t, err)
	assert.Equal(t, "ana", first.Username)

	// A different email with the same local part gets a fresh username
	// instead of a bogus email conflict.
	second, err := svc.Register("ana@other.com", "qwer1234!")
	require.NoError(t, err)
	assert.Equal(t, "ana2", second.Username)

	third, err := svc.Register("ana@elsewhere.com", "qwer1234!")
	require.NoError(t, err)
	assert.Equal(t, "ana3", third.Username)

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("carla@example.com", "qwer1234!")
	require.NoError(t, err)

	_, err = svc.Register("carla@example.com", "other5678!")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterMalformedEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	var verr *ValidationError
	_, err := svc.Register("not-an-email", "qwer1234!")
	require.ErrorAs(t, err, &verr)
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("a@example.com", "qwer1234!")
	require.NoError(t, err)
	_, err = svc.Register("b@example.com", "qwer1234!")
	require.NoError(t, err)

	users, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
