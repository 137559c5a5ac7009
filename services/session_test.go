package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/store"
)

func TestLoginUpdatesEmailAndFlag(t *testing.T) {
	st, flags := newSeededStore(t)
	ss := NewSessionService(st, flags, testLog)

	user, err := ss.Login("a@b.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.True(t, ss.IsLoggedIn())

	stored, err := st.FirstUser()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", stored.Email)
}

func TestLoginRejectsShortPassword(t *testing.T) {
	st, flags := newSeededStore(t)
	ss := NewSessionService(st, flags, testLog)

	_, err := ss.Login("a@b.com", "123")
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, ss.IsLoggedIn())

	stored, err := st.FirstUser()
	require.NoError(t, err)
	assert.Equal(t, "sardor@example.com", stored.Email, "failed login must not touch the user")
}

func TestLoginRejectsEmptyEmail(t *testing.T) {
	st, flags := newSeededStore(t)
	ss := NewSessionService(st, flags, testLog)

	_, err := ss.Login("", "1234")
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, ss.IsLoggedIn())
}

func TestLogoutClearsFlagOnly(t *testing.T) {
	st, flags := newSeededStore(t)
	ss := NewSessionService(st, flags, testLog)

	_, err := ss.Login("a@b.com", "1234")
	require.NoError(t, err)
	require.NoError(t, ss.Logout())

	assert.False(t, ss.IsLoggedIn())
	stored, err := st.FirstUser()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", stored.Email, "logout leaves the user record alone")
}

func TestCurrentUserRequiresActiveSession(t *testing.T) {
	st, flags := newSeededStore(t)
	ss := NewSessionService(st, flags, testLog)

	_, err := ss.CurrentUser()
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = ss.Login("a@b.com", "1234")
	require.NoError(t, err)

	user, err := ss.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "Sardor Raximov", user.Name)
}

func TestUpdateUserWritesThrough(t *testing.T) {
	st, flags := newSeededStore(t)
	ss := NewSessionService(st, flags, testLog)

	user, err := st.FirstUser()
	require.NoError(t, err)
	user.TotalPoints += 50
	require.NoError(t, ss.UpdateUser(user))

	stored, err := st.FirstUser()
	require.NoError(t, err)
	assert.Equal(t, 2500, stored.TotalPoints)
}
