package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/J3FF-omg/SaveFood/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	return db
}

func TestRegister(t *testing.T) {
	identity := NewIdentity(newTestDB(t))

	user, err := identity.Register("seller1", "pw", "e@x.com", "", models.RoleSeller)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "seller1", user.Username)
	assert.Equal(t, models.RoleSeller, user.Role)
	assert.Empty(t, user.Address)

	got, err := identity.Get(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	identity := NewIdentity(newTestDB(t))

	first, err := identity.Register("seller1", "pw", "e@x.com", "", models.RoleSeller)
	require.NoError(t, err)

	_, err = identity.Register("seller1", "pw2", "other@x.com", "", models.RoleBuyer)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The failed call must leave the store unchanged.
	users, err := identity.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, "pw", users[0].Password)
}

func TestRegisterCaseSensitiveUsernames(t *testing.T) {
	identity := NewIdentity(newTestDB(t))

	_, err := identity.Register("Seller", "pw", "a@x.com", "", models.RoleSeller)
	require.NoError(t, err)
	_, err = identity.Register("seller", "pw", "b@x.com", "", models.RoleSeller)
	require.NoError(t, err)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	identity := NewIdentity(newTestDB(t))

	_, err := identity.Register("", "pw", "e@x.com", "", models.RoleBuyer)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = identity.Register("u", "pw", "e@x.com", "", models.UserRole("courier"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestAuthenticate(t *testing.T) {
	identity := NewIdentity(newTestDB(t))

	registered, err := identity.Register("buyer1", "buyer123", "b@x.com", "", models.RoleBuyer)
	require.NoError(t, err)

	user, err := identity.Authenticate("buyer1", "buyer123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = identity.Authenticate("buyer1", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = identity.Authenticate("nobody", "buyer123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUnknownUser(t *testing.T) {
	identity := NewIdentity(newTestDB(t))
	_, err := identity.Get("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
