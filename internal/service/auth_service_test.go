package service

import (
	"testing"

	"go-autoshop/internal/model"
	"go-autoshop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*gorm.DB, AuthService) {
	t.Helper()
	db := newTestDB(t)
	seedOwner(t, db)
	return db, NewAuthService(repository.NewUserRepo(db))
}

func TestLogin(t *testing.T) {
	_, svc := newAuthFixture(t)

	resp, err := svc.Login(testOwner, "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, testOwner, resp.User.Email)
	assert.Equal(t, "Test Tire Shop", resp.User.ShopName)

	_, err = svc.Login(testOwner, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("ghost@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	db, svc := newAuthFixture(t)
	require.NoError(t, db.Model(&model.User{}).
		Where("email = ?", testOwner).
		Update("is_active", false).Error)

	_, err := svc.Login(testOwner, "secret123")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLoginRotatesTokenVersion(t *testing.T) {
	_, svc := newAuthFixture(t)

	first, err := svc.Login(testOwner, "secret123")
	require.NoError(t, err)

	// Validates while it is the latest session.
	_, err = svc.ValidateToken(first.Token)
	require.NoError(t, err)

	// A second login invalidates the first token.
	_, err = svc.Login(testOwner, "secret123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(first.Token)
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	_, svc := newAuthFixture(t)

	assert.ErrorIs(t, svc.ResetPassword(testOwner, "wrong", "newpass1"), ErrWrongPassword)
	assert.ErrorIs(t, svc.ResetPassword("ghost@example.com", "x", "y"), ErrUserNotFound)

	require.NoError(t, svc.ResetPassword(testOwner, "secret123", "newpass1"))

	_, err := svc.Login(testOwner, "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(testOwner, "newpass1")
	assert.NoError(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, svc := newAuthFixture(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
