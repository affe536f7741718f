package services_test

import (
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *configs.Config {
	return &configs.Config{
		AccessTokenSecret:  "access-secret",
		RefreshTokenSecret: "refresh-secret",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    7 * 24 * time.Hour,
	}
}

func newAuthService(t *testing.T) (*services.AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return services.NewAuthService(repository.NewUserRepository(db), testConfig()), db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register(&services.RegisterIn{
		Username: "jane",
		Email:    "Jane@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password)

	// duplicate email is a client error
	_, err = svc.Register(&services.RegisterIn{
		Username: "jane2",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	access, refresh, loggedIn, err := svc.Login("jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, refresh)

	claims, err := utils.ParseToken(access, "access-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&services.RegisterIn{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, _, _, err = svc.Login("jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, _, _, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRefresh(t *testing.T) {
	svc, db := newAuthService(t)

	user, err := svc.Register(&services.RegisterIn{
		Username: "jane",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, refresh, _, err := svc.Login("jane@example.com", "secret123")
	require.NoError(t, err)

	access, err := svc.Refresh(refresh)
	require.NoError(t, err)
	claims, err := utils.ParseToken(access, "access-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// garbage token
	_, err = svc.Refresh("not-a-token")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// an access token signed with the wrong secret is rejected too
	_, err = svc.Refresh(access)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// valid token for a user that no longer exists
	require.NoError(t, db.Delete(&entity.User{}, user.ID).Error)
	_, err = svc.Refresh(refresh)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
