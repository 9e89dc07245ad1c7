package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret") //nolint:gochecknoglobals

func TestUserToken(t *testing.T) {
	token, err := GenerateUserJWT(42, domain.RoleReseller, time.Hour, secret)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, KindUser, claims.Kind)
	assert.Equal(t, string(domain.RoleReseller), claims.Role)
	assert.Empty(t, claims.Permissions)
	assert.False(t, claims.Can(domain.PermViewUsers))
}

func TestAdminTokenCarriesAllPermissions(t *testing.T) {
	token, err := GenerateUserJWT(1, domain.RoleAdmin, time.Hour, secret)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, secret)
	require.NoError(t, err)
	for _, p := range domain.AllPermissions {
		assert.True(t, claims.Can(p), p)
	}
}

func TestStaffToken(t *testing.T) {
	token, err := GenerateStaffJWT(7, "Support Agent", []string{domain.PermReplyTickets}, time.Hour, secret)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, KindStaff, claims.Kind)
	assert.True(t, claims.Can(domain.PermReplyTickets))
	assert.False(t, claims.Can(domain.PermManageStaff))
}

func TestInvalidTokens(t *testing.T) {
	expired, err := GenerateUserJWT(1, domain.RoleUser, -time.Minute, secret)
	require.NoError(t, err)
	_, err = ValidateUserJWT(expired, secret)
	require.ErrorIs(t, err, ErrTokenExpired)

	token, err := GenerateUserJWT(1, domain.RoleUser, time.Hour, secret)
	require.NoError(t, err)
	_, err = ValidateUserJWT(token, []byte("other"))
	require.Error(t, err)

	_, err = ValidateUserJWT("garbage", secret)
	require.Error(t, err)
}
