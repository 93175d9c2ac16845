package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
)

func TestCreateAndParseAccessToken(t *testing.T) {
	token, err := CreateAccessToken("secret", "u1", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseValidate("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParseValidate_WrongSecret(t *testing.T) {
	token, err := CreateAccessToken("secret", "u1", domain.RoleNormal, time.Hour)
	require.NoError(t, err)

	_, err = ParseValidate("other-secret", token)
	require.Error(t, err)
}

func TestParseValidate_Expired(t *testing.T) {
	token, err := CreateAccessToken("secret", "u1", domain.RoleNormal, -time.Minute)
	require.NoError(t, err)

	_, err = ParseValidate("secret", token)
	require.Error(t, err)
}

func TestParseValidate_Garbage(t *testing.T) {
	_, err := ParseValidate("secret", "not.a.token")
	require.Error(t, err)
}
