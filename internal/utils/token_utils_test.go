package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("1", "Admin", "secret", time.Hour, "club")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "club", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	token, err := GenerateJWT("1", "Admin", "secret", time.Hour, "club")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateJWT("1", "Admin", "secret", -time.Minute, "club")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT("garbage", "secret")
	assert.Error(t, err)
}
