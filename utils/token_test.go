package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/udyambridge/business-platform-go/models"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken(secret, "asha", models.RoleInvestor)
	require.NoError(t, err)

	claims, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "asha", claims.Username)
	assert.Equal(t, "investor", claims.Role)

	_, err = ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)

	_, err = ParseToken(secret, "garbage")
	assert.Error(t, err)
}

func TestGenerateETag(t *testing.T) {
	a := GenerateETag(1700000000000, 3)
	b := GenerateETag(1700000000000, 4)
	c := GenerateETag(1700000000001, 3)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, GenerateETag(1700000000000, 3))
}
