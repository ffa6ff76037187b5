package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.NoError(t, ComparePasswords(hash, "segredo123"))
	assert.Error(t, ComparePasswords(hash, "errada"))
}

func TestGenerateOtpCode(t *testing.T) {
	otp, err := GenerateOtpCode(6)
	require.NoError(t, err)
	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}

	other, err := GenerateOtpCode(6)
	require.NoError(t, err)
	// Not a guarantee, but a collision here is a one-in-a-million run.
	assert.NotEqual(t, otp, other)
}

func TestCreateAndValidateToken(t *testing.T) {
	id := uuid.New()

	token, err := CreateToken(id, "Ana", "ana@example.com")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
