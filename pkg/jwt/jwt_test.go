package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func TestGenerateAndParse_ConRole(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, "supervisor", "obras-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "supervisor", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, "admin", "obras-api-test", -1)
	require.NoError(t, err)

	_, _, err = Parse(testSecret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := Generate(testSecret, testUserID, "admin", "obras-api-test", 60)
	require.NoError(t, err)

	_, _, err = Parse("otro-secret-completamente-distinto", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", testUserID, "admin", "obras-api-test", 60)
	assert.Error(t, err)
}
