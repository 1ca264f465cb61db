package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	token, err := Generate("secret", "user-1", RoleAdmin, "catalog-api", 5)
	require.NoError(t, err)

	claims, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "catalog-api", claims.Issuer)
}

func TestParse_Errores(t *testing.T) {
	token, err := Generate("secret", "user-1", RoleReader, "catalog-api", 5)
	require.NoError(t, err)

	// Caso 1: otra clave
	_, err = Parse("otra", token)
	assert.Error(t, err)

	// Caso 2: expirado
	expired, err := Generate("secret", "user-1", RoleReader, "catalog-api", -1)
	require.NoError(t, err)
	_, err = Parse("secret", expired)
	assert.Error(t, err)

	// Caso 3: basura
	_, err = Parse("secret", "no.es.jwt")
	assert.Error(t, err)

	// Caso 4: secret vacío
	_, err = Generate("", "user-1", RoleReader, "catalog-api", 5)
	assert.Error(t, err)
	_, err = Parse("", token)
	assert.Error(t, err)
}
