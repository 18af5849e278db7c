package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Farmacia-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUser   = "00000000-0000-0000-0000-000000000001"
	testTenant = "00000000-0000-0000-0000-000000000002"
	testIssuer = "farmacia-pro-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testTenant, "MANAGER", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUser, claims.UserID)
	assert.Equal(t, testTenant, claims.TenantID)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

// Usuarios de plataforma viajan sin tenant en el token.
func TestGenerate_SinTenant(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, "", "PLATFORM_ADMIN", testIssuer, 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Empty(t, claims.TenantID)
	assert.Equal(t, "PLATFORM_ADMIN", claims.Role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testTenant, "ADMIN", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret no debe validar")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUser, testTenant, "ADMIN", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token vencido no debe validar")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUser, testTenant, "ADMIN", testIssuer, 60)
	assert.Error(t, err)
}
