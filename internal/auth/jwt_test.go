package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarEValidarToken(t *testing.T) {
	DefinirSegredo("segredo-de-teste")

	token, err := GerarToken(7, "maria", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidarToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.True(t, claims.IsAdmin)
}

func TestValidarTokenComSegredoErrado(t *testing.T) {
	DefinirSegredo("segredo-a")
	token, err := GerarToken(1, "joao", false)
	require.NoError(t, err)

	DefinirSegredo("segredo-b")
	_, err = ValidarToken(token)
	assert.Error(t, err)
}

func TestValidarTokenAdulterado(t *testing.T) {
	DefinirSegredo("segredo-de-teste")
	token, err := GerarToken(1, "joao", false)
	require.NoError(t, err)

	_, err = ValidarToken(token + "x")
	assert.Error(t, err)
}
