package anexo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageGuardarERecuperar(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	nome, err := s.Guardar("procuracao.pdf", strings.NewReader("conteudo"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(nome, ".pdf"))
	assert.NotEqual(t, "procuracao.pdf", nome)

	caminho, err := s.Caminho(nome)
	require.NoError(t, err)
	dados, err := os.ReadFile(caminho)
	require.NoError(t, err)
	assert.Equal(t, "conteudo", string(dados))
}

func TestStorageNomesUnicos(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	a, err := s.Guardar("doc.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := s.Guardar("doc.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStorageRejeitaTravessiaDeDiretorio(t *testing.T) {
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.Guardar("../fora.txt", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNomeInvalido)
}

func TestStorageRemover(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStorage(dir)
	require.NoError(t, err)

	nome, err := s.Guardar("doc.txt", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, s.Remover(nome))
	_, err = os.Stat(filepath.Join(dir, nome))
	assert.True(t, os.IsNotExist(err))

	// remover de novo não é erro
	assert.NoError(t, s.Remover(nome))
}
