package auditoria

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mudancaPorPath(t *testing.T, mudancas []CampoAlterado, path string) CampoAlterado {
	t.Helper()
	for _, m := range mudancas {
		if m.Path == path {
			return m
		}
	}
	t.Fatalf("mudança não encontrada para o caminho %q", path)
	return CampoAlterado{}
}

func TestDiffCampoEscalar(t *testing.T) {
	antes := map[string]any{"observacoes": "antiga"}
	depois := map[string]any{"observacoes": "nova"}

	mudancas, err := Diff(antes, depois)
	require.NoError(t, err)
	require.Len(t, mudancas, 1)
	assert.Equal(t, "observacoes", mudancas[0].Path)
	assert.Equal(t, "antiga", mudancas[0].OldValue)
	assert.Equal(t, "nova", mudancas[0].NewValue)
}

func TestDiffIgnoraCamposTecnicosNaRaiz(t *testing.T) {
	antes := map[string]any{
		"id":          1,
		"status":      "DRAFT",
		"paginaAtual": 1,
		"createdAt":   "2026-01-01T00:00:00Z",
		"updatedAt":   "2026-01-01T00:00:00Z",
	}
	depois := map[string]any{
		"id":          2,
		"status":      "FINAL",
		"paginaAtual": 4,
		"createdAt":   "2026-02-01T00:00:00Z",
		"updatedAt":   "2026-02-01T00:00:00Z",
	}

	mudancas, err := Diff(antes, depois)
	require.NoError(t, err)
	assert.Empty(t, mudancas)
}

func TestDiffIgnoraIDEOrdemEmQualquerNivel(t *testing.T) {
	antes := map[string]any{
		"vendedores": []any{map[string]any{"id": 7, "ordem": 0, "nome": "Ana"}},
	}
	depois := map[string]any{
		"vendedores": []any{map[string]any{"id": 9, "ordem": 1, "nome": "Beatriz"}},
	}

	mudancas, err := Diff(antes, depois)
	require.NoError(t, err)
	require.Len(t, mudancas, 1)
	assert.Equal(t, "vendedores[0].nome", mudancas[0].Path)
}

func TestDiffElementoRemovidoDeLista(t *testing.T) {
	antes := map[string]any{
		"compradores": []any{
			map[string]any{"nome": "Carlos"},
			map[string]any{"nome": "Denise"},
		},
	}
	depois := map[string]any{
		"compradores": []any{
			map[string]any{"nome": "Carlos"},
		},
	}

	mudancas, err := Diff(antes, depois)
	require.NoError(t, err)
	require.Len(t, mudancas, 1)
	assert.Equal(t, "compradores[1]", mudancas[0].Path)
	assert.Equal(t, ValorRemovido, mudancas[0].NewValue)
}

func TestDiffElementoAdicionadoEmLista(t *testing.T) {
	antes := map[string]any{"vendedores": []any{}}
	depois := map[string]any{
		"vendedores": []any{map[string]any{"nome": "Elisa"}},
	}

	mudancas, err := Diff(antes, depois)
	require.NoError(t, err)
	require.Len(t, mudancas, 1)
	assert.Equal(t, "vendedores[0]", mudancas[0].Path)
	assert.Equal(t, "null", mudancas[0].OldValue)
}

func TestDiffPreservaGrafiaNumerica(t *testing.T) {
	mudancas, err := Diff(
		json.RawMessage(`{"negocioValorTotal": 5E+1}`),
		json.RawMessage(`{"negocioValorTotal": 60.5}`),
	)
	require.NoError(t, err)
	require.Len(t, mudancas, 1)
	assert.Equal(t, "5E+1", mudancas[0].OldValue)
	assert.Equal(t, "60.5", mudancas[0].NewValue)
}

func TestDiffCampoNuloParaPreenchido(t *testing.T) {
	antes := map[string]any{"telefone": nil}
	depois := map[string]any{"telefone": "11 99999-0000"}

	mudancas, err := Diff(antes, depois)
	require.NoError(t, err)
	require.Len(t, mudancas, 1)
	assert.Equal(t, "null", mudancas[0].OldValue)
	assert.Equal(t, "11 99999-0000", mudancas[0].NewValue)
}

func TestDiffSemMudancas(t *testing.T) {
	doc := map[string]any{
		"nome":       "Fulano",
		"vendedores": []any{map[string]any{"nome": "Ana"}},
	}
	mudancas, err := Diff(doc, doc)
	require.NoError(t, err)
	assert.Empty(t, mudancas)
}

func TestDiffObjetoAninhado(t *testing.T) {
	antes := map[string]any{
		"vendedores": []any{map[string]any{"nome": "Ana", "conjugeNome": "Bruno"}},
	}
	depois := map[string]any{
		"vendedores": []any{map[string]any{"nome": "Ana", "conjugeNome": "Breno"}},
	}

	mudancas, err := Diff(antes, depois)
	require.NoError(t, err)
	require.Len(t, mudancas, 1)
	m := mudancaPorPath(t, mudancas, "vendedores[0].conjugeNome")
	assert.Equal(t, "Bruno", m.OldValue)
	assert.Equal(t, "Breno", m.NewValue)
}
