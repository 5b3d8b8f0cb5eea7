package auditoria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizarRemoveCamposTecnicos(t *testing.T) {
	mudancas := []CampoAlterado{
		{Path: "id", OldValue: "1", NewValue: "2"},
		{Path: "vendedores[0].id", OldValue: "7", NewValue: "9"},
		{Path: "vendedores[0].ordem", OldValue: "0", NewValue: "1"},
		{Path: "createdAt", OldValue: "a", NewValue: "b"},
		{Path: "paginaAtual", OldValue: "1", NewValue: "2"},
		{Path: "nome", OldValue: "Ana", NewValue: "Beatriz"},
	}

	limpas := Sanitizar(mudancas)
	require.Len(t, limpas, 1)
	assert.Equal(t, "nome", limpas[0].Path)
}

func TestSanitizarRemoveMudancaSemEfeito(t *testing.T) {
	mudancas := []CampoAlterado{
		{Path: "observacoes", OldValue: "  texto  ", NewValue: "texto"},
		{Path: "telefone", OldValue: "11 1111", NewValue: "11 2222"},
	}

	limpas := Sanitizar(mudancas)
	require.Len(t, limpas, 1)
	assert.Equal(t, "telefone", limpas[0].Path)
}

func TestRotuloParaCaminho(t *testing.T) {
	casos := map[string]string{
		"nome":                      "Nome",
		"vendedores[0].nome":        "Vendedor - Nome",
		"vendedores[2].conjugeNome": "Vendedor - Cônjuge - Nome",
		"compradores[1].documento":  "Comprador - Documento",
		"negocioValorTotal":         "Negócio - Valor Total",
		"negocioDiaVencimento":      "Negócio - Dia de Vencimento",
		"honorariosValor":           "Honorários - Valor",
		"status":                    "Status",
		"campoDesconhecido":         "campoDesconhecido",
		"vendedores[0].campoNovo":   "Vendedor - campoNovo",
	}
	for caminho, esperado := range casos {
		assert.Equal(t, esperado, RotuloParaCaminho(caminho), "caminho %q", caminho)
	}
}

func TestFormatarValorVazioERemovido(t *testing.T) {
	assert.Equal(t, ValorVazio, FormatarValor("nome", ""))
	assert.Equal(t, ValorVazio, FormatarValor("nome", "   "))
	assert.Equal(t, ValorVazio, FormatarValor("nome", "null"))
	assert.Equal(t, ValorRemovido, FormatarValor("vendedores[1]", ValorRemovido))
}

func TestFormatarValorStatus(t *testing.T) {
	assert.Equal(t, "Rascunho", FormatarValor("status", "DRAFT"))
	assert.Equal(t, "Finalizado", FormatarValor("status", "FINAL"))
	assert.Equal(t, "ARQUIVADO", FormatarValor("status", "ARQUIVADO"))
}

func TestFormatarValorMoeda(t *testing.T) {
	assert.Equal(t, "R$ 50,00", FormatarValor("negocioValorTotal", "5E+1"))
	assert.Equal(t, "R$ 1.234,56", FormatarValor("negocioValorTotal", "1234.56"))
	assert.Equal(t, "R$ 0,50", FormatarValor("honorariosValor", "0.5"))
}

func TestFormatarValorMoedaIlegivel(t *testing.T) {
	assert.Equal(t, "abc", FormatarValor("negocioValorTotal", "abc"))
}

func TestFormatarValorCampoComum(t *testing.T) {
	assert.Equal(t, "Ana", FormatarValor("nome", "Ana"))
	assert.Equal(t, "12", FormatarValor("negocioNumParcelas", "12"))
}

func TestEnriquecer(t *testing.T) {
	mudancas := []CampoAlterado{
		{Path: "id", OldValue: "1", NewValue: "2"},
		{Path: "negocioValorTotal", OldValue: "null", NewValue: "1000"},
		{Path: "status", OldValue: "DRAFT", NewValue: "FINAL"},
	}

	exibicao := Enriquecer(mudancas)
	require.Len(t, exibicao, 2)

	assert.Equal(t, "Negócio - Valor Total", exibicao[0].Label)
	assert.Equal(t, ValorVazio, exibicao[0].DisplayOld)
	assert.Equal(t, "R$ 1.000,00", exibicao[0].DisplayNew)

	assert.Equal(t, "Status", exibicao[1].Label)
	assert.Equal(t, "Rascunho", exibicao[1].DisplayOld)
	assert.Equal(t, "Finalizado", exibicao[1].DisplayNew)
}
