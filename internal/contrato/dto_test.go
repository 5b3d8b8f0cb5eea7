package contrato

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarlonMartinss/advocacia/internal/parcela"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func TestAplicarEmPreservaCamposNaoEnviados(t *testing.T) {
	c := &Contrato{
		Observacoes:       "anotação antiga",
		ImovelMatricula:   "12345",
		NegocioValorTotal: fptr(100000),
	}
	req := ContratoRequest{Observacoes: sptr("anotação nova")}

	require.NoError(t, req.AplicarEm(c))
	assert.Equal(t, "anotação nova", c.Observacoes)
	assert.Equal(t, "12345", c.ImovelMatricula)
	require.NotNil(t, c.NegocioValorTotal)
	assert.Equal(t, 100000.0, *c.NegocioValorTotal)
}

func TestAplicarEmPermutaAusenteViraZero(t *testing.T) {
	c := &Contrato{NegocioValorImovelPermuta: fptr(5000)}
	req := ContratoRequest{}

	require.NoError(t, req.AplicarEm(c))
	require.NotNil(t, c.NegocioValorImovelPermuta)
	assert.Zero(t, *c.NegocioValorImovelPermuta)
	require.NotNil(t, c.NegocioValorVeiculoPermuta)
	assert.Zero(t, *c.NegocioValorVeiculoPermuta)
}

func TestAplicarEmRejeitaPermutaNegativa(t *testing.T) {
	c := &Contrato{}
	req := ContratoRequest{NegocioValorImovelPermuta: fptr(-1)}

	err := req.AplicarEm(c)
	assert.ErrorIs(t, err, parcela.ErrPermutaNegativa)
}

func TestAplicarEmRejeitaPermutaAcimaDoTotal(t *testing.T) {
	c := &Contrato{}
	req := ContratoRequest{
		NegocioValorTotal:          fptr(100000),
		NegocioValorImovelPermuta:  fptr(80000),
		NegocioValorVeiculoPermuta: fptr(30000),
	}

	err := req.AplicarEm(c)
	assert.ErrorIs(t, err, parcela.ErrPermutaExcedeTotal)
}

func TestAplicarEmAceitaPermutaIgualAoTotal(t *testing.T) {
	c := &Contrato{}
	req := ContratoRequest{
		NegocioValorTotal:          fptr(100000),
		NegocioValorImovelPermuta:  fptr(60000),
		NegocioValorVeiculoPermuta: fptr(40000),
	}

	require.NoError(t, req.AplicarEm(c))
}

func TestAplicarEmSubstituiVendedores(t *testing.T) {
	c := &Contrato{
		ID: 3,
		Vendedores: []ContratoVendedor{
			{ContratoID: 3, Ordem: 0, Nome: "Antigo"},
		},
	}
	req := ContratoRequest{
		Vendedores: []VendedorRequest{
			{Nome: "Ana", Documento: "123.456.789-09"},
			{Nome: "Beatriz", Documento: "12.345.678/0001-95"},
		},
	}

	require.NoError(t, req.AplicarEm(c))
	require.Len(t, c.Vendedores, 2)
	assert.Equal(t, 0, c.Vendedores[0].Ordem)
	assert.Equal(t, "12345678909", c.Vendedores[0].Documento)
	assert.Equal(t, 1, c.Vendedores[1].Ordem)
	assert.Equal(t, "12345678000195", c.Vendedores[1].Documento)
}

func TestAplicarEmNaoTocaVendedoresAusentes(t *testing.T) {
	c := &Contrato{
		Vendedores: []ContratoVendedor{{Nome: "Ana"}},
	}
	req := ContratoRequest{Observacoes: sptr("só observação")}

	require.NoError(t, req.AplicarEm(c))
	require.Len(t, c.Vendedores, 1)
	assert.Equal(t, "Ana", c.Vendedores[0].Nome)
}

func TestAvaliarPlanoGeraPlanoEPersiste(t *testing.T) {
	c := &Contrato{
		NegocioValorTotal:          fptr(100),
		NegocioNumParcelas:         iptr(3),
		NegocioDataPrimeiraParcela: "2026-01-15",
	}

	res := AvaliarPlano(c, false)
	require.Len(t, res.Parcelas, 3)
	assert.False(t, res.Recalculado)

	salvas := PlanoSalvo(c)
	require.Len(t, salvas, 3)
	assert.Equal(t, 33.33, salvas[0].Valor)
	assert.Equal(t, 33.34, salvas[2].Valor)
}

func TestAvaliarPlanoAvisaQuandoSaldoMuda(t *testing.T) {
	c := &Contrato{
		NegocioValorTotal:          fptr(100),
		NegocioNumParcelas:         iptr(2),
		NegocioDataPrimeiraParcela: "2026-01-15",
	}
	AvaliarPlano(c, false)

	c.NegocioValorTotal = fptr(200)
	res := AvaliarPlano(c, false)
	assert.True(t, res.Recalculado)
	require.Len(t, res.Parcelas, 2)
	assert.Equal(t, 100.0, res.Parcelas[0].Valor)
}

func TestAvaliarPlanoSuprimeAvisoNaHidratacao(t *testing.T) {
	c := &Contrato{
		NegocioValorTotal:          fptr(100),
		NegocioNumParcelas:         iptr(2),
		NegocioDataPrimeiraParcela: "2026-01-15",
	}
	AvaliarPlano(c, false)

	c.NegocioValorTotal = fptr(200)
	res := AvaliarPlano(c, true)
	assert.False(t, res.Recalculado)
	assert.Equal(t, 100.0, res.Parcelas[0].Valor)
}

func TestAvaliarPlanoMantemPlanoQuandoNadaMuda(t *testing.T) {
	c := &Contrato{
		NegocioValorTotal:          fptr(100),
		NegocioNumParcelas:         iptr(2),
		NegocioDataPrimeiraParcela: "2026-01-15",
	}
	AvaliarPlano(c, false)
	res := AvaliarPlano(c, false)
	assert.False(t, res.Recalculado)
	require.Len(t, res.Parcelas, 2)
}

func TestParaResponseDecodificaParcelas(t *testing.T) {
	plano := []parcela.Parcela{{Numero: 1, Vencimento: "2026-01-15", Valor: 50}}
	raw, err := json.Marshal(plano)
	require.NoError(t, err)

	c := &Contrato{NegocioParcelas: raw}
	resp := ParaResponse(c)
	require.Len(t, resp.Parcelas, 1)
	assert.Equal(t, "2026-01-15", resp.Parcelas[0].Vencimento)
	assert.NotNil(t, resp.Vendedores)
	assert.NotNil(t, resp.Compradores)
}

func TestParaResponsePlanoIlegivel(t *testing.T) {
	c := &Contrato{NegocioParcelas: []byte("{corrompido")}
	resp := ParaResponse(c)
	assert.Empty(t, resp.Parcelas)
}
