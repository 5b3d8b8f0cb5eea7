package parcela

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func somaCentavos(parcelas []Parcela) int64 {
	var total int64
	for _, p := range parcelas {
		total += int64(math.Round(p.Valor * 100))
	}
	return total
}

func TestGerarDivisaoExata(t *testing.T) {
	parcelas := Gerar(1200, 4, data(2026, time.January, 10), 0)
	require.Len(t, parcelas, 4)
	for _, p := range parcelas {
		assert.Equal(t, 300.0, p.Valor)
	}
}

func TestGerarUltimaParcelaAbsorveSobra(t *testing.T) {
	parcelas := Gerar(100, 3, data(2026, time.January, 10), 0)
	require.Len(t, parcelas, 3)
	assert.Equal(t, 33.33, parcelas[0].Valor)
	assert.Equal(t, 33.33, parcelas[1].Valor)
	assert.Equal(t, 33.34, parcelas[2].Valor)
	assert.Equal(t, int64(10000), somaCentavos(parcelas))
}

func TestGerarSomaExataEmCasosDificeis(t *testing.T) {
	casos := []struct {
		saldo float64
		qtd   int
	}{
		{100, 3},
		{0.01, 1},
		{0.05, 3},
		{999999.99, 7},
		{1000, 13},
		{123456.78, 36},
	}
	for _, caso := range casos {
		parcelas := Gerar(caso.saldo, caso.qtd, data(2026, time.March, 5), 0)
		require.Len(t, parcelas, caso.qtd, "saldo %v qtd %d", caso.saldo, caso.qtd)
		esperado := int64(math.Round(caso.saldo * 100))
		assert.Equal(t, esperado, somaCentavos(parcelas), "saldo %v qtd %d", caso.saldo, caso.qtd)
	}
}

func TestGerarNumeracaoSequencial(t *testing.T) {
	parcelas := Gerar(500, 5, data(2026, time.June, 1), 0)
	for i, p := range parcelas {
		assert.Equal(t, i+1, p.Numero)
	}
}

func TestGerarAvancoMensalSimples(t *testing.T) {
	parcelas := Gerar(300, 3, data(2026, time.January, 10), 0)
	require.Len(t, parcelas, 3)
	assert.Equal(t, "2026-01-10", parcelas[0].Vencimento)
	assert.Equal(t, "2026-02-10", parcelas[1].Vencimento)
	assert.Equal(t, "2026-03-10", parcelas[2].Vencimento)
}

func TestGerarDiaTrintaEUmNaoTransborda(t *testing.T) {
	parcelas := Gerar(400, 4, data(2026, time.January, 31), 0)
	require.Len(t, parcelas, 4)
	assert.Equal(t, "2026-01-31", parcelas[0].Vencimento)
	assert.Equal(t, "2026-02-28", parcelas[1].Vencimento)
	assert.Equal(t, "2026-03-31", parcelas[2].Vencimento)
	assert.Equal(t, "2026-04-30", parcelas[3].Vencimento)
}

func TestGerarDiaTrintaEUmEmAnoBissexto(t *testing.T) {
	parcelas := Gerar(200, 2, data(2028, time.January, 31), 0)
	require.Len(t, parcelas, 2)
	assert.Equal(t, "2028-02-29", parcelas[1].Vencimento)
}

func TestGerarDiaFixoSubstituiODiaDaPrimeiraData(t *testing.T) {
	parcelas := Gerar(300, 3, data(2026, time.January, 10), 5)
	require.Len(t, parcelas, 3)
	assert.Equal(t, "2026-01-05", parcelas[0].Vencimento)
	assert.Equal(t, "2026-02-05", parcelas[1].Vencimento)
	assert.Equal(t, "2026-03-05", parcelas[2].Vencimento)
}

func TestGerarDiaFixoLimitadoAoMes(t *testing.T) {
	parcelas := Gerar(400, 4, data(2026, time.January, 15), 31)
	require.Len(t, parcelas, 4)
	assert.Equal(t, "2026-01-31", parcelas[0].Vencimento)
	assert.Equal(t, "2026-02-28", parcelas[1].Vencimento)
	assert.Equal(t, "2026-03-31", parcelas[2].Vencimento)
	assert.Equal(t, "2026-04-30", parcelas[3].Vencimento)
}

func TestGerarDiaFixoForaDaFaixaIgnorado(t *testing.T) {
	parcelas := Gerar(200, 2, data(2026, time.January, 10), 32)
	require.Len(t, parcelas, 2)
	assert.Equal(t, "2026-01-10", parcelas[0].Vencimento)
	assert.Equal(t, "2026-02-10", parcelas[1].Vencimento)
}

func TestGerarViradaDeAno(t *testing.T) {
	parcelas := Gerar(300, 3, data(2026, time.November, 20), 0)
	require.Len(t, parcelas, 3)
	assert.Equal(t, "2026-12-20", parcelas[1].Vencimento)
	assert.Equal(t, "2027-01-20", parcelas[2].Vencimento)
}

func TestGerarEntradasDegeneradas(t *testing.T) {
	assert.Empty(t, Gerar(0, 3, data(2026, time.January, 10), 0))
	assert.Empty(t, Gerar(-50, 3, data(2026, time.January, 10), 0))
	assert.Empty(t, Gerar(100, 0, data(2026, time.January, 10), 0))
	assert.Empty(t, Gerar(100, -1, data(2026, time.January, 10), 0))
	assert.Empty(t, Gerar(100, 3, time.Time{}, 0))
}

func TestGerarDeterministico(t *testing.T) {
	a := Gerar(123456.78, 12, data(2026, time.May, 17), 20)
	b := Gerar(123456.78, 12, data(2026, time.May, 17), 20)
	assert.Equal(t, a, b)
}

func TestGerarDeISO(t *testing.T) {
	parcelas := GerarDeISO(100, 2, "2026-01-15", 0)
	require.Len(t, parcelas, 2)
	assert.Equal(t, "2026-02-15", parcelas[1].Vencimento)

	assert.Empty(t, GerarDeISO(100, 2, "", 0))
	assert.Empty(t, GerarDeISO(100, 2, "15/01/2026", 0))
}

func TestCalcularSaldo(t *testing.T) {
	saldo, err := CalcularSaldo(100000, 30000, 20000)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, saldo)
}

func TestCalcularSaldoPermutaIgualAoTotal(t *testing.T) {
	saldo, err := CalcularSaldo(100000, 60000, 40000)
	require.NoError(t, err)
	assert.Zero(t, saldo)
}

func TestCalcularSaldoPermutaNegativa(t *testing.T) {
	_, err := CalcularSaldo(100000, -1, 0)
	assert.ErrorIs(t, err, ErrPermutaNegativa)

	_, err = CalcularSaldo(100000, 0, -0.01)
	assert.ErrorIs(t, err, ErrPermutaNegativa)
}

func TestCalcularSaldoPermutaExcedeTotal(t *testing.T) {
	_, err := CalcularSaldo(100000, 80000, 30000)
	assert.ErrorIs(t, err, ErrPermutaExcedeTotal)
}
