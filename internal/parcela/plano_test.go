package parcela

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvaliarMantemPlanoIgual(t *testing.T) {
	primeira := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	salvas := Gerar(100, 2, primeira, 0)

	res := Avaliar(salvas, 100, 2, primeira, 0, false)
	assert.False(t, res.Recalculado)
	assert.Equal(t, salvas, res.Parcelas)
}

func TestAvaliarSubstituiPlanoDivergente(t *testing.T) {
	primeira := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	salvas := Gerar(100, 2, primeira, 0)

	res := Avaliar(salvas, 200, 2, primeira, 0, false)
	require.Len(t, res.Parcelas, 2)
	assert.True(t, res.Recalculado)
	assert.Equal(t, 100.0, res.Parcelas[0].Valor)
}

func TestAvaliarSemPlanoSalvoNaoAvisa(t *testing.T) {
	primeira := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	res := Avaliar(nil, 100, 2, primeira, 0, false)
	require.Len(t, res.Parcelas, 2)
	assert.False(t, res.Recalculado)
}

func TestAvaliarSupressaoDeAviso(t *testing.T) {
	primeira := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	salvas := Gerar(100, 2, primeira, 0)

	res := Avaliar(salvas, 200, 2, primeira, 0, true)
	assert.False(t, res.Recalculado)
	assert.Equal(t, 100.0, res.Parcelas[0].Valor)
}

func TestAvaliarParametrosDegeneradosEsvaziamPlano(t *testing.T) {
	primeira := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	salvas := Gerar(100, 2, primeira, 0)

	res := Avaliar(salvas, 0, 2, primeira, 0, false)
	assert.Empty(t, res.Parcelas)
	assert.True(t, res.Recalculado)
}

func TestAvaliarDeISO(t *testing.T) {
	salvas := GerarDeISO(100, 2, "2026-01-15", 0)

	res := AvaliarDeISO(salvas, 100, 2, "2026-01-15", 0, false)
	assert.False(t, res.Recalculado)

	res = AvaliarDeISO(salvas, 100, 2, "", 0, false)
	assert.Empty(t, res.Parcelas)
	assert.True(t, res.Recalculado)
}
