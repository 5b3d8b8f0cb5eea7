// Package parcela gera o plano de parcelas do negócio a partir do saldo a
// pagar, da quantidade de parcelas e da data do primeiro vencimento.
package parcela

import (
	"errors"
	"math"
	"time"
)

// Parcela representa uma única parcela do plano de pagamento.
type Parcela struct {
	Numero     int     `json:"numero"`
	Vencimento string  `json:"vencimento"` // ISO yyyy-MM-dd
	Valor      float64 `json:"valor"`
}

// Erros de validação dos valores de permuta (surgem antes da geração).
var (
	ErrPermutaNegativa    = errors.New("valores de permuta não podem ser negativos")
	ErrPermutaExcedeTotal = errors.New("a soma dos bens em permuta não pode exceder o valor total do negócio")
)

const formatoData = "2006-01-02"

// CalcularSaldo deriva o saldo a pagar em dinheiro: valor total menos os bens
// dados em permuta. Soma de permutas igual ao total é válida (saldo zero).
func CalcularSaldo(valorTotal, valorImovelPermuta, valorVeiculoPermuta float64) (float64, error) {
	if valorImovelPermuta < 0 || valorVeiculoPermuta < 0 {
		return 0, ErrPermutaNegativa
	}
	soma := valorImovelPermuta + valorVeiculoPermuta
	if valorTotal >= 0 && soma > valorTotal {
		return 0, ErrPermutaExcedeTotal
	}
	saldo := valorTotal - soma
	if saldo < 0 {
		saldo = 0
	}
	return saldo, nil
}

// Gerar produz o plano de parcelas. Saldo zero, quantidade menor que 1 ou
// primeira data ausente resultam em plano vazio (estado normal durante o
// preenchimento do formulário, não é erro).
//
// O valor base é o saldo dividido pela quantidade, arredondado ao centavo;
// a última parcela absorve integralmente a sobra do arredondamento, de modo
// que a soma das parcelas é exatamente o saldo.
//
// diaFixo, quando entre 1 e 31, substitui o dia do vencimento de todas as
// parcelas; meses mais curtos usam o último dia do mês. Fora dessa faixa o
// dia da primeira data é mantido (também limitado ao tamanho do mês).
func Gerar(saldo float64, qtd int, primeiraData time.Time, diaFixo int) []Parcela {
	if saldo <= 0 || qtd < 1 || primeiraData.IsZero() {
		return nil
	}

	saldoCentavos := int64(math.Round(saldo * 100))
	baseCentavos := int64(math.Floor(float64(saldoCentavos)/float64(qtd) + 0.5))

	parcelas := make([]Parcela, 0, qtd)
	var acumulado int64
	for i := 1; i <= qtd; i++ {
		valor := baseCentavos
		if i == qtd {
			valor = saldoCentavos - acumulado
		}
		acumulado += valor
		parcelas = append(parcelas, Parcela{
			Numero:     i,
			Vencimento: avancarMeses(primeiraData, i-1, diaFixo).Format(formatoData),
			Valor:      float64(valor) / 100,
		})
	}
	return parcelas
}

// GerarDeISO é a variante de Gerar para datas em texto ISO (yyyy-MM-dd).
// Data vazia ou inválida resulta em plano vazio.
func GerarDeISO(saldo float64, qtd int, primeiraData string, diaFixo int) []Parcela {
	if primeiraData == "" {
		return nil
	}
	data, err := time.Parse(formatoData, primeiraData)
	if err != nil {
		return nil
	}
	return Gerar(saldo, qtd, data, diaFixo)
}

// avancarMeses soma meses-calendário à data base sem transbordar o mês alvo:
// 31 de janeiro + 1 mês é 28/29 de fevereiro, nunca 2/3 de março.
func avancarMeses(base time.Time, meses int, diaFixo int) time.Time {
	ano, mes, dia := base.Date()
	total := int(mes) + meses
	ano += (total - 1) / 12
	mesAlvo := time.Month((total-1)%12 + 1)

	if diaFixo >= 1 && diaFixo <= 31 {
		dia = diaFixo
	}
	if ultimo := ultimoDiaDoMes(ano, mesAlvo); dia > ultimo {
		dia = ultimo
	}
	return time.Date(ano, mesAlvo, dia, 0, 0, 0, 0, time.UTC)
}

// ultimoDiaDoMes retorna o número de dias do mês (dia zero do mês seguinte).
func ultimoDiaDoMes(ano int, mes time.Month) int {
	return time.Date(ano, mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
