package parcela

import "time"

// Resultado de uma avaliação do plano salvo contra os parâmetros atuais.
type Resultado struct {
	Parcelas []Parcela
	// Recalculado indica que um plano anteriormente aceito foi substituído
	// porque o saldo (ou outro parâmetro) mudou. Aviso de disparo único,
	// nunca persistido: cabe ao chamador exibi-lo e descartá-lo.
	Recalculado bool
}

// Avaliar confronta o plano salvo com o plano regenerado a partir dos
// parâmetros atuais. Se coincidirem, o plano salvo é mantido; se divergirem,
// o plano novo o substitui e o aviso de recálculo é acionado.
//
// suprimirAviso deve ser true exatamente uma vez: ao hidratar um contrato
// recém-carregado, para que um plano salvo legítimo não seja apontado como
// desatualizado no carregamento.
func Avaliar(salvas []Parcela, saldo float64, qtd int, primeiraData time.Time, diaFixo int, suprimirAviso bool) Resultado {
	novas := Gerar(saldo, qtd, primeiraData, diaFixo)
	if planosIguais(salvas, novas) {
		return Resultado{Parcelas: salvas}
	}
	aviso := len(salvas) > 0 && !suprimirAviso
	return Resultado{Parcelas: novas, Recalculado: aviso}
}

// AvaliarDeISO é a variante de Avaliar para datas em texto ISO (yyyy-MM-dd).
// Data vazia ou inválida regenera um plano vazio.
func AvaliarDeISO(salvas []Parcela, saldo float64, qtd int, primeiraData string, diaFixo int, suprimirAviso bool) Resultado {
	data, err := time.Parse(formatoData, primeiraData)
	if err != nil {
		data = time.Time{}
	}
	return Avaliar(salvas, saldo, qtd, data, diaFixo, suprimirAviso)
}

func planosIguais(a, b []Parcela) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
