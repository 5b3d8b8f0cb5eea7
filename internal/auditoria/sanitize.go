package auditoria

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AlteracaoExibicao é um CampoAlterado pronto para apresentação: caminho
// original, rótulo traduzido e valores formatados.
type AlteracaoExibicao struct {
	Path       string `json:"path"`
	OldValue   string `json:"oldValue"`
	NewValue   string `json:"newValue"`
	Label      string `json:"label"`
	DisplayOld string `json:"displayOld"`
	DisplayNew string `json:"displayNew"`
}

// ValorVazio é o marcador de valor ausente, nulo ou em branco.
const ValorVazio = "(vazio)"

// Sanitizar remove mudanças de campos técnicos e mudanças sem efeito
// (valores iguais após normalização). O armazenamento já deveria ter feito o
// mesmo filtro; repetir aqui impede que um defeito a montante vaze
// identificadores internos ou timestamps para a visão do usuário.
func Sanitizar(mudancas []CampoAlterado) []CampoAlterado {
	saida := make([]CampoAlterado, 0, len(mudancas))
	for _, m := range mudancas {
		if !caminhoAuditavel(m.Path) {
			continue
		}
		if normalizar(m.OldValue) == normalizar(m.NewValue) {
			continue
		}
		saida = append(saida, m)
	}
	return saida
}

// Enriquecer aplica Sanitizar e preenche rótulo e valores de exibição,
// preservando a ordem original das mudanças.
func Enriquecer(mudancas []CampoAlterado) []AlteracaoExibicao {
	limpas := Sanitizar(mudancas)
	saida := make([]AlteracaoExibicao, 0, len(limpas))
	for _, m := range limpas {
		saida = append(saida, AlteracaoExibicao{
			Path:       m.Path,
			OldValue:   m.OldValue,
			NewValue:   m.NewValue,
			Label:      RotuloParaCaminho(m.Path),
			DisplayOld: FormatarValor(m.Path, m.OldValue),
			DisplayNew: FormatarValor(m.Path, m.NewValue),
		})
	}
	return saida
}

func caminhoAuditavel(caminho string) bool {
	if strings.TrimSpace(caminho) == "" {
		return false
	}
	p := strings.ToLower(caminho)
	switch {
	case p == "id" || strings.HasSuffix(p, ".id"):
		return false
	case p == "ordem" || strings.HasSuffix(p, ".ordem"):
		return false
	case strings.Contains(p, "createdat"),
		strings.Contains(p, "updatedat"),
		strings.Contains(p, "paginaatual"):
		return false
	}
	return true
}

func normalizar(valor string) string {
	return strings.TrimSpace(valor)
}

var indiceDeLista = regexp.MustCompile(`\[\d+\]`)

// RotuloParaCaminho traduz um caminho para o rótulo amigável
// (ex.: "vendedores[0].nome" → "Vendedor - Nome").
func RotuloParaCaminho(caminho string) string {
	if strings.TrimSpace(caminho) == "" {
		return caminho
	}
	normalizado := indiceDeLista.ReplaceAllString(caminho, "")
	normalizado = strings.TrimPrefix(normalizado, ".")
	if campo, ok := strings.CutPrefix(normalizado, "vendedores."); ok {
		return "Vendedor - " + rotuloDoCampo(campo)
	}
	if campo, ok := strings.CutPrefix(normalizado, "compradores."); ok {
		return "Comprador - " + rotuloDoCampo(campo)
	}
	return rotuloDoCampo(normalizado)
}

// FormatarValor devolve o valor pronto para exibição: moeda para campos
// monetários, tradução de status, marcadores para vazio e removido; o resto
// passa como está.
func FormatarValor(caminho, valor string) string {
	if valor == "" || valor == "null" || strings.TrimSpace(valor) == "" {
		return ValorVazio
	}
	if valor == ValorRemovido {
		return valor
	}
	if strings.HasSuffix(caminho, "status") {
		return traduzirStatus(valor)
	}
	if campoMonetario(caminho) {
		return formatarMoeda(valor)
	}
	return valor
}

var rotulosDeCampo = map[string]string{
	"nome":                       "Nome",
	"documento":                  "Documento",
	"email":                      "E-mail",
	"telefone":                   "Telefone",
	"endereco":                   "Endereço",
	"socioNome":                  "Sócio - Nome",
	"socioCpf":                   "Sócio - CPF",
	"socioNacionalidade":         "Sócio - Nacionalidade",
	"socioProfissao":             "Sócio - Profissão",
	"socioEstadoCivil":           "Sócio - Estado Civil",
	"socioRegimeBens":            "Sócio - Regime de Bens",
	"socioRg":                    "Sócio - RG",
	"socioCnh":                   "Sócio - CNH",
	"socioEmail":                 "Sócio - E-mail",
	"socioTelefone":              "Sócio - Telefone",
	"socioEndereco":              "Sócio - Endereço",
	"nacionalidade":              "Nacionalidade",
	"profissao":                  "Profissão",
	"estadoCivil":                "Estado Civil",
	"regimeBens":                 "Regime de Bens",
	"rg":                         "RG",
	"cnh":                        "CNH",
	"conjugeNome":                "Cônjuge - Nome",
	"conjugeCpf":                 "Cônjuge - CPF",
	"conjugeNacionalidade":       "Cônjuge - Nacionalidade",
	"conjugeProfissao":           "Cônjuge - Profissão",
	"conjugeRg":                  "Cônjuge - RG",
	"status":                     "Status",
	"observacoes":                "Observações",
	"negocioValorTotal":          "Negócio - Valor Total",
	"negocioValorEntrada":        "Negócio - Valor Entrada",
	"negocioFormaPagamento":      "Negócio - Forma de Pagamento",
	"negocioNumParcelas":         "Negócio - Nº Parcelas",
	"negocioValorParcela":        "Negócio - Valor Parcela",
	"negocioVencimentos":         "Negócio - Vencimentos",
	"negocioDiaVencimento":       "Negócio - Dia de Vencimento",
	"negocioValorImovelPermuta":  "Negócio - Valor Imóvel Permuta",
	"negocioValorVeiculoPermuta": "Negócio - Valor Veículo Permuta",
	"negocioValorFinanciamento":  "Negócio - Valor Financiamento",
	"negocioPrazoPagamento":      "Negócio - Prazo Pagamento",
	"honorariosValor":            "Honorários - Valor",
}

func rotuloDoCampo(campo string) string {
	if rotulo, ok := rotulosDeCampo[campo]; ok {
		return rotulo
	}
	return campo
}

var rotulosDeStatus = map[string]string{
	"DRAFT": "Rascunho",
	"FINAL": "Finalizado",
}

func traduzirStatus(valor string) string {
	if rotulo, ok := rotulosDeStatus[strings.ToUpper(valor)]; ok {
		return rotulo
	}
	return valor
}

// Campos cujo valor é dinheiro e deve ser exibido como moeda.
var camposMonetarios = map[string]struct{}{
	"negocioValorTotal":          {},
	"negocioValorEntrada":        {},
	"negocioValorParcela":        {},
	"negocioValorImovelPermuta":  {},
	"negocioValorVeiculoPermuta": {},
	"negocioValorFinanciamento":  {},
	"honorariosValor":            {},
}

func campoMonetario(caminho string) bool {
	normalizado := indiceDeLista.ReplaceAllString(caminho, "")
	if i := strings.LastIndex(normalizado, "."); i >= 0 {
		normalizado = normalizado[i+1:]
	}
	_, ok := camposMonetarios[normalizado]
	return ok
}

var impressoraPTBR = message.NewPrinter(language.BrazilianPortuguese)

// formatarMoeda interpreta o valor como número (aceita notação científica,
// ex.: "5E+1") e o formata como moeda pt-BR. Valor que não for um número
// finito volta como texto cru; um campo malformado não derruba o histórico.
func formatarMoeda(valor string) string {
	n, err := strconv.ParseFloat(strings.TrimSpace(valor), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return valor
	}
	return impressoraPTBR.Sprintf("R$ %v", number.Decimal(n, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
