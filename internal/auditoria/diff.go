package auditoria

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// CampoAlterado é uma diferença detectada entre duas versões do contrato.
// Valores são sempre texto: números mantêm a grafia original do JSON
// (inclusive notação científica), nulos viram "null".
type CampoAlterado struct {
	Path     string `json:"path"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// ValorRemovido marca elemento de lista presente no antes e ausente no depois.
const ValorRemovido = "(removido)"

// Campos técnicos ignorados em qualquer nível do documento
// (ex.: id na raiz, vendedores[0].id, vendedores[0].ordem).
var camposIgnorados = map[string]struct{}{
	"createdAt":   {},
	"updatedAt":   {},
	"id":          {},
	"ordem":       {},
	"status":      {},
	"paginaAtual": {},
}

// Diff compara duas versões do contrato (qualquer valor serializável em JSON)
// e devolve as mudanças de campo, com caminhos qualificados por ponto e
// índice ("vendedores[0].nome").
func Diff(antes, depois any) ([]CampoAlterado, error) {
	noAntes, err := paraNoJSON(antes)
	if err != nil {
		return nil, fmt.Errorf("serializar versão anterior: %w", err)
	}
	noDepois, err := paraNoJSON(depois)
	if err != nil {
		return nil, fmt.Errorf("serializar versão nova: %w", err)
	}

	var mudancas []CampoAlterado
	diffNo("", noAntes, noDepois, &mudancas)
	return mudancas, nil
}

// paraNoJSON reserializa o valor numa árvore genérica. UseNumber preserva a
// grafia numérica original, que o formatador de moeda precisa interpretar.
func paraNoJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var no any
	if err := dec.Decode(&no); err != nil {
		return nil, err
	}
	return no, nil
}

func diffNo(prefixo string, antes, depois any, mudancas *[]CampoAlterado) {
	objAntes, antesObj := antes.(map[string]any)
	objDepois, depoisObj := depois.(map[string]any)
	if antesObj && depoisObj {
		for _, chave := range chavesUnidas(objAntes, objDepois) {
			if _, ok := camposIgnorados[chave]; ok {
				continue
			}
			caminho := chave
			if prefixo != "" {
				caminho = prefixo + "." + chave
			}
			diffNo(caminho, objAntes[chave], objDepois[chave], mudancas)
		}
		return
	}

	listaAntes, antesLista := antes.([]any)
	listaDepois, depoisLista := depois.([]any)
	if antesLista && depoisLista {
		maior := len(listaAntes)
		if len(listaDepois) > maior {
			maior = len(listaDepois)
		}
		for i := 0; i < maior; i++ {
			caminho := fmt.Sprintf("%s[%d]", prefixo, i)
			switch {
			case i >= len(listaAntes):
				*mudancas = append(*mudancas, CampoAlterado{Path: caminho, OldValue: "null", NewValue: noParaTexto(listaDepois[i])})
			case i >= len(listaDepois):
				*mudancas = append(*mudancas, CampoAlterado{Path: caminho, OldValue: noParaTexto(listaAntes[i]), NewValue: ValorRemovido})
			default:
				diffNo(caminho, listaAntes[i], listaDepois[i], mudancas)
			}
		}
		return
	}

	vAntes := noParaTexto(antes)
	vDepois := noParaTexto(depois)
	if vAntes != vDepois {
		*mudancas = append(*mudancas, CampoAlterado{Path: prefixo, OldValue: vAntes, NewValue: vDepois})
	}
}

// chavesUnidas devolve a união das chaves dos dois objetos em ordem estável.
func chavesUnidas(a, b map[string]any) []string {
	vistas := make(map[string]struct{}, len(a)+len(b))
	chaves := make([]string, 0, len(a)+len(b))
	for k := range a {
		vistas[k] = struct{}{}
		chaves = append(chaves, k)
	}
	for k := range b {
		if _, ok := vistas[k]; !ok {
			chaves = append(chaves, k)
		}
	}
	sort.Strings(chaves)
	return chaves
}

func noParaTexto(no any) string {
	switch v := no.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(raw)
	}
}
