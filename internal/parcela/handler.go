package parcela

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler expõe a simulação de parcelas (geração pura, sem persistência).
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// DTO usado no POST /parcelas/simular
type SimulacaoDTO struct {
	ValorTotal          float64 `json:"valorTotal"`
	ValorImovelPermuta  float64 `json:"valorImovelPermuta"`
	ValorVeiculoPermuta float64 `json:"valorVeiculoPermuta"`
	QtdParcelas         int     `json:"qtdParcelas"`
	PrimeiraData        string  `json:"primeiraData"` // yyyy-MM-dd
	DiaVencimento       int     `json:"diaVencimento"`
}

type simulacaoResposta struct {
	Saldo    float64   `json:"saldo"`
	Parcelas []Parcela `json:"parcelas"`
}

// POST /parcelas/simular
func (h *Handler) Simular(w http.ResponseWriter, r *http.Request) {
	var dto SimulacaoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	saldo, err := CalcularSaldo(dto.ValorTotal, dto.ValorImovelPermuta, dto.ValorVeiculoPermuta)
	if err != nil {
		if errors.Is(err, ErrPermutaNegativa) || errors.Is(err, ErrPermutaExcedeTotal) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Erro ao calcular saldo", http.StatusInternalServerError)
		return
	}

	parcelas := GerarDeISO(saldo, dto.QtdParcelas, dto.PrimeiraData, dto.DiaVencimento)
	if parcelas == nil {
		parcelas = []Parcela{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(simulacaoResposta{Saldo: saldo, Parcelas: parcelas})
}
