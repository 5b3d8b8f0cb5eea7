package permissao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repository: NewRepository(db)}
}

// GET /telas
func (h *Handler) ListarTelas(w http.ResponseWriter, r *http.Request) {
	telas, err := h.Repository.ListarTelas()
	if err != nil {
		http.Error(w, "Erro ao listar telas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(telas)
}

// GET /usuarios/{id}/telas
func (h *Handler) TelasDoUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	codigos, err := h.Repository.CodigosPorUsuario(uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar telas do usuário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(codigos)
}

// PUT /usuarios/{id}/telas
func (h *Handler) AtualizarTelasDoUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var codigos []string
	if err := json.NewDecoder(r.Body).Decode(&codigos); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarTelasDoUsuario(uint(id), codigos); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
