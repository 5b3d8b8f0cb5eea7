package tarefa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repository: NewRepository(db)}
}

type TarefaRequest struct {
	Title string `json:"title"`
	Done  *bool  `json:"done"`
}

func (h *Handler) buscarDaRota(w http.ResponseWriter, r *http.Request) *Tarefa {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}
	t, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
		return nil
	}
	return t
}

// GET /tarefas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	tarefas, err := h.Repository.ListarTodas()
	if err != nil {
		http.Error(w, "Erro ao listar tarefas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tarefas)
}

// POST /tarefas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req TarefaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "O título é obrigatório", http.StatusBadRequest)
		return
	}
	t := &Tarefa{Titulo: req.Title, Concluida: req.Done != nil && *req.Done}
	if err := h.Repository.Criar(t); err != nil {
		http.Error(w, "Erro ao criar tarefa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// PUT /tarefas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var req TarefaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	t := h.buscarDaRota(w, r)
	if t == nil {
		return
	}
	if strings.TrimSpace(req.Title) != "" {
		t.Titulo = req.Title
	}
	if req.Done != nil {
		t.Concluida = *req.Done
	}
	if err := h.Repository.Salvar(t); err != nil {
		http.Error(w, "Erro ao atualizar tarefa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// PATCH /tarefas/{id}/concluir
func (h *Handler) AlternarConclusao(w http.ResponseWriter, r *http.Request) {
	t := h.buscarDaRota(w, r)
	if t == nil {
		return
	}
	t.Concluida = !t.Concluida
	if err := h.Repository.Salvar(t); err != nil {
		http.Error(w, "Erro ao atualizar tarefa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// DELETE /tarefas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	t := h.buscarDaRota(w, r)
	if t == nil {
		return
	}
	if err := h.Repository.Deletar(t); err != nil {
		http.Error(w, "Erro ao excluir tarefa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
