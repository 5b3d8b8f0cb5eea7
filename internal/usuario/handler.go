package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/MarlonMartinss/advocacia/internal/auth"
	"github.com/MarlonMartinss/advocacia/internal/utils"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Log        *logrus.Logger
}

func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Log: log}
}

// UsuarioRequest cobre criação e edição. Senha vazia na edição preserva a
// atual; vazia na criação gera uma senha temporária devolvida na resposta.
type UsuarioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
}

type usuarioCriadoResposta struct {
	Usuario
	SenhaTemporaria string `json:"senhaTemporaria,omitempty"`
}

// GET /usuarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(usuarios)
}

// GET /usuarios/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

// POST /usuarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req UsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		http.Error(w, "Nome de usuário é obrigatório", http.StatusBadRequest)
		return
	}

	existe, err := h.Repository.ExistePorUsername(h.DB, req.Username)
	if err != nil {
		http.Error(w, "Erro ao criar usuário", http.StatusInternalServerError)
		return
	}
	if existe {
		http.Error(w, "Usuário já existe com este login", http.StatusConflict)
		return
	}

	senha := req.Password
	var senhaTemporaria string
	if strings.TrimSpace(senha) == "" {
		senhaTemporaria, err = utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "Erro ao criar usuário", http.StatusInternalServerError)
			return
		}
		senha = senhaTemporaria
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "Erro ao criar usuário", http.StatusInternalServerError)
		return
	}

	u := &Usuario{
		Username: req.Username,
		Senha:    hash,
		Nome:     nomeOuUsername(req.Name, req.Username),
		Email:    req.Email,
		Role:     roleOuPadrao(req.Role, PerfilUser),
		Ativo:    req.Active == nil || *req.Active,
	}
	if err := h.Repository.Criar(h.DB, u); err != nil {
		h.Log.WithError(err).Error("falha ao criar usuário")
		http.Error(w, "Erro ao criar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(usuarioCriadoResposta{Usuario: *u, SenhaTemporaria: senhaTemporaria})
}

// PUT /usuarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req UsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username != "" && req.Username != u.Username {
		existe, err := h.Repository.ExistePorUsername(h.DB, req.Username)
		if err != nil {
			http.Error(w, "Erro ao atualizar usuário", http.StatusInternalServerError)
			return
		}
		if existe {
			http.Error(w, "Usuário já existe com este login", http.StatusConflict)
			return
		}
		u.Username = req.Username
	}

	u.Nome = nomeOuUsername(req.Name, u.Username)
	u.Email = req.Email
	u.Role = roleOuPadrao(req.Role, u.Role)
	if req.Active != nil {
		u.Ativo = *req.Active
	}
	if strings.TrimSpace(req.Password) != "" {
		hash, err := utils.HashSenha(req.Password)
		if err != nil {
			http.Error(w, "Erro ao atualizar usuário", http.StatusInternalServerError)
			return
		}
		u.Senha = hash
	}

	if err := h.Repository.Salvar(h.DB, u); err != nil {
		http.Error(w, "Erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(u)
}

// DELETE /usuarios/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	if u.Username == auth.UsuarioDoContexto(r.Context()) {
		http.Error(w, "Não é possível excluir seu próprio usuário", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, u); err != nil {
		http.Error(w, "Erro ao excluir usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func nomeOuUsername(nome, username string) string {
	if strings.TrimSpace(nome) != "" {
		return nome
	}
	return username
}

func roleOuPadrao(role, padrao string) string {
	if strings.TrimSpace(role) == "" {
		return padrao
	}
	return strings.ToUpper(role)
}
